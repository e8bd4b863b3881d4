package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkClockIn(t *testing.T) {
	rec := NewRecord("a@b.c", "2025-06-02")

	assert.True(t, rec.MarkClockIn(*at(10, 30)))
	require.NotNil(t, rec.ClockIn)

	// A second clock-in is a no-op and keeps the first timestamp.
	assert.False(t, rec.MarkClockIn(*at(11, 0)))
	assert.Equal(t, *at(10, 30), *rec.ClockIn)
}

func TestMarkBreakStart(t *testing.T) {
	rec := NewRecord("a@b.c", "2025-06-02")

	// No break before clocking in.
	assert.False(t, rec.MarkBreakStart(*at(10, 0)))

	rec.MarkClockIn(*at(10, 30))
	assert.True(t, rec.MarkBreakStart(*at(12, 0)))

	// A second break cannot open while one is open.
	assert.False(t, rec.MarkBreakStart(*at(12, 30)))
	assert.Len(t, rec.Breaks, 1)
}

func TestMarkBreakEnd(t *testing.T) {
	rec := NewRecord("a@b.c", "2025-06-02")
	rec.MarkClockIn(*at(10, 30))

	// No open break to end.
	assert.False(t, rec.MarkBreakEnd(*at(12, 0)))

	rec.MarkBreakStart(*at(12, 0))
	assert.True(t, rec.MarkBreakEnd(*at(12, 45)))
	assert.InDelta(t, 45, rec.BreakMinutes(), 0.001)

	// Ending again is a no-op.
	assert.False(t, rec.MarkBreakEnd(*at(13, 0)))
}

func TestOpenBreakContributesNothing(t *testing.T) {
	rec := NewRecord("a@b.c", "2025-06-02")
	rec.MarkClockIn(*at(10, 30))
	rec.MarkBreakStart(*at(12, 0))

	assert.Zero(t, rec.BreakMinutes())
}

func TestMarkClockOut(t *testing.T) {
	rec := NewRecord("a@b.c", "2025-06-02")

	// Clock-out before clock-in is a no-op.
	assert.False(t, rec.MarkClockOut(*at(19, 0), generalWindow))
	assert.Equal(t, StatusAbsent, rec.Status)

	rec.MarkClockIn(*at(10, 30))
	rec.MarkBreakStart(*at(12, 0))

	// Clock-out force-closes the open break at the clock-out time.
	assert.True(t, rec.MarkClockOut(*at(19, 0), generalWindow))
	require.NotNil(t, rec.Breaks[0].End)
	assert.Equal(t, *at(19, 0), *rec.Breaks[0].End)

	// 510 clocked minus the 420 minute forced break leaves 90 worked.
	assert.Equal(t, StatusHalfDay, rec.Status)

	// The day is terminal: every further action is a no-op.
	assert.False(t, rec.MarkClockOut(*at(20, 0), generalWindow))
	assert.False(t, rec.MarkClockIn(*at(20, 0)))
	assert.False(t, rec.MarkBreakStart(*at(20, 0)))
	assert.False(t, rec.MarkBreakEnd(*at(20, 0)))
}

func TestMarkClockOutFullDay(t *testing.T) {
	rec := NewRecord("a@b.c", "2025-06-02")
	rec.MarkClockIn(*at(10, 30))
	rec.MarkBreakStart(*at(13, 0))
	rec.MarkBreakEnd(*at(13, 45))

	assert.True(t, rec.MarkClockOut(*at(19, 0), generalWindow))
	assert.Equal(t, StatusFullDay, rec.Status)
}
