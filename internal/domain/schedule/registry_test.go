package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolveFallback(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)

	general := reg.Resolve("general")
	unknown := reg.Resolve("no-such-schedule")
	empty := reg.Resolve("")

	assert.Equal(t, general, unknown)
	assert.Equal(t, general, empty)
	assert.Equal(t, "10:30", general.Weekdays.Start)
	assert.Equal(t, "19:00", general.Weekdays.End)
	assert.Equal(t, 60, general.Weekdays.BreakMinutes)
}

func TestRegistryResolveNamed(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)

	cfg := reg.Resolve("shreyas")
	assert.Equal(t, "16:30", cfg.Weekdays.Start)
	require.NotNil(t, cfg.Friday)
	assert.Equal(t, "12:00", cfg.Friday.Start)
	assert.True(t, cfg.WeekendOff)
}

func TestNewRegistryRequiresDefault(t *testing.T) {
	_, err := NewRegistry(map[string]Config{
		"only": {Weekdays: Window{Start: "09:00", End: "17:00"}},
	})
	assert.Error(t, err)
}

func TestNewRegistryRejectsMalformedWindow(t *testing.T) {
	_, err := NewRegistry(map[string]Config{
		"general": {Weekdays: Window{Start: "25:00", End: "17:00"}},
	})
	assert.Error(t, err)
}

func TestWindowExpectedWorkMinutes(t *testing.T) {
	w := Window{Start: "10:30", End: "19:00", BreakMinutes: 60}
	assert.InDelta(t, 450, w.ExpectedWorkMinutes(), 0.001)
}

func TestWindowStartOnKeepsDayAndLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	day := time.Date(2025, 6, 2, 8, 45, 12, 0, loc)

	w := Window{Start: "10:30", End: "19:00"}
	start := w.StartOn(day)

	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestConfigWindowFor(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)

	general := reg.Resolve("general")

	// 2025-06-07 is the first Saturday of June.
	firstSaturday := time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)
	win, working := general.WindowFor(firstSaturday)
	assert.True(t, working)
	assert.Equal(t, "10:00", win.Start)

	// The second Saturday is not in the working list.
	secondSaturday := firstSaturday.AddDate(0, 0, 7)
	_, working = general.WindowFor(secondSaturday)
	assert.False(t, working)

	sunday := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)
	_, working = general.WindowFor(sunday)
	assert.False(t, working)

	monday := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	win, working = general.WindowFor(monday)
	assert.True(t, working)
	assert.Equal(t, general.Weekdays, win)

	shreyas := reg.Resolve("shreyas")
	friday := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)
	win, working = shreyas.WindowFor(friday)
	assert.True(t, working)
	assert.Equal(t, *shreyas.Friday, win)

	saturday := time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)
	_, working = shreyas.WindowFor(saturday)
	assert.False(t, working)
}
