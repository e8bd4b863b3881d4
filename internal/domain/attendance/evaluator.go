package attendance

import (
	"time"

	"github.com/workholic/attendance-backend-go/internal/domain/schedule"
)

// Lateness tolerance and minimum worked share before a completed day
// degrades to a half day.
const (
	lateToleranceMinutes = 15.0
	fullDayWorkedShare   = 0.8
)

// Evaluate classifies one day of attendance against a schedule window.
//
//   - no clock-in: absent;
//   - no clock-out: half day, an in-progress or abandoned day is always
//     incomplete regardless of lateness;
//   - clock-in more than 15 minutes past the expected start: half day;
//   - worked minutes (clocked span minus breaks) under 80% of the
//     expected work minutes: half day;
//   - otherwise: full day.
//
// The expected start is anchored to the clock-in's own calendar day, so
// lateness can go negative for early arrivals.
func Evaluate(clockIn, clockOut *time.Time, win schedule.Window, breakMinutes float64) Status {
	if clockIn == nil {
		return StatusAbsent
	}

	expectedStart := win.StartOn(*clockIn)
	lateBy := clockIn.Sub(expectedStart).Minutes()

	if clockOut == nil {
		return StatusHalfDay
	}

	workedMinutes := clockOut.Sub(*clockIn).Minutes() - breakMinutes
	expectedWorkMinutes := win.ExpectedWorkMinutes()

	if lateBy > lateToleranceMinutes {
		return StatusHalfDay
	}
	if workedMinutes < fullDayWorkedShare*expectedWorkMinutes {
		return StatusHalfDay
	}
	return StatusFullDay
}
