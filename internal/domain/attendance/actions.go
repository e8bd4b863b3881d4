package attendance

import (
	"time"

	"github.com/workholic/attendance-backend-go/internal/domain/schedule"
)

// Clock actions accepted by MarkAction.
const (
	ActionClockIn    = "clock-in"
	ActionBreakStart = "break-start"
	ActionBreakEnd   = "break-end"
	ActionClockOut   = "clock-out"
)

// ValidAction reports whether a is a known clock action.
func ValidAction(a string) bool {
	switch a {
	case ActionClockIn, ActionBreakStart, ActionBreakEnd, ActionClockOut:
		return true
	}
	return false
}

// MarkClockIn records the start of the day. A second clock-in (or one
// after clock-out) is a no-op.
func (r *Record) MarkClockIn(now time.Time) bool {
	if r.ClockIn != nil || r.ClockOut != nil {
		return false
	}
	r.ClockIn = &now
	return true
}

// MarkBreakStart opens a new break. It is a no-op unless the employee is
// clocked in with no break currently open.
func (r *Record) MarkBreakStart(now time.Time) bool {
	if r.ClockIn == nil || r.ClockOut != nil {
		return false
	}
	if r.OpenBreak() != nil {
		return false
	}
	r.Breaks = append(r.Breaks, Break{Start: now})
	return true
}

// MarkBreakEnd closes the open break; a no-op when none is open.
func (r *Record) MarkBreakEnd(now time.Time) bool {
	open := r.OpenBreak()
	if open == nil || r.ClockOut != nil {
		return false
	}
	open.End = &now
	return true
}

// MarkClockOut ends the day: it force-closes any open break at the
// clock-out timestamp, evaluates the day against the schedule window and
// stores the resulting status. This is the only transition that scores.
// A clock-out before clock-in, or a repeated clock-out, is a no-op.
func (r *Record) MarkClockOut(now time.Time, win schedule.Window) bool {
	if r.ClockIn == nil || r.ClockOut != nil {
		return false
	}
	r.ClockOut = &now
	if open := r.OpenBreak(); open != nil {
		open.End = &now
	}
	r.Status = Evaluate(r.ClockIn, r.ClockOut, win, r.BreakMinutes())
	return true
}
