package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is a single working window: clock times in "HH:MM" form plus the
// break allowance in minutes.
type Window struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	BreakMinutes int    `json:"breakDuration"`
}

// StartOn anchors the window's start time to the calendar day of t,
// in t's location.
func (w Window) StartOn(t time.Time) time.Time {
	h, m := mustParseClock(w.Start)
	return time.Date(t.Year(), t.Month(), t.Day(), h, m, 0, 0, t.Location())
}

// EndOn anchors the window's end time to the calendar day of t.
func (w Window) EndOn(t time.Time) time.Time {
	h, m := mustParseClock(w.End)
	return time.Date(t.Year(), t.Month(), t.Day(), h, m, 0, 0, t.Location())
}

// ExpectedWorkMinutes is the window length minus the break allowance.
func (w Window) ExpectedWorkMinutes() float64 {
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return w.EndOn(ref).Sub(w.StartOn(ref)).Minutes() - float64(w.BreakMinutes)
}

func (w Window) validate() error {
	for _, s := range []string{w.Start, w.End} {
		if _, _, err := parseClock(s); err != nil {
			return err
		}
	}
	if w.BreakMinutes < 0 {
		return fmt.Errorf("negative break allowance: %d", w.BreakMinutes)
	}
	return nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour, minute, nil
}

// mustParseClock is only reachable through windows already validated by
// NewRegistry; malformed input falls back to midnight.
func mustParseClock(s string) (hour, minute int) {
	hour, minute, err := parseClock(s)
	if err != nil {
		return 0, 0
	}
	return hour, minute
}

// Config is a named weekly timetable. Weekdays always carries the base
// window; Friday and Saturday override it when set. WorkingSaturdays
// lists the week-of-month indexes (1-based) on which the Saturday window
// applies at all.
type Config struct {
	Weekdays         Window  `json:"weekdays"`
	Friday           *Window `json:"friday,omitempty"`
	Saturday         *Window `json:"saturday,omitempty"`
	WeekendOff       bool    `json:"weekendOff,omitempty"`
	WorkingSaturdays []int   `json:"workingSaturdays,omitempty"`
}

// WindowFor reports the effective window on the given calendar day and
// whether the day is a working day at all.
func (c Config) WindowFor(day time.Time) (Window, bool) {
	switch day.Weekday() {
	case time.Sunday:
		return Window{}, false
	case time.Saturday:
		if c.WeekendOff || c.Saturday == nil {
			return Window{}, false
		}
		if !c.isWorkingSaturday(day) {
			return Window{}, false
		}
		return *c.Saturday, true
	case time.Friday:
		if c.Friday != nil {
			return *c.Friday, true
		}
		return c.Weekdays, true
	default:
		return c.Weekdays, true
	}
}

func (c Config) isWorkingSaturday(day time.Time) bool {
	weekOfMonth := (day.Day()-1)/7 + 1
	for _, w := range c.WorkingSaturdays {
		if w == weekOfMonth {
			return true
		}
	}
	return false
}

func (c Config) validate() error {
	if err := c.Weekdays.validate(); err != nil {
		return fmt.Errorf("weekdays: %w", err)
	}
	for name, w := range map[string]*Window{"friday": c.Friday, "saturday": c.Saturday} {
		if w == nil {
			continue
		}
		if err := w.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
