package attendance

import (
	"time"
)

type Status string

const (
	StatusFullDay Status = "FD"
	StatusHalfDay Status = "HD"
	StatusAbsent  Status = "A"
)

// DateLayout is the calendar-day key format for attendance records.
const DateLayout = "2006-01-02"

// Break is one rest interval within a day. End stays nil while the break
// is still open; at most one break per record may be open at a time.
type Break struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// Closed reports whether the break has ended.
func (b Break) Closed() bool {
	return b.End != nil
}

// Minutes is the closed break's length; an open break contributes zero.
func (b Break) Minutes() float64 {
	if b.End == nil {
		return 0
	}
	return b.End.Sub(b.Start).Minutes()
}

// Record is one employee-day of attendance. It is created on the first
// clock action of the day and mutated in place by later actions.
type Record struct {
	Email    string
	Date     string // DateLayout
	ClockIn  *time.Time
	ClockOut *time.Time
	Breaks   []Break
	Status   Status

	// DTO
	EmployeeName *string
}

// NewRecord returns the empty record a first clock action starts from.
func NewRecord(email, date string) Record {
	return Record{
		Email:  email,
		Date:   date,
		Breaks: []Break{},
		Status: StatusAbsent,
	}
}

// OpenBreak returns the currently open break, if any. Only the most
// recent break can be open.
func (r *Record) OpenBreak() *Break {
	if len(r.Breaks) == 0 {
		return nil
	}
	last := &r.Breaks[len(r.Breaks)-1]
	if last.Closed() {
		return nil
	}
	return last
}

// BreakMinutes sums the closed breaks of the day.
func (r *Record) BreakMinutes() float64 {
	var total float64
	for _, b := range r.Breaks {
		total += b.Minutes()
	}
	return total
}
