package attendance

import (
	"time"

	"github.com/workholic/attendance-backend-go/internal/pkg/validator"
)

type ClockActionRequest struct {
	Action string `json:"action"`
}

func (r *ClockActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	} else if !ValidAction(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: clock-in, break-start, break-end, clock-out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakResponse struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

type RecordResponse struct {
	Email    string          `json:"email"`
	Name     string          `json:"name,omitempty"`
	Date     string          `json:"date"`
	ClockIn  *string         `json:"clockIn"`
	ClockOut *string         `json:"clockOut"`
	Breaks   []BreakResponse `json:"breaks"`
	Status   string          `json:"status"`
}

// ToResponse flattens a record into its wire form, timestamps in RFC 3339.
func (r *Record) ToResponse() RecordResponse {
	resp := RecordResponse{
		Email:    r.Email,
		Date:     r.Date,
		ClockIn:  timePtrToString(r.ClockIn),
		ClockOut: timePtrToString(r.ClockOut),
		Breaks:   make([]BreakResponse, 0, len(r.Breaks)),
		Status:   string(r.Status),
	}
	if r.EmployeeName != nil {
		resp.Name = *r.EmployeeName
	}
	for _, b := range r.Breaks {
		start := b.Start.Format(time.RFC3339)
		resp.Breaks = append(resp.Breaks, BreakResponse{
			Start: start,
			End:   timePtrToString(b.End),
		})
	}
	return resp
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
