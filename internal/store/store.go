// Package store is the record-store collaborator the core logic runs
// over: the full record set is loaded, mutated in memory and replaced as
// a whole. A failed save is surfaced and never retried; the in-memory
// mutation is not rolled back, so callers must treat a failed save as
// changes visible this request only.
package store

import (
	"context"
	"errors"

	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
)

var ErrSaveFailed = errors.New("record store save failed")

// Records is the full persisted record set. Entities relate to each
// other only by matching email keys.
type Records struct {
	Employees   []employee.Employee
	Attendance  []attendance.Record
	Leaderboard []leaderboard.Entry
}

// Store loads and atomically replaces the full record set.
type Store interface {
	LoadAll(ctx context.Context) (*Records, error)
	SaveAll(ctx context.Context, recs *Records) error
}

// EmployeeByEmail returns a pointer into the employee slice, or nil.
func (r *Records) EmployeeByEmail(email string) *employee.Employee {
	for i := range r.Employees {
		if r.Employees[i].Email == email {
			return &r.Employees[i]
		}
	}
	return nil
}

// AttendanceFor returns the record for one employee-day, or nil.
func (r *Records) AttendanceFor(email, date string) *attendance.Record {
	for i := range r.Attendance {
		if r.Attendance[i].Email == email && r.Attendance[i].Date == date {
			return &r.Attendance[i]
		}
	}
	return nil
}

// DisplayName resolves an email to the employee's name, tolerating
// dangling references by falling back to the email itself.
func (r *Records) DisplayName(email string) string {
	if emp := r.EmployeeByEmail(email); emp != nil && emp.Name != "" {
		return emp.Name
	}
	return email
}
