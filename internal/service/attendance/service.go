package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
	"github.com/workholic/attendance-backend-go/internal/domain/schedule"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
	"github.com/workholic/attendance-backend-go/internal/store"
)

// historyLimit caps the history view at the last 30 recorded days.
const historyLimit = 30

type AttendanceService interface {
	// ClockAction applies one clock-in/out or break action to today's
	// record, creating it on the first action of the day. Clock-out is
	// the sole scoring trigger.
	ClockAction(ctx context.Context, req attendance.ClockActionRequest) (attendance.RecordResponse, error)

	// Today returns today's record for the caller, nil when the day has
	// not started.
	Today(ctx context.Context) (*attendance.RecordResponse, error)

	// History returns the caller's most recent records, date-descending.
	History(ctx context.Context) ([]attendance.RecordResponse, error)

	// TodaySchedule resolves the caller's schedule config.
	TodaySchedule(ctx context.Context) (schedule.Config, error)

	// ListAll returns every attendance record with display names
	// resolved (admin view).
	ListAll(ctx context.Context) ([]attendance.RecordResponse, error)
}

type AttendanceServiceImpl struct {
	store     store.Store
	schedules *schedule.Registry
	now       func() time.Time
}

func NewAttendanceService(st store.Store, schedules *schedule.Registry) AttendanceService {
	return &AttendanceServiceImpl{
		store:     st,
		schedules: schedules,
		now:       time.Now,
	}
}

// ClockAction implements AttendanceService.
func (a *AttendanceServiceImpl) ClockAction(ctx context.Context, req attendance.ClockActionRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if identity.Role != string(employee.RoleEmployee) {
		return attendance.RecordResponse{}, attendance.ErrEmployeeOnlyAction
	}

	now := a.now()
	today := now.Format(attendance.DateLayout)

	recs, err := a.store.LoadAll(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load records: %w", err)
	}

	record := recs.AttendanceFor(identity.Email, today)
	if record == nil {
		recs.Attendance = append(recs.Attendance, attendance.NewRecord(identity.Email, today))
		record = &recs.Attendance[len(recs.Attendance)-1]
	}

	switch req.Action {
	case attendance.ActionClockIn:
		record.MarkClockIn(now)
	case attendance.ActionBreakStart:
		record.MarkBreakStart(now)
	case attendance.ActionBreakEnd:
		record.MarkBreakEnd(now)
	case attendance.ActionClockOut:
		// Evaluation always runs against the weekday window.
		win := a.schedules.Resolve(identity.Schedule).Weekdays
		if record.MarkClockOut(now, win) {
			recs.Leaderboard = leaderboard.ApplyAttendance(
				recs.Leaderboard,
				identity.Email,
				recs.DisplayName(identity.Email),
				record.Status,
			)
		}
	default:
		return attendance.RecordResponse{}, attendance.ErrInvalidAction
	}

	if err := a.store.SaveAll(ctx, recs); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save clock action: %w", err)
	}

	return record.ToResponse(), nil
}

// Today implements AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.RecordResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := a.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	record := recs.AttendanceFor(identity.Email, a.now().Format(attendance.DateLayout))
	if record == nil {
		return nil, nil
	}
	resp := record.ToResponse()
	return &resp, nil
}

// History implements AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.RecordResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := a.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	var mine []attendance.Record
	for _, rec := range recs.Attendance {
		if rec.Email == identity.Email {
			mine = append(mine, rec)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date > mine[j].Date
	})
	if len(mine) > historyLimit {
		mine = mine[:historyLimit]
	}

	responses := make([]attendance.RecordResponse, 0, len(mine))
	for i := range mine {
		responses = append(responses, mine[i].ToResponse())
	}
	return responses, nil
}

// TodaySchedule implements AttendanceService.
func (a *AttendanceServiceImpl) TodaySchedule(ctx context.Context) (schedule.Config, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return schedule.Config{}, err
	}
	return a.schedules.Resolve(identity.Schedule), nil
}

// ListAll implements AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context) ([]attendance.RecordResponse, error) {
	recs, err := a.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(recs.Attendance))
	for i := range recs.Attendance {
		name := recs.DisplayName(recs.Attendance[i].Email)
		recs.Attendance[i].EmployeeName = &name
		responses = append(responses, recs.Attendance[i].ToResponse())
	}
	return responses, nil
}
