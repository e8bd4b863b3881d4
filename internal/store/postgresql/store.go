// Package postgresql backs the record store with Postgres. SaveAll keeps
// the atomic-replace contract by rewriting all three tables inside one
// transaction.
package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
	"github.com/workholic/attendance-backend-go/internal/pkg/database"
	"github.com/workholic/attendance-backend-go/internal/store"
)

type Store struct {
	db *database.DB
}

func NewStore(db *database.DB) *Store {
	return &Store{db: db}
}

var _ store.Store = (*Store)(nil)

// LoadAll implements store.Store.
func (s *Store) LoadAll(ctx context.Context) (*store.Records, error) {
	recs := &store.Records{
		Employees:   []employee.Employee{},
		Attendance:  []attendance.Record{},
		Leaderboard: []leaderboard.Entry{},
	}

	rows, err := s.db.Query(ctx, `
		SELECT email, name, role, schedule, password_hash
		FROM employees
		ORDER BY email
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.Email, &emp.Name, &emp.Role, &emp.Schedule, &emp.PasswordHash); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		recs.Employees = append(recs.Employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	attRows, err := s.db.Query(ctx, `
		SELECT email, date, clock_in, clock_out, breaks, status
		FROM attendance_records
		ORDER BY date, email
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	defer attRows.Close()
	for attRows.Next() {
		var rec attendance.Record
		var breaks []byte
		if err := attRows.Scan(&rec.Email, &rec.Date, &rec.ClockIn, &rec.ClockOut, &breaks, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.Breaks = []attendance.Break{}
		if len(breaks) > 0 {
			if err := json.Unmarshal(breaks, &rec.Breaks); err != nil {
				return nil, fmt.Errorf("failed to decode breaks for %s/%s: %w", rec.Email, rec.Date, err)
			}
		}
		recs.Attendance = append(recs.Attendance, rec)
	}
	if err := attRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	boardRows, err := s.db.Query(ctx, `
		SELECT email, name, total_points, attendance_points, small_tasks, regular_tasks, big_tasks
		FROM leaderboard_entries
		ORDER BY email
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer boardRows.Close()
	for boardRows.Next() {
		var entry leaderboard.Entry
		if err := boardRows.Scan(&entry.Email, &entry.Name, &entry.TotalPoints,
			&entry.AttendancePoints, &entry.SmallTasks, &entry.RegularTasks, &entry.BigTasks); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		recs.Leaderboard = append(recs.Leaderboard, entry)
	}
	if err := boardRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return recs, nil
}

// SaveAll implements store.Store.
func (s *Store) SaveAll(ctx context.Context, recs *store.Records) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range []string{"employees", "attendance_records", "leaderboard_entries"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
		}
	}

	for _, emp := range recs.Employees {
		_, err := tx.Exec(ctx, `
			INSERT INTO employees (email, name, role, schedule, password_hash)
			VALUES ($1, $2, $3, $4, $5)
		`, emp.Email, emp.Name, string(emp.Role), emp.Schedule, emp.PasswordHash)
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
		}
	}

	for _, rec := range recs.Attendance {
		breaks, err := json.Marshal(rec.Breaks)
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO attendance_records (email, date, clock_in, clock_out, breaks, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, rec.Email, rec.Date, rec.ClockIn, rec.ClockOut, breaks, string(rec.Status))
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
		}
	}

	for _, entry := range recs.Leaderboard {
		_, err := tx.Exec(ctx, `
			INSERT INTO leaderboard_entries (email, name, total_points, attendance_points, small_tasks, regular_tasks, big_tasks)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, entry.Email, entry.Name, entry.TotalPoints, entry.AttendancePoints,
			entry.SmallTasks, entry.RegularTasks, entry.BigTasks)
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	return nil
}
