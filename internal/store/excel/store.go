// Package excel persists the record set as a single workbook, one sheet
// per record type, matching the layout the data has always lived in.
package excel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
	"github.com/workholic/attendance-backend-go/internal/store"
	"github.com/xuri/excelize/v2"
)

const (
	sheetEmployees   = "Employees"
	sheetAttendance  = "Attendance"
	sheetLeaderboard = "Leaderboard"
)

var (
	employeeHeaders    = []interface{}{"Email", "Name", "Role", "Schedule", "Password"}
	attendanceHeaders  = []interface{}{"Email", "Date", "Clock In", "Clock Out", "Breaks", "Status"}
	leaderboardHeaders = []interface{}{"Email", "Name", "Total Points", "Attendance Points", "Small Tasks", "Regular Tasks", "Big Tasks"}
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ store.Store = (*Store)(nil)

// LoadAll reads the workbook. A missing file is an empty record set, not
// an error, so a fresh deployment starts clean.
func (s *Store) LoadAll(ctx context.Context) (*store.Records, error) {
	recs := &store.Records{
		Employees:   []employee.Employee{},
		Attendance:  []attendance.Record{},
		Leaderboard: []leaderboard.Entry{},
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return recs, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	empRows, err := sheetRows(f, sheetEmployees)
	if err != nil {
		return nil, err
	}
	for _, row := range empRows {
		if cell(row, 0) == "" {
			continue
		}
		emp := employee.Employee{
			Email:    cell(row, 0),
			Name:     cell(row, 1),
			Role:     employee.Role(cell(row, 2)),
			Schedule: cell(row, 3),
		}
		if pw := cell(row, 4); pw != "" {
			emp.PasswordHash = &pw
		}
		recs.Employees = append(recs.Employees, emp)
	}

	attRows, err := sheetRows(f, sheetAttendance)
	if err != nil {
		return nil, err
	}
	for _, row := range attRows {
		if cell(row, 0) == "" {
			continue
		}
		rec := attendance.Record{
			Email:    cell(row, 0),
			Date:     cell(row, 1),
			ClockIn:  parseTime(cell(row, 2)),
			ClockOut: parseTime(cell(row, 3)),
			Breaks:   parseBreaks(cell(row, 4)),
			Status:   attendance.Status(cell(row, 5)),
		}
		if rec.Status == "" {
			rec.Status = attendance.StatusAbsent
		}
		recs.Attendance = append(recs.Attendance, rec)
	}

	boardRows, err := sheetRows(f, sheetLeaderboard)
	if err != nil {
		return nil, err
	}
	for _, row := range boardRows {
		if cell(row, 0) == "" {
			continue
		}
		recs.Leaderboard = append(recs.Leaderboard, leaderboard.Entry{
			Email:            cell(row, 0),
			Name:             cell(row, 1),
			TotalPoints:      parseInt(cell(row, 2)),
			AttendancePoints: parseInt(cell(row, 3)),
			SmallTasks:       parseInt(cell(row, 4)),
			RegularTasks:     parseInt(cell(row, 5)),
			BigTasks:         parseInt(cell(row, 6)),
		})
	}

	return recs, nil
}

// SaveAll rebuilds the whole workbook and swaps it into place with a
// rename, so readers never observe a half-written file.
func (s *Store) SaveAll(ctx context.Context, recs *store.Records) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := s.writeEmployees(f, recs.Employees); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	if err := s.writeAttendance(f, recs.Attendance); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	if err := s.writeLeaderboard(f, recs.Leaderboard); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	tmp := s.path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSaveFailed, err)
	}
	return nil
}

func (s *Store) writeEmployees(f *excelize.File, employees []employee.Employee) error {
	if err := newSheet(f, sheetEmployees, employeeHeaders); err != nil {
		return err
	}
	for i, emp := range employees {
		password := ""
		if emp.PasswordHash != nil {
			password = *emp.PasswordHash
		}
		if err := setRow(f, sheetEmployees, i+2, []interface{}{
			emp.Email, emp.Name, string(emp.Role), emp.Schedule, password,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeAttendance(f *excelize.File, records []attendance.Record) error {
	if err := newSheet(f, sheetAttendance, attendanceHeaders); err != nil {
		return err
	}
	for i, rec := range records {
		breaks, err := json.Marshal(rec.Breaks)
		if err != nil {
			return err
		}
		if err := setRow(f, sheetAttendance, i+2, []interface{}{
			rec.Email, rec.Date, formatTime(rec.ClockIn), formatTime(rec.ClockOut),
			string(breaks), string(rec.Status),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeLeaderboard(f *excelize.File, entries []leaderboard.Entry) error {
	if err := newSheet(f, sheetLeaderboard, leaderboardHeaders); err != nil {
		return err
	}
	for i, entry := range entries {
		if err := setRow(f, sheetLeaderboard, i+2, []interface{}{
			entry.Email, entry.Name, entry.TotalPoints, entry.AttendancePoints,
			entry.SmallTasks, entry.RegularTasks, entry.BigTasks,
		}); err != nil {
			return err
		}
	}
	return nil
}

func newSheet(f *excelize.File, name string, headers []interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := setRow(f, name, 1, headers); err != nil {
		return err
	}
	return styleHeader(f, name, len(headers))
}

func styleHeader(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, style)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// sheetRows returns a sheet's data rows, tolerating a missing sheet.
func sheetRows(f *excelize.File, name string) ([][]string, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseBreaks(s string) []attendance.Break {
	if s == "" {
		return []attendance.Break{}
	}
	var breaks []attendance.Break
	if err := json.Unmarshal([]byte(s), &breaks); err != nil {
		return []attendance.Break{}
	}
	return breaks
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
