package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/leaderboard"
	"github.com/workholic/attendance-backend-go/internal/pkg/database"
	"github.com/workholic/attendance-backend-go/internal/store"
)

// Runs only against a throwaway database: set TEST_DATABASE_URL to enable.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	s := NewStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.SaveAll(context.Background(), &store.Records{}))
	return s
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hash := "$2a$10$abcdefghijklmnopqrstuv"
	clockIn := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	breakStart := time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC)

	in := &store.Records{
		Employees: []employee.Employee{
			{Email: "alice@workholic.in", Name: "Alice", Role: employee.RoleEmployee, Schedule: "general", PasswordHash: &hash},
		},
		Attendance: []attendance.Record{
			{
				Email:   "alice@workholic.in",
				Date:    "2025-06-02",
				ClockIn: &clockIn,
				Breaks:  []attendance.Break{{Start: breakStart}},
				Status:  attendance.StatusHalfDay,
			},
		},
		Leaderboard: []leaderboard.Entry{
			{Email: "alice@workholic.in", Name: "Alice", TotalPoints: 3, AttendancePoints: 1, SmallTasks: 2},
		},
	}
	require.NoError(t, s.SaveAll(ctx, in))

	out, err := s.LoadAll(ctx)
	require.NoError(t, err)

	require.Len(t, out.Employees, 1)
	assert.Equal(t, in.Employees[0], out.Employees[0])

	require.Len(t, out.Attendance, 1)
	assert.Equal(t, "2025-06-02", out.Attendance[0].Date)
	require.NotNil(t, out.Attendance[0].ClockIn)
	assert.True(t, out.Attendance[0].ClockIn.Equal(clockIn))
	assert.Nil(t, out.Attendance[0].ClockOut)
	require.Len(t, out.Attendance[0].Breaks, 1)
	assert.True(t, out.Attendance[0].Breaks[0].Start.Equal(breakStart))
	assert.Nil(t, out.Attendance[0].Breaks[0].End)

	require.Len(t, out.Leaderboard, 1)
	assert.Equal(t, in.Leaderboard[0], out.Leaderboard[0])
}

func TestSaveAllReplacesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, &store.Records{
		Employees: []employee.Employee{
			{Email: "a@b.c", Name: "A", Role: employee.RoleEmployee, Schedule: "general"},
			{Email: "b@b.c", Name: "B", Role: employee.RoleEmployee, Schedule: "general"},
		},
	}))
	require.NoError(t, s.SaveAll(ctx, &store.Records{
		Employees: []employee.Employee{
			{Email: "a@b.c", Name: "A", Role: employee.RoleEmployee, Schedule: "general"},
		},
	}))

	out, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, out.Employees, 1)
}
