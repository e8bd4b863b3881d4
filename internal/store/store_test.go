package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
)

func TestEmployeeByEmail(t *testing.T) {
	recs := &Records{
		Employees: []employee.Employee{
			{Email: "a@b.c", Name: "A"},
			{Email: "b@b.c", Name: "B"},
		},
	}

	emp := recs.EmployeeByEmail("b@b.c")
	assert.NotNil(t, emp)
	assert.Equal(t, "B", emp.Name)

	// The pointer aliases the slice so callers can mutate in place.
	emp.Name = "B2"
	assert.Equal(t, "B2", recs.Employees[1].Name)

	assert.Nil(t, recs.EmployeeByEmail("missing@b.c"))
}

func TestAttendanceFor(t *testing.T) {
	recs := &Records{
		Attendance: []attendance.Record{
			{Email: "a@b.c", Date: "2025-06-01"},
			{Email: "a@b.c", Date: "2025-06-02"},
		},
	}

	rec := recs.AttendanceFor("a@b.c", "2025-06-02")
	assert.NotNil(t, rec)
	assert.Equal(t, "2025-06-02", rec.Date)

	assert.Nil(t, recs.AttendanceFor("a@b.c", "2025-06-03"))
	assert.Nil(t, recs.AttendanceFor("b@b.c", "2025-06-01"))
}

func TestDisplayName(t *testing.T) {
	recs := &Records{
		Employees: []employee.Employee{
			{Email: "a@b.c", Name: "A"},
			{Email: "unnamed@b.c"},
		},
	}

	assert.Equal(t, "A", recs.DisplayName("a@b.c"))
	assert.Equal(t, "unnamed@b.c", recs.DisplayName("unnamed@b.c"))
	assert.Equal(t, "ghost@b.c", recs.DisplayName("ghost@b.c"))
}

type memStore struct {
	recs  *Records
	saves int
}

func (m *memStore) LoadAll(ctx context.Context) (*Records, error) { return m.recs, nil }

func (m *memStore) SaveAll(ctx context.Context, recs *Records) error {
	m.recs = recs
	m.saves++
	return nil
}

func TestEnsureAdmin(t *testing.T) {
	st := &memStore{recs: &Records{}}
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, st, "admin@workholic.in", "Admin", "bootpass"))

	emp := st.recs.EmployeeByEmail("admin@workholic.in")
	require.NotNil(t, emp)
	assert.Equal(t, employee.RoleAdmin, emp.Role)
	assert.Equal(t, "general", emp.Schedule)
	assert.True(t, emp.HasPassword())
	assert.Equal(t, 1, st.saves)

	// Idempotent: a second startup does not rewrite the store.
	require.NoError(t, EnsureAdmin(ctx, st, "admin@workholic.in", "Admin", "bootpass"))
	assert.Equal(t, 1, st.saves)
}

func TestEnsureAdminWithoutPassword(t *testing.T) {
	st := &memStore{recs: &Records{}}

	require.NoError(t, EnsureAdmin(context.Background(), st, "admin@workholic.in", "Admin", ""))

	emp := st.recs.EmployeeByEmail("admin@workholic.in")
	require.NotNil(t, emp)
	assert.False(t, emp.HasPassword()) // claimable on first login
}
