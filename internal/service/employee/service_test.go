package employee

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	empdomain "github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/store"
	"github.com/workholic/attendance-backend-go/internal/store/excel"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (EmployeeService, store.Store) {
	t.Helper()
	st := excel.NewStore(filepath.Join(t.TempDir(), "attendance-data.xlsx"))
	require.NoError(t, st.SaveAll(context.Background(), &store.Records{
		Employees: []empdomain.Employee{
			{Email: "admin@workholic.in", Name: "Admin", Role: empdomain.RoleAdmin, Schedule: "general"},
		},
	}))
	return NewEmployeeService(st), st
}

func TestCreateUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, empdomain.CreateUserRequest{
		Email:    "alice@workholic.in",
		Name:     "Alice",
		Role:     "employee",
		Schedule: "shreyas",
	}))

	recs, err := st.LoadAll(ctx)
	require.NoError(t, err)
	emp := recs.EmployeeByEmail("alice@workholic.in")
	require.NotNil(t, emp)
	assert.Equal(t, "shreyas", emp.Schedule)
	assert.False(t, emp.HasPassword()) // claimable on first login

	err = svc.CreateUser(ctx, empdomain.CreateUserRequest{
		Email:    "alice@workholic.in",
		Name:     "Other Alice",
		Role:     "employee",
		Schedule: "general",
	})
	assert.ErrorIs(t, err, empdomain.ErrEmailExists)
}

func TestCreateUserWithPassword(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, empdomain.CreateUserRequest{
		Email:    "bob@workholic.in",
		Name:     "Bob",
		Role:     "employee",
		Schedule: "general",
		Password: "hunter2",
	}))

	recs, err := st.LoadAll(ctx)
	require.NoError(t, err)
	emp := recs.EmployeeByEmail("bob@workholic.in")
	require.NotNil(t, emp)
	require.True(t, emp.HasPassword())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte("hunter2")))
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.CreateUser(context.Background(), empdomain.CreateUserRequest{
		Email:    "not-an-email",
		Name:     "",
		Role:     "overlord",
		Schedule: "general",
	})
	require.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, empdomain.CreateUserRequest{
		Email:    "alice@workholic.in",
		Name:     "Alice",
		Role:     "employee",
		Schedule: "general",
		Password: "hunter2",
	}))

	require.NoError(t, svc.UpdateUser(ctx, empdomain.UpdateUserRequest{
		Email:    "alice@workholic.in",
		Name:     "Alice Renamed",
		Role:     "employee",
		Schedule: "vinay",
	}))

	recs, err := st.LoadAll(ctx)
	require.NoError(t, err)
	emp := recs.EmployeeByEmail("alice@workholic.in")
	require.NotNil(t, emp)
	assert.Equal(t, "Alice Renamed", emp.Name)
	assert.Equal(t, "vinay", emp.Schedule)
	// Empty password in the request keeps the old hash.
	require.True(t, emp.HasPassword())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte("hunter2")))

	err = svc.UpdateUser(ctx, empdomain.UpdateUserRequest{
		Email:    "missing@workholic.in",
		Name:     "Missing",
		Role:     "employee",
		Schedule: "general",
	})
	assert.ErrorIs(t, err, empdomain.ErrEmployeeNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, empdomain.CreateUserRequest{
		Email:    "alice@workholic.in",
		Name:     "Alice",
		Role:     "employee",
		Schedule: "general",
	}))

	require.NoError(t, svc.DeleteUser(ctx, "alice@workholic.in"))

	recs, err := st.LoadAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, recs.EmployeeByEmail("alice@workholic.in"))

	assert.ErrorIs(t, svc.DeleteUser(ctx, "alice@workholic.in"), empdomain.ErrEmployeeNotFound)
}

func TestListUsersAndEmployees(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, empdomain.CreateUserRequest{
		Email:    "alice@workholic.in",
		Name:     "Alice",
		Role:     "employee",
		Schedule: "general",
	}))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "alice@workholic.in", employees[0].Email)

	user, err := svc.GetUser(ctx, "alice@workholic.in")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = svc.GetUser(ctx, "missing@workholic.in")
	assert.ErrorIs(t, err, empdomain.ErrEmployeeNotFound)
}
