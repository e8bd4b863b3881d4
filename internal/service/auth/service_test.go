package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authdomain "github.com/workholic/attendance-backend-go/internal/domain/auth"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
	"github.com/workholic/attendance-backend-go/internal/store"
	"github.com/workholic/attendance-backend-go/internal/store/excel"
)

func newTestService(t *testing.T, employees []employee.Employee) (AuthService, store.Store) {
	t.Helper()
	st := excel.NewStore(filepath.Join(t.TempDir(), "attendance-data.xlsx"))
	require.NoError(t, st.SaveAll(context.Background(), &store.Records{Employees: employees}))
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(st, jwtService), st
}

func TestLoginFirstLoginSetsPassword(t *testing.T) {
	svc, st := newTestService(t, []employee.Employee{
		{Email: "alice@workholic.in", Name: "Alice", Role: employee.RoleEmployee, Schedule: "general"},
	})
	ctx := context.Background()

	result, err := svc.Login(ctx, authdomain.LoginRequest{Email: "alice@workholic.in", Password: "s3cret"})
	require.NoError(t, err)
	assert.True(t, result.FirstLogin)
	assert.Equal(t, "employee", result.Role)
	assert.Equal(t, "Alice", result.Name)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	recs, err := st.LoadAll(ctx)
	require.NoError(t, err)
	emp := recs.EmployeeByEmail("alice@workholic.in")
	require.NotNil(t, emp)
	assert.True(t, emp.HasPassword())
	assert.NotEqual(t, "s3cret", *emp.PasswordHash)
}

func TestLoginAfterFirstLogin(t *testing.T) {
	svc, _ := newTestService(t, []employee.Employee{
		{Email: "alice@workholic.in", Name: "Alice", Role: employee.RoleEmployee, Schedule: "general"},
	})
	ctx := context.Background()

	_, err := svc.Login(ctx, authdomain.LoginRequest{Email: "alice@workholic.in", Password: "s3cret"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, authdomain.LoginRequest{Email: "alice@workholic.in", Password: "s3cret"})
	require.NoError(t, err)
	assert.False(t, result.FirstLogin)

	_, err = svc.Login(ctx, authdomain.LoginRequest{Email: "alice@workholic.in", Password: "wrong"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{Email: "nobody@workholic.in", Password: "x"})
	assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Login(context.Background(), authdomain.LoginRequest{Email: "not-an-email", Password: ""})
	require.Error(t, err)
	assert.NotErrorIs(t, err, authdomain.ErrInvalidCredentials)
}

func TestRefreshAndLogout(t *testing.T) {
	svc, _ := newTestService(t, []employee.Employee{
		{Email: "alice@workholic.in", Name: "Alice", Role: employee.RoleEmployee, Schedule: "general"},
	})
	ctx := context.Background()

	result, err := svc.Login(ctx, authdomain.LoginRequest{Email: "alice@workholic.in", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, result.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "Alice", refreshed.Name)

	require.NoError(t, svc.Logout(ctx, result.RefreshToken))

	_, err = svc.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, authdomain.ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t, []employee.Employee{
		{Email: "alice@workholic.in", Name: "Alice", Role: employee.RoleEmployee, Schedule: "general"},
	})
	ctx := context.Background()

	result, err := svc.Login(ctx, authdomain.LoginRequest{Email: "alice@workholic.in", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, result.AccessToken)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)

	_, err = svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}
