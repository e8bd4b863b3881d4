package employee

import (
	"context"
	"fmt"

	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeService interface {
	// ListUsers returns every account, admins included.
	ListUsers(ctx context.Context) ([]employee.UserResponse, error)

	// ListEmployees returns the employee-role accounts in short form.
	ListEmployees(ctx context.Context) ([]employee.EmployeeSummary, error)

	// GetUser returns one account by email.
	GetUser(ctx context.Context, email string) (employee.UserResponse, error)

	// CreateUser adds an account; a duplicate email is rejected. An
	// empty password leaves the account claimable on first login.
	CreateUser(ctx context.Context, req employee.CreateUserRequest) error

	// UpdateUser rewrites name, role and schedule; the password is
	// replaced only when one is supplied.
	UpdateUser(ctx context.Context, req employee.UpdateUserRequest) error

	// DeleteUser removes the account.
	DeleteUser(ctx context.Context, email string) error
}

type EmployeeServiceImpl struct {
	store store.Store
}

func NewEmployeeService(st store.Store) EmployeeService {
	return &EmployeeServiceImpl{store: st}
}

// ListUsers implements EmployeeService.
func (e *EmployeeServiceImpl) ListUsers(ctx context.Context) ([]employee.UserResponse, error) {
	recs, err := e.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	users := make([]employee.UserResponse, 0, len(recs.Employees))
	for _, emp := range recs.Employees {
		users = append(users, toUserResponse(emp))
	}
	return users, nil
}

// ListEmployees implements EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeSummary, error) {
	recs, err := e.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	summaries := []employee.EmployeeSummary{}
	for _, emp := range recs.Employees {
		if emp.Role != employee.RoleEmployee {
			continue
		}
		summaries = append(summaries, employee.EmployeeSummary{Email: emp.Email, Name: emp.Name})
	}
	return summaries, nil
}

// GetUser implements EmployeeService.
func (e *EmployeeServiceImpl) GetUser(ctx context.Context, email string) (employee.UserResponse, error) {
	recs, err := e.store.LoadAll(ctx)
	if err != nil {
		return employee.UserResponse{}, fmt.Errorf("failed to load records: %w", err)
	}

	emp := recs.EmployeeByEmail(email)
	if emp == nil {
		return employee.UserResponse{}, employee.ErrEmployeeNotFound
	}
	return toUserResponse(*emp), nil
}

// CreateUser implements EmployeeService.
func (e *EmployeeServiceImpl) CreateUser(ctx context.Context, req employee.CreateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	recs, err := e.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	if recs.EmployeeByEmail(req.Email) != nil {
		return employee.ErrEmailExists
	}

	hash, err := hashIfSet(req.Password)
	if err != nil {
		return err
	}

	recs.Employees = append(recs.Employees, employee.Employee{
		Email:        req.Email,
		Name:         req.Name,
		Role:         employee.Role(req.Role),
		Schedule:     req.Schedule,
		PasswordHash: hash,
	})

	if err := e.store.SaveAll(ctx, recs); err != nil {
		return fmt.Errorf("failed to save new user: %w", err)
	}
	return nil
}

// UpdateUser implements EmployeeService.
func (e *EmployeeServiceImpl) UpdateUser(ctx context.Context, req employee.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	recs, err := e.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	emp := recs.EmployeeByEmail(req.Email)
	if emp == nil {
		return employee.ErrEmployeeNotFound
	}

	emp.Name = req.Name
	emp.Role = employee.Role(req.Role)
	emp.Schedule = req.Schedule
	if req.Password != "" {
		hash, err := hashIfSet(req.Password)
		if err != nil {
			return err
		}
		emp.PasswordHash = hash
	}

	if err := e.store.SaveAll(ctx, recs); err != nil {
		return fmt.Errorf("failed to save user update: %w", err)
	}
	return nil
}

// DeleteUser implements EmployeeService.
func (e *EmployeeServiceImpl) DeleteUser(ctx context.Context, email string) error {
	recs, err := e.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	kept := recs.Employees[:0]
	for _, emp := range recs.Employees {
		if emp.Email != email {
			kept = append(kept, emp)
		}
	}
	if len(kept) == len(recs.Employees) {
		return employee.ErrEmployeeNotFound
	}
	recs.Employees = kept

	if err := e.store.SaveAll(ctx, recs); err != nil {
		return fmt.Errorf("failed to save user deletion: %w", err)
	}
	return nil
}

func toUserResponse(emp employee.Employee) employee.UserResponse {
	return employee.UserResponse{
		Email:    emp.Email,
		Name:     emp.Name,
		Role:     string(emp.Role),
		Schedule: emp.Schedule,
	}
}

func hashIfSet(password string) (*string, error) {
	if password == "" {
		return nil, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	s := string(hashed)
	return &s, nil
}
