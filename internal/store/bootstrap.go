package store

import (
	"context"
	"fmt"

	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/domain/schedule"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin makes sure the bootstrap admin account exists, creating it
// on first startup or after the store was wiped.
func EnsureAdmin(ctx context.Context, s Store, email, name, password string) error {
	recs, err := s.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	if recs.EmployeeByEmail(email) != nil {
		return nil
	}

	var hash *string
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		s := string(hashed)
		hash = &s
	}

	recs.Employees = append(recs.Employees, employee.Employee{
		Email:        email,
		Name:         name,
		Role:         employee.RoleAdmin,
		Schedule:     schedule.DefaultName,
		PasswordHash: hash,
	})

	if err := s.SaveAll(ctx, recs); err != nil {
		return fmt.Errorf("failed to save bootstrap admin: %w", err)
	}
	return nil
}
