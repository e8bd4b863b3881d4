package employee

import (
	"github.com/workholic/attendance-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Schedule string `json:"schedule"`
	Password string `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if !ValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Schedule string `json:"schedule"`
	Password string `json:"password"` // replaced only when non-empty
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if !ValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse is the admin-facing view of an account, password excluded.
type UserResponse struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Schedule string `json:"schedule"`
}

// EmployeeSummary is the short listing used by the task-assignment view.
type EmployeeSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
