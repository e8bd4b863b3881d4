package response

import (
	"errors"
	"net/http"

	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/domain/auth"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/pkg/validator"
	"github.com/workholic/attendance-backend-go/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "User already exists")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Role must be admin or employee", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Unknown clock action", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeOnlyAction):
		Forbidden(w, "Clock actions are limited to employees")

	// Store errors
	case errors.Is(err, store.ErrSaveFailed):
		InternalServerError(w, "Failed to persist changes")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
