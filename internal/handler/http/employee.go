package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/handler/http/response"
	employeeService "github.com/workholic/attendance-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeService.EmployeeService
}

func NewEmployeeHandler(svc employeeService.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: svc}
}

// ListUsers implements EmployeeHandler.
func (h *employeeHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.employeeService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"users": users})
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"employees": employees})
}

// GetUser implements EmployeeHandler.
func (h *employeeHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.employeeService.GetUser(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"user": user})
}

// CreateUser implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.CreateUser(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", nil)
}

// UpdateUser implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Email = chi.URLParam(r, "email")

	if err := h.employeeService.UpdateUser(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated", nil)
}

// DeleteUser implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.employeeService.DeleteUser(r.Context(), email); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
