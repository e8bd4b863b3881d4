package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workholic/attendance-backend-go/internal/domain/auth"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
	"github.com/workholic/attendance-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return requireRole(employee.RoleAdmin, "Admin access required", next)
}

func EmployeeOnly(next http.Handler) http.Handler {
	return requireRole(employee.RoleEmployee, "Employee access required", next)
}

func requireRole(role employee.Role, message string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		got, ok := claims["role"].(string)
		if !ok || got != string(role) {
			response.Forbidden(w, message)
			return
		}

		next.ServeHTTP(w, r)
	})
}
