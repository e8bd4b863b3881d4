package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workholic/attendance-backend-go/internal/domain/auth"
	"github.com/workholic/attendance-backend-go/internal/handler/http/response"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
	serviceAuth "github.com/workholic/attendance-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService  jwt.Service
	authService serviceAuth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService serviceAuth.AuthService) AuthHandler {
	return &authHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshExpiresAt))
	response.Success(w, result.LoginResponse)
}

// Refresh implements AuthHandler.
func (a *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler.
func (a *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		_ = a.authService.Logout(r.Context(), cookie.Value)
	}

	// Expire the cookie regardless of token state.
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler.
func (a *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	response.Success(w, map[string]string{
		"email":    identity.Email,
		"name":     identity.Name,
		"role":     identity.Role,
		"schedule": identity.Schedule,
	})
}
