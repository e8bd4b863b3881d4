package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workholic/attendance-backend-go/internal/domain/auth"
	"github.com/workholic/attendance-backend-go/internal/pkg/jwt"
	"github.com/workholic/attendance-backend-go/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is a login response plus the refresh token the handler
// turns into a cookie.
type LoginResult struct {
	auth.LoginResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

type AuthService interface {
	// Login verifies credentials; an account with no password yet has it
	// set, once, from this first successful attempt.
	Login(ctx context.Context, req auth.LoginRequest) (LoginResult, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}

type AuthServiceImpl struct {
	store      store.Store
	jwtService jwt.Service
}

func NewAuthService(st store.Store, jwtService jwt.Service) AuthService {
	return &AuthServiceImpl{store: st, jwtService: jwtService}
}

// Login implements AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (LoginResult, error) {
	if err := req.Validate(); err != nil {
		return LoginResult{}, err
	}

	recs, err := a.store.LoadAll(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to load records: %w", err)
	}

	emp := recs.EmployeeByEmail(req.Email)
	if emp == nil {
		return LoginResult{}, auth.ErrInvalidCredentials
	}

	firstLogin := false
	if !emp.HasPassword() {
		// First successful login claims the account.
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return LoginResult{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hash := string(hashed)
		emp.PasswordHash = &hash
		firstLogin = true

		if err := a.store.SaveAll(ctx, recs); err != nil {
			return LoginResult{}, fmt.Errorf("failed to persist first-login password: %w", err)
		}
	} else if bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)) != nil {
		return LoginResult{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(emp.Email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return LoginResult{
		LoginResponse: auth.LoginResponse{
			AccessToken: accessToken,
			ExpiresAt:   expiresAt,
			FirstLogin:  firstLogin,
			Role:        string(emp.Role),
			Name:        emp.Name,
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Refresh implements AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	email, err := a.verifyRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	recs, err := a.store.LoadAll(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load records: %w", err)
	}
	emp := recs.EmployeeByEmail(email)
	if emp == nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Role:        string(emp.Role),
		Name:        emp.Name,
	}, nil
}

// Logout implements AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}
	if jti, ok := token.Get("jti"); ok {
		if s, ok := jti.(string); ok {
			a.jwtService.RevokeToken(s)
		}
	}
	return nil
}

func (a *AuthServiceImpl) verifyRefreshToken(refreshToken string) (email string, err error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	if jti, ok := token.Get("jti"); ok {
		if s, ok := jti.(string); ok && a.jwtService.IsTokenRevoked(s) {
			return "", auth.ErrTokenRevoked
		}
	}

	emailClaim, ok := token.Get("email")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	email, ok = emailClaim.(string)
	if !ok || email == "" {
		return "", auth.ErrInvalidToken
	}
	return email, nil
}
