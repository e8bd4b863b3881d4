package jwt

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/workholic/attendance-backend-go/internal/domain/auth"
	"github.com/workholic/attendance-backend-go/internal/domain/employee"
)

type Service interface {
	GenerateAccessToken(emp *employee.Employee) (token string, expiresAt int64, err error)
	GenerateRefreshToken(email string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(jti string)
	IsTokenRevoked(jti string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(emp *employee.Employee) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"email":    emp.Email,
		"name":     emp.Name,
		"role":     string(emp.Role),
		"schedule": emp.Schedule,
		"type":     "access",
		"jti":      uuid.NewString(),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(email string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"jti":   uuid.NewString(),
		"exp":   expiresAt,
		"type":  "refresh",
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(jti string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[jti] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}

// IdentityFromContext pulls the authenticated caller out of the request
// context claims put there by the jwtauth verifier.
func IdentityFromContext(ctx context.Context) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	identity := auth.Identity{Email: email}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	if sched, ok := claims["schedule"].(string); ok {
		identity.Schedule = sched
	}
	return identity, nil
}
