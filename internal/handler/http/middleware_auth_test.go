package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunjoo-dev/movein-registry/internal/service"
	"github.com/sunjoo-dev/movein-registry/internal/utils"
	"github.com/sunjoo-dev/movein-registry/models"
)

func stubParsedToken(userID int64, role models.Role) models.Token {
	return models.Token{
		Claims: models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
			Email:            "jane@example.com",
			UserID:           userID,
			Role:             role.String(),
		},
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "good.jwt.token", tokenString)
			return stubParsedToken(7, models.RoleAdmin), nil
		},
	}
	h := newTestHandler(t, service.Services{AuthService: auth})

	var ctxUserID int64
	var ctxRole models.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxUserID, _ = utils.GetUserIDFromContext(r.Context())
		ctxRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movein/", nil)
	req.Header.Set("Authorization", "Bearer good.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), ctxUserID)
	assert.Equal(t, models.RoleAdmin, ctxRole)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, service.Services{AuthService: &mockAuthService{}})

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/movein/", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	h := newTestHandler(t, service.Services{AuthService: &mockAuthService{}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movein/", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
	}
	h := newTestHandler(t, service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/movein/", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenExpired.Error())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenInvalid
		},
	}
	h := newTestHandler(t, service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/movein/", nil)
	req.Header.Set("Authorization", "Bearer bad.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
