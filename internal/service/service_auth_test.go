package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunjoo-dev/movein-registry/internal/crypto"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/store"
	"github.com/sunjoo-dev/movein-registry/models"
)

const testSignKey = "test-sign-key"

func newTestAuthService(repo *mockUserRepository, tokenDuration time.Duration) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   testSignKey,
		tokenDuration:  tokenDuration,
		logger:         logger.Nop(),
	}
}

func hashedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		UserID:       7,
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: hash,
		Role:         models.RoleStandard,
	}
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	stored := hashedUser(t, "correct horse battery staple")

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := newTestAuthService(repo, time.Hour)

	t.Run("success", func(t *testing.T) {
		user, err := auth.SignIn(ctx, stored.Email, "correct horse battery staple")
		require.NoError(t, err)
		assert.Equal(t, stored.UserID, user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.SignIn(ctx, stored.Email, "not the password")
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.SignIn(ctx, "ghost@example.com", "whatever")
		require.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := auth.SignIn(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService(&mockUserRepository{}, time.Hour)

	user := models.User{UserID: 42, Email: "admin@test.com", Role: models.RoleAdmin}

	token, err := auth.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "admin@test.com", parsed.Claims.Email)
	assert.Equal(t, models.RoleAdmin, parsed.GetRole())
}

func TestParseToken_ExpiredVsInvalid(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: 42, Email: "jane@example.com", Role: models.RoleStandard}

	t.Run("expired token", func(t *testing.T) {
		// negative duration produces a well-signed token already past exp
		expiredIssuer := newTestAuthService(&mockUserRepository{}, -time.Minute)
		token, err := expiredIssuer.CreateToken(ctx, user)
		require.NoError(t, err)

		_, err = expiredIssuer.ParseToken(ctx, token.SignedString)
		require.ErrorIs(t, err, ErrTokenExpired)
		assert.NotErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong sign key is invalid, not expired", func(t *testing.T) {
		auth := newTestAuthService(&mockUserRepository{}, time.Hour)
		token, err := auth.CreateToken(ctx, user)
		require.NoError(t, err)

		other := &authService{tokenSignKey: "different-key", tokenDuration: time.Hour, logger: logger.Nop()}
		_, err = other.ParseToken(ctx, token.SignedString)
		require.ErrorIs(t, err, ErrTokenInvalid)
		assert.NotErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		auth := newTestAuthService(&mockUserRepository{}, time.Hour)
		_, err := auth.ParseToken(ctx, "not.a.jwt")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService(&mockUserRepository{}, time.Hour)

	t.Run("success", func(t *testing.T) {
		token, err := auth.CreateToken(ctx, models.User{UserID: 9, Email: "a@b.c", Role: models.RoleStandard})
		require.NoError(t, err)

		userID, err := auth.Authenticate(ctx, token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, int64(9), userID)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "")
		require.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "garbage")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestRequireRole(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService(&mockUserRepository{}, time.Hour)

	adminToken, err := auth.CreateToken(ctx, models.User{UserID: 1, Email: "admin@test.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	standardToken, err := auth.CreateToken(ctx, models.User{UserID: 2, Email: "jane@example.com", Role: models.RoleStandard})
	require.NoError(t, err)

	t.Run("admin with bearer prefix", func(t *testing.T) {
		token, err := auth.RequireRole(ctx, "Bearer "+adminToken.SignedString, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, token.GetRole())
	})

	t.Run("admin with bare token", func(t *testing.T) {
		_, err := auth.RequireRole(ctx, adminToken.SignedString, models.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("standard role rejected", func(t *testing.T) {
		_, err := auth.RequireRole(ctx, "Bearer "+standardToken.SignedString, models.RoleAdmin)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := auth.RequireRole(ctx, "", models.RoleAdmin)
		require.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("expired token surfaces as expired", func(t *testing.T) {
		expiredIssuer := newTestAuthService(&mockUserRepository{}, -time.Minute)
		token, err := expiredIssuer.CreateToken(ctx, models.User{UserID: 1, Email: "admin@test.com", Role: models.RoleAdmin})
		require.NoError(t, err)

		_, err = auth.RequireRole(ctx, "Bearer "+token.SignedString, models.RoleAdmin)
		require.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestCreateToken_Error(t *testing.T) {
	auth := &authService{tokenSignKey: "", tokenDuration: time.Hour, logger: logger.Nop()}

	_, err := auth.CreateToken(context.Background(), models.User{UserID: 1, Email: "a@b.c", Role: models.RoleStandard})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenCreationFailed))
}
