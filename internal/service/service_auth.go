package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sunjoo-dev/movein-registry/internal/config"
	"github.com/sunjoo-dev/movein-registry/internal/crypto"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/store"
	"github.com/sunjoo-dev/movein-registry/internal/utils"
	"github.com/sunjoo-dev/movein-registry/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt credentials against the UserRepository and issues and
// verifies stateless HMAC-SHA256 JWT access tokens. There is no server-side
// token store: a token is valid iff its signature checks out and it has not
// expired.
type authService struct {
	// userRepository is the data-access layer used to look accounts up.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignIn authenticates an account by email and plaintext password.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. unknown email —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !crypto.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the account's
// id, email and role as claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.UserID, user.Email, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expiry is the only verification failure callers are allowed to tell apart:
// a well-signed token past its exp claim yields ErrTokenExpired, every other
// failure (malformed, bad signature, missing exp, wrong algorithm) collapses
// into ErrTokenInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// Authenticate verifies a raw access token and returns the caller's user id.
//
// Returns ErrMissingToken for empty input, otherwise propagates
// ErrTokenExpired / ErrTokenInvalid from ParseToken.
func (a *authService) Authenticate(ctx context.Context, rawToken string) (int64, error) {
	if rawToken == "" {
		return 0, ErrMissingToken
	}

	token, err := a.ParseToken(ctx, rawToken)
	if err != nil {
		return 0, err
	}

	userID, err := token.GetUserID()
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return userID, nil
}

// RequireRole verifies the Authorization header value and checks the role
// claim against the required role.
//
// A "Bearer " prefix is stripped when present; the original service accepted
// the bare token as well, so both forms pass. Returns ErrMissingToken when
// the header is empty and ErrForbidden when the role claim does not match.
func (a *authService) RequireRole(ctx context.Context, authorizationHeader string, role models.Role) (models.Token, error) {
	log := logger.FromContext(ctx)

	rawToken := utils.TrimBearerPrefix(authorizationHeader)
	if rawToken == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := a.ParseToken(ctx, rawToken)
	if err != nil {
		return models.Token{}, err
	}

	if token.GetRole() != role {
		log.Error().Str("required_role", role.String()).Str("token_role", token.Claims.Role).Msg("role check failed")
		return models.Token{}, ErrForbidden
	}

	return token, nil
}
