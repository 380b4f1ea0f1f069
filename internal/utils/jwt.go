package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sunjoo-dev/movein-registry/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT session token for the
// given user.
//
// The token carries the claim set
//
//	{sub: user id, user: email, user_id: user id, role: role, iat: now, exp: now + tokenDuration}
//
// sub duplicates user_id in string form for consumers that only read the
// registered subject claim.
//
// Returns an error if email or signKey are empty, tokenDuration is zero, or
// signing fails.
func GenerateJWTToken(userID int64, email string, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		Email:  email,
		UserID: userID,
		Role:   role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of the given JWT
// string and extracts its claims.
//
// Validation includes:
//   - HMAC-SHA256 signature verification with tokenSignKey; other signing
//     methods are rejected.
//   - Expiration check with zero leeway — expiry is a hard boundary; a token
//     with exp <= now fails with [jwt.ErrTokenExpired].
//   - Presence of the exp claim; a token without one is invalid.
//
// Callers that need to distinguish "expired" from every other failure should
// match the returned error with errors.Is against [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	token := &models.Token{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, token, func(t *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	token.Token = parsedToken
	token.SignedString = tokenString

	if token.Claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return *token, nil
}

// TrimBearerPrefix strips the conventional "Bearer " scheme prefix from a raw
// Authorization header value. Headers without the prefix are returned
// unchanged, so callers tolerate clients that send the bare token.
func TrimBearerPrefix(authorizationHeader string) string {
	header := strings.TrimSpace(authorizationHeader)
	if header == "Bearer" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
