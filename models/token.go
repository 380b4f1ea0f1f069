package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in every issued session token.
//
// It extends the registered JWT claims (sub, iat, exp) with the identity
// attributes this service authorizes on: the user's email (under the legacy
// "user" key), the numeric user id, and the role marker.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the account email, serialized under the "user" claim key.
	Email string `json:"user"`

	// UserID is the numeric account identifier.
	UserID int64 `json:"user_id"`

	// Role is the single-character role marker ("Y"/"N").
	Role string `json:"role"`
}

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing) and
// [Claims] for claim access, which makes *Token usable directly as the claims
// destination of [jwt.ParseWithClaims].
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// GetRole returns the role claim parsed into a [Role]. Unknown stored values
// degrade to [RoleStandard].
func (t *Token) GetRole() Role {
	return ParseRole(t.Claims.Role)
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
