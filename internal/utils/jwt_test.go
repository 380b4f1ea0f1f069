package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunjoo-dev/movein-registry/models"
)

const testSignKey = "test-sign-key"

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(42, "a@b.com", models.RoleStandard, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	assert.Equal(t, "42", token.Claims.Subject)
	assert.Equal(t, "a@b.com", token.Claims.Email)
	assert.Equal(t, int64(42), token.Claims.UserID)
	assert.Equal(t, "N", token.Claims.Role)

	// Compact JWS form: header.payload.signature.
	assert.Len(t, strings.Split(token.SignedString, "."), 3)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken(42, "", models.RoleStandard, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(42, "a@b.com", models.RoleStandard, 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(42, "a@b.com", models.RoleStandard, time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(42, "a@b.com", models.RoleAdmin, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "a@b.com", parsed.Claims.Email)
	assert.Equal(t, models.RoleAdmin, parsed.GetRole())

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := parsed.Claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, exp.Sub(iat.Time))
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Negative duration puts exp in the past while keeping the signature valid.
	issued, err := GenerateJWTToken(42, "a@b.com", models.RoleStandard, -time.Second, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(42, "a@b.com", models.RoleStandard, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_TamperedSegments(t *testing.T) {
	issued, err := GenerateJWTToken(42, "a@b.com", models.RoleStandard, time.Hour, testSignKey)
	require.NoError(t, err)

	segments := strings.Split(issued.SignedString, ".")
	require.Len(t, segments, 3)

	// Corrupt the payload and the signature segments in turn.
	for _, i := range []int{1, 2} {
		tampered := make([]string, 3)
		copy(tampered, segments)
		tampered[i] = "x" + tampered[i][1:]

		_, err := ValidateAndParseJWTToken(strings.Join(tampered, "."), testSignKey)
		assert.Error(t, err, "tampered segment %d must not verify", i)
		assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	// Hand-build a signed token without an exp claim.
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "42",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Email:  "a@b.com",
		UserID: 42,
		Role:   "N",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := ValidateAndParseJWTToken(raw, testSignKey)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestTrimBearerPrefix(t *testing.T) {
	assert.Equal(t, "abc", TrimBearerPrefix("Bearer abc"))
	assert.Equal(t, "abc", TrimBearerPrefix("  Bearer abc"))
	assert.Equal(t, "abc", TrimBearerPrefix("abc"))
	assert.Equal(t, "", TrimBearerPrefix(""))
	assert.Equal(t, "", TrimBearerPrefix("Bearer "))
	assert.Equal(t, "", TrimBearerPrefix("Bearer"))
}
