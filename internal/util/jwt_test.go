package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpiredToken(t *testing.T) {
	token, err := GenerateJWT("user-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

// parseAt verifies a token as if the clock read the given time,
// pinning down where in the token's lifetime it stops being accepted.
func parseAt(token, secret string, at time.Time) error {
	_, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return at }))
	return err
}

func TestTokenLifetimeBoundary(t *testing.T) {
	issued := time.Now()
	token, err := GenerateJWT("user-123", "secret", 24*time.Hour)
	require.NoError(t, err)

	assert.NoError(t, parseAt(token, "secret", issued.Add(23*time.Hour)))
	assert.Error(t, parseAt(token, "secret", issued.Add(25*time.Hour)))
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "secret")
	assert.Error(t, err)
}
