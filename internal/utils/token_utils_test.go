package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgrejaViva/igreja_backend/internal/utils"
)

func TestGenerateJWT_ClaimsRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "user-123"
	issuer := "igreja-backend"

	tokenString, err := utils.GenerateJWT(userID, secret, time.Hour, issuer)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWT_WrongSecretFails(t *testing.T) {
	tokenString, err := utils.GenerateJWT("user-123", "secret-a", time.Hour, "issuer")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.Len(t, a, 64) // hex doubles the byte count
	assert.NotEqual(t, a, b)
}

func TestHashRefreshToken(t *testing.T) {
	token := "opaque-refresh-token"

	hash := utils.HashRefreshToken(token)

	assert.Len(t, hash, 64)
	assert.True(t, utils.CompareRefreshTokenHash(token, hash))
	assert.False(t, utils.CompareRefreshTokenHash("different-token", hash))
}
