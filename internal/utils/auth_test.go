package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := Hash("hunter22")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(string(hash), "hunter22"))
	assert.Error(t, VerifyPassword(string(hash), "hunter23"))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-hash", "whatever"))
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, jti, err := GenerateJWT(userID, time.Minute, secret)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := VerifyJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, _, err := GenerateJWT(uuid.New(), time.Minute, []byte("secret-a"))
	require.NoError(t, err)

	_, err = VerifyJWT(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyJWTExpired(t *testing.T) {
	token, _, err := GenerateJWT(uuid.New(), -time.Minute, []byte("secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(token, []byte("secret"))
	assert.Error(t, err)
}

func TestGenerateDraftToken(t *testing.T) {
	a, err := GenerateDraftToken()
	require.NoError(t, err)
	b, err := GenerateDraftToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
