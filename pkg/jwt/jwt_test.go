package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "writer", TypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "writer", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "a", TypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TypeAccess, token)
	assert.Error(t, err)
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "a", "refresh", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.EqualError(t, err, "invalid token type")
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "a", TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.Error(t, err)
}
