package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("k")

	token, err := GenerateToken("s1", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := GetSessionIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "s1", id)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("s1", []byte("k"), time.Hour)
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(token, []byte("other"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("s1", []byte("k"), -time.Minute)
	require.NoError(t, err)

	_, err = GetSessionIDFromToken(token, []byte("k"))
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := GetSessionIDFromToken("not-a-token", []byte("k"))
	assert.Error(t, err)
}
