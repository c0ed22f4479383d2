package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	maker := NewTokenMaker("test-secret", 30*time.Minute)

	token, err := maker.CreateToken("alice", "US1234", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "US1234", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenExpired(t *testing.T) {
	maker := NewTokenMaker("test-secret", -time.Minute)

	token, err := maker.CreateToken("alice", "US1234", "Alice")
	require.NoError(t, err)

	_, err = maker.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	maker := NewTokenMaker("test-secret", 30*time.Minute)
	other := NewTokenMaker("other-secret", 30*time.Minute)

	token, err := maker.CreateToken("alice", "US1234", "Alice")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	maker := NewTokenMaker("test-secret", 30*time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := maker.ValidateToken(tok)
		assert.Error(t, err, tok)
	}
}
