package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.NoError(t, CompareHashAndPassword(hash, "Secret123"))
	assert.Error(t, CompareHashAndPassword(hash, "wrong"))
}

func TestJwtTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := CreateJwtToken("user-1", "alice", "streamer", secret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := VerifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "streamer", claims.Role)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	token, err := CreateJwtToken("user-1", "alice", "user", []byte("key-a"), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("key-b"))
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := CreateJwtToken("user-1", "alice", "user", secret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = VerifyToken(token, secret)
	assert.Error(t, err)
}

func TestGenerateStreamKey(t *testing.T) {
	key, err := GenerateStreamKey(32)
	require.NoError(t, err)
	assert.Len(t, key, 32)
	for _, r := range key {
		assert.True(t, strings.ContainsRune(streamKeyChars, r))
	}

	other, err := GenerateStreamKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
