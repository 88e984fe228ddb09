package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("longenough1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "longenough1", hash, "hash must never equal the plaintext")
	assert.True(t, VerifyPassword(hash, "longenough1"))
	assert.False(t, VerifyPassword(hash, "wrongpass"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("longenough1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("longenough1", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt salts per call; equal hashes would mean the salt is broken.
	assert.NotEqual(t, h1, h2)
}

func TestHashPasswordInvalidCost(t *testing.T) {
	_, err := HashPassword("longenough1", bcrypt.MaxCost+1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "hash password")
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "longenough1"))
}
