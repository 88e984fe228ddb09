package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserGeneratesID(t *testing.T) {
	u := NewUser("A", "alice", "alice@x.com", "555", "longenough1", "")

	// A full UUID (36 chars) plus a 4-char suffix from a second one.
	require.Len(t, u.UUID, 40)

	other := NewUser("A", "alice", "alice@x.com", "555", "longenough1", "")
	assert.NotEqual(t, u.UUID, other.UUID)
}

func TestNewUserKeepsProvidedID(t *testing.T) {
	u := NewUser("A", "alice", "alice@x.com", "555", "longenough1", "fixed-id")
	assert.Equal(t, "fixed-id", u.UUID)
}

func TestSerializeExcludesPlaintext(t *testing.T) {
	u := NewUser("A", "alice", "alice@x.com", "555", "longenough1", "")
	u.PasswordHash = "$2a$10$hash"

	m := u.Serialize()
	assert.Equal(t, "alice", m["username"])
	assert.Equal(t, "alice@x.com", m["email"])
	assert.Equal(t, "$2a$10$hash", m["password_hash"])
	assert.Equal(t, u.UUID, m["uuid"])
	assert.NotContains(t, m, "password")
}
