package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotContains(t, hash, "secret123")
	assert.True(t, h.Compare(hash, "secret123"))
	assert.False(t, h.Compare(hash, "secret124"))
	assert.False(t, h.Compare("not-a-hash", "secret123"))
}

func TestPasswordHasher_SaltIsRandomPerCall(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Compare(a, "same"))
	assert.True(t, h.Compare(b, "same"))
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h, err := NewPasswordHasher(10)
	require.NoError(t, err)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.True(t, IsPasswordTooLong(err))
}

func TestPasswordHasher_CompareDummy(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, h.CompareDummy("authkeeper-dummy-password"))
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}
