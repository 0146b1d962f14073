package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", hash)
	assert.NoError(t, ComparePassword(hash, "password1"))
	assert.Error(t, ComparePassword(hash, "password2"))
	assert.Error(t, ComparePassword(hash, ""))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("password1")
	require.NoError(t, err)

	second, err := HashPassword("password1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "password1"))
	assert.NoError(t, ComparePassword(second, "password1"))
}
