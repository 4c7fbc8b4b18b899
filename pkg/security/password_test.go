package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "pw123456")

	// Same password must produce a different hash (random salt)
	hash2, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordLength+1))
	assert.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("wrong horse", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("correct horse", "not a bcrypt hash"))
}
