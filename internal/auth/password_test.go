package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	// Соль делает каждый хеш уникальным
	other, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("my-password-123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("my-password-123", hash))
	assert.False(t, CheckPasswordHash("my-password-124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))

	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(""))
}
