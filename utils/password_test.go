package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword_Roundtrip verifies a hashed password verifies against itself
func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong-pass", hash))
}

// TestHashPassword_Format verifies the salt.key storage layout
func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	parts := strings.Split(hash, ".")
	require.Len(t, parts, 2)

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	key, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

// TestHashPassword_SaltIsRandom verifies two hashes of the same password differ
func TestHashPassword_SaltIsRandom(t *testing.T) {
	first, err := HashPassword("same-pass")
	require.NoError(t, err)
	second, err := HashPassword("same-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-pass", first))
	assert.True(t, VerifyPassword("same-pass", second))
}

// TestHashPassword_RejectsEmpty verifies blank passwords are refused
func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)

	_, err = HashPassword("   ")
	assert.Error(t, err)
}

// TestVerifyPassword_MalformedStored verifies garbage stored values fail closed
func TestVerifyPassword_MalformedStored(t *testing.T) {
	assert.False(t, VerifyPassword("pass", ""))
	assert.False(t, VerifyPassword("pass", "no-separator"))
	assert.False(t, VerifyPassword("pass", "one.two.three"))
	assert.False(t, VerifyPassword("pass", "!!!.???"))
}
