package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-passphrase", hash)

	match, err := VerifyPassword(hash, "s3cret-passphrase")
	require.NoError(t, err)
	require.True(t, match)
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)

	match, err := VerifyPassword(hash, "battery-staple")
	require.NoError(t, err, "a wrong password is a non-match, not an error")
	require.False(t, match)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	match, err := VerifyPassword("not-a-bcrypt-hash", "anything")
	require.Error(t, err)
	require.False(t, match)
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
