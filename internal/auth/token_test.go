package auth

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/atelier-service/internal/domain"
)

const testSecret = "unit-test-signing-secret"

func newTestManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	return NewTokenManager(testSecret, ttl, NewMemoryRevocationList())
}

// signExpired builds a token whose expiry is already in the past, which
// Issue cannot produce.
func signExpired(t *testing.T, secret string) string {
	t.Helper()
	claims := &Claims{
		UserID: "user-1",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIssueAndValidateRoundtrip(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	token, expiresAt, err := tm.Issue("user-42", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Validate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.UserID)
	require.Equal(t, "user-42", claims.Subject)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.NotEmpty(t, claims.ID)
}

func TestValidateExpiredToken(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	_, err := tm.Validate(context.Background(), signExpired(t, testSecret))
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRevokedToken(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	token, _, err := tm.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)
	require.NoError(t, tm.Revoke(context.Background(), token))

	_, err = tm.Validate(context.Background(), token)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestValidateRevokedWinsOverExpired(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	token := signExpired(t, testSecret)
	require.NoError(t, tm.Revoke(context.Background(), token))

	// Revocation is checked before the token is even parsed, so a token
	// that is both revoked and expired reports as revoked.
	_, err := tm.Validate(context.Background(), token)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestValidateTamperedSignature(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	token, _, err := tm.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.Validate(context.Background(), tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateWrongSecret(t *testing.T) {
	other := NewTokenManager("a-different-secret", time.Hour, NewMemoryRevocationList())
	token, _, err := other.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)

	tm := newTestManager(t, time.Hour)
	_, err = tm.Validate(context.Background(), token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMissingSigningSecret(t *testing.T) {
	tm := NewTokenManager("", time.Hour, NewMemoryRevocationList())

	_, _, err := tm.Issue("user-1", domain.RoleUser)
	require.ErrorIs(t, err, ErrMissingSigningSecret)

	_, err = tm.Validate(context.Background(), "whatever")
	require.ErrorIs(t, err, ErrMissingSigningSecret)
}

func TestDefaultTTL(t *testing.T) {
	tm := NewTokenManager(testSecret, 0, NewMemoryRevocationList())
	require.Equal(t, time.Hour, tm.TTL())
}
