package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// Token failure modes, distinguished internally for logging and metrics.
// The HTTP layer collapses revoked/invalid into a single caller-visible
// response; only expiry is surfaced distinctly.
var (
	ErrMissingSigningSecret = errors.New("jwt signing secret not configured")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTokenExpired         = errors.New("token expired")
)

// Claims describes the JWT payload bound at issue time. The role is
// fixed for the token's lifetime: role changes take effect on next login.
type Claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates signed session tokens.
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationStore
}

// NewTokenManager builds a manager signing with secret for tokens valid
// for ttl. The revocation store is consulted on every validation.
func NewTokenManager(secret string, ttl time.Duration, revoked RevocationStore) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, revoked: revoked}
}

// TTL returns the validity window applied at issuance.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue builds and signs a token for the subject with the given role.
func (tm *TokenManager) Issue(userID string, role domain.Role) (string, time.Time, error) {
	if len(tm.secret) == 0 {
		return "", time.Time{}, ErrMissingSigningSecret
	}

	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate checks a presented token and returns its claims. Checks run
// in a fixed order: revocation first (unconditional, regardless of the
// token's remaining validity), then signature, then expiry. The expiry
// check is repeated explicitly on the decoded claims even though the
// JWT library enforces it during parsing.
func (tm *TokenManager) Validate(ctx context.Context, tokenStr string) (*Claims, error) {
	if len(tm.secret) == 0 {
		return nil, ErrMissingSigningSecret
	}

	revoked, err := tm.revoked.IsRevoked(ctx, tokenStr)
	if err != nil {
		return nil, fmt.Errorf("revocation lookup: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// Revoke blacklists the token's exact string representation. Revoking an
// already-revoked or already-expired token is harmless.
func (tm *TokenManager) Revoke(ctx context.Context, tokenStr string) error {
	return tm.revoked.Revoke(ctx, tokenStr)
}
