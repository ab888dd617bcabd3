package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "auth:revoked:"

// redisRevocationList stores revoked tokens in Redis so revocations are
// shared across instances and survive restarts. Entries expire with the
// token TTL: once a token can no longer pass the expiry check there is
// no need to keep its revocation entry around.
type redisRevocationList struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRevocationList returns a Redis-backed store. ttl should match
// the access token TTL.
func NewRedisRevocationList(client *redis.Client, ttl time.Duration) RevocationStore {
	return &redisRevocationList{client: client, ttl: ttl}
}

func (l *redisRevocationList) Revoke(ctx context.Context, token string) error {
	return l.client.Set(ctx, revocationKeyPrefix+token, "1", l.ttl).Err()
}

func (l *redisRevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := l.client.Exists(ctx, revocationKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
