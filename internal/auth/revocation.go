package auth

import (
	"context"
	"sync"
)

// RevocationStore tracks tokens invalidated before their natural expiry.
// Implementations must be safe for concurrent use: a Revoke must be
// observable by every IsRevoked evaluated after it returns.
type RevocationStore interface {
	// Revoke adds the token's exact string to the store. Idempotent.
	Revoke(ctx context.Context, token string) error
	// IsRevoked reports whether the exact token string was revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// memoryRevocationList is a mutex-guarded in-process set. Entries live
// for the lifetime of the process and are lost on restart; deployments
// spanning multiple instances should use the Redis-backed store.
type memoryRevocationList struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewMemoryRevocationList returns an empty in-process store.
func NewMemoryRevocationList() RevocationStore {
	return &memoryRevocationList{revoked: make(map[string]struct{})}
}

func (l *memoryRevocationList) Revoke(_ context.Context, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[token] = struct{}{}
	return nil
}

func (l *memoryRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, found := l.revoked[token]
	return found, nil
}
