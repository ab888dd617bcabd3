package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationList(t *testing.T) {
	store := NewMemoryRevocationList()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "token-a"))

	revoked, err = store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestMemoryRevocationListIdempotent(t *testing.T) {
	store := NewMemoryRevocationList()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "token-a"))
	require.NoError(t, store.Revoke(ctx, "token-a"))

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestMemoryRevocationListConcurrent(t *testing.T) {
	store := NewMemoryRevocationList()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		token := fmt.Sprintf("token-%d", i)
		go func() {
			defer wg.Done()
			require.NoError(t, store.Revoke(ctx, token))
		}()
		go func() {
			defer wg.Done()
			_, err := store.IsRevoked(ctx, token)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		revoked, err := store.IsRevoked(ctx, fmt.Sprintf("token-%d", i))
		require.NoError(t, err)
		require.True(t, revoked)
	}
}
