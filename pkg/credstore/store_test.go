package credstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()

		s := NewMemStore()

		_, err := s.Get(ctx, KeyAccessToken)
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, s.Set(ctx, KeyAccessToken, "acc-1"))
		got, err := s.Get(ctx, KeyAccessToken)
		require.NoError(t, err)
		require.Equal(t, "acc-1", got)

		require.NoError(t, s.Set(ctx, KeyAccessToken, "acc-2"))
		got, err = s.Get(ctx, KeyAccessToken)
		require.NoError(t, err)
		require.Equal(t, "acc-2", got)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		t.Parallel()

		s := NewMemStore()
		require.NoError(t, s.Set(ctx, KeyAccessToken, "acc-1"))
		require.NoError(t, s.Set(ctx, KeyRefreshToken, "ref-1"))

		require.NoError(t, s.Remove(ctx, KeyAccessToken, KeyRefreshToken, KeyUser))
		require.Zero(t, s.Len())

		require.NoError(t, s.Remove(ctx, KeyAccessToken))
	})

	t.Run("concurrent writers", func(t *testing.T) {
		t.Parallel()

		s := NewMemStore()

		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("key-%d", i%4)
				require.NoError(t, s.Set(ctx, key, fmt.Sprintf("v-%d", i)))
				_, _ = s.Get(ctx, key)
			}(i)
		}
		wg.Wait()

		require.Equal(t, 4, s.Len())
	})
}
