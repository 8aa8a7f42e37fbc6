package studiasdk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

// brokenStore fails every operation, for exercising fallback paths.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", errors.New("store unavailable")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("store unavailable")
}

func (brokenStore) Remove(context.Context, ...string) error {
	return errors.New("store unavailable")
}

func TestTenantResolver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("default when nothing stored", func(t *testing.T) {
		t.Parallel()

		r := NewTenantResolver(credstore.NewMemStore(), "", testLogger())
		require.Equal(t, DefaultTenant, r.Tenant(ctx))
		require.Equal(t, DefaultTenant, r.Tenant(ctx), "repeated reads are stable")
	})

	t.Run("custom fallback", func(t *testing.T) {
		t.Parallel()

		r := NewTenantResolver(credstore.NewMemStore(), "INACAP", testLogger())
		require.Equal(t, "INACAP", r.Tenant(ctx))
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemStore()
		r := NewTenantResolver(store, "", testLogger())

		require.NoError(t, r.SetTenant(ctx, "inacap"))
		require.Equal(t, "inacap", r.Tenant(ctx))

		// Setting the same value again is a no-op, not an error.
		require.NoError(t, r.SetTenant(ctx, "inacap"))
		require.Equal(t, "inacap", r.Tenant(ctx))
	})

	t.Run("empty identifier rejected", func(t *testing.T) {
		t.Parallel()

		store := credstore.NewMemStore()
		r := NewTenantResolver(store, "", testLogger())

		require.Error(t, r.SetTenant(ctx, ""))
		require.Equal(t, DefaultTenant, r.Tenant(ctx))
	})

	t.Run("unreadable store falls back to default", func(t *testing.T) {
		t.Parallel()

		r := NewTenantResolver(brokenStore{}, "", testLogger())
		require.Equal(t, DefaultTenant, r.Tenant(ctx))
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		t.Parallel()

		r := NewTenantResolver(brokenStore{}, "", testLogger())
		require.Error(t, r.SetTenant(ctx, "inacap"))
	})
}
