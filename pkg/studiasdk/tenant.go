package studiasdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

// DefaultTenant is the backend schema used when no tenant has been
// persisted on the device.
const DefaultTenant = "DUOC UC"

// TenantResolver reads and writes the active tenant identifier. Reads never
// fail outward: any problem falls back to the configured default so every
// request can carry a usable tenant header.
type TenantResolver struct {
	store    credstore.Store
	fallback string
	logger   *slog.Logger
}

// NewTenantResolver returns a resolver over store. An empty fallback means
// DefaultTenant.
func NewTenantResolver(store credstore.Store, fallback string, logger *slog.Logger) *TenantResolver {
	if fallback == "" {
		fallback = DefaultTenant
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantResolver{store: store, fallback: fallback, logger: logger}
}

// Tenant returns the persisted tenant identifier or the fallback.
func (r *TenantResolver) Tenant(ctx context.Context) string {
	tenant, err := r.store.Get(ctx, credstore.KeyTenant)
	if err != nil {
		if !errors.Is(err, credstore.ErrNotFound) {
			r.logger.Warn("tenant read failed, using default", "error", err)
		}
		return r.fallback
	}
	if tenant == "" {
		return r.fallback
	}
	return tenant
}

// SetTenant persists the tenant identifier. A nil return means the write
// succeeded.
func (r *TenantResolver) SetTenant(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("studiasdk: empty tenant identifier")
	}
	if err := r.store.Set(ctx, credstore.KeyTenant, id); err != nil {
		return fmt.Errorf("studiasdk: persist tenant: %w", err)
	}
	return nil
}
