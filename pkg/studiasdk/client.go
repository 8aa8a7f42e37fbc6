package studiasdk

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/studia-cl/studia-mobile/pkg/credstore"
)

// DefaultTimeout bounds every request; calls exceeding it fail with a
// transport error instead of hanging.
const DefaultTimeout = 15 * time.Second

// Client is the single choke point for all StudIA backend calls. It injects
// the bearer and tenant headers on every outgoing request and runs the
// refresh-and-retry protocol on authentication failures.
type Client struct {
	baseURL string
	http    *http.Client
	creds   credstore.Store
	tenant  *TenantResolver
	logger  *slog.Logger
	limiter *rate.Limiter

	defaultTenant string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout adjusts the request timeout ceiling.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithLimiter throttles outgoing requests client-side.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithDefaultTenant overrides the tenant used when none is persisted.
func WithDefaultTenant(id string) Option {
	return func(c *Client) { c.defaultTenant = id }
}

// New creates a client for the backend at baseURL, persisting credentials
// in creds.
func New(baseURL string, creds credstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		http:          &http.Client{Timeout: DefaultTimeout},
		creds:         creds,
		logger:        slog.Default(),
		defaultTenant: DefaultTenant,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.tenant = NewTenantResolver(creds, c.defaultTenant, c.logger)
	return c
}

// Tenant returns the active tenant identifier.
func (c *Client) Tenant(ctx context.Context) string { return c.tenant.Tenant(ctx) }

// SetTenant persists a new tenant identifier.
func (c *Client) SetTenant(ctx context.Context, id string) error {
	return c.tenant.SetTenant(ctx, id)
}

// Credentials exposes the backing store, mainly for the session manager.
func (c *Client) Credentials() credstore.Store { return c.creds }
