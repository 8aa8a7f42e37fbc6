// Package credstore provides key-value persistence for the credentials the
// mobile client keeps between launches: the token pair, the cached user
// record and the selected tenant schema.
//
// Stores report I/O failures but never retry them; callers decide whether a
// failed read means "absent" and whether a failed write is fatal. The token
// pair invariant (access and refresh token are written or cleared together)
// is enforced by callers sequencing their writes, not by the store.
package credstore

import (
	"context"
	"errors"
)

// Well-known keys. They match the storage keys of the original mobile app so
// a migrated credential file stays readable.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
	KeyTenant       = "tenant_schema"
)

// ErrNotFound reports that a key has no stored value.
var ErrNotFound = errors.New("credstore: not found")

// Store is the credential storage contract. Implementations must be safe for
// concurrent use; last-write-wins per key is acceptable.
type Store interface {
	// Get returns the value for key, or ErrNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error
}
