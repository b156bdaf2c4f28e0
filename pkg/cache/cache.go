// Package cache provides the byte cache backing remote asset fetches.
//
// Background and content images referenced by URL are fetched over HTTP
// during preview and export; the cache keeps the raw response bytes so
// repeated renders of the same template do not refetch. Two backends are
// provided: a file-based cache for the CLI and a null cache for tests and
// one-shot runs.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached asset bytes stay valid.
const DefaultTTL = 24 * time.Hour

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the engine's cacheable artifacts.
type Keyer interface {
	// AssetKey generates a key for fetched asset bytes.
	AssetKey(ref string) string

	// ExportKey generates a key for a rendered export artifact.
	ExportKey(templateHash string, opts ExportKeyOpts) string
}

// ExportKeyOpts captures everything that changes an export's pixels.
type ExportKeyOpts struct {
	Format   string  // "png" or "pdf"
	Scale    float64 // export scale multiplier
	Tier     string  // watermark tier
	Rotation string  // "upright" or "rotated"
	Autocrop bool
}

// DefaultKeyer produces hash-based keys with stable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// AssetKey generates a key for fetched asset bytes.
func (k *DefaultKeyer) AssetKey(ref string) string {
	return hashKey("asset", ref)
}

// ExportKey generates a key for a rendered export artifact.
func (k *DefaultKeyer) ExportKey(templateHash string, opts ExportKeyOpts) string {
	return hashKey("export", templateHash, opts)
}
