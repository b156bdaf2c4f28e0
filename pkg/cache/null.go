package cache

import (
	"context"
	"time"
)

// NullCache discards everything: every Get misses and Set is a no-op.
// It backs one-shot runs where refetching an asset is cheaper than
// keeping a cache directory around, and tests that want the fetch path
// exercised on every call.
type NullCache struct{}

// NewNullCache creates a cache that never stores.
func NewNullCache() Cache { return &NullCache{} }

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

func (c *NullCache) Close() error { return nil }
