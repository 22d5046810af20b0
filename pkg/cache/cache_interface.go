package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer so implementations can be
// swapped (Redis in production, in-memory fakes in tests).
type Cache interface {
	// Get reads a key into dest. found=false means a cache miss and dest is
	// left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern. Used for
	// invalidating availability caches per field.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
