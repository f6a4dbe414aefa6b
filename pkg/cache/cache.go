package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Repositories depend on
// this interface so the backing store (Redis today) can be swapped or
// stubbed out in tests.
type Cache interface {
	// Get loads the value stored under key and unmarshals it into dest.
	// The boolean reports whether the key was present (cache hit).
	// A miss leaves dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection to the cache backend.
	Ping(ctx context.Context) error
}
