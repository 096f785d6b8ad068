// Package cache provides key-value persistence for fetched diary content.
//
// The generator caches everything it pulls from the network: the quote
// snapshot, per-month inspiration texts, and seasonal images. Backends:
//
//   - FileCache: JSON entries on disk, the CLI default (~/.cache/daybook/)
//   - RedisCache: shared backend for multi-instance HTTP deployments
//   - NullCache: no-op, used by --no-cache and in tests
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// A TTL of 0 means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
