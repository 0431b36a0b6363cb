// Package cache provides a byte cache for rendered board artifacts.
//
// Rendering a board through Graphviz is deterministic: the same DOT text and
// format always produce the same bytes. The CLI caches render output keyed
// by a hash of the DOT source so repeated renders of an unchanged board skip
// Graphviz entirely. NullCache disables caching without branching at call
// sites.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores rendered artifacts as opaque bytes.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// RenderKey builds the cache key for a rendered artifact: the hash of the
// DOT source plus the output format.
func RenderKey(dot, format string) string {
	return fmt.Sprintf("render:%s:%s", Hash([]byte(dot)), format)
}
