package ports

import (
	"context"
	"time"
)

// CacheStore defines the contract for the menu read cache.
//
// Invalidation is deliberately coarse: creating an item evicts only its
// category key, while updates, deletions, and status toggles evict the whole
// namespace with a trailing-* pattern. Stale reads are bounded by the TTL.
type CacheStore interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with the given time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// EvictMatching removes every key matching pattern. A pattern ending in
	// '*' matches by prefix; any other pattern matches exactly.
	EvictMatching(ctx context.Context, pattern string)
}
