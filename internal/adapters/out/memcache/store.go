// Package memcache provides an in-process CacheStore backed by a mutex-held
// map. Entries expire lazily on read; EvictMatching supports exact keys and
// a trailing-star prefix pattern, which is all the menu cache key scheme
// needs.
package memcache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is an in-memory implementation of ports.CacheStore.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewStore creates an empty cache store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false when the key is absent or
// expired. Expired entries are dropped on access.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}

	value := make([]byte, len(e.value))
	copy(value, e.value)
	return value, true
}

// Set stores value under key. A non-positive ttl keeps the entry until it is
// evicted.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e
}

// EvictMatching removes every entry matching the pattern: either an exact
// key or a prefix followed by "*".
func (s *Store) EvictMatching(_ context.Context, pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix, wildcard := strings.CutSuffix(pattern, "*")
	if !wildcard {
		delete(s.entries, pattern)
		return
	}

	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
}
