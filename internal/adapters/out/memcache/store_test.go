package memcache_test

import (
	"testing"
	"time"

	"takeout/internal/adapters/out/memcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	ctx := t.Context()
	store := memcache.NewStore()

	store.Set(ctx, "menu:category:1", []byte(`{"a":1}`), time.Minute)

	value, ok := store.Get(ctx, "menu:category:1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), value)

	_, ok = store.Get(ctx, "menu:category:2")
	assert.False(t, ok)
}

func TestStore_ExpiredEntryIsGone(t *testing.T) {
	ctx := t.Context()
	store := memcache.NewStore()

	store.Set(ctx, "menu:category:1", []byte("x"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, ok := store.Get(ctx, "menu:category:1")
	assert.False(t, ok)
}

func TestStore_EvictMatching(t *testing.T) {
	ctx := t.Context()
	store := memcache.NewStore()

	store.Set(ctx, "menu:category:1", []byte("a"), 0)
	store.Set(ctx, "menu:category:2", []byte("b"), 0)
	store.Set(ctx, "other:key", []byte("c"), 0)

	t.Run("exact key", func(t *testing.T) {
		store.EvictMatching(ctx, "menu:category:1")
		_, ok := store.Get(ctx, "menu:category:1")
		assert.False(t, ok)
		_, ok = store.Get(ctx, "menu:category:2")
		assert.True(t, ok)
	})

	t.Run("prefix wildcard", func(t *testing.T) {
		store.EvictMatching(ctx, "menu:*")
		_, ok := store.Get(ctx, "menu:category:2")
		assert.False(t, ok)
		_, ok = store.Get(ctx, "other:key")
		assert.True(t, ok)
	})
}
