package services_test

import (
	"context"
	"testing"
	"time"

	"takeout/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

type recordingCache struct {
	evicted []string
}

func (c *recordingCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (c *recordingCache) Set(context.Context, string, []byte, time.Duration) {}

func (c *recordingCache) EvictMatching(_ context.Context, pattern string) {
	c.evicted = append(c.evicted, pattern)
}

func TestMenuCachePolicy(t *testing.T) {
	t.Run("category key scheme", func(t *testing.T) {
		policy := services.NewMenuCachePolicy(&recordingCache{})
		assert.Equal(t, "menu:category:12", policy.CategoryKey(12))
	})

	t.Run("creation evicts only the item's category", func(t *testing.T) {
		cache := &recordingCache{}
		policy := services.NewMenuCachePolicy(cache)

		policy.OnItemCreated(context.Background(), 12)

		assert.Equal(t, []string{"menu:category:12"}, cache.evicted)
	})

	t.Run("update, delete, and toggle evict the whole namespace", func(t *testing.T) {
		cache := &recordingCache{}
		policy := services.NewMenuCachePolicy(cache)

		policy.OnItemChanged(context.Background())

		assert.Equal(t, []string{"menu:*"}, cache.evicted)
	})
}
