package services

import (
	"context"
	"strconv"

	"takeout/internal/core/ports"
)

// Menu cache key scheme. Every cached menu view lives under the menu:
// namespace, one key per category.
const (
	menuKeyPrefix    = "menu:category:"
	menuKeyNamespace = "menu:*"
)

// MenuCachePolicy owns the cache key scheme for the cached menu and the
// invalidation rules applied on catalog writes.
//
// The rules are intentionally asymmetric: creating an item can only affect
// its own category, so only that key is evicted. Updates, deletions, and
// status toggles may move items between categories or affect combos bundling
// a changed dish, so the whole namespace is dropped instead of tracking the
// exact dependency set.
type MenuCachePolicy struct {
	cache ports.CacheStore
}

// NewMenuCachePolicy creates the policy over the given cache store.
func NewMenuCachePolicy(cache ports.CacheStore) MenuCachePolicy {
	return MenuCachePolicy{cache: cache}
}

// CategoryKey returns the cache key holding the menu view of one category.
func (MenuCachePolicy) CategoryKey(categoryID int64) string {
	return menuKeyPrefix + strconv.FormatInt(categoryID, 10)
}

// OnItemCreated evicts only the created item's category.
func (p MenuCachePolicy) OnItemCreated(ctx context.Context, categoryID int64) {
	p.cache.EvictMatching(ctx, p.CategoryKey(categoryID))
}

// OnItemChanged evicts the whole menu namespace. Used for updates,
// deletions, and sale-status toggles.
func (p MenuCachePolicy) OnItemChanged(ctx context.Context) {
	p.cache.EvictMatching(ctx, menuKeyNamespace)
}
