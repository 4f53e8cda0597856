package queries

import (
	"context"
	"encoding/json"
	"time"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/services"
	"takeout/internal/core/ports"

	"gorm.io/gorm"
)

// GetMenuQueryHandler serves the customer-facing menu of a category with a
// cache-aside read: a hit returns the cached JSON payload, a miss reads the
// catalog tables and fills the cache. Writes to the catalog evict the
// affected keys, so a stale entry lives at most until the next catalog
// change.
type GetMenuQueryHandler struct {
	db          *gorm.DB
	cache       ports.CacheStore
	cachePolicy services.MenuCachePolicy
	cacheTTL    time.Duration
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(
	db *gorm.DB,
	cache ports.CacheStore,
	cachePolicy services.MenuCachePolicy,
	cacheTTL time.Duration,
) GetMenuQueryHandler {
	return GetMenuQueryHandler{
		db:          db,
		cache:       cache,
		cachePolicy: cachePolicy,
		cacheTTL:    cacheTTL,
	}
}

// Handle executes the menu query.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	key := h.cachePolicy.CategoryKey(query.CategoryID())
	if payload, ok := h.cache.Get(ctx, key); ok {
		var cached GetMenuQueryResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		// A corrupt entry falls through to a database read and is
		// overwritten below.
	}

	response := GetMenuQueryResponse{
		CategoryID: query.CategoryID(),
		Dishes:     make([]MenuDish, 0),
		Combos:     make([]MenuCombo, 0),
	}

	if err := h.readDishes(ctx, query.CategoryID(), &response); err != nil {
		return GetMenuQueryResponse{}, err
	}
	if err := h.readCombos(ctx, query.CategoryID(), &response); err != nil {
		return GetMenuQueryResponse{}, err
	}

	if payload, err := json.Marshal(response); err == nil {
		h.cache.Set(ctx, key, payload, h.cacheTTL)
	}

	return response, nil
}

func (h GetMenuQueryHandler) readDishes(ctx context.Context, categoryID int64, response *GetMenuQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description
		FROM dishes
		WHERE category_id = ? AND status = ?
		ORDER BY name
	`, categoryID, catalog.OnSale).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var dish MenuDish
		if err = rows.Scan(&dish.ID, &dish.Name, &dish.Price, &dish.Description); err != nil {
			return err
		}
		response.Dishes = append(response.Dishes, dish)
	}

	return rows.Err()
}

func (h GetMenuQueryHandler) readCombos(ctx context.Context, categoryID int64, response *GetMenuQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description
		FROM combos
		WHERE category_id = ? AND status = ?
		ORDER BY name
	`, categoryID, catalog.OnSale).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var combo MenuCombo
		if err = rows.Scan(&combo.ID, &combo.Name, &combo.Price, &combo.Description); err != nil {
			return err
		}
		response.Combos = append(response.Combos, combo)
	}

	return rows.Err()
}
