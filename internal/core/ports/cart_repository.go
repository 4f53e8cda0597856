package ports

import (
	"context"

	"takeout/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for shopping cart lines.
type CartRepository interface {
	// Add persists a new cart line and assigns the generated identity.
	Add(ctx context.Context, item *cart.Item) error

	// Update persists a changed quantity on an existing line.
	Update(ctx context.Context, item *cart.Item) error

	// Remove deletes a single cart line.
	Remove(ctx context.Context, id int64) error

	// GetByUser retrieves all cart lines of a user, oldest first.
	GetByUser(ctx context.Context, userID int64) ([]*cart.Item, error)

	// Clear deletes all cart lines of a user.
	Clear(ctx context.Context, userID int64) error
}
