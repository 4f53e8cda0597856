package ports

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is conditional: it only applies when the stored status still equals
// the status the aggregate was loaded with, and returns a StateConflictError
// otherwise. This serializes concurrent transitions (user cancel vs. timeout
// sweep, duplicate payment callbacks) without pessimistic locks.
type OrderRepository interface {
	// Add persists a new order aggregate with its detail lines and assigns
	// the generated identity to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by
	// the status the aggregate was loaded with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its externally visible
	// order number. Payment callbacks identify orders this way.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllInStatusOlderThan retrieves orders in the given status whose
	// order time is strictly before the cutoff. The sweeper uses it to find
	// timed-out and stale orders.
	GetAllInStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)
}
