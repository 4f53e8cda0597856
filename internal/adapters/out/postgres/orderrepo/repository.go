package orderrepo

import (
	"context"
	"errors"
	"time"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its detail lines and assigns the generated
// identity to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignIdentity(dto.ID)
}

// Update saves the mutable state of an existing order, guarded by the status
// the aggregate was loaded with. A zero-row update means another transaction
// moved the order first and is reported as a state conflict.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID(), int(aggregate.LoadedStatus())).
		Updates(map[string]any{
			"status":           int(aggregate.Status()),
			"pay_status":       int(aggregate.PayStatus()),
			"cancel_reason":    aggregate.CancelReason(),
			"rejection_reason": aggregate.RejectionReason(),
			"checkout_time":    aggregate.CheckoutTime(),
			"cancel_time":      aggregate.CancelTime(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError("update order",
			aggregate.LoadedStatus().String(), "concurrently modified")
	}

	aggregate.MarkSynced()
	return nil
}

// Get retrieves an order with its detail lines by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Details").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its externally visible number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Details").First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("number", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatusOlderThan retrieves orders in the given status placed before
// the cutoff.
func (r *GormOrderRepository) GetAllInStatusOlderThan(
	ctx context.Context,
	status order.Status,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Details").
		Find(&dtos, "status = ? AND order_time < ?", int(status), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
