package cartrepo

import (
	"context"

	"takeout/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart line and assigns the generated identity.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.AssignIdentity(dto.ID)
}

// Update saves the changed quantity of an existing line.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&CartItemDTO{}).
		Where("id = ?", item.ID()).
		Update("quantity", item.Quantity()).Error
}

// Remove deletes a single cart line.
func (r *GormCartRepository) Remove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id).Error
}

// GetByUser retrieves all cart lines of a user, oldest first.
func (r *GormCartRepository) GetByUser(ctx context.Context, userID int64) ([]*cart.Item, error) {
	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).Order("id").Find(&dtos, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Clear deletes all cart lines of a user.
func (r *GormCartRepository) Clear(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "user_id = ?", userID).Error
}
