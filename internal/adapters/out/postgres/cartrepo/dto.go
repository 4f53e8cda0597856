// Package cartrepo persists shopping cart lines.
package cartrepo

import (
	"time"

	"takeout/internal/core/domain/model/cart"
)

// CartItemDTO represents the database structure for one cart line.
type CartItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	UserID   int64 `gorm:"index"`
	DishID   *int64
	ComboID  *int64
	Name     string `gorm:"size:128"`
	Price    float64
	Quantity int
	AddedAt  time.Time
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart line to its database representation.
func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:       item.ID(),
		UserID:   item.UserID(),
		DishID:   item.DishID(),
		ComboID:  item.ComboID(),
		Name:     item.Name(),
		Price:    item.Price(),
		Quantity: item.Quantity(),
		AddedAt:  item.AddedAt(),
	}
}

// toDomain converts a database DTO to a cart line.
func toDomain(dto CartItemDTO) (*cart.Item, error) {
	return cart.RestoreItem(cart.ItemSnapshot{
		ID:       dto.ID,
		UserID:   dto.UserID,
		DishID:   dto.DishID,
		ComboID:  dto.ComboID,
		Name:     dto.Name,
		Price:    dto.Price,
		Quantity: dto.Quantity,
		AddedAt:  dto.AddedAt,
	})
}
