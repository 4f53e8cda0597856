// Package catalogrepo persists the menu catalog: categories, dishes, combos,
// and the combo-to-dish bundling rows.
package catalogrepo

import (
	"takeout/internal/core/domain/model/catalog"
)

// CategoryDTO represents the database structure for menu categories.
type CategoryDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:64"`
	Sort   int
	Status int
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// DishDTO represents the database structure for dishes.
type DishDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CategoryID  int64  `gorm:"index"`
	Name        string `gorm:"size:128"`
	Price       float64
	Description string `gorm:"size:512"`
	Status      int    `gorm:"index"`
}

// TableName specifies the database table name for dishes.
func (DishDTO) TableName() string {
	return "dishes"
}

// ComboDTO represents the database structure for combo meals.
type ComboDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CategoryID  int64  `gorm:"index"`
	Name        string `gorm:"size:128"`
	Price       float64
	Description string `gorm:"size:512"`
	Status      int    `gorm:"index"`

	Dishes []ComboDishDTO `gorm:"foreignKey:ComboID"`
}

// TableName specifies the database table name for combos.
func (ComboDTO) TableName() string {
	return "combos"
}

// ComboDishDTO is one dish bundled into a combo.
type ComboDishDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	ComboID  int64 `gorm:"index"`
	DishID   int64 `gorm:"index"`
	Quantity int
}

// TableName specifies the database table name for combo bundling rows.
func (ComboDishDTO) TableName() string {
	return "combo_dishes"
}

func categoryFromDomain(category *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:     category.ID(),
		Name:   category.Name(),
		Sort:   category.Sort(),
		Status: int(category.Status()),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(catalog.CategorySnapshot{
		ID:     dto.ID,
		Name:   dto.Name,
		Sort:   dto.Sort,
		Status: catalog.SaleStatus(dto.Status),
	})
}

func dishFromDomain(dish *catalog.Dish) DishDTO {
	return DishDTO{
		ID:          dish.ID(),
		CategoryID:  dish.CategoryID(),
		Name:        dish.Name(),
		Price:       dish.Price(),
		Description: dish.Description(),
		Status:      int(dish.Status()),
	}
}

func dishToDomain(dto DishDTO) (*catalog.Dish, error) {
	return catalog.RestoreDish(catalog.DishSnapshot{
		ID:          dto.ID,
		CategoryID:  dto.CategoryID,
		Name:        dto.Name,
		Price:       dto.Price,
		Description: dto.Description,
		Status:      catalog.SaleStatus(dto.Status),
	})
}

func comboFromDomain(combo *catalog.Combo) ComboDTO {
	dishes := combo.Dishes()
	dishDTOs := make([]ComboDishDTO, 0, len(dishes))
	for _, d := range dishes {
		dishDTOs = append(dishDTOs, ComboDishDTO{
			ComboID:  combo.ID(),
			DishID:   d.DishID,
			Quantity: d.Quantity,
		})
	}

	return ComboDTO{
		ID:          combo.ID(),
		CategoryID:  combo.CategoryID(),
		Name:        combo.Name(),
		Price:       combo.Price(),
		Description: combo.Description(),
		Status:      int(combo.Status()),
		Dishes:      dishDTOs,
	}
}

func comboToDomain(dto ComboDTO) (*catalog.Combo, error) {
	dishes := make([]catalog.ComboDish, 0, len(dto.Dishes))
	for _, d := range dto.Dishes {
		dishes = append(dishes, catalog.ComboDish{DishID: d.DishID, Quantity: d.Quantity})
	}

	return catalog.RestoreCombo(catalog.ComboSnapshot{
		ID:          dto.ID,
		CategoryID:  dto.CategoryID,
		Name:        dto.Name,
		Price:       dto.Price,
		Description: dto.Description,
		Status:      catalog.SaleStatus(dto.Status),
		Dishes:      dishes,
	})
}
