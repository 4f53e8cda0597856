package catalogrepo

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddCategory saves a new category and assigns the generated identity.
func (r *GormCatalogRepository) AddCategory(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return category.AssignIdentity(dto.ID)
}

// UpdateCategory saves changes to an existing category.
func (r *GormCatalogRepository) UpdateCategory(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":   dto.Name,
			"sort":   dto.Sort,
			"status": dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("categoryId", dto.ID)
	}

	return nil
}

// GetCategory retrieves a category by id.
func (r *GormCatalogRepository) GetCategory(ctx context.Context, id int64) (*catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("categoryId", id)
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// DeleteCategory removes a category.
func (r *GormCatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id).Error
}

// CountItemsInCategory counts the dishes and combos referencing a category.
func (r *GormCatalogRepository) CountItemsInCategory(ctx context.Context, categoryID int64) (int64, error) {
	var dishes, combos int64

	err := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("category_id = ?", categoryID).Count(&dishes).Error
	if err != nil {
		return 0, err
	}

	err = r.db.WithContext(ctx).Model(&ComboDTO{}).
		Where("category_id = ?", categoryID).Count(&combos).Error
	if err != nil {
		return 0, err
	}

	return dishes + combos, nil
}

// AddDish saves a new dish and assigns the generated identity.
func (r *GormCatalogRepository) AddDish(ctx context.Context, dish *catalog.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(dish)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return dish.AssignIdentity(dto.ID)
}

// UpdateDish saves changes to an existing dish.
func (r *GormCatalogRepository) UpdateDish(ctx context.Context, dish *catalog.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(dish)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"category_id": dto.CategoryID,
			"name":        dto.Name,
			"price":       dto.Price,
			"description": dto.Description,
			"status":      dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dishId", dto.ID)
	}

	return nil
}

// GetDish retrieves a dish by id.
func (r *GormCatalogRepository) GetDish(ctx context.Context, id int64) (*catalog.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishId", id)
		}
		return nil, err
	}

	return dishToDomain(dto)
}

// GetDishes retrieves the dishes with the given ids. A missing id is
// reported as not found so guard checks never silently skip a dish.
func (r *GormCatalogRepository) GetDishes(ctx context.Context, ids []int64) ([]*catalog.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	found := make(map[int64]bool, len(dtos))
	dishes := make([]*catalog.Dish, 0, len(dtos))
	for _, dto := range dtos {
		dish, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
		found[dto.ID] = true
	}

	for _, id := range ids {
		if !found[id] {
			return nil, errs.NewObjectNotFoundError("dishId", id)
		}
	}

	return dishes, nil
}

// DeleteDishes removes the given dishes.
func (r *GormCatalogRepository) DeleteDishes(ctx context.Context, ids []int64) error {
	return r.db.WithContext(ctx).Delete(&DishDTO{}, "id IN ?", ids).Error
}

// ComboIDsReferencingDishes returns the combos bundling any of the dishes.
func (r *GormCatalogRepository) ComboIDsReferencingDishes(ctx context.Context, dishIDs []int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&ComboDishDTO{}).
		Distinct("combo_id").
		Where("dish_id IN ?", dishIDs).
		Pluck("combo_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// AddCombo saves a new combo with its bundling rows and assigns the
// generated identity.
func (r *GormCatalogRepository) AddCombo(ctx context.Context, combo *catalog.Combo) error {
	if err := combo.Validate(); err != nil {
		return err
	}

	dto := comboFromDomain(combo)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return combo.AssignIdentity(dto.ID)
}

// UpdateCombo saves changes to an existing combo, replacing its bundling
// rows.
func (r *GormCatalogRepository) UpdateCombo(ctx context.Context, combo *catalog.Combo) error {
	if err := combo.Validate(); err != nil {
		return err
	}

	dto := comboFromDomain(combo)
	result := r.db.WithContext(ctx).Model(&ComboDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"category_id": dto.CategoryID,
			"name":        dto.Name,
			"price":       dto.Price,
			"description": dto.Description,
			"status":      dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("comboId", dto.ID)
	}

	err := r.db.WithContext(ctx).Delete(&ComboDishDTO{}, "combo_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	if len(dto.Dishes) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.Dishes).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetCombo retrieves a combo with its bundling rows by id.
func (r *GormCatalogRepository) GetCombo(ctx context.Context, id int64) (*catalog.Combo, error) {
	var dto ComboDTO
	err := r.db.WithContext(ctx).Preload("Dishes").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("comboId", id)
		}
		return nil, err
	}

	return comboToDomain(dto)
}

// DeleteCombos removes the given combos and their bundling rows.
func (r *GormCatalogRepository) DeleteCombos(ctx context.Context, ids []int64) error {
	err := r.db.WithContext(ctx).Delete(&ComboDishDTO{}, "combo_id IN ?", ids).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ComboDTO{}, "id IN ?", ids).Error
}
