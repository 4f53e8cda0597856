package ports

import (
	"context"

	"takeout/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for the menu catalog:
// categories, dishes, and combos. Cross-aggregate guard queries (combo
// references, category usage) live here so command handlers can enforce
// deletion rules inside the same transaction.
type CatalogRepository interface {
	// AddCategory persists a new category and assigns the generated identity.
	AddCategory(ctx context.Context, category *catalog.Category) error

	// UpdateCategory persists changes to an existing category.
	UpdateCategory(ctx context.Context, category *catalog.Category) error

	// GetCategory retrieves a category by its identifier.
	GetCategory(ctx context.Context, id int64) (*catalog.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id int64) error

	// CountItemsInCategory returns how many dishes and combos reference the
	// category. A non-empty category cannot be deleted.
	CountItemsInCategory(ctx context.Context, categoryID int64) (int64, error)

	// AddDish persists a new dish and assigns the generated identity.
	AddDish(ctx context.Context, dish *catalog.Dish) error

	// UpdateDish persists changes to an existing dish.
	UpdateDish(ctx context.Context, dish *catalog.Dish) error

	// GetDish retrieves a dish by its identifier.
	GetDish(ctx context.Context, id int64) (*catalog.Dish, error)

	// GetDishes retrieves the dishes with the given identifiers. Missing ids
	// are reported as an ObjectNotFoundError.
	GetDishes(ctx context.Context, ids []int64) ([]*catalog.Dish, error)

	// DeleteDishes removes the given dishes. Callers must have checked the
	// deletion guards first.
	DeleteDishes(ctx context.Context, ids []int64) error

	// ComboIDsReferencingDishes returns the ids of combos bundling any of
	// the given dishes. A referenced dish cannot be deleted.
	ComboIDsReferencingDishes(ctx context.Context, dishIDs []int64) ([]int64, error)

	// AddCombo persists a new combo with its dish references and assigns
	// the generated identity.
	AddCombo(ctx context.Context, combo *catalog.Combo) error

	// UpdateCombo persists changes to an existing combo, replacing its dish
	// references.
	UpdateCombo(ctx context.Context, combo *catalog.Combo) error

	// GetCombo retrieves a combo with its dish references.
	GetCombo(ctx context.Context, id int64) (*catalog.Combo, error)

	// DeleteCombos removes the given combos and their dish references.
	// Callers must have checked the deletion guards first.
	DeleteCombos(ctx context.Context, ids []int64) error
}
