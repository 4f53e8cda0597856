package queries

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the customer-facing menu of one category: the
// dishes and combos currently on sale.
type GetMenuQuery struct {
	categoryID int64

	isConstructed bool
}

// NewGetMenuQuery creates a menu query for the given category.
func NewGetMenuQuery(categoryID int64) (GetMenuQuery, error) {
	if categoryID <= 0 {
		return GetMenuQuery{}, errs.NewValueIsInvalidError("category id")
	}
	return GetMenuQuery{categoryID: categoryID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetMenuQueryIsNotConstructed
	}
	return nil
}

func (q GetMenuQuery) CategoryID() int64 { return q.categoryID }

// MenuDish is one on-sale dish of the menu. The struct is cached as JSON, so
// the field tags are part of the cache payload format.
type MenuDish struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// MenuCombo is one on-sale combo of the menu.
type MenuCombo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// GetMenuQueryResponse is the menu of a single category.
type GetMenuQueryResponse struct {
	CategoryID int64       `json:"categoryId"`
	Dishes     []MenuDish  `json:"dishes"`
	Combos     []MenuCombo `json:"combos"`
}
