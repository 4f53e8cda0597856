package catalog

import (
	"errors"

	"takeout/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category groups dishes and combos on the menu. Sort controls the display
// order, lowest first.
type Category struct {
	id     int64
	name   string
	sort   int
	status SaleStatus

	isConstructed bool
}

// CategorySnapshot carries the persisted state of a category.
type CategorySnapshot struct {
	ID     int64
	Name   string
	Sort   int
	Status SaleStatus
}

// NewCategory creates a category in the OffSale state.
func NewCategory(name string, sort int) (*Category, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("category name")
	}

	return &Category{
		name:          name,
		sort:          sort,
		status:        OffSale,
		isConstructed: true,
	}, nil
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(s CategorySnapshot) (*Category, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("category id")
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}

	return &Category{
		id:            s.ID,
		name:          s.Name,
		sort:          s.Sort,
		status:        s.Status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() int64          { return c.id }
func (c *Category) Name() string       { return c.name }
func (c *Category) Sort() int          { return c.sort }
func (c *Category) Status() SaleStatus { return c.status }

// Rename updates the name and sort order.
func (c *Category) Rename(name string, sort int) error {
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	c.name = name
	c.sort = sort
	return nil
}

// SetStatus toggles the category visibility.
func (c *Category) SetStatus(status SaleStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (c *Category) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("category id")
	}
	if c.id != 0 {
		return errs.NewValueIsInvalidError("category id already assigned")
	}
	c.id = id
	return nil
}
