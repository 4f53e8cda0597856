package catalog

import (
	"errors"

	"takeout/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through NewDish or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish")

// Dish is a single menu item belonging to a category. New dishes start off
// sale so they do not appear on the menu before the merchant enables them.
//
// Deletion guards (an enabled dish, or one referenced by a combo, cannot be
// deleted) need cross-aggregate checks and are enforced by the command
// handlers before calling the repository.
type Dish struct {
	id          int64
	categoryID  int64
	name        string
	price       float64
	description string
	status      SaleStatus

	isConstructed bool
}

// DishSnapshot carries the persisted state of a dish.
type DishSnapshot struct {
	ID          int64
	CategoryID  int64
	Name        string
	Price       float64
	Description string
	Status      SaleStatus
}

// NewDish creates a dish in the OffSale state.
func NewDish(categoryID int64, name string, price float64, description string) (*Dish, error) {
	if categoryID <= 0 {
		return nil, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("dish name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("dish price")
	}

	return &Dish{
		categoryID:    categoryID,
		name:          name,
		price:         price,
		description:   description,
		status:        OffSale,
		isConstructed: true,
	}, nil
}

// RestoreDish reconstructs a dish from persistence.
func RestoreDish(s DishSnapshot) (*Dish, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("dish id")
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}

	return &Dish{
		id:            s.ID,
		categoryID:    s.CategoryID,
		name:          s.Name,
		price:         s.Price,
		description:   s.Description,
		status:        s.Status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Dish instance was properly constructed.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() int64           { return d.id }
func (d *Dish) CategoryID() int64   { return d.categoryID }
func (d *Dish) Name() string        { return d.name }
func (d *Dish) Price() float64      { return d.price }
func (d *Dish) Description() string { return d.description }
func (d *Dish) Status() SaleStatus  { return d.status }

// IsOnSale reports whether the dish is currently orderable.
func (d *Dish) IsOnSale() bool {
	return d.status == OnSale
}

// Update replaces the mutable attributes of the dish.
func (d *Dish) Update(categoryID int64, name string, price float64, description string) error {
	if categoryID <= 0 {
		return errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	if price < 0 {
		return errs.NewValueIsInvalidError("dish price")
	}

	d.categoryID = categoryID
	d.name = name
	d.price = price
	d.description = description
	return nil
}

// SetStatus toggles the sale state.
func (d *Dish) SetStatus(status SaleStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (d *Dish) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("dish id")
	}
	if d.id != 0 {
		return errs.NewValueIsInvalidError("dish id already assigned")
	}
	d.id = id
	return nil
}
