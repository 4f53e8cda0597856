package catalog

import (
	"errors"

	"takeout/internal/pkg/errs"
)

// ErrComboIsNotConstructed is returned when a Combo instance was not created
// through NewCombo or RestoreCombo.
var ErrComboIsNotConstructed = errors.New("Combo must be created via NewCombo or RestoreCombo")

// ComboDish is one dish included in a combo, with the quantity bundled.
type ComboDish struct {
	DishID   int64
	Quantity int
}

// Combo is a fixed bundle of dishes sold at a single price. A combo can only
// be put on sale while every bundled dish is on sale; the handler performs
// that check and calls Enable with the result.
type Combo struct {
	id          int64
	categoryID  int64
	name        string
	price       float64
	description string
	status      SaleStatus
	dishes      []ComboDish

	isConstructed bool
}

// ComboSnapshot carries the persisted state of a combo.
type ComboSnapshot struct {
	ID          int64
	CategoryID  int64
	Name        string
	Price       float64
	Description string
	Status      SaleStatus
	Dishes      []ComboDish
}

// NewCombo creates a combo in the OffSale state. A combo must bundle at
// least one dish.
func NewCombo(categoryID int64, name string, price float64, description string,
	dishes []ComboDish) (*Combo, error) {
	if categoryID <= 0 {
		return nil, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("combo name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("combo price")
	}
	if len(dishes) == 0 {
		return nil, errs.NewValueIsRequiredError("combo dishes")
	}
	for _, d := range dishes {
		if d.DishID <= 0 {
			return nil, errs.NewValueIsInvalidError("combo dish id")
		}
		if d.Quantity <= 0 {
			return nil, errs.NewValueIsInvalidError("combo dish quantity")
		}
	}

	return &Combo{
		categoryID:    categoryID,
		name:          name,
		price:         price,
		description:   description,
		status:        OffSale,
		dishes:        append([]ComboDish(nil), dishes...),
		isConstructed: true,
	}, nil
}

// RestoreCombo reconstructs a combo from persistence.
func RestoreCombo(s ComboSnapshot) (*Combo, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("combo id")
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}

	return &Combo{
		id:            s.ID,
		categoryID:    s.CategoryID,
		name:          s.Name,
		price:         s.Price,
		description:   s.Description,
		status:        s.Status,
		dishes:        append([]ComboDish(nil), s.Dishes...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Combo instance was properly constructed.
func (c *Combo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComboIsNotConstructed
	}
	return nil
}

func (c *Combo) ID() int64           { return c.id }
func (c *Combo) CategoryID() int64   { return c.categoryID }
func (c *Combo) Name() string        { return c.name }
func (c *Combo) Price() float64      { return c.price }
func (c *Combo) Description() string { return c.description }
func (c *Combo) Status() SaleStatus  { return c.status }

// Dishes returns a copy of the bundled dish references.
func (c *Combo) Dishes() []ComboDish {
	return append([]ComboDish(nil), c.dishes...)
}

// IsOnSale reports whether the combo is currently orderable.
func (c *Combo) IsOnSale() bool {
	return c.status == OnSale
}

// Update replaces the mutable attributes of the combo.
func (c *Combo) Update(categoryID int64, name string, price float64, description string,
	dishes []ComboDish) error {
	if categoryID <= 0 {
		return errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("combo name")
	}
	if price < 0 {
		return errs.NewValueIsInvalidError("combo price")
	}
	if len(dishes) == 0 {
		return errs.NewValueIsRequiredError("combo dishes")
	}

	c.categoryID = categoryID
	c.name = name
	c.price = price
	c.description = description
	c.dishes = append([]ComboDish(nil), dishes...)
	return nil
}

// Enable puts the combo on sale. The caller must have verified that every
// bundled dish is on sale and pass the result in allDishesOnSale.
func (c *Combo) Enable(allDishesOnSale bool) error {
	if !allDishesOnSale {
		return errs.NewStateConflictError("enable combo",
			"all bundled dishes "+OnSale.String(), OffSale.String())
	}
	c.status = OnSale
	return nil
}

// Disable takes the combo off sale.
func (c *Combo) Disable() {
	c.status = OffSale
}

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (c *Combo) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("combo id")
	}
	if c.id != 0 {
		return errs.NewValueIsInvalidError("combo id already assigned")
	}
	c.id = id
	return nil
}
