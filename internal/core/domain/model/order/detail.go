package order

import (
	"takeout/internal/pkg/errs"
)

// Detail is one order line: a name and unit-price snapshot of a dish or
// combo meal taken from the cart at submission time. Details are created in
// the same transaction as their order and never change afterwards; they
// serve fulfilment display, reporting aggregation, and reorder.
type Detail struct {
	DishID   *int64
	ComboID  *int64
	Name     string
	Price    float64
	Quantity int
}

// NewDetail creates a validated order line. Exactly one of dishID/comboID
// must be set.
func NewDetail(dishID, comboID *int64, name string, price float64, quantity int) (Detail, error) {
	if (dishID == nil) == (comboID == nil) {
		return Detail{}, errs.NewValueIsInvalidError("order line item reference")
	}
	if name == "" {
		return Detail{}, errs.NewValueIsRequiredError("order line name")
	}
	if price < 0 {
		return Detail{}, errs.NewValueIsInvalidError("order line price")
	}
	if quantity <= 0 {
		return Detail{}, errs.NewValueIsInvalidError("order line quantity")
	}
	return Detail{
		DishID:   dishID,
		ComboID:  comboID,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// Subtotal returns the line amount.
func (d Detail) Subtotal() float64 {
	return d.Price * float64(d.Quantity)
}
