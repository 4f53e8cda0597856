package cart

import (
	"errors"
	"time"

	"takeout/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one line of a user's shopping cart: a dish or combo reference with
// a name and unit-price snapshot taken when the item was added. Adding the
// same item again increments the quantity instead of creating a second line.
type Item struct {
	id       int64
	userID   int64
	dishID   *int64
	comboID  *int64
	name     string
	price    float64
	quantity int
	addedAt  time.Time

	isConstructed bool
}

// ItemSnapshot carries the persisted state of a cart line.
type ItemSnapshot struct {
	ID       int64
	UserID   int64
	DishID   *int64
	ComboID  *int64
	Name     string
	Price    float64
	Quantity int
	AddedAt  time.Time
}

// NewItem creates a cart line with quantity 1. Exactly one of dishID/comboID
// must be set.
func NewItem(userID int64, dishID, comboID *int64, name string, price float64,
	addedAt time.Time) (*Item, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if (dishID == nil) == (comboID == nil) {
		return nil, errs.NewValueIsInvalidError("cart item reference")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("cart item name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("cart item price")
	}

	return &Item{
		userID:        userID,
		dishID:        dishID,
		comboID:       comboID,
		name:          name,
		price:         price,
		quantity:      1,
		addedAt:       addedAt,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a cart line from persistence.
func RestoreItem(s ItemSnapshot) (*Item, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("cart item id")
	}
	if s.Quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("cart item quantity")
	}

	return &Item{
		id:            s.ID,
		userID:        s.UserID,
		dishID:        s.DishID,
		comboID:       s.ComboID,
		name:          s.Name,
		price:         s.Price,
		quantity:      s.Quantity,
		addedAt:       s.AddedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() int64         { return i.id }
func (i *Item) UserID() int64     { return i.userID }
func (i *Item) DishID() *int64    { return i.dishID }
func (i *Item) ComboID() *int64   { return i.comboID }
func (i *Item) Name() string      { return i.name }
func (i *Item) Price() float64    { return i.price }
func (i *Item) Quantity() int     { return i.quantity }
func (i *Item) AddedAt() time.Time { return i.addedAt }

// Subtotal returns the line amount.
func (i *Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

// SameItem reports whether this line references the same dish or combo as
// the given references.
func (i *Item) SameItem(dishID, comboID *int64) bool {
	if i.dishID != nil && dishID != nil {
		return *i.dishID == *dishID
	}
	if i.comboID != nil && comboID != nil {
		return *i.comboID == *comboID
	}
	return false
}

// Increment adds one to the quantity.
func (i *Item) Increment() {
	i.quantity++
}

// AddQuantity adds n to the quantity. Used when merging a reordered line
// into an existing one.
func (i *Item) AddQuantity(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity += n
	return nil
}

// Decrement removes one from the quantity and reports whether the line is
// now empty and should be removed.
func (i *Item) Decrement() bool {
	i.quantity--
	return i.quantity <= 0
}

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (i *Item) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("cart item id")
	}
	if i.id != 0 {
		return errs.NewValueIsInvalidError("cart item id already assigned")
	}
	i.id = id
	return nil
}
