package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrRemoveFromCartCommandIsNotConstructed = errors.New(
		"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
	)
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// validateCartItemRef checks the shared dish-or-combo reference rule of the
// cart commands.
func validateCartItemRef(dishID, comboID *int64) error {
	if (dishID == nil) == (comboID == nil) {
		return errs.NewValueIsInvalidError("cart item reference")
	}
	if dishID != nil && *dishID <= 0 {
		return errs.NewValueIsInvalidError("dish id")
	}
	if comboID != nil && *comboID <= 0 {
		return errs.NewValueIsInvalidError("combo id")
	}
	return nil
}

// AddToCartCommand represents adding one dish or combo to the user's cart.
// Adding an item already in the cart increments its quantity.
type AddToCartCommand struct {
	userID  int64
	dishID  *int64
	comboID *int64

	isConstructed bool
}

// NewAddToCartCommand creates a command to add a menu item to the cart.
// Exactly one of dishID/comboID must be set.
func NewAddToCartCommand(userID int64, dishID, comboID *int64) (AddToCartCommand, error) {
	if userID <= 0 {
		return AddToCartCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if err := validateCartItemRef(dishID, comboID); err != nil {
		return AddToCartCommand{}, err
	}

	return AddToCartCommand{
		userID:        userID,
		dishID:        dishID,
		comboID:       comboID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	if !c.isConstructed {
		return ErrAddToCartCommandIsNotConstructed
	}
	return nil
}

// UserID returns the cart owner's identifier.
func (c AddToCartCommand) UserID() int64 { return c.userID }

// DishID returns the referenced dish, if any.
func (c AddToCartCommand) DishID() *int64 { return c.dishID }

// ComboID returns the referenced combo, if any.
func (c AddToCartCommand) ComboID() *int64 { return c.comboID }

// RemoveFromCartCommand represents removing one unit of a dish or combo
// from the user's cart. The line disappears when its quantity reaches zero.
type RemoveFromCartCommand struct {
	userID  int64
	dishID  *int64
	comboID *int64

	isConstructed bool
}

// NewRemoveFromCartCommand creates a command to remove one unit from the cart.
func NewRemoveFromCartCommand(userID int64, dishID, comboID *int64) (RemoveFromCartCommand, error) {
	if userID <= 0 {
		return RemoveFromCartCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if err := validateCartItemRef(dishID, comboID); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return RemoveFromCartCommand{
		userID:        userID,
		dishID:        dishID,
		comboID:       comboID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	if !c.isConstructed {
		return ErrRemoveFromCartCommandIsNotConstructed
	}
	return nil
}

// UserID returns the cart owner's identifier.
func (c RemoveFromCartCommand) UserID() int64 { return c.userID }

// DishID returns the referenced dish, if any.
func (c RemoveFromCartCommand) DishID() *int64 { return c.dishID }

// ComboID returns the referenced combo, if any.
func (c RemoveFromCartCommand) ComboID() *int64 { return c.comboID }

// ClearCartCommand represents emptying the user's cart.
type ClearCartCommand struct {
	userID int64

	isConstructed bool
}

// NewClearCartCommand creates a command to empty the cart.
func NewClearCartCommand(userID int64) (ClearCartCommand, error) {
	if userID <= 0 {
		return ClearCartCommand{}, errs.NewValueIsInvalidError("user id")
	}

	return ClearCartCommand{
		userID:        userID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	if !c.isConstructed {
		return ErrClearCartCommandIsNotConstructed
	}
	return nil
}

// UserID returns the cart owner's identifier.
func (c ClearCartCommand) UserID() int64 { return c.userID }
