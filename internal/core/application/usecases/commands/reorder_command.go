package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand represents copying the lines of a past order back into the
// user's cart.
type ReorderCommand struct {
	userID  int64
	orderID int64

	isConstructed bool
}

// NewReorderCommand creates a command to repeat a past order.
func NewReorderCommand(userID, orderID int64) (ReorderCommand, error) {
	if userID <= 0 {
		return ReorderCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if orderID <= 0 {
		return ReorderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return ReorderCommand{
		userID:        userID,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderCommand) Validate() error {
	if !c.isConstructed {
		return ErrReorderCommandIsNotConstructed
	}
	return nil
}

// UserID returns the reordering user's identifier.
func (c ReorderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the past order to copy.
func (c ReorderCommand) OrderID() int64 {
	return c.orderID
}
