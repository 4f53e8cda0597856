package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the merchant accepting an order that
// awaits confirmation.
type ConfirmOrderCommand struct {
	orderID int64

	isConstructed bool
}

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(orderID int64) (ConfirmOrderCommand, error) {
	if orderID <= 0 {
		return ConfirmOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return ConfirmOrderCommand{
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrConfirmOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order to confirm.
func (c ConfirmOrderCommand) OrderID() int64 {
	return c.orderID
}
