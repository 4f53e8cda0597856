package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents finishing a delivery in progress.
type CompleteOrderCommand struct {
	orderID int64

	isConstructed bool
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(orderID int64) (CompleteOrderCommand, error) {
	if orderID <= 0 {
		return CompleteOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return CompleteOrderCommand{
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrCompleteOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}
