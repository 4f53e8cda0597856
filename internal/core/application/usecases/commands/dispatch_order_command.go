package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents sending a confirmed order out for
// delivery.
type DispatchOrderCommand struct {
	orderID int64

	isConstructed bool
}

// NewDispatchOrderCommand creates a command to dispatch an order.
func NewDispatchOrderCommand(orderID int64) (DispatchOrderCommand, error) {
	if orderID <= 0 {
		return DispatchOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return DispatchOrderCommand{
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrDispatchOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order to dispatch.
func (c DispatchOrderCommand) OrderID() int64 {
	return c.orderID
}
