package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrAdminCancelOrderCommandIsNotConstructed = errors.New(
	"AdminCancelOrderCommand must be created via NewAdminCancelOrderCommand constructor",
)

// AdminCancelOrderCommand represents a merchant's request to cancel an order
// with a stated reason. Allowed in any state before completion.
type AdminCancelOrderCommand struct {
	orderID int64
	reason  string

	isConstructed bool
}

// NewAdminCancelOrderCommand creates a command to cancel an order on the
// merchant's behalf.
func NewAdminCancelOrderCommand(orderID int64, reason string) (AdminCancelOrderCommand, error) {
	if orderID <= 0 {
		return AdminCancelOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}
	if reason == "" {
		return AdminCancelOrderCommand{}, errs.NewValueIsRequiredError("cancel reason")
	}

	return AdminCancelOrderCommand{
		orderID:       orderID,
		reason:        reason,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminCancelOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrAdminCancelOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order to cancel.
func (c AdminCancelOrderCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the merchant's cancellation reason.
func (c AdminCancelOrderCommand) Reason() string {
	return c.reason
}
