package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a merchant's refusal of an order awaiting
// confirmation. A rejection reason is mandatory.
type RejectOrderCommand struct {
	orderID int64
	reason  string

	isConstructed bool
}

// NewRejectOrderCommand creates a command to reject an order.
func NewRejectOrderCommand(orderID int64, reason string) (RejectOrderCommand, error) {
	if orderID <= 0 {
		return RejectOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}
	if reason == "" {
		return RejectOrderCommand{}, errs.NewValueIsRequiredError("rejection reason")
	}

	return RejectOrderCommand{
		orderID:       orderID,
		reason:        reason,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrRejectOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the order to reject.
func (c RejectOrderCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the merchant's rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}
