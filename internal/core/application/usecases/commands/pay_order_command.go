package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to initiate payment for an order the
// user submitted earlier.
type PayOrderCommand struct {
	userID  int64
	orderID int64

	isConstructed bool
}

// NewPayOrderCommand creates a command to initiate payment.
func NewPayOrderCommand(userID, orderID int64) (PayOrderCommand, error) {
	if userID <= 0 {
		return PayOrderCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if orderID <= 0 {
		return PayOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return PayOrderCommand{
		userID:        userID,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrPayOrderCommandIsNotConstructed
	}
	return nil
}

// UserID returns the paying user's identifier.
func (c PayOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order to pay for.
func (c PayOrderCommand) OrderID() int64 {
	return c.orderID
}
