package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrUserCancelOrderCommandIsNotConstructed = errors.New(
	"UserCancelOrderCommand must be created via NewUserCancelOrderCommand constructor",
)

// UserCancelOrderCommand represents a user's request to cancel their own
// order before the merchant has confirmed it.
type UserCancelOrderCommand struct {
	userID  int64
	orderID int64

	isConstructed bool
}

// NewUserCancelOrderCommand creates a command to cancel the user's order.
func NewUserCancelOrderCommand(userID, orderID int64) (UserCancelOrderCommand, error) {
	if userID <= 0 {
		return UserCancelOrderCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if orderID <= 0 {
		return UserCancelOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return UserCancelOrderCommand{
		userID:        userID,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UserCancelOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrUserCancelOrderCommandIsNotConstructed
	}
	return nil
}

// UserID returns the cancelling user's identifier.
func (c UserCancelOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order to cancel.
func (c UserCancelOrderCommand) OrderID() int64 {
	return c.orderID
}
