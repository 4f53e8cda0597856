package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrRemindOrderCommandIsNotConstructed = errors.New(
	"RemindOrderCommand must be created via NewRemindOrderCommand constructor",
)

// RemindOrderCommand represents a user poking the merchant about an order
// that is taking too long.
type RemindOrderCommand struct {
	userID  int64
	orderID int64

	isConstructed bool
}

// NewRemindOrderCommand creates a reminder command.
func NewRemindOrderCommand(userID, orderID int64) (RemindOrderCommand, error) {
	if userID <= 0 {
		return RemindOrderCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if orderID <= 0 {
		return RemindOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return RemindOrderCommand{
		userID:        userID,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrRemindOrderCommandIsNotConstructed
	}
	return nil
}

// UserID returns the reminding user's identifier.
func (c RemindOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order being reminded about.
func (c RemindOrderCommand) OrderID() int64 {
	return c.orderID
}
