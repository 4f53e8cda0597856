package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to turn the user's cart into an
// order delivered to one of their address book entries.
type SubmitOrderCommand struct {
	userID    int64
	addressID int64

	isConstructed bool
}

// NewSubmitOrderCommand creates a command to submit the user's cart.
func NewSubmitOrderCommand(userID, addressID int64) (SubmitOrderCommand, error) {
	if userID <= 0 {
		return SubmitOrderCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if addressID <= 0 {
		return SubmitOrderCommand{}, errs.NewValueIsInvalidError("address id")
	}

	return SubmitOrderCommand{
		userID:        userID,
		addressID:     addressID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrSubmitOrderCommandIsNotConstructed
	}
	return nil
}

// UserID returns the submitting user's identifier.
func (c SubmitOrderCommand) UserID() int64 {
	return c.userID
}

// AddressID returns the address book entry to deliver to.
func (c SubmitOrderCommand) AddressID() int64 {
	return c.addressID
}

// SubmitOrderResult reports the created order back to the caller.
type SubmitOrderResult struct {
	OrderID int64
	Number  string
	Amount  float64
}
