package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var ErrPaymentSucceededCommandIsNotConstructed = errors.New(
	"PaymentSucceededCommand must be created via NewPaymentSucceededCommand constructor",
)

// PaymentSucceededCommand represents a payment provider callback reporting
// a successful payment for the given order number.
type PaymentSucceededCommand struct {
	orderNumber string

	isConstructed bool
}

// NewPaymentSucceededCommand creates a command from a payment callback.
func NewPaymentSucceededCommand(orderNumber string) (PaymentSucceededCommand, error) {
	if orderNumber == "" {
		return PaymentSucceededCommand{}, errs.NewValueIsRequiredError("order number")
	}

	return PaymentSucceededCommand{
		orderNumber:   orderNumber,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PaymentSucceededCommand) Validate() error {
	if !c.isConstructed {
		return ErrPaymentSucceededCommandIsNotConstructed
	}
	return nil
}

// OrderNumber returns the externally visible order number from the callback.
func (c PaymentSucceededCommand) OrderNumber() string {
	return c.orderNumber
}
