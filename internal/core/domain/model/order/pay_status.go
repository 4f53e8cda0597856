package order

import (
	"takeout/internal/pkg/errs"
)

// PayStatus represents the payment state of an order. The numeric values
// 0-2 are stable and stored as-is.
type PayStatus int

const (
	// Unpaid is the initial payment state.
	Unpaid PayStatus = iota

	// Paid indicates the payment provider reported success.
	Paid

	// Refunded indicates a successful refund after cancellation.
	Refunded
)

// Validate checks that the PayStatus value is one of the defined states.
func (p PayStatus) Validate() error {
	if p < Unpaid || p > Refunded {
		return errs.NewValueIsOutOfRangeError("pay status", int(p), int(Unpaid), int(Refunded))
	}
	return nil
}

// String returns the human-readable name of the payment state.
func (p PayStatus) String() string {
	switch p {
	case Unpaid:
		return "Unpaid"
	case Paid:
		return "Paid"
	case Refunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}
