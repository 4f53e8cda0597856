package ports

import (
	"context"
)

// PrepayTicket is the client-side payment material returned when a payment
// is initiated. The frontend hands it to the payment SDK.
type PrepayTicket struct {
	PrepayID  string
	NonceStr  string
	Timestamp string
	Signature string
}

// PaymentProvider defines the contract for the external payment service.
// Failures are reported as ExternalProviderError; a refund failure must not
// be treated as fatal by callers that have already committed a cancellation.
type PaymentProvider interface {
	// CreatePrepay initiates a payment for the given order number and
	// amount and returns the material the client needs to complete it.
	CreatePrepay(ctx context.Context, orderNumber string, amount float64) (PrepayTicket, error)

	// Refund returns the paid amount for the given order number.
	Refund(ctx context.Context, orderNumber string, amount float64) error
}
