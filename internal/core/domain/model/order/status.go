package order

import (
	"takeout/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PendingPayment ──> ToBeConfirmed ──> Confirmed ──> DeliveryInProgress ──> Completed
//	       │                 │               │                  │
//	       └────────────┬────┴───────────────┴──────────────────┘
//	                    v
//	                Cancelled
//
// Cancelled is reachable from every state before Completed. The numeric
// values 1-6 are stable and stored as-is; their total order supports range
// checks such as "at or past Confirmed".
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// PendingPayment is the initial status assigned at submission.
	PendingPayment

	// ToBeConfirmed indicates payment completed, awaiting the merchant.
	ToBeConfirmed

	// Confirmed indicates the merchant accepted the order.
	Confirmed

	// DeliveryInProgress indicates the order is out for delivery.
	DeliveryInProgress

	// Completed is a final state: the order was delivered.
	Completed

	// Cancelled is a final state reachable from any pre-Completed state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		PendingPayment:     "Pending payment",
		ToBeConfirmed:      "To be confirmed",
		Confirmed:          "Confirmed",
		DeliveryInProgress: "Delivery in progress",
		Completed:          "Completed",
		Cancelled:          "Cancelled",
	}
}

// Validate checks that the Status value is one of the six defined states.
func (s Status) Validate() error {
	if s < PendingPayment || s > Cancelled {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(PendingPayment), int(Cancelled))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// Pay transitions the status to ToBeConfirmed on payment success.
// Only PendingPayment orders can be paid.
func (s Status) Pay() (Status, error) {
	if s != PendingPayment {
		return 0, errs.NewStateConflictError("pay order", PendingPayment.String(), s.String())
	}
	return ToBeConfirmed, nil
}

// Confirm transitions the status to Confirmed (merchant accepted).
func (s Status) Confirm() (Status, error) {
	if s != ToBeConfirmed {
		return 0, errs.NewStateConflictError("confirm order", ToBeConfirmed.String(), s.String())
	}
	return Confirmed, nil
}

// Reject transitions the status to Cancelled for a merchant rejection.
// Rejection is only allowed while the order awaits confirmation.
func (s Status) Reject() (Status, error) {
	if s != ToBeConfirmed {
		return 0, errs.NewStateConflictError("reject order", ToBeConfirmed.String(), s.String())
	}
	return Cancelled, nil
}

// CancelByUser transitions the status to Cancelled for a user cancellation.
// Once the merchant has confirmed, users can no longer cancel directly.
func (s Status) CancelByUser() (Status, error) {
	if s != PendingPayment && s != ToBeConfirmed {
		return 0, errs.NewStateConflictError("cancel order",
			"before "+Confirmed.String(), s.String())
	}
	return Cancelled, nil
}

// Cancel transitions the status to Cancelled for a merchant or sweeper
// cancellation. Allowed from any state before Completed.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsFinal() {
		return 0, errs.NewStateConflictError("cancel order",
			"before "+Completed.String(), s.String())
	}
	return Cancelled, nil
}

// Dispatch transitions the status to DeliveryInProgress.
func (s Status) Dispatch() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewStateConflictError("dispatch order", Confirmed.String(), s.String())
	}
	return DeliveryInProgress, nil
}

// Complete transitions the status to Completed.
func (s Status) Complete() (Status, error) {
	if s != DeliveryInProgress {
		return 0, errs.NewStateConflictError("complete order", DeliveryInProgress.String(), s.String())
	}
	return Completed, nil
}
