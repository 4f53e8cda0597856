package order

import (
	"errors"
	"time"

	"takeout/internal/pkg/errs"
)

// Cancellation reasons recorded by the built-in cancel paths. Merchant
// cancellations carry a caller-supplied reason instead.
const (
	CancelReasonUser    = "cancelled by user"
	CancelReasonTimeout = "timeout"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. It owns every state
// transition from submission through payment, merchant confirmation,
// delivery, and completion or cancellation.
//
// Invariants maintained by the aggregate:
//   - status moves only along the transitions defined on Status
//   - payStatus == Paid implies checkoutTime is set
//   - status == Cancelled implies cancelTime is set and exactly one of
//     cancelReason/rejectionReason is non-empty
//   - the address snapshot and the detail lines never change after creation
//   - amount equals the sum of the detail line subtotals
type Order struct {
	id     int64
	number string
	userID int64

	status    Status
	payStatus PayStatus
	amount    float64

	// address snapshot captured at submission
	consignee string
	phone     string
	address   string

	orderTime    time.Time
	checkoutTime *time.Time
	cancelTime   *time.Time

	cancelReason    string
	rejectionReason string

	details []Detail

	// loadedStatus is the status the order was persisted with; repositories
	// use it as the optimistic guard for conditional updates.
	loadedStatus Status

	isConstructed bool
}

// Snapshot carries the complete persisted state of an order across the
// persistence boundary. Repositories restore aggregates from it via
// RestoreOrder.
type Snapshot struct {
	ID              int64
	Number          string
	UserID          int64
	Status          Status
	PayStatus       PayStatus
	Amount          float64
	Consignee       string
	Phone           string
	Address         string
	OrderTime       time.Time
	CheckoutTime    *time.Time
	CancelTime      *time.Time
	CancelReason    string
	RejectionReason string
	Details         []Detail
}

// NewOrder creates an order at submission time: status PendingPayment,
// payStatus Unpaid, amount derived from the detail lines. The identity is
// assigned by the repository on insert; the externally visible number must
// already be allocated by the caller.
func NewOrder(number string, userID int64, consignee, phone, address string,
	details []Detail, orderTime time.Time) (*Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if consignee == "" {
		return nil, errs.NewValueIsRequiredError("consignee")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}
	if len(details) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	var amount float64
	for _, d := range details {
		amount += d.Subtotal()
	}

	return &Order{
		number:        number,
		userID:        userID,
		status:        PendingPayment,
		payStatus:     Unpaid,
		amount:        amount,
		consignee:     consignee,
		phone:         phone,
		address:       address,
		orderTime:     orderTime,
		details:       append([]Detail(nil), details...),
		loadedStatus:  PendingPayment,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Status and payment
// state are validated so corrupt rows cannot become live aggregates.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	if err := s.PayStatus.Validate(); err != nil {
		return nil, err
	}
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if s.Number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	return &Order{
		id:              s.ID,
		number:          s.Number,
		userID:          s.UserID,
		status:          s.Status,
		payStatus:       s.PayStatus,
		amount:          s.Amount,
		consignee:       s.Consignee,
		phone:           s.Phone,
		address:         s.Address,
		orderTime:       s.OrderTime,
		checkoutTime:    s.CheckoutTime,
		cancelTime:      s.CancelTime,
		cancelReason:    s.CancelReason,
		rejectionReason: s.RejectionReason,
		details:         append([]Detail(nil), s.Details...),
		loadedStatus:    s.Status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64              { return o.id }
func (o *Order) Number() string         { return o.number }
func (o *Order) UserID() int64          { return o.userID }
func (o *Order) Status() Status         { return o.status }
func (o *Order) PayStatus() PayStatus   { return o.payStatus }
func (o *Order) Amount() float64        { return o.amount }
func (o *Order) Consignee() string      { return o.consignee }
func (o *Order) Phone() string          { return o.phone }
func (o *Order) Address() string        { return o.address }
func (o *Order) OrderTime() time.Time   { return o.orderTime }
func (o *Order) CheckoutTime() *time.Time { return o.checkoutTime }
func (o *Order) CancelTime() *time.Time   { return o.cancelTime }
func (o *Order) CancelReason() string     { return o.cancelReason }
func (o *Order) RejectionReason() string  { return o.rejectionReason }

// Details returns a copy of the immutable order lines.
func (o *Order) Details() []Detail {
	return append([]Detail(nil), o.details...)
}

// LoadedStatus returns the status the order carried when it was loaded from
// persistence. Conditional updates guard on it to serialize concurrent
// transitions on the same order.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (o *Order) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidError("order id already assigned")
	}
	o.id = id
	return nil
}

// MarkSynced records that the current in-memory state has been persisted,
// moving the optimistic guard forward. Called by repositories after a
// successful conditional update.
func (o *Order) MarkSynced() {
	o.loadedStatus = o.status
}

// MarkPaid applies the pay-success transition: ToBeConfirmed, Paid,
// checkout time set.
func (o *Order) MarkPaid(at time.Time) error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}
	if o.payStatus != Unpaid {
		return errs.NewStateConflictError("pay order", Unpaid.String(), o.payStatus.String())
	}

	o.status = next
	o.payStatus = Paid
	o.checkoutTime = &at
	return nil
}

// Confirm applies the merchant confirmation transition.
func (o *Order) Confirm() error {
	next, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Reject cancels an awaiting-confirmation order with a merchant rejection
// reason. An empty reason is rejected before any state change.
func (o *Order) Reject(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	next, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = next
	o.rejectionReason = reason
	o.cancelTime = &at
	return nil
}

// CancelByUser cancels the order on the user's request. Only allowed before
// the merchant has confirmed.
func (o *Order) CancelByUser(at time.Time) error {
	next, err := o.status.CancelByUser()
	if err != nil {
		return err
	}
	o.status = next
	o.cancelReason = CancelReasonUser
	o.cancelTime = &at
	return nil
}

// Cancel cancels the order with a caller-supplied reason (merchant action or
// timeout sweep). Allowed from any state before Completed.
func (o *Order) Cancel(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel reason")
	}
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	o.cancelReason = reason
	o.cancelTime = &at
	return nil
}

// Dispatch applies the delivery-start transition.
func (o *Order) Dispatch() error {
	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Complete applies the delivery-finished transition.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// NeedsRefund reports whether cancelling this order owes the user a refund.
func (o *Order) NeedsRefund() bool {
	return o.payStatus == Paid
}

// MarkRefunded records a successful refund of a paid order.
func (o *Order) MarkRefunded() error {
	if o.payStatus != Paid {
		return errs.NewStateConflictError("refund order", Paid.String(), o.payStatus.String())
	}
	o.payStatus = Refunded
	return nil
}
