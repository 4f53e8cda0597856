package queries

import (
	"errors"
	"time"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery retrieves one order with its lines. When a user id is
// given, the order must belong to that user; a nil user id reads any order
// and is meant for the merchant side.
type GetOrderDetailsQuery struct {
	orderID int64
	userID  *int64

	isConstructed bool
}

// NewGetOrderDetailsQuery creates an order details query scoped to the given
// user, or unscoped when userID is nil.
func NewGetOrderDetailsQuery(orderID int64, userID *int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidError("order id")
	}
	if userID != nil && *userID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidError("user id")
	}

	return GetOrderDetailsQuery{orderID: orderID, userID: userID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrderDetailsQueryIsNotConstructed
	}
	return nil
}

func (q GetOrderDetailsQuery) OrderID() int64 { return q.orderID }
func (q GetOrderDetailsQuery) UserID() *int64 { return q.userID }

// OrderLine is one purchased item of an order.
type OrderLine struct {
	DishID   *int64
	ComboID  *int64
	Name     string
	Price    float64
	Quantity int
}

// GetOrderDetailsQueryResponse is the full view of one order.
type GetOrderDetailsQueryResponse struct {
	ID              int64
	Number          string
	UserID          int64
	Status          order.Status
	PayStatus       order.PayStatus
	Amount          float64
	Consignee       string
	Phone           string
	Address         string
	CancelReason    string
	RejectionReason string
	OrderTime       time.Time
	CheckoutTime    *time.Time
	CancelTime      *time.Time
	Lines           []OrderLine
}
