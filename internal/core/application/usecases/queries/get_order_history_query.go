package queries

import (
	"errors"
	"math"
	"time"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

const maxHistoryPageSize = 100

// GetOrderHistoryQuery retrieves a page of one user's orders, newest first,
// optionally narrowed to a single status.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(userID, nil, 1, 10)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type GetOrderHistoryQuery struct {
	userID   int64
	status   *order.Status
	page     int
	pageSize int

	isConstructed bool
}

// NewGetOrderHistoryQuery creates a paged order history query. Pass a nil
// status to include orders in every state.
func NewGetOrderHistoryQuery(userID int64, status *order.Status, page, pageSize int) (GetOrderHistoryQuery, error) {
	if userID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidError("user id")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrderHistoryQuery{}, err
		}
	}
	if page < 1 {
		return GetOrderHistoryQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt)
	}
	if pageSize < 1 || pageSize > maxHistoryPageSize {
		return GetOrderHistoryQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxHistoryPageSize)
	}

	return GetOrderHistoryQuery{
		userID:        userID,
		status:        status,
		page:          page,
		pageSize:      pageSize,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrderHistoryQueryIsNotConstructed
	}
	return nil
}

func (q GetOrderHistoryQuery) UserID() int64         { return q.userID }
func (q GetOrderHistoryQuery) Status() *order.Status { return q.status }
func (q GetOrderHistoryQuery) Page() int             { return q.page }
func (q GetOrderHistoryQuery) PageSize() int         { return q.pageSize }

// OrderSummary is one row of the order history listing.
type OrderSummary struct {
	ID        int64
	Number    string
	Status    order.Status
	PayStatus order.PayStatus
	Amount    float64
	OrderTime time.Time
}

// GetOrderHistoryQueryResponse is one page of the history plus the total
// number of matching orders.
type GetOrderHistoryQueryResponse struct {
	Total  int64
	Orders []OrderSummary
}
