package queries

import (
	"errors"
	"time"
)

var (
	ErrOrderReportQueryIsNotConstructed = errors.New(
		"OrderReportQuery must be created via NewOrderReportQuery constructor",
	)
)

// OrderReportQuery computes order counts per calendar day over an inclusive
// date range: all orders placed that day and the completed ("valid") subset.
type OrderReportQuery struct {
	begin time.Time
	end   time.Time

	isConstructed bool
}

// NewOrderReportQuery creates an order report query for [begin, end].
func NewOrderReportQuery(begin, end time.Time) (OrderReportQuery, error) {
	if err := validateReportRange(begin, end); err != nil {
		return OrderReportQuery{}, err
	}
	return OrderReportQuery{begin: begin, end: end, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderReportQuery) Validate() error {
	if !q.isConstructed {
		return ErrOrderReportQueryIsNotConstructed
	}
	return nil
}

func (q OrderReportQuery) Begin() time.Time { return q.begin }
func (q OrderReportQuery) End() time.Time   { return q.end }

// OrderReportRow is one day's order counts.
type OrderReportRow struct {
	Date  string
	Total int64
	Valid int64
}

// OrderReportQueryResponse is the per-day breakdown plus range totals. The
// completion rate is zero when the range holds no orders at all.
type OrderReportQueryResponse struct {
	Rows           []OrderReportRow
	TotalOrders    int64
	ValidOrders    int64
	CompletionRate float64
}
