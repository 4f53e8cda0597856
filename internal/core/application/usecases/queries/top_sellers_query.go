package queries

import (
	"errors"
	"time"
)

var (
	ErrTopSellersQueryIsNotConstructed = errors.New(
		"TopSellersQuery must be created via NewTopSellersQuery constructor",
	)
)

// topSellersLimit caps the ranking length.
const topSellersLimit = 10

// TopSellersQuery ranks menu items by quantity sold in completed orders over
// an inclusive date range.
type TopSellersQuery struct {
	begin time.Time
	end   time.Time

	isConstructed bool
}

// NewTopSellersQuery creates a top sellers query for [begin, end].
func NewTopSellersQuery(begin, end time.Time) (TopSellersQuery, error) {
	if err := validateReportRange(begin, end); err != nil {
		return TopSellersQuery{}, err
	}
	return TopSellersQuery{begin: begin, end: end, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q TopSellersQuery) Validate() error {
	if !q.isConstructed {
		return ErrTopSellersQueryIsNotConstructed
	}
	return nil
}

func (q TopSellersQuery) Begin() time.Time { return q.begin }
func (q TopSellersQuery) End() time.Time   { return q.end }

// TopSellerRow is one ranked item. Items are ranked by quantity sold, with
// ties broken by name so the ranking is deterministic.
type TopSellerRow struct {
	Name     string
	Quantity int64
}
