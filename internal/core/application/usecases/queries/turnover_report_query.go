package queries

import (
	"errors"
	"time"
)

var (
	ErrTurnoverReportQueryIsNotConstructed = errors.New(
		"TurnoverReportQuery must be created via NewTurnoverReportQuery constructor",
	)
)

// TurnoverReportQuery computes the turnover of completed orders per calendar
// day over an inclusive date range.
type TurnoverReportQuery struct {
	begin time.Time
	end   time.Time

	isConstructed bool
}

// NewTurnoverReportQuery creates a turnover report query for [begin, end].
func NewTurnoverReportQuery(begin, end time.Time) (TurnoverReportQuery, error) {
	if err := validateReportRange(begin, end); err != nil {
		return TurnoverReportQuery{}, err
	}
	return TurnoverReportQuery{begin: begin, end: end, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q TurnoverReportQuery) Validate() error {
	if !q.isConstructed {
		return ErrTurnoverReportQueryIsNotConstructed
	}
	return nil
}

func (q TurnoverReportQuery) Begin() time.Time { return q.begin }
func (q TurnoverReportQuery) End() time.Time   { return q.end }

// TurnoverReportRow is one day's turnover. Days without completed orders are
// included with a zero turnover.
type TurnoverReportRow struct {
	Date     string
	Turnover float64
}
