package queries

import (
	"errors"
	"time"
)

var (
	ErrUserReportQueryIsNotConstructed = errors.New(
		"UserReportQuery must be created via NewUserReportQuery constructor",
	)
)

// UserReportQuery computes user growth per calendar day over an inclusive
// date range: users registered that day and the running total up to the end
// of that day.
type UserReportQuery struct {
	begin time.Time
	end   time.Time

	isConstructed bool
}

// NewUserReportQuery creates a user report query for [begin, end].
func NewUserReportQuery(begin, end time.Time) (UserReportQuery, error) {
	if err := validateReportRange(begin, end); err != nil {
		return UserReportQuery{}, err
	}
	return UserReportQuery{begin: begin, end: end, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q UserReportQuery) Validate() error {
	if !q.isConstructed {
		return ErrUserReportQueryIsNotConstructed
	}
	return nil
}

func (q UserReportQuery) Begin() time.Time { return q.begin }
func (q UserReportQuery) End() time.Time   { return q.end }

// UserReportRow is one day's user counts.
type UserReportRow struct {
	Date  string
	New   int64
	Total int64
}
