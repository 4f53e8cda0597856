package queries

import (
	"context"

	"gorm.io/gorm"
)

// UserReportQueryHandler counts registered users per day. The running total
// includes users registered before the report range.
type UserReportQueryHandler struct {
	db *gorm.DB
}

// NewUserReportQueryHandler creates a handler for user reports.
func NewUserReportQueryHandler(db *gorm.DB) UserReportQueryHandler {
	return UserReportQueryHandler{db: db}
}

// Handle executes the user report query.
func (h UserReportQueryHandler) Handle(
	ctx context.Context,
	query UserReportQuery,
) ([]UserReportRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	days := reportDays(query.Begin(), query.End())
	report := make([]UserReportRow, 0, len(days))

	for _, day := range days {
		row := UserReportRow{Date: day.Format(reportDateFormat)}
		dayEnd := day.AddDate(0, 0, 1)

		err := h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM users
			WHERE created_at >= ? AND created_at < ?
		`, day, dayEnd).Row().Scan(&row.New)
		if err != nil {
			return nil, err
		}

		err = h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM users
			WHERE created_at < ?
		`, dayEnd).Row().Scan(&row.Total)
		if err != nil {
			return nil, err
		}

		report = append(report, row)
	}

	return report, nil
}
