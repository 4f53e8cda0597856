package queries

import (
	"context"

	"takeout/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// TurnoverReportQueryHandler sums the amounts of completed orders per day.
// Only completed orders count towards turnover: cancelled and refunded
// orders earn nothing.
type TurnoverReportQueryHandler struct {
	db *gorm.DB
}

// NewTurnoverReportQueryHandler creates a handler for turnover reports.
func NewTurnoverReportQueryHandler(db *gorm.DB) TurnoverReportQueryHandler {
	return TurnoverReportQueryHandler{db: db}
}

// Handle executes the turnover report query.
func (h TurnoverReportQueryHandler) Handle(
	ctx context.Context,
	query TurnoverReportQuery,
) ([]TurnoverReportRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	days := reportDays(query.Begin(), query.End())
	report := make([]TurnoverReportRow, 0, len(days))

	for _, day := range days {
		var turnover float64
		err := h.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(amount), 0)
			FROM orders
			WHERE status = ? AND order_time >= ? AND order_time < ?
		`, order.Completed, day, day.AddDate(0, 0, 1)).Row().Scan(&turnover)
		if err != nil {
			return nil, err
		}

		report = append(report, TurnoverReportRow{
			Date:     day.Format(reportDateFormat),
			Turnover: turnover,
		})
	}

	return report, nil
}
