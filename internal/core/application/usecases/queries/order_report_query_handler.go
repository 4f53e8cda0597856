package queries

import (
	"context"

	"takeout/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderReportQueryHandler counts placed and completed orders per day.
type OrderReportQueryHandler struct {
	db *gorm.DB
}

// NewOrderReportQueryHandler creates a handler for order reports.
func NewOrderReportQueryHandler(db *gorm.DB) OrderReportQueryHandler {
	return OrderReportQueryHandler{db: db}
}

// Handle executes the order report query.
func (h OrderReportQueryHandler) Handle(
	ctx context.Context,
	query OrderReportQuery,
) (OrderReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderReportQueryResponse{}, err
	}

	days := reportDays(query.Begin(), query.End())
	response := OrderReportQueryResponse{Rows: make([]OrderReportRow, 0, len(days))}

	for _, day := range days {
		row := OrderReportRow{Date: day.Format(reportDateFormat)}
		dayEnd := day.AddDate(0, 0, 1)

		err := h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM orders
			WHERE order_time >= ? AND order_time < ?
		`, day, dayEnd).Row().Scan(&row.Total)
		if err != nil {
			return OrderReportQueryResponse{}, err
		}

		err = h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM orders
			WHERE status = ? AND order_time >= ? AND order_time < ?
		`, order.Completed, day, dayEnd).Row().Scan(&row.Valid)
		if err != nil {
			return OrderReportQueryResponse{}, err
		}

		response.Rows = append(response.Rows, row)
		response.TotalOrders += row.Total
		response.ValidOrders += row.Valid
	}

	if response.TotalOrders > 0 {
		response.CompletionRate = float64(response.ValidOrders) / float64(response.TotalOrders)
	}

	return response, nil
}
