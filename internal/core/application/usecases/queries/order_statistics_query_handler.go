package queries

import (
	"context"

	"takeout/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler counts in-flight orders per status for the
// merchant dashboard.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for order statistics.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the statistics query.
func (h GetOrderStatisticsQueryHandler) Handle(ctx context.Context, _ GetOrderStatisticsQuery) (GetOrderStatisticsQueryResponse, error) {
	var response GetOrderStatisticsQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE status IN (?, ?, ?)
		GROUP BY status
	`, int(order.ToBeConfirmed), int(order.Confirmed), int(order.DeliveryInProgress)).Rows()
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status order.Status
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatisticsQueryResponse{}, err
		}

		switch status {
		case order.ToBeConfirmed:
			response.ToBeConfirmed = count
		case order.Confirmed:
			response.Confirmed = count
		case order.DeliveryInProgress:
			response.DeliveryInProgress = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	return response, nil
}
