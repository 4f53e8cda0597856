package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves one page of a user's orders from the
// database, newest first.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the paged history query.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	where := "WHERE user_id = ?"
	args := []any{query.UserID()}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, *query.Status())
	}

	response := GetOrderHistoryQueryResponse{Orders: make([]OrderSummary, 0, query.PageSize())}

	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders "+where, args...,
	).Row().Scan(&response.Total)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			pay_status,
			amount,
			order_time
		FROM orders `+where+`
		ORDER BY order_time DESC, id DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummary
		err = rows.Scan(
			&summary.ID,
			&summary.Number,
			&summary.Status,
			&summary.PayStatus,
			&summary.Amount,
			&summary.OrderTime,
		)
		if err != nil {
			return GetOrderHistoryQueryResponse{}, err
		}
		response.Orders = append(response.Orders, summary)
	}

	if err = rows.Err(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	return response, nil
}
