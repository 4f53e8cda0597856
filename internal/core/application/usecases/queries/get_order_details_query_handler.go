package queries

import (
	"context"
	"database/sql"
	"errors"

	"takeout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves a single order with its lines. An
// order of another user is reported as not found rather than forbidden, so
// the response does not reveal that the order exists.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order details queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the order details query.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var response GetOrderDetailsQueryResponse
	var checkoutTime, cancelTime sql.NullTime

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			user_id,
			status,
			pay_status,
			amount,
			consignee,
			phone,
			address,
			cancel_reason,
			rejection_reason,
			order_time,
			checkout_time,
			cancel_time
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row().Scan(
		&response.ID,
		&response.Number,
		&response.UserID,
		&response.Status,
		&response.PayStatus,
		&response.Amount,
		&response.Consignee,
		&response.Phone,
		&response.Address,
		&response.CancelReason,
		&response.RejectionReason,
		&response.OrderTime,
		&checkoutTime,
		&cancelTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if query.UserID() != nil && response.UserID != *query.UserID() {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	if checkoutTime.Valid {
		response.CheckoutTime = &checkoutTime.Time
	}
	if cancelTime.Valid {
		response.CancelTime = &cancelTime.Time
	}

	response.Lines, err = h.readLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderDetailsQueryHandler) readLines(ctx context.Context, orderID int64) ([]OrderLine, error) {
	lines := make([]OrderLine, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dish_id,
			combo_id,
			name,
			price,
			quantity
		FROM order_details
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLine
		var dishID, comboID sql.NullInt64

		err = rows.Scan(&dishID, &comboID, &line.Name, &line.Price, &line.Quantity)
		if err != nil {
			return nil, err
		}

		if dishID.Valid {
			line.DishID = &dishID.Int64
		}
		if comboID.Valid {
			line.ComboID = &comboID.Int64
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
