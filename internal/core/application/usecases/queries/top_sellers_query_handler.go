package queries

import (
	"context"

	"takeout/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// TopSellersQueryHandler ranks the ten best-selling items of completed
// orders. Lines are grouped by the name snapshotted at order time, so a
// renamed dish counts as two items across the rename.
type TopSellersQueryHandler struct {
	db *gorm.DB
}

// NewTopSellersQueryHandler creates a handler for top seller rankings.
func NewTopSellersQueryHandler(db *gorm.DB) TopSellersQueryHandler {
	return TopSellersQueryHandler{db: db}
}

// Handle executes the top sellers query.
func (h TopSellersQueryHandler) Handle(
	ctx context.Context,
	query TopSellersQuery,
) ([]TopSellerRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ranking := make([]TopSellerRow, 0, topSellersLimit)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.name,
			SUM(d.quantity) AS sold
		FROM order_details d
		JOIN orders o ON o.id = d.order_id
		WHERE o.status = ? AND o.order_time >= ? AND o.order_time < ?
		GROUP BY d.name
		ORDER BY sold DESC, d.name
		LIMIT ?
	`, order.Completed, startOfDay(query.Begin()), startOfDay(query.End()).AddDate(0, 0, 1),
		topSellersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row TopSellerRow
		if err = rows.Scan(&row.Name, &row.Quantity); err != nil {
			return nil, err
		}
		ranking = append(ranking, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ranking, nil
}
