package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetCartQueryHandler reads cart lines straight from the database, bypassing
// the domain model.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the user's cart lines ordered by insertion.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) ([]GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetCartQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			dish_id,
			combo_id,
			name,
			price,
			quantity
		FROM cart_items
		WHERE user_id = ?
		ORDER BY id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetCartQueryResponse
		var dishID, comboID sql.NullInt64

		err = rows.Scan(
			&line.ID,
			&dishID,
			&comboID,
			&line.Name,
			&line.Price,
			&line.Quantity,
		)
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
