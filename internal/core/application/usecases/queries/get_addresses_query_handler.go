package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAddressesQueryHandler reads address book entries straight from the
// database, bypassing the domain model.
type GetAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressesQueryHandler creates a handler for address book queries.
func NewGetAddressesQueryHandler(db *gorm.DB) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{db: db}
}

// Handle returns the user's addresses with the default entry first.
func (h GetAddressesQueryHandler) Handle(ctx context.Context, query GetAddressesQuery) ([]GetAddressesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses := make([]GetAddressesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			consignee,
			phone,
			detail,
			is_default
		FROM addresses
		WHERE user_id = ?
		ORDER BY is_default DESC, id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var address GetAddressesQueryResponse

		err = rows.Scan(
			&address.ID,
			&address.Consignee,
			&address.Phone,
			&address.Detail,
			&address.IsDefault,
		)
		if err != nil {
			return nil, err
		}

		addresses = append(addresses, address)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
