package queries

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var (
	ErrGetAddressesQueryIsNotConstructed = errors.New(
		"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
	)
)

// GetAddressesQuery retrieves one user's address book.
type GetAddressesQuery struct {
	userID int64

	isConstructed bool
}

// NewGetAddressesQuery creates a query for the given user's addresses.
func NewGetAddressesQuery(userID int64) (GetAddressesQuery, error) {
	if userID <= 0 {
		return GetAddressesQuery{}, errs.NewValueIsInvalidError("user id")
	}
	return GetAddressesQuery{userID: userID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressesQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetAddressesQueryIsNotConstructed
	}
	return nil
}

func (q GetAddressesQuery) UserID() int64 { return q.userID }

// GetAddressesQueryResponse is one address book entry.
type GetAddressesQueryResponse struct {
	ID        int64
	Consignee string
	Phone     string
	Detail    string
	IsDefault bool
}
