package queries

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the contents of one user's shopping cart.
type GetCartQuery struct {
	userID int64

	isConstructed bool
}

// NewGetCartQuery creates a query for the given user's cart.
func NewGetCartQuery(userID int64) (GetCartQuery, error) {
	if userID <= 0 {
		return GetCartQuery{}, errs.NewValueIsInvalidError("user id")
	}
	return GetCartQuery{userID: userID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetCartQueryIsNotConstructed
	}
	return nil
}

func (q GetCartQuery) UserID() int64 { return q.userID }

// GetCartQueryResponse is one cart line with the name and unit price that
// were snapshotted when the item was added.
type GetCartQueryResponse struct {
	ID       int64
	DishID   *int64
	ComboID  *int64
	Name     string
	Price    float64
	Quantity int
}
