package ports

import (
	"context"

	"takeout/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users and their
// address books.
type UserRepository interface {
	// AddUser persists a new user and assigns the generated identity.
	AddUser(ctx context.Context, u *user.User) error

	// GetUser retrieves a user by its identifier.
	GetUser(ctx context.Context, id int64) (*user.User, error)

	// AddAddress persists a new address book entry and assigns the
	// generated identity.
	AddAddress(ctx context.Context, a *user.Address) error

	// UpdateAddress persists changes to an existing address book entry.
	UpdateAddress(ctx context.Context, a *user.Address) error

	// GetAddress retrieves an address book entry by its identifier.
	GetAddress(ctx context.Context, id int64) (*user.Address, error)

	// GetAddresses retrieves all address book entries of a user.
	GetAddresses(ctx context.Context, userID int64) ([]*user.Address, error)

	// DeleteAddress removes an address book entry.
	DeleteAddress(ctx context.Context, id int64) error

	// ClearDefaultAddress removes the default flag from all of the user's
	// entries. Called before marking a new default in the same transaction.
	ClearDefaultAddress(ctx context.Context, userID int64) error
}
