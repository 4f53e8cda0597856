package user

import (
	"errors"
	"time"

	"takeout/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a registered customer. Orders, cart lines, and address book
// entries all hang off the user id.
type User struct {
	id        int64
	name      string
	phone     string
	createdAt time.Time

	isConstructed bool
}

// Snapshot carries the persisted state of a user.
type Snapshot struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
}

// NewUser registers a customer.
func NewUser(name, phone string, createdAt time.Time) (*User, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("user name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("user phone")
	}

	return &User{
		name:          name,
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(s Snapshot) (*User, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}

	return &User{
		id:            s.ID,
		name:          s.Name,
		phone:         s.Phone,
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Phone() string        { return u.phone }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (u *User) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("user id")
	}
	if u.id != 0 {
		return errs.NewValueIsInvalidError("user id already assigned")
	}
	u.id = id
	return nil
}
