package user

import (
	"errors"

	"takeout/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Address is one entry of a user's address book. Orders copy the consignee,
// phone, and detail into their own snapshot at submission, so editing an
// address never changes past orders.
type Address struct {
	id        int64
	userID    int64
	consignee string
	phone     string
	detail    string
	isDefault bool

	isConstructed bool
}

// AddressSnapshot carries the persisted state of an address book entry.
type AddressSnapshot struct {
	ID        int64
	UserID    int64
	Consignee string
	Phone     string
	Detail    string
	IsDefault bool
}

// NewAddress creates an address book entry.
func NewAddress(userID int64, consignee, phone, detail string) (*Address, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	if consignee == "" {
		return nil, errs.NewValueIsRequiredError("consignee")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if detail == "" {
		return nil, errs.NewValueIsRequiredError("address detail")
	}

	return &Address{
		userID:        userID,
		consignee:     consignee,
		phone:         phone,
		detail:        detail,
		isConstructed: true,
	}, nil
}

// RestoreAddress reconstructs an address book entry from persistence.
func RestoreAddress(s AddressSnapshot) (*Address, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("address id")
	}

	return &Address{
		id:            s.ID,
		userID:        s.UserID,
		consignee:     s.Consignee,
		phone:         s.Phone,
		detail:        s.Detail,
		isDefault:     s.IsDefault,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address instance was properly constructed.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() int64         { return a.id }
func (a *Address) UserID() int64     { return a.userID }
func (a *Address) Consignee() string { return a.consignee }
func (a *Address) Phone() string     { return a.phone }
func (a *Address) Detail() string    { return a.detail }
func (a *Address) IsDefault() bool   { return a.isDefault }

// Update replaces the mutable attributes of the entry.
func (a *Address) Update(consignee, phone, detail string) error {
	if consignee == "" {
		return errs.NewValueIsRequiredError("consignee")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if detail == "" {
		return errs.NewValueIsRequiredError("address detail")
	}

	a.consignee = consignee
	a.phone = phone
	a.detail = detail
	return nil
}

// MarkDefault flags the entry as the user's default address. The repository
// clears the flag on the previous default in the same transaction.
func (a *Address) MarkDefault() {
	a.isDefault = true
}

// ClearDefault removes the default flag.
func (a *Address) ClearDefault() {
	a.isDefault = false
}

// AssignIdentity records the repository-assigned id after the initial
// insert. It can only be applied once.
func (a *Address) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("address id")
	}
	if a.id != 0 {
		return errs.NewValueIsInvalidError("address id already assigned")
	}
	a.id = id
	return nil
}
