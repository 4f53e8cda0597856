package commands

import (
	"errors"

	"takeout/internal/pkg/errs"
)

var (
	ErrAddAddressCommandIsNotConstructed = errors.New(
		"AddAddressCommand must be created via NewAddAddressCommand constructor",
	)
	ErrUpdateAddressCommandIsNotConstructed = errors.New(
		"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
	)
	ErrDeleteAddressCommandIsNotConstructed = errors.New(
		"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
	)
	ErrSetDefaultAddressCommandIsNotConstructed = errors.New(
		"SetDefaultAddressCommand must be created via NewSetDefaultAddressCommand constructor",
	)
)

// AddAddressCommand represents adding an entry to the user's address book.
type AddAddressCommand struct {
	userID    int64
	consignee string
	phone     string
	detail    string

	isConstructed bool
}

// NewAddAddressCommand creates a command to add an address book entry.
func NewAddAddressCommand(userID int64, consignee, phone, detail string) (AddAddressCommand, error) {
	if userID <= 0 {
		return AddAddressCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if consignee == "" {
		return AddAddressCommand{}, errs.NewValueIsRequiredError("consignee")
	}
	if phone == "" {
		return AddAddressCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if detail == "" {
		return AddAddressCommand{}, errs.NewValueIsRequiredError("address detail")
	}

	return AddAddressCommand{
		userID:        userID,
		consignee:     consignee,
		phone:         phone,
		detail:        detail,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	if !c.isConstructed {
		return ErrAddAddressCommandIsNotConstructed
	}
	return nil
}

func (c AddAddressCommand) UserID() int64     { return c.userID }
func (c AddAddressCommand) Consignee() string { return c.consignee }
func (c AddAddressCommand) Phone() string     { return c.phone }
func (c AddAddressCommand) Detail() string    { return c.detail }

// UpdateAddressCommand represents editing an address book entry.
type UpdateAddressCommand struct {
	userID    int64
	addressID int64
	consignee string
	phone     string
	detail    string

	isConstructed bool
}

// NewUpdateAddressCommand creates a command to edit an address book entry.
func NewUpdateAddressCommand(userID, addressID int64, consignee, phone, detail string) (UpdateAddressCommand, error) {
	if userID <= 0 {
		return UpdateAddressCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if addressID <= 0 {
		return UpdateAddressCommand{}, errs.NewValueIsInvalidError("address id")
	}
	if consignee == "" {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredError("consignee")
	}
	if phone == "" {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if detail == "" {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredError("address detail")
	}

	return UpdateAddressCommand{
		userID:        userID,
		addressID:     addressID,
		consignee:     consignee,
		phone:         phone,
		detail:        detail,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateAddressCommandIsNotConstructed
	}
	return nil
}

func (c UpdateAddressCommand) UserID() int64     { return c.userID }
func (c UpdateAddressCommand) AddressID() int64  { return c.addressID }
func (c UpdateAddressCommand) Consignee() string { return c.consignee }
func (c UpdateAddressCommand) Phone() string     { return c.phone }
func (c UpdateAddressCommand) Detail() string    { return c.detail }

// DeleteAddressCommand represents removing an address book entry.
type DeleteAddressCommand struct {
	userID    int64
	addressID int64

	isConstructed bool
}

// NewDeleteAddressCommand creates a command to delete an address book entry.
func NewDeleteAddressCommand(userID, addressID int64) (DeleteAddressCommand, error) {
	if userID <= 0 {
		return DeleteAddressCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if addressID <= 0 {
		return DeleteAddressCommand{}, errs.NewValueIsInvalidError("address id")
	}

	return DeleteAddressCommand{
		userID:        userID,
		addressID:     addressID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteAddressCommandIsNotConstructed
	}
	return nil
}

func (c DeleteAddressCommand) UserID() int64    { return c.userID }
func (c DeleteAddressCommand) AddressID() int64 { return c.addressID }

// SetDefaultAddressCommand represents marking one entry as the user's
// default delivery address.
type SetDefaultAddressCommand struct {
	userID    int64
	addressID int64

	isConstructed bool
}

// NewSetDefaultAddressCommand creates a command to mark a default address.
func NewSetDefaultAddressCommand(userID, addressID int64) (SetDefaultAddressCommand, error) {
	if userID <= 0 {
		return SetDefaultAddressCommand{}, errs.NewValueIsInvalidError("user id")
	}
	if addressID <= 0 {
		return SetDefaultAddressCommand{}, errs.NewValueIsInvalidError("address id")
	}

	return SetDefaultAddressCommand{
		userID:        userID,
		addressID:     addressID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDefaultAddressCommand) Validate() error {
	if !c.isConstructed {
		return ErrSetDefaultAddressCommandIsNotConstructed
	}
	return nil
}

func (c SetDefaultAddressCommand) UserID() int64    { return c.userID }
func (c SetDefaultAddressCommand) AddressID() int64 { return c.addressID }
