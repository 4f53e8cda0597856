package commands

import (
	"context"

	"takeout/internal/core/domain/model/user"
	"takeout/internal/pkg/errs"
)

// AddAddressCommandHandler adds an entry to the user's address book.
type AddAddressCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAddAddressCommandHandler creates a handler for address creation.
func NewAddAddressCommandHandler(uowFactory UserUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the address creation command.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address, err := user.NewAddress(cmd.UserID(), cmd.Consignee(), cmd.Phone(), cmd.Detail())
	if err != nil {
		return err
	}

	if err = uow.UserRepository().AddAddress(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateAddressCommandHandler edits an address book entry owned by the
// requesting user.
type UpdateAddressCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address edits.
func NewUpdateAddressCommandHandler(uowFactory UserUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the address edit command.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address, err := uow.UserRepository().GetAddress(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if address.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("addressId", cmd.AddressID())
	}

	if err = address.Update(cmd.Consignee(), cmd.Phone(), cmd.Detail()); err != nil {
		return err
	}

	if err = uow.UserRepository().UpdateAddress(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteAddressCommandHandler removes an address book entry owned by the
// requesting user.
type DeleteAddressCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address deletion.
func NewDeleteAddressCommandHandler(uowFactory UserUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the address deletion command.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address, err := uow.UserRepository().GetAddress(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if address.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("addressId", cmd.AddressID())
	}

	if err = uow.UserRepository().DeleteAddress(ctx, cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SetDefaultAddressCommandHandler marks one entry as the user's default,
// clearing the flag on every other entry in the same transaction.
type SetDefaultAddressCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetDefaultAddressCommandHandler creates a handler for default-address
// changes.
func NewSetDefaultAddressCommandHandler(uowFactory UserUoWFactory) SetDefaultAddressCommandHandler {
	return SetDefaultAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the default-address command.
func (h *SetDefaultAddressCommandHandler) Handle(ctx context.Context, cmd SetDefaultAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address, err := uow.UserRepository().GetAddress(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if address.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("addressId", cmd.AddressID())
	}

	if err = uow.UserRepository().ClearDefaultAddress(ctx, cmd.UserID()); err != nil {
		return err
	}

	address.MarkDefault()
	if err = uow.UserRepository().UpdateAddress(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
