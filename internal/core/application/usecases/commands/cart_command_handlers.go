package commands

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/cart"
	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/pkg/errs"
)

// AddToCartCommandHandler adds one unit of a menu item to the user's cart.
// The item's name and price are snapshotted from the catalog at add time,
// and only items currently on sale can be added.
type AddToCartCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(uowFactory MenuUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cart addition command.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	lines, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	for _, line := range lines {
		if line.SameItem(cmd.DishID(), cmd.ComboID()) {
			line.Increment()
			if err = uow.CartRepository().Update(ctx, line); err != nil {
				return err
			}
			return uow.Commit(ctx)
		}
	}

	name, price, err := h.snapshotItem(ctx, uow, cmd)
	if err != nil {
		return err
	}

	item, err := cart.NewItem(cmd.UserID(), cmd.DishID(), cmd.ComboID(), name, price, time.Now())
	if err != nil {
		return err
	}

	if err = uow.CartRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// snapshotItem resolves the name and price of the referenced catalog item
// and verifies it is on sale.
func (h *AddToCartCommandHandler) snapshotItem(ctx context.Context, uow MenuUoW, cmd AddToCartCommand) (string, float64, error) {
	if cmd.DishID() != nil {
		dish, err := uow.CatalogRepository().GetDish(ctx, *cmd.DishID())
		if err != nil {
			return "", 0, err
		}
		if !dish.IsOnSale() {
			return "", 0, errs.NewStateConflictError("add dish to cart",
				catalog.OnSale.String(), dish.Status().String())
		}
		return dish.Name(), dish.Price(), nil
	}

	combo, err := uow.CatalogRepository().GetCombo(ctx, *cmd.ComboID())
	if err != nil {
		return "", 0, err
	}
	if !combo.IsOnSale() {
		return "", 0, errs.NewStateConflictError("add combo to cart",
			catalog.OnSale.String(), combo.Status().String())
	}
	return combo.Name(), combo.Price(), nil
}

// RemoveFromCartCommandHandler removes one unit of a menu item from the
// user's cart, deleting the line when it reaches zero.
type RemoveFromCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(uowFactory CartUoWFactory) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cart removal command.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
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

	lines, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	for _, line := range lines {
		if !line.SameItem(cmd.DishID(), cmd.ComboID()) {
			continue
		}

		if line.Decrement() {
			err = uow.CartRepository().Remove(ctx, line.ID())
		} else {
			err = uow.CartRepository().Update(ctx, line)
		}
		if err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	return errs.NewObjectNotFoundError("cartItem", cmd.UserID())
}

// ClearCartCommandHandler empties the user's cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for clearing the cart.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

// Handle processes the clear command.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	if err := uow.CartRepository().Clear(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
