package commands

import (
	"context"
	"time"

	"takeout/internal/core/domain/model/cart"
	"takeout/internal/pkg/errs"
)

// ReorderCommandHandler copies the lines of a past order back into the
// user's cart, merging with lines already there. Prices come from the order
// snapshot, not the current catalog, so the user sees what they paid before.
type ReorderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewReorderCommandHandler creates a handler for reorders.
func NewReorderCommandHandler(uowFactory CheckoutUoWFactory) ReorderCommandHandler {
	return ReorderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the reorder command.
func (h *ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.UserID() != cmd.UserID() {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	existing, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, detail := range aggregate.Details() {
		var merged bool
		for _, line := range existing {
			if !line.SameItem(detail.DishID, detail.ComboID) {
				continue
			}
			if err = line.AddQuantity(detail.Quantity); err != nil {
				return err
			}
			if err = uow.CartRepository().Update(ctx, line); err != nil {
				return err
			}
			merged = true
			break
		}
		if merged {
			continue
		}

		item, itemErr := cart.NewItem(cmd.UserID(), detail.DishID, detail.ComboID,
			detail.Name, detail.Price, now)
		if itemErr != nil {
			return itemErr
		}
		if detail.Quantity > 1 {
			if err = item.AddQuantity(detail.Quantity - 1); err != nil {
				return err
			}
		}
		if err = uow.CartRepository().Add(ctx, item); err != nil {
			return err
		}
		existing = append(existing, item)
	}

	return uow.Commit(ctx)
}
