package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"
)

// SubmitOrderCommandHandler turns a cart into a pending-payment order.
//
// The whole submission is one transaction: the address snapshot is copied
// onto the order, the detail lines are created from the cart, and the cart
// is cleared. If anything fails, including the delivery range check, nothing
// is persisted.
type SubmitOrderCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	rangeChecker *services.DeliveryRangeChecker
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	rangeChecker *services.DeliveryRangeChecker,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory:   uowFactory,
		rangeChecker: rangeChecker,
	}
}

// Handle processes the order submission command.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	address, err := uow.UserRepository().GetAddress(ctx, cmd.AddressID())
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if address.UserID() != cmd.UserID() {
		return SubmitOrderResult{}, errs.NewObjectNotFoundError("addressId", address.ID())
	}

	if err = h.rangeChecker.Check(ctx, address.Detail()); err != nil {
		return SubmitOrderResult{}, err
	}

	items, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if len(items) == 0 {
		return SubmitOrderResult{}, errs.NewValueIsRequiredError("cart")
	}

	details := make([]order.Detail, 0, len(items))
	for _, item := range items {
		detail, detailErr := order.NewDetail(
			item.DishID(), item.ComboID(), item.Name(), item.Price(), item.Quantity())
		if detailErr != nil {
			return SubmitOrderResult{}, detailErr
		}
		details = append(details, detail)
	}

	aggregate, err := order.NewOrder(
		uuid.NewString(),
		cmd.UserID(),
		address.Consignee(),
		address.Phone(),
		address.Detail(),
		details,
		time.Now(),
	)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.CartRepository().Clear(ctx, cmd.UserID()); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	return SubmitOrderResult{
		OrderID: aggregate.ID(),
		Number:  aggregate.Number(),
		Amount:  aggregate.Amount(),
	}, nil
}
