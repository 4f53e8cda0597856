package commands

import (
	"context"
	"time"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

// UserCancelOrderCommandHandler cancels an order at the user's request.
// Only allowed before the merchant confirms; paid orders are refunded after
// the cancellation is committed.
type UserCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentProvider
}

// NewUserCancelOrderCommandHandler creates a handler for user cancellations.
func NewUserCancelOrderCommandHandler(uowFactory OrderUoWFactory, payments ports.PaymentProvider) UserCancelOrderCommandHandler {
	return UserCancelOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the user cancellation command.
func (h *UserCancelOrderCommandHandler) Handle(ctx context.Context, cmd UserCancelOrderCommand) error {
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

	if err = aggregate.CancelByUser(time.Now()); err != nil {
		return err
	}

	needsRefund := aggregate.NeedsRefund()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if needsRefund {
		return refundPaidOrder(ctx, h.uowFactory, h.payments,
			aggregate.ID(), aggregate.Number(), aggregate.Amount())
	}
	return nil
}
