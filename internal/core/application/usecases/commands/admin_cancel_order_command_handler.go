package commands

import (
	"context"
	"time"

	"takeout/internal/core/ports"
)

// AdminCancelOrderCommandHandler cancels an order on the merchant's behalf.
// Paid orders are refunded after the cancellation is committed.
type AdminCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentProvider
}

// NewAdminCancelOrderCommandHandler creates a handler for merchant
// cancellations.
func NewAdminCancelOrderCommandHandler(uowFactory OrderUoWFactory, payments ports.PaymentProvider) AdminCancelOrderCommandHandler {
	return AdminCancelOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the merchant cancellation command.
func (h *AdminCancelOrderCommandHandler) Handle(ctx context.Context, cmd AdminCancelOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.Reason(), time.Now()); err != nil {
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
