package commands

import (
	"context"
	"time"

	"takeout/internal/core/ports"
)

// RejectOrderCommandHandler rejects an order awaiting confirmation. The
// rejected order has been paid by definition, so the refund always runs
// after the rejection is committed.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentProvider
}

// NewRejectOrderCommandHandler creates a handler for merchant rejections.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, payments ports.PaymentProvider) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if err = aggregate.Reject(cmd.Reason(), time.Now()); err != nil {
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
