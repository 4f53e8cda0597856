package commands

import (
	"context"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

// PayOrderCommandHandler initiates payment for a pending-payment order.
//
// The order itself does not change here: the status moves only when the
// payment provider confirms success through the callback handled by
// PaymentSucceededCommandHandler.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentProvider
}

// NewPayOrderCommandHandler creates a handler for payment initiation.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, payments ports.PaymentProvider) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle loads the order, checks that it still awaits payment, and asks the
// payment provider for prepay material.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (ports.PrepayTicket, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PrepayTicket{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.PrepayTicket{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ports.PrepayTicket{}, err
	}
	if aggregate.UserID() != cmd.UserID() {
		return ports.PrepayTicket{}, errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}
	if aggregate.Status() != order.PendingPayment {
		return ports.PrepayTicket{}, errs.NewStateConflictError("pay order",
			order.PendingPayment.String(), aggregate.Status().String())
	}

	// Read-only transaction; release it before calling out.
	if err = uow.Commit(ctx); err != nil {
		return ports.PrepayTicket{}, err
	}

	return h.payments.CreatePrepay(ctx, aggregate.Number(), aggregate.Amount())
}
