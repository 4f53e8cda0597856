package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

// PaymentSucceededCommandHandler applies a successful payment callback:
// the order moves to awaiting confirmation and merchant terminals get a
// NEW_ORDER event.
//
// The handler is idempotent. Payment providers redeliver callbacks, so a
// callback for an already-paid order is acknowledged without changing state
// and without notifying the merchant again.
type PaymentSucceededCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewPaymentSucceededCommandHandler creates a handler for payment callbacks.
func NewPaymentSucceededCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) PaymentSucceededCommandHandler {
	return PaymentSucceededCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment callback.
func (h *PaymentSucceededCommandHandler) Handle(ctx context.Context, cmd PaymentSucceededCommand) error {
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

	aggregate, err := uow.OrderRepository().GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = aggregate.MarkPaid(time.Now()); err != nil {
		// Redelivered callback: the order is already paid, acknowledge.
		if errors.Is(err, errs.ErrStateConflict) && aggregate.PayStatus() == order.Paid {
			return nil
		}
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		// Lost the race against a concurrent delivery of the same callback.
		if errors.Is(err, errs.ErrStateConflict) {
			return nil
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ctx, ports.Event{
		Type:    ports.EventNewOrder,
		OrderID: aggregate.ID(),
		Content: fmt.Sprintf("New order %s", aggregate.Number()),
	})
	return nil
}
