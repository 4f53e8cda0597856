package commands

import (
	"context"
	"fmt"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

// RemindOrderCommandHandler broadcasts a REMINDER event to merchant
// terminals for one of the caller's orders. The order itself does not change
// and its status is not inspected: existence and ownership are the only
// preconditions.
type RemindOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRemindOrderCommandHandler creates a handler for order reminders.
func NewRemindOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RemindOrderCommandHandler {
	return RemindOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reminder command.
func (h *RemindOrderCommandHandler) Handle(ctx context.Context, cmd RemindOrderCommand) error {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ctx, ports.Event{
		Type:    ports.EventReminder,
		OrderID: aggregate.ID(),
		Content: fmt.Sprintf("Reminder for order %s", aggregate.Number()),
	})
	return nil
}
