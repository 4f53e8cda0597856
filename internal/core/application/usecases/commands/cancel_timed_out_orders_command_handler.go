package commands

import (
	"context"
	"errors"
	"time"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
)

// CancelTimedOutOrdersCommandHandler cancels orders that sat in pending
// payment longer than the configured timeout.
//
// Each order is cancelled in its own transaction, so one bad row never
// blocks the rest of the sweep. Losing the conditional update to a
// concurrent user action (the user paid or cancelled just in time) is an
// expected outcome and is skipped silently.
type CancelTimedOutOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	timeout    time.Duration
}

// NewCancelTimedOutOrdersCommandHandler creates a sweep handler with the
// given pending-payment timeout.
func NewCancelTimedOutOrdersCommandHandler(uowFactory OrderUoWFactory, timeout time.Duration) CancelTimedOutOrdersCommandHandler {
	return CancelTimedOutOrdersCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
	}
}

// Handle runs one sweep. Per-order failures are joined into the returned
// error after the whole batch has been attempted.
func (h *CancelTimedOutOrdersCommandHandler) Handle(ctx context.Context, cmd CancelTimedOutOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().Add(-h.timeout)

	expired, err := h.listExpired(ctx, cutoff)
	if err != nil {
		return err
	}

	var sweepErrs []error
	for _, aggregate := range expired {
		if err = h.cancelOne(ctx, aggregate.ID()); err != nil {
			if errors.Is(err, errs.ErrStateConflict) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			sweepErrs = append(sweepErrs, err)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h *CancelTimedOutOrdersCommandHandler) listExpired(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.OrderRepository().GetAllInStatusOlderThan(ctx, order.PendingPayment, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return expired, nil
}

// cancelOne reloads and cancels a single order in its own transaction.
func (h *CancelTimedOutOrdersCommandHandler) cancelOne(ctx context.Context, orderID int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(order.CancelReasonTimeout, time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
