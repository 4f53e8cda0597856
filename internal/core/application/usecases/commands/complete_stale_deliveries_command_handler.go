package commands

import (
	"context"
	"errors"
	"time"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"
)

// CompleteStaleDeliveriesCommandHandler force-completes deliveries that
// have been in progress longer than the configured stale age. Runs nightly
// to close out orders the merchant forgot to mark completed.
//
// Mirrors the timeout sweep: one transaction per order, conflicts with
// concurrent manual completion are skipped.
type CompleteStaleDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	staleAge   time.Duration
}

// NewCompleteStaleDeliveriesCommandHandler creates a sweep handler with the
// given stale age.
func NewCompleteStaleDeliveriesCommandHandler(uowFactory OrderUoWFactory, staleAge time.Duration) CompleteStaleDeliveriesCommandHandler {
	return CompleteStaleDeliveriesCommandHandler{
		uowFactory: uowFactory,
		staleAge:   staleAge,
	}
}

// Handle runs one sweep. Per-order failures are joined into the returned
// error after the whole batch has been attempted.
func (h *CompleteStaleDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteStaleDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().Add(-h.staleAge)

	stale, err := h.listStale(ctx, cutoff)
	if err != nil {
		return err
	}

	var sweepErrs []error
	for _, aggregate := range stale {
		if err = h.completeOne(ctx, aggregate.ID()); err != nil {
			if errors.Is(err, errs.ErrStateConflict) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			sweepErrs = append(sweepErrs, err)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h *CompleteStaleDeliveriesCommandHandler) listStale(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetAllInStatusOlderThan(ctx, order.DeliveryInProgress, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stale, nil
}

func (h *CompleteStaleDeliveriesCommandHandler) completeOne(ctx context.Context, orderID int64) error {
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

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
