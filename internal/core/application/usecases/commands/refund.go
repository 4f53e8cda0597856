package commands

import (
	"context"
	"errors"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

// refundPaidOrder refunds a paid order after its cancellation has been
// committed, then records the refund in a second transaction.
//
// The ordering is deliberate: the cancellation stands even when the refund
// call fails, and the returned ExternalProviderError tells the caller the
// money is still owed. Recording the refund uses its own conditional update,
// so a duplicate refund attempt becomes a no-op instead of a double payout
// record.
func refundPaidOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	payments ports.PaymentProvider,
	orderID int64,
	orderNumber string,
	amount float64,
) error {
	if err := payments.Refund(ctx, orderNumber, amount); err != nil {
		return err
	}

	uow := uowFactory.Create()
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

	if err = aggregate.MarkRefunded(); err != nil {
		// Already recorded by a concurrent attempt.
		if errors.Is(err, errs.ErrStateConflict) {
			return nil
		}
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
