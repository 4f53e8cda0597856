package commands_test

import (
	"testing"
	"time"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status, payStatus order.PayStatus) *order.Order {
	t.Helper()

	var checkout *time.Time
	if payStatus != order.Unpaid {
		at := time.Now().Add(-time.Minute)
		checkout = &at
	}

	o, err := order.RestoreOrder(order.Snapshot{
		ID:           77,
		Number:       "a3c1f0e2",
		UserID:       42,
		Status:       status,
		PayStatus:    payStatus,
		Amount:       36.00,
		Consignee:    "Alex",
		Phone:        "13800000000",
		Address:      "1 Main St",
		OrderTime:    time.Now().Add(-10 * time.Minute),
		CheckoutTime: checkout,
	})
	require.NoError(t, err)
	return o
}

func TestPaymentSucceededCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPaymentSucceededCommand("a3c1f0e2")
	require.NoError(t, err)

	aggregate := restoredOrder(t, order.PendingPayment, order.Unpaid)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, "a3c1f0e2").Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Broadcast", mock.Anything, mock.MatchedBy(func(e ports.Event) bool {
		return e.Type == ports.EventNewOrder && e.OrderID == 77
	})).Once()

	h := commands.NewPaymentSucceededCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), notifier)

	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.ToBeConfirmed, aggregate.Status())
	require.Equal(t, order.Paid, aggregate.PayStatus())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPaymentSucceededCommandHandler_Handle_RedeliveredCallback(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPaymentSucceededCommand("a3c1f0e2")
	require.NoError(t, err)

	// Already paid: the callback is acknowledged without update or event.
	aggregate := restoredOrder(t, order.ToBeConfirmed, order.Paid)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, "a3c1f0e2").Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPaymentSucceededCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), notifier)

	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestPaymentSucceededCommandHandler_Handle_LostUpdateRace(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPaymentSucceededCommand("a3c1f0e2")
	require.NoError(t, err)

	aggregate := restoredOrder(t, order.PendingPayment, order.Unpaid)
	conflict := errs.NewStateConflictError("update order",
		order.PendingPayment.String(), order.ToBeConfirmed.String())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, "a3c1f0e2").Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPaymentSucceededCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), notifier)

	require.NoError(t, h.Handle(ctx, cmd))
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPaymentSucceededCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPaymentSucceededCommand("missing")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, "missing").
			Return(nil, errs.NewObjectNotFoundError("number", "missing")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPaymentSucceededCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), notifier)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
