package commands_test

import (
	"fmt"
	"testing"
	"time"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:        id,
		Number:    fmt.Sprintf("n-%d", id),
		UserID:    42,
		Status:    order.PendingPayment,
		PayStatus: order.Unpaid,
		Amount:    10,
		Consignee: "Alex", Phone: "13800000000", Address: "1 Main St",
		OrderTime: time.Now().Add(-30 * time.Minute),
	})
	require.NoError(t, err)
	return o
}

func TestCancelTimedOutOrdersCommandHandler_Handle_CancelsExpiredOrders(t *testing.T) {
	ctx := t.Context()

	first := pendingOrder(t, 1)
	second := pendingOrder(t, 2)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)

	repo.On("GetAllInStatusOlderThan", mock.Anything, order.PendingPayment, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("Get", mock.Anything, int64(1)).Return(first, nil).Once()
	repo.On("Get", mock.Anything, int64(2)).Return(second, nil).Once()
	repo.On("Update", mock.Anything, first).Return(nil).Once()
	repo.On("Update", mock.Anything, second).Return(nil).Once()

	h := commands.NewCancelTimedOutOrdersCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), 15*time.Minute)

	require.NoError(t, h.Handle(ctx, commands.NewCancelTimedOutOrdersCommand()))

	require.Equal(t, order.Cancelled, first.Status())
	require.Equal(t, order.CancelReasonTimeout, first.CancelReason())
	require.Equal(t, order.Cancelled, second.Status())
	repo.AssertExpectations(t)
}

func TestCancelTimedOutOrdersCommandHandler_Handle_ConflictDoesNotStopSweep(t *testing.T) {
	ctx := t.Context()

	first := pendingOrder(t, 1)
	second := pendingOrder(t, 2)
	conflict := errs.NewStateConflictError("update order",
		order.PendingPayment.String(), order.ToBeConfirmed.String())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)

	repo.On("GetAllInStatusOlderThan", mock.Anything, order.PendingPayment, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	// The user paid for the first order just before the sweep's update.
	repo.On("Get", mock.Anything, int64(1)).Return(first, nil).Once()
	repo.On("Update", mock.Anything, first).Return(conflict).Once()
	repo.On("Get", mock.Anything, int64(2)).Return(second, nil).Once()
	repo.On("Update", mock.Anything, second).Return(nil).Once()

	h := commands.NewCancelTimedOutOrdersCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), 15*time.Minute)

	require.NoError(t, h.Handle(ctx, commands.NewCancelTimedOutOrdersCommand()))
	require.Equal(t, order.Cancelled, second.Status())
	repo.AssertExpectations(t)
}

func TestCompleteStaleDeliveriesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	stale, err := order.RestoreOrder(order.Snapshot{
		ID: 5, Number: "stale-1", UserID: 42,
		Status: order.DeliveryInProgress, PayStatus: order.Paid, Amount: 20,
		Consignee: "Alex", Phone: "13800000000", Address: "1 Main St",
		OrderTime: time.Now().Add(-3 * time.Hour),
	})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)

	repo.On("GetAllInStatusOlderThan", mock.Anything, order.DeliveryInProgress, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{stale}, nil).Once()
	repo.On("Get", mock.Anything, int64(5)).Return(stale, nil).Once()
	repo.On("Update", mock.Anything, stale).Return(nil).Once()

	h := commands.NewCompleteStaleDeliveriesCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uow }), time.Hour)

	require.NoError(t, h.Handle(ctx, commands.NewCompleteStaleDeliveriesCommand()))
	require.Equal(t, order.Completed, stale.Status())
	repo.AssertExpectations(t)
}
