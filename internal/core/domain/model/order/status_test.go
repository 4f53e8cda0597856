package order_test

import (
	"testing"

	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("defined statuses are valid", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment,
			order.ToBeConfirmed,
			order.Confirmed,
			order.DeliveryInProgress,
			order.Completed,
			order.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("zero and out-of-range values are invalid", func(t *testing.T) {
		require.ErrorIs(t, order.StatusUnknown.Validate(), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, order.Status(7).Validate(), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsOutOfRange)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Pending payment", order.PendingPayment.String())
	assert.Equal(t, "To be confirmed", order.ToBeConfirmed.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Delivery in progress", order.DeliveryInProgress.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusIsFinal(t *testing.T) {
	assert.True(t, order.Completed.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.PendingPayment.IsFinal())
	assert.False(t, order.ToBeConfirmed.IsFinal())
	assert.False(t, order.Confirmed.IsFinal())
	assert.False(t, order.DeliveryInProgress.IsFinal())
}

func TestStatusTransitions(t *testing.T) {
	t.Run("happy path walks the full lifecycle", func(t *testing.T) {
		s := order.PendingPayment

		s, err := s.Pay()
		require.NoError(t, err)
		assert.Equal(t, order.ToBeConfirmed, s)

		s, err = s.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, s)

		s, err = s.Dispatch()
		require.NoError(t, err)
		assert.Equal(t, order.DeliveryInProgress, s)

		s, err = s.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, s)
	})

	t.Run("pay requires pending payment", func(t *testing.T) {
		for _, s := range []order.Status{
			order.ToBeConfirmed, order.Confirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Pay()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})

	t.Run("confirm requires to be confirmed", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.Confirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Confirm()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})

	t.Run("reject requires to be confirmed", func(t *testing.T) {
		s, err := order.ToBeConfirmed.Reject()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)

		for _, s := range []order.Status{
			order.PendingPayment, order.Confirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Reject()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})

	t.Run("user cancellation allowed only before confirmation", func(t *testing.T) {
		for _, s := range []order.Status{order.PendingPayment, order.ToBeConfirmed} {
			next, err := s.CancelByUser()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}

		for _, s := range []order.Status{
			order.Confirmed, order.DeliveryInProgress, order.Completed, order.Cancelled,
		} {
			_, err := s.CancelByUser()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})

	t.Run("cancel allowed from any non-final state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.ToBeConfirmed,
			order.Confirmed, order.DeliveryInProgress,
		} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}

		_, err := order.Completed.Cancel()
		require.ErrorIs(t, err, errs.ErrStateConflict)

		_, err = order.Cancelled.Cancel()
		require.ErrorIs(t, err, errs.ErrStateConflict)

		_, err = order.StatusUnknown.Cancel()
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("dispatch requires confirmed", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.ToBeConfirmed, order.DeliveryInProgress,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Dispatch()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})

	t.Run("complete requires delivery in progress", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingPayment, order.ToBeConfirmed, order.Confirmed,
			order.Completed, order.Cancelled,
		} {
			_, err := s.Complete()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})
}
