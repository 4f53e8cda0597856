package cart_test

import (
	"testing"
	"time"

	"takeout/internal/core/domain/model/cart"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewItem(t *testing.T) {
	t.Run("creates a line with quantity one", func(t *testing.T) {
		item, err := cart.NewItem(42, int64Ptr(3), nil, "Kung pao chicken", 18.00, time.Now())
		require.NoError(t, err)

		require.NoError(t, item.Validate())
		assert.Equal(t, int64(42), item.UserID())
		assert.Equal(t, 1, item.Quantity())
		assert.InDelta(t, 18.00, item.Subtotal(), 1e-9)
	})

	t.Run("requires exactly one item reference", func(t *testing.T) {
		_, err := cart.NewItem(42, nil, nil, "x", 1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = cart.NewItem(42, int64Ptr(1), int64Ptr(2), "x", 1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		_, err := cart.NewItem(0, int64Ptr(1), nil, "x", 1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = cart.NewItem(42, int64Ptr(1), nil, "", 1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = cart.NewItem(42, int64Ptr(1), nil, "x", -1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItemQuantity(t *testing.T) {
	t.Run("increment and decrement", func(t *testing.T) {
		item, err := cart.NewItem(42, int64Ptr(3), nil, "Kung pao chicken", 18.00, time.Now())
		require.NoError(t, err)

		item.Increment()
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 36.00, item.Subtotal(), 1e-9)

		assert.False(t, item.Decrement())
		assert.Equal(t, 1, item.Quantity())

		assert.True(t, item.Decrement(), "last decrement empties the line")
	})
}

func TestItemSameItem(t *testing.T) {
	dishLine, err := cart.NewItem(42, int64Ptr(3), nil, "dish", 1, time.Now())
	require.NoError(t, err)

	comboLine, err := cart.NewItem(42, nil, int64Ptr(9), "combo", 1, time.Now())
	require.NoError(t, err)

	assert.True(t, dishLine.SameItem(int64Ptr(3), nil))
	assert.False(t, dishLine.SameItem(int64Ptr(4), nil))
	assert.False(t, dishLine.SameItem(nil, int64Ptr(3)))

	assert.True(t, comboLine.SameItem(nil, int64Ptr(9)))
	assert.False(t, comboLine.SameItem(int64Ptr(9), nil))
}

func TestRestoreItem(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		item, err := cart.RestoreItem(cart.ItemSnapshot{
			ID: 5, UserID: 42, DishID: int64Ptr(3),
			Name: "dish", Price: 10, Quantity: 2, AddedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), item.ID())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("rejects corrupt rows", func(t *testing.T) {
		_, err := cart.RestoreItem(cart.ItemSnapshot{ID: 0, Quantity: 1})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = cart.RestoreItem(cart.ItemSnapshot{ID: 1, Quantity: 0})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item cart.Item
		require.ErrorIs(t, item.Validate(), cart.ErrItemIsNotConstructed)
	})
}
