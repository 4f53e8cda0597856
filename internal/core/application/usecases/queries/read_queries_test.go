package queries_test

import (
	"testing"
	"time"

	"takeout/internal/adapters/out/memcache"
	"takeout/internal/adapters/out/postgres/cartrepo"
	"takeout/internal/adapters/out/postgres/catalogrepo"
	"takeout/internal/adapters/out/postgres/orderrepo"
	"takeout/internal/adapters/out/postgres/userrepo"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGetCartQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&cartrepo.CartItemDTO{
		UserID: 42, DishID: int64Ptr(5), Name: "Kung pao chicken",
		Price: 18.00, Quantity: 2, AddedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&cartrepo.CartItemDTO{
		UserID: 42, ComboID: int64Ptr(9), Name: "Family dinner",
		Price: 48.00, Quantity: 1, AddedAt: time.Now(),
	}).Error)
	// Another user's line stays invisible.
	require.NoError(t, db.Create(&cartrepo.CartItemDTO{
		UserID: 99, DishID: int64Ptr(5), Name: "Kung pao chicken",
		Price: 18.00, Quantity: 1, AddedAt: time.Now(),
	}).Error)

	query, err := queries.NewGetCartQuery(42)
	require.NoError(t, err)

	handler := queries.NewGetCartQueryHandler(db)
	lines, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Kung pao chicken", lines[0].Name)
	require.NotNil(t, lines[0].DishID)
	assert.Equal(t, int64(5), *lines[0].DishID)
	assert.Nil(t, lines[0].ComboID)
	assert.Equal(t, 2, lines[0].Quantity)
	require.NotNil(t, lines[1].ComboID)
	assert.Equal(t, int64(9), *lines[1].ComboID)
}

func TestGetOrderHistoryQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	base := day(t, "2026-03-01")
	for i := range 5 {
		status := order.Completed
		if i == 4 {
			status = order.Cancelled
		}
		dto := orderrepo.OrderDTO{
			Number: "n-" + string(rune('a'+i)), UserID: 42,
			Status: int(status), PayStatus: int(order.Paid),
			Amount: 10.00 + float64(i), Consignee: "Alex", Phone: "13800000000",
			Address: "1 Main St", OrderTime: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&dto).Error)
	}
	require.NoError(t, db.Create(&orderrepo.OrderDTO{
		Number: "n-other", UserID: 99, Status: int(order.Completed),
		PayStatus: int(order.Paid), Amount: 1, Consignee: "Kim",
		Phone: "13900000000", Address: "2 Side St", OrderTime: base,
	}).Error)

	handler := queries.NewGetOrderHistoryQueryHandler(db)

	t.Run("pages newest first", func(t *testing.T) {
		query, err := queries.NewGetOrderHistoryQuery(42, nil, 1, 3)
		require.NoError(t, err)

		page, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, int64(5), page.Total)
		require.Len(t, page.Orders, 3)
		assert.Equal(t, "n-e", page.Orders[0].Number)
		assert.Equal(t, "n-d", page.Orders[1].Number)

		query, err = queries.NewGetOrderHistoryQuery(42, nil, 2, 3)
		require.NoError(t, err)
		page, err = handler.Handle(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, page.Orders, 2)
		assert.Equal(t, "n-a", page.Orders[1].Number)
	})

	t.Run("status filter", func(t *testing.T) {
		status := order.Cancelled
		query, err := queries.NewGetOrderHistoryQuery(42, &status, 1, 10)
		require.NoError(t, err)

		page, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Orders, 1)
		assert.Equal(t, order.Cancelled, page.Orders[0].Status)
	})
}

func TestGetOrderDetailsQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	dto := orderrepo.OrderDTO{
		Number: "n-1", UserID: 42, Status: int(order.ToBeConfirmed),
		PayStatus: int(order.Paid), Amount: 36.00, Consignee: "Alex",
		Phone: "13800000000", Address: "1 Main St", OrderTime: day(t, "2026-03-01"),
		Details: []orderrepo.OrderDetailDTO{
			{DishID: int64Ptr(5), Name: "Kung pao chicken", Price: 18.00, Quantity: 2},
		},
	}
	require.NoError(t, db.Create(&dto).Error)

	handler := queries.NewGetOrderDetailsQueryHandler(db)

	t.Run("owner reads the order with lines", func(t *testing.T) {
		query, err := queries.NewGetOrderDetailsQuery(dto.ID, int64Ptr(42))
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, "n-1", response.Number)
		assert.Equal(t, order.ToBeConfirmed, response.Status)
		require.Len(t, response.Lines, 1)
		assert.Equal(t, "Kung pao chicken", response.Lines[0].Name)
		assert.Equal(t, 2, response.Lines[0].Quantity)
	})

	t.Run("unscoped read for the merchant side", func(t *testing.T) {
		query, err := queries.NewGetOrderDetailsQuery(dto.ID, nil)
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, int64(42), response.UserID)
	})

	t.Run("another user's order is not found", func(t *testing.T) {
		query, err := queries.NewGetOrderDetailsQuery(dto.ID, int64Ptr(99))
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing order is not found", func(t *testing.T) {
		query, err := queries.NewGetOrderDetailsQuery(98765, nil)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetOrderStatisticsQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	base := day(t, "2026-03-01")
	statuses := []order.Status{
		order.ToBeConfirmed, order.ToBeConfirmed, order.Confirmed,
		order.DeliveryInProgress, order.Completed, order.Cancelled,
	}
	for i, status := range statuses {
		require.NoError(t, db.Create(&orderrepo.OrderDTO{
			Number: "s-" + string(rune('a'+i)), UserID: 42,
			Status: int(status), PayStatus: int(order.Paid), Amount: 10,
			Consignee: "Alex", Phone: "13800000000", Address: "1 Main St",
			OrderTime: base,
		}).Error)
	}

	handler := queries.NewGetOrderStatisticsQueryHandler(db)
	statistics, err := handler.Handle(t.Context(), queries.NewGetOrderStatisticsQuery())
	require.NoError(t, err)

	assert.Equal(t, int64(2), statistics.ToBeConfirmed)
	assert.Equal(t, int64(1), statistics.Confirmed)
	assert.Equal(t, int64(1), statistics.DeliveryInProgress)
}

func TestGetAddressesQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&userrepo.AddressDTO{
		UserID: 42, Consignee: "Alex", Phone: "13800000000", Detail: "1 Main St",
	}).Error)
	require.NoError(t, db.Create(&userrepo.AddressDTO{
		UserID: 42, Consignee: "Alex", Phone: "13800000000", Detail: "2 Side St", IsDefault: true,
	}).Error)
	require.NoError(t, db.Create(&userrepo.AddressDTO{
		UserID: 99, Consignee: "Kim", Phone: "13900000000", Detail: "3 Far St",
	}).Error)

	query, err := queries.NewGetAddressesQuery(42)
	require.NoError(t, err)

	handler := queries.NewGetAddressesQueryHandler(db)
	addresses, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, addresses, 2)
	// The default entry sorts first.
	assert.Equal(t, "2 Side St", addresses[0].Detail)
	assert.True(t, addresses[0].IsDefault)
	assert.Equal(t, "1 Main St", addresses[1].Detail)
}

func TestGetMenuQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&catalogrepo.DishDTO{
		CategoryID: 2, Name: "Mapo tofu", Price: 14.00, Status: int(catalog.OnSale),
	}).Error)
	require.NoError(t, db.Create(&catalogrepo.DishDTO{
		CategoryID: 2, Name: "Hidden dish", Price: 10.00, Status: int(catalog.OffSale),
	}).Error)
	require.NoError(t, db.Create(&catalogrepo.DishDTO{
		CategoryID: 3, Name: "Other category", Price: 9.00, Status: int(catalog.OnSale),
	}).Error)
	require.NoError(t, db.Create(&catalogrepo.ComboDTO{
		CategoryID: 2, Name: "Family dinner", Price: 48.00, Status: int(catalog.OnSale),
	}).Error)

	cache := memcache.NewStore()
	policy := services.NewMenuCachePolicy(cache)
	handler := queries.NewGetMenuQueryHandler(db, cache, policy, time.Minute)

	query, err := queries.NewGetMenuQuery(2)
	require.NoError(t, err)

	response, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, response.Dishes, 1)
	assert.Equal(t, "Mapo tofu", response.Dishes[0].Name)
	require.Len(t, response.Combos, 1)
	assert.Equal(t, "Family dinner", response.Combos[0].Name)

	// The first read filled the cache: a database wipe goes unnoticed.
	require.NoError(t, db.Exec("DELETE FROM dishes").Error)
	response, err = handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Len(t, response.Dishes, 1)

	// Eviction through the policy forces the next read back to the tables.
	policy.OnItemChanged(t.Context())
	response, err = handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Empty(t, response.Dishes)
	assert.Len(t, response.Combos, 1)
}
