package queries_test

import (
	"testing"
	"time"

	"takeout/internal/adapters/out/postgres/cartrepo"
	"takeout/internal/adapters/out/postgres/catalogrepo"
	"takeout/internal/adapters/out/postgres/orderrepo"
	"takeout/internal/adapters/out/postgres/userrepo"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderDetailDTO{},
		&cartrepo.CartItemDTO{},
		&catalogrepo.CategoryDTO{}, &catalogrepo.DishDTO{},
		&catalogrepo.ComboDTO{}, &catalogrepo.ComboDishDTO{},
		&userrepo.UserDTO{}, &userrepo.AddressDTO{},
	)
	require.NoError(t, err)
	return db
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	require.NoError(t, err)
	return parsed
}

func seedOrder(t *testing.T, db *gorm.DB, number string, status order.Status,
	amount float64, orderTime time.Time, details ...orderrepo.OrderDetailDTO) {
	t.Helper()
	dto := orderrepo.OrderDTO{
		Number:    number,
		UserID:    42,
		Status:    int(status),
		PayStatus: int(order.Paid),
		Amount:    amount,
		Consignee: "Alex",
		Phone:     "13800000000",
		Address:   "1 Main St",
		OrderTime: orderTime,
		Details:   details,
	}
	require.NoError(t, db.Create(&dto).Error)
}

func seedUser(t *testing.T, db *gorm.DB, name string, createdAt time.Time) {
	t.Helper()
	dto := userrepo.UserDTO{Name: name, Phone: "13800000000", CreatedAt: createdAt}
	require.NoError(t, db.Create(&dto).Error)
}

func TestTurnoverReportQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	noon := 12 * time.Hour

	seedOrder(t, db, "n-1", order.Completed, 36.00, day(t, "2026-03-01").Add(noon))
	seedOrder(t, db, "n-2", order.Completed, 14.00, day(t, "2026-03-01").Add(noon))
	// Cancelled orders earn nothing.
	seedOrder(t, db, "n-3", order.Cancelled, 99.00, day(t, "2026-03-02").Add(noon))
	seedOrder(t, db, "n-4", order.Completed, 20.00, day(t, "2026-03-03").Add(noon))

	query, err := queries.NewTurnoverReportQuery(day(t, "2026-03-01"), day(t, "2026-03-03"))
	require.NoError(t, err)

	handler := queries.NewTurnoverReportQueryHandler(db)
	report, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, report, 3)
	assert.Equal(t, queries.TurnoverReportRow{Date: "2026-03-01", Turnover: 50.00}, report[0])
	assert.Equal(t, queries.TurnoverReportRow{Date: "2026-03-02", Turnover: 0}, report[1])
	assert.Equal(t, queries.TurnoverReportRow{Date: "2026-03-03", Turnover: 20.00}, report[2])
}

func TestTurnoverReportQuery_Validation(t *testing.T) {
	t.Run("end before begin", func(t *testing.T) {
		_, err := queries.NewTurnoverReportQuery(day(t, "2026-03-03"), day(t, "2026-03-01"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		handler := queries.NewTurnoverReportQueryHandler(newTestDB(t))
		_, err := handler.Handle(t.Context(), queries.TurnoverReportQuery{})
		require.ErrorIs(t, err, queries.ErrTurnoverReportQueryIsNotConstructed)
	})
}

func TestOrderReportQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	noon := 12 * time.Hour

	seedOrder(t, db, "n-1", order.Completed, 36.00, day(t, "2026-03-01").Add(noon))
	seedOrder(t, db, "n-2", order.Cancelled, 14.00, day(t, "2026-03-01").Add(noon))
	seedOrder(t, db, "n-3", order.Completed, 20.00, day(t, "2026-03-02").Add(noon))
	seedOrder(t, db, "n-4", order.Completed, 25.00, day(t, "2026-03-02").Add(noon))

	query, err := queries.NewOrderReportQuery(day(t, "2026-03-01"), day(t, "2026-03-02"))
	require.NoError(t, err)

	handler := queries.NewOrderReportQueryHandler(db)
	response, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, response.Rows, 2)
	assert.Equal(t, queries.OrderReportRow{Date: "2026-03-01", Total: 2, Valid: 1}, response.Rows[0])
	assert.Equal(t, queries.OrderReportRow{Date: "2026-03-02", Total: 2, Valid: 2}, response.Rows[1])
	assert.Equal(t, int64(4), response.TotalOrders)
	assert.Equal(t, int64(3), response.ValidOrders)
	assert.InDelta(t, 0.75, response.CompletionRate, 1e-9)
}

func TestOrderReportQueryHandler_Handle_EmptyRangeHasZeroRate(t *testing.T) {
	db := newTestDB(t)

	query, err := queries.NewOrderReportQuery(day(t, "2026-03-01"), day(t, "2026-03-01"))
	require.NoError(t, err)

	handler := queries.NewOrderReportQueryHandler(db)
	response, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Zero(t, response.TotalOrders)
	assert.Zero(t, response.CompletionRate)
}

func TestUserReportQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	noon := 12 * time.Hour

	// Registered before the range: counts towards the running total only.
	seedUser(t, db, "old-timer", day(t, "2026-02-20").Add(noon))
	seedUser(t, db, "alex", day(t, "2026-03-01").Add(noon))
	seedUser(t, db, "kim", day(t, "2026-03-01").Add(noon))
	seedUser(t, db, "sam", day(t, "2026-03-03").Add(noon))

	query, err := queries.NewUserReportQuery(day(t, "2026-03-01"), day(t, "2026-03-03"))
	require.NoError(t, err)

	handler := queries.NewUserReportQueryHandler(db)
	report, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, report, 3)
	assert.Equal(t, queries.UserReportRow{Date: "2026-03-01", New: 2, Total: 3}, report[0])
	assert.Equal(t, queries.UserReportRow{Date: "2026-03-02", New: 0, Total: 3}, report[1])
	assert.Equal(t, queries.UserReportRow{Date: "2026-03-03", New: 1, Total: 4}, report[2])
}

func TestTopSellersQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	noon := 12 * time.Hour
	dishID := int64(5)
	comboID := int64(9)

	seedOrder(t, db, "n-1", order.Completed, 50.00, day(t, "2026-03-01").Add(noon),
		orderrepo.OrderDetailDTO{DishID: &dishID, Name: "Kung pao chicken", Price: 18.00, Quantity: 2},
		orderrepo.OrderDetailDTO{ComboID: &comboID, Name: "Family dinner", Price: 48.00, Quantity: 1},
	)
	seedOrder(t, db, "n-2", order.Completed, 18.00, day(t, "2026-03-02").Add(noon),
		orderrepo.OrderDetailDTO{DishID: &dishID, Name: "Kung pao chicken", Price: 18.00, Quantity: 1},
		orderrepo.OrderDetailDTO{ComboID: &comboID, Name: "Braised pork", Price: 22.00, Quantity: 1},
	)
	// A cancelled order's lines never reach the ranking.
	seedOrder(t, db, "n-3", order.Cancelled, 90.00, day(t, "2026-03-02").Add(noon),
		orderrepo.OrderDetailDTO{DishID: &dishID, Name: "Kung pao chicken", Price: 18.00, Quantity: 5},
	)

	query, err := queries.NewTopSellersQuery(day(t, "2026-03-01"), day(t, "2026-03-02"))
	require.NoError(t, err)

	handler := queries.NewTopSellersQueryHandler(db)
	ranking, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, ranking, 3)
	assert.Equal(t, queries.TopSellerRow{Name: "Kung pao chicken", Quantity: 3}, ranking[0])
	// Equal quantities rank alphabetically.
	assert.Equal(t, queries.TopSellerRow{Name: "Braised pork", Quantity: 1}, ranking[1])
	assert.Equal(t, queries.TopSellerRow{Name: "Family dinner", Quantity: 1}, ranking[2])
}
