package commands_test

import (
	"context"
	"time"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/cart"
	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/model/order"
	"takeout/internal/core/domain/model/user"
	"takeout/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, status, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) GetByUser(ctx context.Context, userID int64) ([]*cart.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.Item), args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddCategory(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetCategory(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) CountItemsInCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) AddDish(ctx context.Context, d *catalog.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateDish(ctx context.Context, d *catalog.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetDish(ctx context.Context, id int64) (*catalog.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Dish), args.Error(1)
}

func (m *MockCatalogRepository) GetDishes(ctx context.Context, ids []int64) ([]*catalog.Dish, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Dish), args.Error(1)
}

func (m *MockCatalogRepository) DeleteDishes(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockCatalogRepository) ComboIDsReferencingDishes(ctx context.Context, dishIDs []int64) ([]int64, error) {
	args := m.Called(ctx, dishIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogRepository) AddCombo(ctx context.Context, c *catalog.Combo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateCombo(ctx context.Context, c *catalog.Combo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetCombo(ctx context.Context, id int64) (*catalog.Combo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Combo), args.Error(1)
}

func (m *MockCatalogRepository) DeleteCombos(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) AddUser(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) AddAddress(ctx context.Context, a *user.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAddress(ctx context.Context, a *user.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockUserRepository) GetAddress(ctx context.Context, id int64) (*user.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Address), args.Error(1)
}

func (m *MockUserRepository) GetAddresses(ctx context.Context, userID int64) ([]*user.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Address), args.Error(1)
}

func (m *MockUserRepository) DeleteAddress(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ClearDefaultAddress(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work combination the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

// Func factories keep the wiring terse in tests.

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type cartUoWFactoryFunc func() commands.CartUoW

func (f cartUoWFactoryFunc) Create() commands.CartUoW { return f() }

type menuUoWFactoryFunc func() commands.MenuUoW

func (f menuUoWFactoryFunc) Create() commands.MenuUoW { return f() }

type catalogUoWFactoryFunc func() commands.CatalogUoW

func (f catalogUoWFactoryFunc) Create() commands.CatalogUoW { return f() }

type userUoWFactoryFunc func() commands.UserUoW

func (f userUoWFactoryFunc) Create() commands.UserUoW { return f() }

type checkoutUoWFactoryFunc func() commands.CheckoutUoW

func (f checkoutUoWFactoryFunc) Create() commands.CheckoutUoW { return f() }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Broadcast(ctx context.Context, event ports.Event) {
	m.Called(ctx, event)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) CreatePrepay(ctx context.Context, orderNumber string, amount float64) (ports.PrepayTicket, error) {
	args := m.Called(ctx, orderNumber, amount)
	return args.Get(0).(ports.PrepayTicket), args.Error(1)
}

func (m *MockPaymentProvider) Refund(ctx context.Context, orderNumber string, amount float64) error {
	args := m.Called(ctx, orderNumber, amount)
	return args.Error(0)
}

// stubGeo serves the delivery range checker in handler tests.
type stubGeo struct {
	distance int
}

func (s stubGeo) Geocode(context.Context, string) (ports.Location, error) {
	return ports.Location{Lat: 31.23, Lng: 121.47}, nil
}

func (s stubGeo) RouteDistance(context.Context, ports.Location, ports.Location) (int, error) {
	return s.distance, nil
}
