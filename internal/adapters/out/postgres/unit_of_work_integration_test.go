package postgres_test

import (
	"context"
	"testing"
	"time"

	"takeout/internal/adapters/out/postgres"
	"takeout/internal/adapters/out/postgres/cartrepo"
	"takeout/internal/adapters/out/postgres/catalogrepo"
	"takeout/internal/adapters/out/postgres/orderrepo"
	"takeout/internal/adapters/out/postgres/userrepo"
	"takeout/internal/core/domain/model/cart"
	"takeout/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderDetailDTO{},
		&cartrepo.CartItemDTO{},
		&catalogrepo.CategoryDTO{}, &catalogrepo.DishDTO{},
		&catalogrepo.ComboDTO{}, &catalogrepo.ComboDishDTO{},
		&userrepo.UserDTO{}, &userrepo.AddressDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_details, cart_items").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) newOrder(number string) *order.Order {
	dishID := int64(5)
	line, err := order.NewDetail(&dishID, nil, "Kung pao chicken", 18.00, 2)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(number, 42, "Alex", "13800000000", "1 Main St",
		[]order.Detail{line}, time.Now())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormUnitOfWorkTestSuite) newCartLine() *cart.Item {
	dishID := int64(5)
	item, err := cart.NewItem(42, &dishID, nil, "Kung pao chicken", 18.00, time.Now())
	suite.Require().NoError(err)
	return item
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	// Seed a cart line outside the transaction under test.
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.CartRepository().Add(ctx, suite.newCartLine()))
	suite.Require().NoError(seed.Commit(ctx))

	// Checkout: add the order and clear the cart in one transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("n-2001")))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, 42))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	defer func() { _ = check.Rollback(ctx) }()

	loaded, err := check.OrderRepository().GetByNumber(ctx, "n-2001")
	suite.Require().NoError(err)
	suite.Equal(order.PendingPayment, loaded.Status())

	lines, err := check.CartRepository().GetByUser(ctx, 42)
	suite.Require().NoError(err)
	suite.Empty(lines)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("n-2002")))
	suite.Require().NoError(uow.CartRepository().Add(ctx, suite.newCartLine()))
	suite.Require().NoError(uow.Rollback(ctx))

	var orders, items int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orders).Error)
	suite.Require().NoError(suite.db.Table("cart_items").Count(&items).Error)
	suite.Zero(orders)
	suite.Zero(items)
}

func (suite *GormUnitOfWorkTestSuite) TestRollbackAfterCommit_ReturnsInvalidTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestBeginTwice_DoesNotNest() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
