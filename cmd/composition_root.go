package cmd

import (
	"log/slog"

	adapterhttp "takeout/internal/adapters/in/http"
	"takeout/internal/adapters/in/ws"
	"takeout/internal/adapters/out/baidugeo"
	"takeout/internal/adapters/out/memcache"
	"takeout/internal/adapters/out/postgres"
	"takeout/internal/adapters/out/wechatpay"
	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/services"
	"takeout/internal/core/ports"
	"takeout/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	cache        ports.CacheStore
	cachePolicy  services.MenuCachePolicy
	rangeChecker *services.DeliveryRangeChecker
	payments     ports.PaymentProvider
	hub          *ws.Hub
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	cache := memcache.NewStore()

	geo := baidugeo.NewClient(config.BaiduAPIURL, config.BaiduAPIKey)
	rangeChecker, err := services.NewDeliveryRangeChecker(
		geo, config.ShopAddress, config.DeliveryRadiusMeters)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:        cache,
		cachePolicy:  services.NewMenuCachePolicy(cache),
		rangeChecker: rangeChecker,
		payments:     wechatpay.NewClient(config.WechatAPIURL, config.WechatMerchantID, config.WechatAPIKey),
		hub:          ws.NewHub(logger),
	}, nil
}

// Hub returns the WebSocket hub serving merchant terminals.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCancelTimedOutOrdersCommandHandler() commands.CancelTimedOutOrdersCommandHandler {
	return commands.NewCancelTimedOutOrdersCommandHandler(
		c.orderUoWFactory(), c.config.PendingPaymentTimeout)
}

func (c *CompositionRoot) CreateCompleteStaleDeliveriesCommandHandler() commands.CompleteStaleDeliveriesCommandHandler {
	return commands.NewCompleteStaleDeliveriesCommandHandler(
		c.orderUoWFactory(), c.config.StaleDeliveryAge)
}

// CreateJobManager wires both sweep jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelTimedOutOrdersCommandHandler(),
		c.CreateCompleteStaleDeliveriesCommandHandler(),
		logger,
	)
}

// CreateServer wires every HTTP route to its use case.
func (c *CompositionRoot) CreateServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.Handlers{
		AddToCart:      commands.NewAddToCartCommandHandler(c.menuUoWFactory()),
		RemoveFromCart: commands.NewRemoveFromCartCommandHandler(c.cartUoWFactory()),
		ClearCart:      commands.NewClearCartCommandHandler(c.cartUoWFactory()),

		SubmitOrder:     commands.NewSubmitOrderCommandHandler(c.checkoutUoWFactory(), c.rangeChecker),
		PayOrder:        commands.NewPayOrderCommandHandler(c.orderUoWFactory(), c.payments),
		PaymentNotify:   commands.NewPaymentSucceededCommandHandler(c.orderUoWFactory(), c.hub),
		UserCancelOrder: commands.NewUserCancelOrderCommandHandler(c.orderUoWFactory(), c.payments),
		RemindOrder:     commands.NewRemindOrderCommandHandler(c.orderUoWFactory(), c.hub),
		Reorder:         commands.NewReorderCommandHandler(c.checkoutUoWFactory()),

		ConfirmOrder:  commands.NewConfirmOrderCommandHandler(c.orderUoWFactory()),
		RejectOrder:   commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.payments),
		CancelOrder:   commands.NewAdminCancelOrderCommandHandler(c.orderUoWFactory(), c.payments),
		DispatchOrder: commands.NewDispatchOrderCommandHandler(c.orderUoWFactory()),
		CompleteOrder: commands.NewCompleteOrderCommandHandler(c.orderUoWFactory()),

		AddAddress:        commands.NewAddAddressCommandHandler(c.userUoWFactory()),
		UpdateAddress:     commands.NewUpdateAddressCommandHandler(c.userUoWFactory()),
		DeleteAddress:     commands.NewDeleteAddressCommandHandler(c.userUoWFactory()),
		SetDefaultAddress: commands.NewSetDefaultAddressCommandHandler(c.userUoWFactory()),

		CreateCategory:    commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory()),
		UpdateCategory:    commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		DeleteCategory:    commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		SetCategoryStatus: commands.NewSetCategoryStatusCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		CreateDish:        commands.NewCreateDishCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		UpdateDish:        commands.NewUpdateDishCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		DeleteDishes:      commands.NewDeleteDishesCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		SetDishStatus:     commands.NewSetDishStatusCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		CreateCombo:       commands.NewCreateComboCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		UpdateCombo:       commands.NewUpdateComboCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		DeleteCombos:      commands.NewDeleteCombosCommandHandler(c.catalogUoWFactory(), c.cachePolicy),
		SetComboStatus:    commands.NewSetComboStatusCommandHandler(c.catalogUoWFactory(), c.cachePolicy),

		GetMenu: queries.NewGetMenuQueryHandler(
			c.gormDB, c.cache, c.cachePolicy, c.config.MenuCacheTTL),
		GetCart:         queries.NewGetCartQueryHandler(c.gormDB),
		GetAddresses:    queries.NewGetAddressesQueryHandler(c.gormDB),
		GetOrderHistory: queries.NewGetOrderHistoryQueryHandler(c.gormDB),
		GetOrderDetails: queries.NewGetOrderDetailsQueryHandler(c.gormDB),
		OrderStatistics: queries.NewGetOrderStatisticsQueryHandler(c.gormDB),
		TurnoverReport:  queries.NewTurnoverReportQueryHandler(c.gormDB),
		OrderReport:     queries.NewOrderReportQueryHandler(c.gormDB),
		UserReport:      queries.NewUserReportQueryHandler(c.gormDB),
		TopSellers:      queries.NewTopSellersQueryHandler(c.gormDB),
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
