// Package http exposes the application use cases over a JSON REST API.
// Customer-facing routes identify the caller through the X-User-Id header
// set by the gateway; merchant routes live under /api/v1/admin.
package http

import (
	"net/http"
	"strconv"
	"time"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const userIDHeader = "X-User-Id"

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	// Cart
	AddToCart      commands.AddToCartCommandHandler
	RemoveFromCart commands.RemoveFromCartCommandHandler
	ClearCart      commands.ClearCartCommandHandler

	// Orders, customer side
	SubmitOrder     commands.SubmitOrderCommandHandler
	PayOrder        commands.PayOrderCommandHandler
	PaymentNotify   commands.PaymentSucceededCommandHandler
	UserCancelOrder commands.UserCancelOrderCommandHandler
	RemindOrder     commands.RemindOrderCommandHandler
	Reorder         commands.ReorderCommandHandler

	// Orders, merchant side
	ConfirmOrder  commands.ConfirmOrderCommandHandler
	RejectOrder   commands.RejectOrderCommandHandler
	CancelOrder   commands.AdminCancelOrderCommandHandler
	DispatchOrder commands.DispatchOrderCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler

	// Address book
	AddAddress        commands.AddAddressCommandHandler
	UpdateAddress     commands.UpdateAddressCommandHandler
	DeleteAddress     commands.DeleteAddressCommandHandler
	SetDefaultAddress commands.SetDefaultAddressCommandHandler

	// Catalog
	CreateCategory    commands.CreateCategoryCommandHandler
	UpdateCategory    commands.UpdateCategoryCommandHandler
	DeleteCategory    commands.DeleteCategoryCommandHandler
	SetCategoryStatus commands.SetCategoryStatusCommandHandler
	CreateDish        commands.CreateDishCommandHandler
	UpdateDish        commands.UpdateDishCommandHandler
	DeleteDishes      commands.DeleteDishesCommandHandler
	SetDishStatus     commands.SetDishStatusCommandHandler
	CreateCombo       commands.CreateComboCommandHandler
	UpdateCombo       commands.UpdateComboCommandHandler
	DeleteCombos      commands.DeleteCombosCommandHandler
	SetComboStatus    commands.SetComboStatusCommandHandler

	// Queries
	GetMenu         queries.GetMenuQueryHandler
	GetCart         queries.GetCartQueryHandler
	GetAddresses    queries.GetAddressesQueryHandler
	GetOrderHistory queries.GetOrderHistoryQueryHandler
	GetOrderDetails queries.GetOrderDetailsQueryHandler
	OrderStatistics queries.GetOrderStatisticsQueryHandler
	TurnoverReport  queries.TurnoverReportQueryHandler
	OrderReport     queries.OrderReportQueryHandler
	UserReport      queries.UserReportQueryHandler
	TopSellers      queries.TopSellersQueryHandler
}

// Server dispatches HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.POST("/cart/items/decrement", s.RemoveFromCart)
	api.DELETE("/cart", s.ClearCart)

	api.GET("/addresses", s.GetAddresses)
	api.POST("/addresses", s.AddAddress)
	api.PUT("/addresses/:id", s.UpdateAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)
	api.PUT("/addresses/:id/default", s.SetDefaultAddress)

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetOrderHistory)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.POST("/orders/:id/payment", s.PayOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/reminder", s.RemindOrder)
	api.POST("/orders/:id/reorder", s.Reorder)

	api.POST("/payments/notify", s.PaymentNotify)

	admin := api.Group("/admin")
	admin.GET("/orders/statistics", s.OrderStatistics)
	admin.GET("/orders/:id", s.AdminGetOrderDetails)
	admin.PUT("/orders/:id/confirm", s.ConfirmOrder)
	admin.PUT("/orders/:id/reject", s.RejectOrder)
	admin.PUT("/orders/:id/cancel", s.AdminCancelOrder)
	admin.PUT("/orders/:id/dispatch", s.DispatchOrder)
	admin.PUT("/orders/:id/complete", s.CompleteOrder)

	admin.POST("/categories", s.CreateCategory)
	admin.PUT("/categories/:id", s.UpdateCategory)
	admin.DELETE("/categories/:id", s.DeleteCategory)
	admin.PUT("/categories/:id/status", s.SetCategoryStatus)

	admin.POST("/dishes", s.CreateDish)
	admin.PUT("/dishes/:id", s.UpdateDish)
	admin.DELETE("/dishes", s.DeleteDishes)
	admin.PUT("/dishes/:id/status", s.SetDishStatus)

	admin.POST("/combos", s.CreateCombo)
	admin.PUT("/combos/:id", s.UpdateCombo)
	admin.DELETE("/combos", s.DeleteCombos)
	admin.PUT("/combos/:id/status", s.SetComboStatus)

	admin.GET("/reports/turnover", s.TurnoverReport)
	admin.GET("/reports/orders", s.OrderReport)
	admin.GET("/reports/users", s.UserReport)
	admin.GET("/reports/top-sellers", s.TopSellers)
}

func userID(ctx echo.Context) (int64, bool) {
	raw := ctx.Request().Header.Get(userIDHeader)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func pathID(ctx echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetMenu handles GET /api/v1/menu?categoryId= - the customer-facing menu of
// one category.
func (s *Server) GetMenu(ctx echo.Context) error {
	categoryID, err := strconv.ParseInt(ctx.QueryParam("categoryId"), 10, 64)
	if err != nil {
		return badRequest(ctx, "categoryId query parameter is required")
	}

	query, err := queries.NewGetMenuQuery(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	menu, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menu)
}

// GetCart handles GET /api/v1/cart - the caller's cart contents.
func (s *Server) GetCart(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	query, err := queries.NewGetCartQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	lines, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCartResponse(lines))
}

// AddToCart handles POST /api/v1/cart/items - adds one unit of a dish or
// combo to the caller's cart.
func (s *Server) AddToCart(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	var request cartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddToCartCommand(id, request.DishID, request.ComboID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles POST /api/v1/cart/items/decrement - removes one unit
// of a dish or combo from the caller's cart.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	var request cartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveFromCartCommand(id, request.DishID, request.ComboID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - empties the caller's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	cmd, err := commands.NewClearCartCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAddresses handles GET /api/v1/addresses - the caller's address book.
func (s *Server) GetAddresses(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	query, err := queries.NewGetAddressesQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	addresses, err := s.handlers.GetAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newAddressesResponse(addresses))
}

// AddAddress handles POST /api/v1/addresses - adds an address book entry.
func (s *Server) AddAddress(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	var request addressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddAddressCommand(id, request.Consignee, request.Phone, request.Detail)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AddAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateAddress handles PUT /api/v1/addresses/:id - edits an address book
// entry.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	addressID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid address id")
	}

	var request addressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateAddressCommand(id, addressID,
		request.Consignee, request.Phone, request.Detail)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAddress handles DELETE /api/v1/addresses/:id.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	addressID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewDeleteAddressCommand(id, addressID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDefaultAddress handles PUT /api/v1/addresses/:id/default - marks one
// entry as the default delivery target.
func (s *Server) SetDefaultAddress(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	addressID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewSetDefaultAddressCommand(id, addressID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetDefaultAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/orders - turns the caller's cart into a
// pending-payment order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	var request submitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitOrderCommand(id, request.AddressID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newSubmitOrderResponse(result))
}

// GetOrderHistory handles GET /api/v1/orders?status=&page=&pageSize= - pages
// through the caller's past orders, newest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page")
		}
		page = parsed
	}

	pageSize := 10
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid pageSize")
		}
		pageSize = parsed
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status")
		}
		value := order.Status(parsed)
		if err = value.Validate(); err != nil {
			return writeError(ctx, err)
		}
		status = &value
	}

	query, err := queries.NewGetOrderHistoryQuery(id, status, page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderPageResponse(history))
}

// GetOrderDetails handles GET /api/v1/orders/:id - one order of the caller,
// with its lines.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, &id)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDetailsResponse(details))
}

// PayOrder handles POST /api/v1/orders/:id/payment - initiates payment and
// returns the prepay ticket for the client SDK.
func (s *Server) PayOrder(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewPayOrderCommand(id, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	ticket, err := s.handlers.PayOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPrepayResponse(ticket))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - customer-side
// cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewUserCancelOrderCommand(id, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UserCancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemindOrder handles POST /api/v1/orders/:id/reminder - pings the merchant
// terminals about a paid order that is still waiting.
func (s *Server) RemindOrder(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemindOrderCommand(id, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RemindOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Reorder handles POST /api/v1/orders/:id/reorder - copies a past order's
// lines back into the cart.
func (s *Server) Reorder(ctx echo.Context) error {
	id, ok := userID(ctx)
	if !ok {
		return badRequest(ctx, "X-User-Id header is required")
	}
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewReorderCommand(id, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.Reorder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PaymentNotify handles POST /api/v1/payments/notify - the payment provider
// callback confirming a successful payment.
func (s *Server) PaymentNotify(ctx echo.Context) error {
	var request paymentNotifyRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPaymentSucceededCommand(request.OutTradeNo)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.PaymentNotify.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func parseReportRange(ctx echo.Context) (time.Time, time.Time, bool) {
	begin, err := time.ParseInLocation("2006-01-02", ctx.QueryParam("begin"), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02", ctx.QueryParam("end"), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return begin, end, true
}
