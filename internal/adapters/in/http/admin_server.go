package http

import (
	"net/http"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
)

// AdminGetOrderDetails handles GET /api/v1/admin/orders/:id - one order with
// its lines, unscoped.
func (s *Server) AdminGetOrderDetails(ctx echo.Context) error {
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, nil)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDetailsResponse(details))
}

// OrderStatistics handles GET /api/v1/admin/orders/statistics - the count of
// in-flight orders per status for the dashboard.
func (s *Server) OrderStatistics(ctx echo.Context) error {
	statistics, err := s.handlers.OrderStatistics.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderStatisticsResponse{
		ToBeConfirmed:      statistics.ToBeConfirmed,
		Confirmed:          statistics.Confirmed,
		DeliveryInProgress: statistics.DeliveryInProgress,
	})
}

// ConfirmOrder handles PUT /api/v1/admin/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles PUT /api/v1/admin/orders/:id/reject - declines a paid
// order with a reason; the payment is refunded.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	var request reasonRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminCancelOrder handles PUT /api/v1/admin/orders/:id/cancel.
func (s *Server) AdminCancelOrder(ctx echo.Context) error {
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	var request reasonRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdminCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles PUT /api/v1/admin/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DispatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles PUT /api/v1/admin/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/admin/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var request categoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(request.Name, request.Sort)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	categoryID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid category id")
	}

	var request categoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCategoryCommand(categoryID, request.Name, request.Sort)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id. A category
// that still contains dishes or combos is rejected with a conflict.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	categoryID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid category id")
	}

	cmd, err := commands.NewDeleteCategoryCommand(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCategoryStatus handles PUT /api/v1/admin/categories/:id/status.
func (s *Server) SetCategoryStatus(ctx echo.Context) error {
	categoryID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid category id")
	}

	status, ok := bindSaleStatus(ctx)
	if !ok {
		return badRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewSetCategoryStatusCommand(categoryID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetCategoryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDish handles POST /api/v1/admin/dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	var request dishRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDishCommand(request.CategoryID,
		request.Name, request.Price, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateDish handles PUT /api/v1/admin/dishes/:id.
func (s *Server) UpdateDish(ctx echo.Context) error {
	dishID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid dish id")
	}

	var request dishRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDishCommand(dishID, request.CategoryID,
		request.Name, request.Price, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateDish.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDishes handles DELETE /api/v1/admin/dishes - batch removal. Dishes
// on sale or bundled into combos are rejected with a conflict.
func (s *Server) DeleteDishes(ctx echo.Context) error {
	var request idsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDeleteDishesCommand(request.IDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteDishes.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDishStatus handles PUT /api/v1/admin/dishes/:id/status.
func (s *Server) SetDishStatus(ctx echo.Context) error {
	dishID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid dish id")
	}

	status, ok := bindSaleStatus(ctx)
	if !ok {
		return badRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewSetDishStatusCommand(dishID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetDishStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCombo handles POST /api/v1/admin/combos.
func (s *Server) CreateCombo(ctx echo.Context) error {
	var request comboRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateComboCommand(request.CategoryID,
		request.Name, request.Price, request.Description, comboDishes(request.Dishes))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateCombo.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCombo handles PUT /api/v1/admin/combos/:id.
func (s *Server) UpdateCombo(ctx echo.Context) error {
	comboID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid combo id")
	}

	var request comboRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateComboCommand(comboID, request.CategoryID,
		request.Name, request.Price, request.Description, comboDishes(request.Dishes))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateCombo.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCombos handles DELETE /api/v1/admin/combos - batch removal.
func (s *Server) DeleteCombos(ctx echo.Context) error {
	var request idsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDeleteCombosCommand(request.IDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteCombos.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetComboStatus handles PUT /api/v1/admin/combos/:id/status. Enabling a
// combo requires every bundled dish to be on sale.
func (s *Server) SetComboStatus(ctx echo.Context) error {
	comboID, ok := pathID(ctx)
	if !ok {
		return badRequest(ctx, "Invalid combo id")
	}

	status, ok := bindSaleStatus(ctx)
	if !ok {
		return badRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewSetComboStatusCommand(comboID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetComboStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TurnoverReport handles GET /api/v1/admin/reports/turnover?begin=&end=.
func (s *Server) TurnoverReport(ctx echo.Context) error {
	begin, end, ok := parseReportRange(ctx)
	if !ok {
		return badRequest(ctx, "begin and end query parameters are required (YYYY-MM-DD)")
	}

	query, err := queries.NewTurnoverReportQuery(begin, end)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.TurnoverReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTurnoverReportResponse(rows))
}

// OrderReport handles GET /api/v1/admin/reports/orders?begin=&end=.
func (s *Server) OrderReport(ctx echo.Context) error {
	begin, end, ok := parseReportRange(ctx)
	if !ok {
		return badRequest(ctx, "begin and end query parameters are required (YYYY-MM-DD)")
	}

	query, err := queries.NewOrderReportQuery(begin, end)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.handlers.OrderReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderReportResponse(report))
}

// UserReport handles GET /api/v1/admin/reports/users?begin=&end=.
func (s *Server) UserReport(ctx echo.Context) error {
	begin, end, ok := parseReportRange(ctx)
	if !ok {
		return badRequest(ctx, "begin and end query parameters are required (YYYY-MM-DD)")
	}

	query, err := queries.NewUserReportQuery(begin, end)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.UserReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newUserReportResponse(rows))
}

// TopSellers handles GET /api/v1/admin/reports/top-sellers?begin=&end=.
func (s *Server) TopSellers(ctx echo.Context) error {
	begin, end, ok := parseReportRange(ctx)
	if !ok {
		return badRequest(ctx, "begin and end query parameters are required (YYYY-MM-DD)")
	}

	query, err := queries.NewTopSellersQuery(begin, end)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.TopSellers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTopSellersResponse(rows))
}

func bindSaleStatus(ctx echo.Context) (catalog.SaleStatus, bool) {
	var request statusRequest
	if err := ctx.Bind(&request); err != nil {
		return 0, false
	}
	status := catalog.SaleStatus(request.Status)
	if err := status.Validate(); err != nil {
		return 0, false
	}
	return status, true
}

func comboDishes(dishes []comboDishRequest) []catalog.ComboDish {
	result := make([]catalog.ComboDish, len(dishes))
	for i, dish := range dishes {
		result[i] = catalog.ComboDish{DishID: dish.DishID, Quantity: dish.Quantity}
	}
	return result
}
