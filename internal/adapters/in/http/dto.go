package http

import (
	"time"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/application/usecases/queries"
	"takeout/internal/core/ports"
)

// Request bodies.

type cartItemRequest struct {
	DishID  *int64 `json:"dishId"`
	ComboID *int64 `json:"comboId"`
}

type submitOrderRequest struct {
	AddressID int64 `json:"addressId"`
}

type paymentNotifyRequest struct {
	OutTradeNo string `json:"outTradeNo"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

type addressRequest struct {
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Detail    string `json:"detail"`
}

type categoryRequest struct {
	Name string `json:"name"`
	Sort int    `json:"sort"`
}

type dishRequest struct {
	CategoryID  int64   `json:"categoryId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type comboDishRequest struct {
	DishID   int64 `json:"dishId"`
	Quantity int   `json:"quantity"`
}

type comboRequest struct {
	CategoryID  int64              `json:"categoryId"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Dishes      []comboDishRequest `json:"dishes"`
}

type statusRequest struct {
	Status int `json:"status"`
}

type idsRequest struct {
	IDs []int64 `json:"ids"`
}

// Response bodies.

type submitOrderResponse struct {
	OrderID int64   `json:"orderId"`
	Number  string  `json:"number"`
	Amount  float64 `json:"amount"`
}

type prepayResponse struct {
	PrepayID  string `json:"prepayId"`
	NonceStr  string `json:"nonceStr"`
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
}

func newPrepayResponse(ticket ports.PrepayTicket) prepayResponse {
	return prepayResponse{
		PrepayID:  ticket.PrepayID,
		NonceStr:  ticket.NonceStr,
		Timestamp: ticket.Timestamp,
		Signature: ticket.Signature,
	}
}

type cartLineResponse struct {
	ID       int64   `json:"id"`
	DishID   *int64  `json:"dishId,omitempty"`
	ComboID  *int64  `json:"comboId,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func newCartResponse(lines []queries.GetCartQueryResponse) []cartLineResponse {
	response := make([]cartLineResponse, len(lines))
	for i, line := range lines {
		response[i] = cartLineResponse{
			ID:       line.ID,
			DishID:   line.DishID,
			ComboID:  line.ComboID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}
	return response
}

type addressResponse struct {
	ID        int64  `json:"id"`
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"isDefault"`
}

func newAddressesResponse(addresses []queries.GetAddressesQueryResponse) []addressResponse {
	response := make([]addressResponse, len(addresses))
	for i, address := range addresses {
		response[i] = addressResponse{
			ID:        address.ID,
			Consignee: address.Consignee,
			Phone:     address.Phone,
			Detail:    address.Detail,
			IsDefault: address.IsDefault,
		}
	}
	return response
}

type orderSummaryResponse struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Status    int       `json:"status"`
	PayStatus int       `json:"payStatus"`
	Amount    float64   `json:"amount"`
	OrderTime time.Time `json:"orderTime"`
}

type orderPageResponse struct {
	Total  int64                  `json:"total"`
	Orders []orderSummaryResponse `json:"orders"`
}

func newOrderPageResponse(page queries.GetOrderHistoryQueryResponse) orderPageResponse {
	response := orderPageResponse{
		Total:  page.Total,
		Orders: make([]orderSummaryResponse, len(page.Orders)),
	}
	for i, summary := range page.Orders {
		response.Orders[i] = orderSummaryResponse{
			ID:        summary.ID,
			Number:    summary.Number,
			Status:    int(summary.Status),
			PayStatus: int(summary.PayStatus),
			Amount:    summary.Amount,
			OrderTime: summary.OrderTime,
		}
	}
	return response
}

type orderLineResponse struct {
	DishID   *int64  `json:"dishId,omitempty"`
	ComboID  *int64  `json:"comboId,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type orderDetailsResponse struct {
	ID              int64               `json:"id"`
	Number          string              `json:"number"`
	UserID          int64               `json:"userId"`
	Status          int                 `json:"status"`
	PayStatus       int                 `json:"payStatus"`
	Amount          float64             `json:"amount"`
	Consignee       string              `json:"consignee"`
	Phone           string              `json:"phone"`
	Address         string              `json:"address"`
	CancelReason    string              `json:"cancelReason,omitempty"`
	RejectionReason string              `json:"rejectionReason,omitempty"`
	OrderTime       time.Time           `json:"orderTime"`
	CheckoutTime    *time.Time          `json:"checkoutTime,omitempty"`
	CancelTime      *time.Time          `json:"cancelTime,omitempty"`
	Lines           []orderLineResponse `json:"lines"`
}

func newOrderDetailsResponse(details queries.GetOrderDetailsQueryResponse) orderDetailsResponse {
	response := orderDetailsResponse{
		ID:              details.ID,
		Number:          details.Number,
		UserID:          details.UserID,
		Status:          int(details.Status),
		PayStatus:       int(details.PayStatus),
		Amount:          details.Amount,
		Consignee:       details.Consignee,
		Phone:           details.Phone,
		Address:         details.Address,
		CancelReason:    details.CancelReason,
		RejectionReason: details.RejectionReason,
		OrderTime:       details.OrderTime,
		CheckoutTime:    details.CheckoutTime,
		CancelTime:      details.CancelTime,
		Lines:           make([]orderLineResponse, len(details.Lines)),
	}
	for i, line := range details.Lines {
		response.Lines[i] = orderLineResponse{
			DishID:   line.DishID,
			ComboID:  line.ComboID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}
	return response
}

type orderStatisticsResponse struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

type turnoverRowResponse struct {
	Date     string  `json:"date"`
	Turnover float64 `json:"turnover"`
}

func newTurnoverReportResponse(rows []queries.TurnoverReportRow) []turnoverRowResponse {
	response := make([]turnoverRowResponse, len(rows))
	for i, row := range rows {
		response[i] = turnoverRowResponse{Date: row.Date, Turnover: row.Turnover}
	}
	return response
}

type orderReportRowResponse struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Valid int64  `json:"valid"`
}

type orderReportResponse struct {
	Rows           []orderReportRowResponse `json:"rows"`
	TotalOrders    int64                    `json:"totalOrders"`
	ValidOrders    int64                    `json:"validOrders"`
	CompletionRate float64                  `json:"completionRate"`
}

func newOrderReportResponse(report queries.OrderReportQueryResponse) orderReportResponse {
	response := orderReportResponse{
		Rows:           make([]orderReportRowResponse, len(report.Rows)),
		TotalOrders:    report.TotalOrders,
		ValidOrders:    report.ValidOrders,
		CompletionRate: report.CompletionRate,
	}
	for i, row := range report.Rows {
		response.Rows[i] = orderReportRowResponse{Date: row.Date, Total: row.Total, Valid: row.Valid}
	}
	return response
}

type userReportRowResponse struct {
	Date  string `json:"date"`
	New   int64  `json:"new"`
	Total int64  `json:"total"`
}

func newUserReportResponse(rows []queries.UserReportRow) []userReportRowResponse {
	response := make([]userReportRowResponse, len(rows))
	for i, row := range rows {
		response[i] = userReportRowResponse{Date: row.Date, New: row.New, Total: row.Total}
	}
	return response
}

type topSellerRowResponse struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

func newTopSellersResponse(rows []queries.TopSellerRow) []topSellerRowResponse {
	response := make([]topSellerRowResponse, len(rows))
	for i, row := range rows {
		response[i] = topSellerRowResponse{Name: row.Name, Quantity: row.Quantity}
	}
	return response
}

func newSubmitOrderResponse(result commands.SubmitOrderResult) submitOrderResponse {
	return submitOrderResponse{
		OrderID: result.OrderID,
		Number:  result.Number,
		Amount:  result.Amount,
	}
}
