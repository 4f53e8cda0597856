package queries

// GetOrderStatisticsQuery counts the in-flight orders the merchant dashboard
// cares about, grouped by status. It takes no parameters.
type GetOrderStatisticsQuery struct{}

// NewGetOrderStatisticsQuery creates an order statistics query.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{}
}

// GetOrderStatisticsQueryResponse holds one count per in-flight status.
type GetOrderStatisticsQueryResponse struct {
	ToBeConfirmed      int64
	Confirmed          int64
	DeliveryInProgress int64
}
