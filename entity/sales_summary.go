package entity

// SalesSummary is the server-side aggregation over all orders.
type SalesSummary struct {
	OrderCount    int64 `json:"orderCount"`
	GrossTotal    int64 `json:"grossTotal"`
	DiscountTotal int64 `json:"discountTotal"`
	PointsTotal   int64 `json:"pointsTotal"`
	NetTotal      int64 `json:"netTotal"`
}
