package dashboard

import (
	"github.com/shopspring/decimal"
)

type Stats struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	PresentToday   int64           `json:"present_today"`
	TotalEmployees int64           `json:"total_employees"`
}

type RecentOrder struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

// RevenuePoint is one day of the trailing revenue series.
type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StatusCount is one slice of the order-status distribution.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type Overview struct {
	Stats        Stats          `json:"stats"`
	RecentOrders []RecentOrder  `json:"recent_orders"`
	RevenueTrend []RevenuePoint `json:"revenue_trend"`
	StatusCounts []StatusCount  `json:"status_counts"`
}
