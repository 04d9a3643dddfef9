package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	GetStats(ctx context.Context, today time.Time) (Stats, error)
	GetRecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
	// GetRevenueTrend returns one point per day for the trailing days
	// ending at today, zero-filled for days without orders.
	GetRevenueTrend(ctx context.Context, today time.Time, days int) ([]RevenuePoint, error)
	GetStatusCounts(ctx context.Context) ([]StatusCount, error)
}
