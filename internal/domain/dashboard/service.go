package dashboard

import "context"

type DashboardService interface {
	// GetOverview assembles the console landing page: headline stats,
	// recent orders, a trailing revenue series and the order-status
	// distribution.
	GetOverview(ctx context.Context) (Overview, error)
}
