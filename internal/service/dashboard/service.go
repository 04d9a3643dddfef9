package dashboard

import (
	"context"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/dashboard"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
)

const (
	recentOrdersLimit = 5
	revenueTrendDays  = 7
)

type DashboardServiceImpl struct {
	db            *database.DB
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(db *database.DB, dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:            db,
		dashboardRepo: dashboardRepo,
	}
}

// GetOverview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.Overview, error) {
	today := time.Now()

	stats, err := s.dashboardRepo.GetStats(ctx, today)
	if err != nil {
		return dashboard.Overview{}, err
	}

	recent, err := s.dashboardRepo.GetRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return dashboard.Overview{}, err
	}

	trend, err := s.dashboardRepo.GetRevenueTrend(ctx, today, revenueTrendDays)
	if err != nil {
		return dashboard.Overview{}, err
	}

	counts, err := s.dashboardRepo.GetStatusCounts(ctx)
	if err != nil {
		return dashboard.Overview{}, err
	}

	return dashboard.Overview{
		Stats:        stats,
		RecentOrders: recent,
		RevenueTrend: trend,
		StatusCounts: counts,
	}, nil
}
