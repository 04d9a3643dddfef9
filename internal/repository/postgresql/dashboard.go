package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/dashboard"
	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) GetStats(ctx context.Context, today time.Time) (dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = 'paid'),
			(SELECT COUNT(*) FROM attendance_records WHERE date = $1 AND status = 'present'),
			(SELECT COUNT(*) FROM users WHERE role <> $2)
	`

	var stats dashboard.Stats
	err := q.QueryRow(ctx, query, today.Format("2006-01-02"), user.RoleAdmin).Scan(
		&stats.TotalCustomers, &stats.TotalOrders, &stats.TotalRevenue,
		&stats.PresentToday, &stats.TotalEmployees,
	)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return stats, nil
}

func (r *dashboardRepositoryImpl) GetRecentOrders(ctx context.Context, limit int) ([]dashboard.RecentOrder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, order_number, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	defer rows.Close()

	var orders []dashboard.RecentOrder
	for rows.Next() {
		var o dashboard.RecentOrder
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.TotalAmount, &o.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent order: %w", err)
		}
		o.CreatedAt = createdAt.Format(time.RFC3339)
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *dashboardRepositoryImpl) GetRevenueTrend(ctx context.Context, today time.Time, days int) ([]dashboard.RevenuePoint, error) {
	q := GetQuerier(ctx, r.db)

	start := today.AddDate(0, 0, -(days - 1))

	query := `
		SELECT created_at::date, COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at::date >= $1 AND created_at::date <= $2
		GROUP BY created_at::date
	`

	rows, err := q.Query(ctx, query, start.Format("2006-01-02"), today.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue trend: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string]decimal.Decimal)
	for rows.Next() {
		var date time.Time
		var revenue decimal.Decimal
		if err := rows.Scan(&date, &revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue point: %w", err)
		}
		byDate[date.Format("2006-01-02")] = revenue
	}

	// Zero-fill days with no orders so the series is continuous
	points := make([]dashboard.RevenuePoint, 0, days)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		revenue, ok := byDate[key]
		if !ok {
			revenue = decimal.Zero
		}
		points = append(points, dashboard.RevenuePoint{Date: key, Revenue: revenue})
	}

	return points, nil
}

func (r *dashboardRepositoryImpl) GetStatusCounts(ctx context.Context) ([]dashboard.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get order status counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.StatusCount
	for rows.Next() {
		var c dashboard.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, nil
}
