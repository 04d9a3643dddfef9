package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickmart/console-backend-go/internal/domain/order"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

func (r *orderRepositoryImpl) Create(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO orders (order_number, customer_id, total_amount, shipping_address, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_number, customer_id, total_amount, shipping_address, status, payment_status, created_at, updated_at
	`

	var created order.Order
	err := q.QueryRow(ctx, query,
		o.OrderNumber, o.CustomerID, o.TotalAmount, o.ShippingAddress, o.Status, o.PaymentStatus,
	).Scan(
		&created.ID, &created.OrderNumber, &created.CustomerID, &created.TotalAmount,
		&created.ShippingAddress, &created.Status, &created.PaymentStatus,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "orders_order_number_key") {
			return order.Order{}, order.ErrOrderNumberExists
		}
		return order.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return created, nil
}

func (r *orderRepositoryImpl) CreateItems(ctx context.Context, items []order.OrderItem) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO order_items (order_id, product_variant_id, quantity, price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range items {
		if _, err := q.Exec(ctx, query,
			item.OrderID, item.ProductVariantID, item.Quantity, item.Price, item.Subtotal,
		); err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	return nil
}

func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.order_number, o.customer_id, o.total_amount, o.shipping_address,
			   o.status, o.payment_status, o.created_at, o.updated_at,
			   c.full_name, c.email
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1
	`

	var o order.Order
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.TotalAmount, &o.ShippingAddress,
		&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
		&o.CustomerName, &o.CustomerEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return o, nil
}

func (r *orderRepositoryImpl) GetItems(ctx context.Context, orderID string) ([]order.OrderItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.order_id, i.product_variant_id, i.quantity, i.price, i.subtotal,
			   p.name, v.sku
		FROM order_items i
		JOIN product_variants v ON v.id = i.product_variant_id
		JOIN products p ON p.id = v.product_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []order.OrderItem
	for rows.Next() {
		var item order.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductVariantID, &item.Quantity,
			&item.Price, &item.Subtotal, &item.ProductName, &item.SKU,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *orderRepositoryImpl) List(ctx context.Context, filter order.OrderFilter) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.order_number, o.customer_id, o.total_amount, o.shipping_address,
			   o.status, o.payment_status, o.created_at, o.updated_at,
			   c.full_name, c.email
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
	`
	var args []interface{}
	if filter.Status != nil && *filter.Status != "" {
		query += " WHERE o.status = $1"
		args = append(args, *filter.Status)
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerID, &o.TotalAmount, &o.ShippingAddress,
			&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
			&o.CustomerName, &o.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *orderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var returned string
	if err := q.QueryRow(ctx, query, status, id).Scan(&returned); err != nil {
		if err == pgx.ErrNoRows {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

func (r *orderRepositoryImpl) UpdatePaymentStatus(ctx context.Context, id string, status order.PaymentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE orders
		SET payment_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var returned string
	if err := q.QueryRow(ctx, query, status, id).Scan(&returned); err != nil {
		if err == pgx.ErrNoRows {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order payment status: %w", err)
	}

	return nil
}
