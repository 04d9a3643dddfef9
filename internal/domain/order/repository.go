package order

import "context"

type OrderRepository interface {
	// Create inserts the order header. Items are inserted separately so
	// the service can wrap both in one transaction.
	Create(ctx context.Context, o Order) (Order, error)
	CreateItems(ctx context.Context, items []OrderItem) error

	GetByID(ctx context.Context, id string) (Order, error)
	// GetItems returns an order's items joined with product names.
	GetItems(ctx context.Context, orderID string) ([]OrderItem, error)
	// List returns orders joined with customer info, newest first.
	List(ctx context.Context, filter OrderFilter) ([]Order, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
}
