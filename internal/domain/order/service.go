package order

import "context"

type OrderService interface {
	// Create creates an order with its items in one transaction: prices
	// come from the current variant price, stock is decremented per item,
	// and insufficient stock aborts the whole order.
	Create(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)

	GetByID(ctx context.Context, id string) (OrderResponse, error)
	List(ctx context.Context, filter OrderFilter) ([]OrderResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (OrderResponse, error)
	UpdatePaymentStatus(ctx context.Context, req UpdatePaymentStatusRequest) (OrderResponse, error)
}
