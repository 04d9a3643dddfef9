package order

import (
	"context"
	"fmt"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/catalog"
	"github.com/brickmart/console-backend-go/internal/domain/customer"
	"github.com/brickmart/console-backend-go/internal/domain/order"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/brickmart/console-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type OrderServiceImpl struct {
	db           *database.DB
	orderRepo    order.OrderRepository
	catalogRepo  catalog.CatalogRepository
	customerRepo customer.CustomerRepository
}

func NewOrderService(
	db *database.DB,
	orderRepo order.OrderRepository,
	catalogRepo catalog.CatalogRepository,
	customerRepo customer.CustomerRepository,
) order.OrderService {
	return &OrderServiceImpl{
		db:           db,
		orderRepo:    orderRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
	}
}

// Create implements order.OrderService.
func (s *OrderServiceImpl) Create(ctx context.Context, req order.CreateOrderRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *req.CustomerID); err != nil {
			return order.OrderResponse{}, err
		}
	}

	var created order.Order
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		total := decimal.Zero
		items := make([]order.OrderItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			variant, err := s.catalogRepo.GetVariantByID(txCtx, itemReq.ProductVariantID)
			if err != nil {
				return err
			}
			if variant.StockQuantity < itemReq.Quantity {
				return fmt.Errorf("%w: %s", order.ErrInsufficientStock, itemReq.ProductVariantID)
			}

			if err := s.catalogRepo.UpdateVariantStock(txCtx, variant.ID, variant.StockQuantity-itemReq.Quantity); err != nil {
				return err
			}

			subtotal := variant.Price.Mul(decimal.NewFromInt(int64(itemReq.Quantity)))
			total = total.Add(subtotal)
			items = append(items, order.OrderItem{
				ProductVariantID: variant.ID,
				Quantity:         itemReq.Quantity,
				Price:            variant.Price,
				Subtotal:         subtotal,
			})
		}

		var err error
		created, err = s.orderRepo.Create(txCtx, order.Order{
			OrderNumber:     generateOrderNumber(),
			CustomerID:      req.CustomerID,
			TotalAmount:     total,
			ShippingAddress: req.ShippingAddress,
			Status:          order.StatusPending,
			PaymentStatus:   order.PaymentPending,
		})
		if err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = created.ID
		}
		return s.orderRepo.CreateItems(txCtx, items)
	})
	if err != nil {
		return order.OrderResponse{}, err
	}

	return s.GetByID(ctx, created.ID)
}

// GetByID implements order.OrderService.
func (s *OrderServiceImpl) GetByID(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}

	items, err := s.orderRepo.GetItems(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}
	o.Items = items

	return toOrderResponse(o, true), nil
}

// List implements order.OrderService.
func (s *OrderServiceImpl) List(ctx context.Context, filter order.OrderFilter) ([]order.OrderResponse, error) {
	if filter.Status != nil && *filter.Status != "" && !order.IsValidStatus(*filter.Status) {
		return nil, order.ErrInvalidStatus
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o, false))
	}

	return responses, nil
}

// UpdateStatus implements order.OrderService.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, req order.UpdateStatusRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, req.ID, order.Status(req.Status)); err != nil {
		return order.OrderResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// UpdatePaymentStatus implements order.OrderService.
func (s *OrderServiceImpl) UpdatePaymentStatus(ctx context.Context, req order.UpdatePaymentStatusRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, req.ID, order.PaymentStatus(req.PaymentStatus)); err != nil {
		return order.OrderResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// generateOrderNumber returns ORD- followed by the last 8 digits of the
// current Unix millisecond timestamp.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%08d", time.Now().UnixMilli()%100000000)
}

func toOrderResponse(o order.Order, withItems bool) order.OrderResponse {
	resp := order.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
	if withItems {
		resp.Items = make([]order.OrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			resp.Items = append(resp.Items, order.OrderItemResponse{
				ID:               item.ID,
				ProductVariantID: item.ProductVariantID,
				ProductName:      item.ProductName,
				SKU:              item.SKU,
				Quantity:         item.Quantity,
				Price:            item.Price,
				Subtotal:         item.Subtotal,
			})
		}
	}
	return resp
}
