package order

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOrderItemRequest struct {
	ProductVariantID string `json:"product_variant_id"`
	Quantity         int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID      *string                  `json:"customer_id,omitempty"`
	ShippingAddress *string                  `json:"shipping_address,omitempty"`
	Items           []CreateOrderItemRequest `json:"items"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range r.Items {
		if validator.IsEmpty(item.ProductVariantID) {
			errs = append(errs, validator.ValidationError{Field: "items[" + validator.Itoa(i) + "].product_variant_id", Message: "is required"})
		}
		if item.Quantity < 1 {
			errs = append(errs, validator.ValidationError{Field: "items[" + validator.Itoa(i) + "].quantity", Message: "must be at least 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, processing, shipped, delivered or cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentStatusRequest struct {
	ID            string
	PaymentStatus string `json:"payment_status"`
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidPaymentStatus(r.PaymentStatus) {
		errs = append(errs, validator.ValidationError{Field: "payment_status", Message: "must be pending, paid or refunded"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrderFilter struct {
	Status *string `json:"status,omitempty"`
}

type OrderItemResponse struct {
	ID               string          `json:"id"`
	ProductVariantID string          `json:"product_variant_id"`
	ProductName      *string         `json:"product_name,omitempty"`
	SKU              *string         `json:"sku,omitempty"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerID      *string             `json:"customer_id,omitempty"`
	CustomerName    *string             `json:"customer_name,omitempty"`
	CustomerEmail   *string             `json:"customer_email,omitempty"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	ShippingAddress *string             `json:"shipping_address,omitempty"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       string              `json:"created_at"`
}
