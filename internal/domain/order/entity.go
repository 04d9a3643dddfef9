package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type Order struct {
	ID              string
	OrderNumber     string
	CustomerID      *string
	TotalAmount     decimal.Decimal
	ShippingAddress *string
	Status          Status
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	CustomerName  *string
	CustomerEmail *string
	Items         []OrderItem
}

type OrderItem struct {
	ID               string
	OrderID          string
	ProductVariantID string
	Quantity         int
	Price            decimal.Decimal
	Subtotal         decimal.Decimal

	// Joined fields
	ProductName *string
	SKU         *string
}
