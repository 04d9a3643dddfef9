package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type Product struct {
	ID          string
	Name        string
	Description *string
	CategoryID  *string
	BasePrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	CategoryName *string
}

// ProductVariant is the sellable/stockable unit. Inventory levels live
// here, not on the product.
type ProductVariant struct {
	ID            string
	ProductID     string
	Size          *string
	Color         *string
	SKU           *string
	Price         decimal.Decimal
	StockQuantity int
	ReorderPoint  int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ProductName *string
}

// LowStock reports whether the variant is at or below its reorder point.
func (v *ProductVariant) LowStock() bool {
	return v.StockQuantity <= v.ReorderPoint
}
