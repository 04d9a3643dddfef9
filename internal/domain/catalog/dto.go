package catalog

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	CategoryID  *string         `json:"category_id,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BasePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.BasePrice != nil && r.BasePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateVariantRequest struct {
	ProductID     string          `json:"-"`
	Size          *string         `json:"size,omitempty"`
	Color         *string         `json:"color,omitempty"`
	SKU           *string         `json:"sku,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ReorderPoint  *int            `json:"reorder_point,omitempty"`
}

func (r *CreateVariantRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}
	if r.StockQuantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "stock_quantity", Message: "must be non-negative"})
	}
	if r.ReorderPoint != nil && *r.ReorderPoint < 0 {
		errs = append(errs, validator.ValidationError{Field: "reorder_point", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateVariantRequest struct {
	VariantID    string
	Size         *string          `json:"size,omitempty"`
	Color        *string          `json:"color,omitempty"`
	SKU          *string          `json:"sku,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ReorderPoint *int             `json:"reorder_point,omitempty"`
}

func (r *UpdateVariantRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}
	if r.ReorderPoint != nil && *r.ReorderPoint < 0 {
		errs = append(errs, validator.ValidationError{Field: "reorder_point", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStockRequest struct {
	VariantID     string
	StockQuantity int `json:"stock_quantity"`
}

func (r *UpdateStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StockQuantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "stock_quantity", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	BasePrice    decimal.Decimal `json:"base_price"`
	CreatedAt    string          `json:"created_at"`
}

type VariantResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   *string         `json:"product_name,omitempty"`
	Size          *string         `json:"size,omitempty"`
	Color         *string         `json:"color,omitempty"`
	SKU           *string         `json:"sku,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ReorderPoint  int             `json:"reorder_point"`
	LowStock      bool            `json:"low_stock"`
}
