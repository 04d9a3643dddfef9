package catalog

import "errors"

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrVariantNotFound    = errors.New("product variant not found")
	ErrSKUExists          = errors.New("sku already exists")
)
