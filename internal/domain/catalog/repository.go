package catalog

import "context"

type CatalogRepository interface {
	// Categories
	CreateCategory(ctx context.Context, c Category) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)

	// Products
	CreateProduct(ctx context.Context, p Product) (Product, error)
	GetProductByID(ctx context.Context, id string) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error

	// Variants
	CreateVariant(ctx context.Context, v ProductVariant) (ProductVariant, error)
	GetVariantByID(ctx context.Context, id string) (ProductVariant, error)
	ListVariantsByProduct(ctx context.Context, productID string) ([]ProductVariant, error)
	// ListAllVariants returns variants joined with product names; when
	// lowStockOnly is set, only variants at or below their reorder point.
	ListAllVariants(ctx context.Context, lowStockOnly bool) ([]ProductVariant, error)
	UpdateVariant(ctx context.Context, req UpdateVariantRequest) error
	UpdateVariantStock(ctx context.Context, id string, quantity int) error
	DeleteVariant(ctx context.Context, id string) error
}
