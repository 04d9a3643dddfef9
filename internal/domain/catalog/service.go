package catalog

import "context"

type CatalogService interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)

	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetProduct(ctx context.Context, id string) (ProductResponse, error)
	ListProducts(ctx context.Context) ([]ProductResponse, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateVariant(ctx context.Context, req CreateVariantRequest) (VariantResponse, error)
	ListVariantsByProduct(ctx context.Context, productID string) ([]VariantResponse, error)

	// ListInventory returns all variants with stock levels; when
	// lowStockOnly is set, only those at or below their reorder point.
	ListInventory(ctx context.Context, lowStockOnly bool) ([]VariantResponse, error)
	UpdateVariant(ctx context.Context, req UpdateVariantRequest) (VariantResponse, error)
	UpdateStock(ctx context.Context, req UpdateStockRequest) (VariantResponse, error)
	DeleteVariant(ctx context.Context, id string) error
}
