package catalog

import (
	"context"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/catalog"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
)

type CatalogServiceImpl struct {
	db          *database.DB
	catalogRepo catalog.CatalogRepository
}

func NewCatalogService(db *database.DB, catalogRepo catalog.CatalogRepository) catalog.CatalogService {
	return &CatalogServiceImpl{
		db:          db,
		catalogRepo: catalogRepo,
	}
}

// CreateCategory implements catalog.CatalogService.
func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (catalog.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.CategoryResponse{}, err
	}

	created, err := s.catalogRepo.CreateCategory(ctx, catalog.Category{Name: req.Name})
	if err != nil {
		return catalog.CategoryResponse{}, err
	}

	return catalog.CategoryResponse{ID: created.ID, Name: created.Name}, nil
}

// ListCategories implements catalog.CatalogService.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]catalog.CategoryResponse, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]catalog.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, catalog.CategoryResponse{ID: c.ID, Name: c.Name})
	}

	return responses, nil
}

// CreateProduct implements catalog.CatalogService.
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (catalog.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ProductResponse{}, err
	}

	created, err := s.catalogRepo.CreateProduct(ctx, catalog.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		return catalog.ProductResponse{}, err
	}

	return toProductResponse(created), nil
}

// GetProduct implements catalog.CatalogService.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (catalog.ProductResponse, error) {
	p, err := s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		return catalog.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

// ListProducts implements catalog.CatalogService.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]catalog.ProductResponse, error) {
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]catalog.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}

	return responses, nil
}

// UpdateProduct implements catalog.CatalogService.
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) (catalog.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ProductResponse{}, err
	}

	if err := s.catalogRepo.UpdateProduct(ctx, req); err != nil {
		return catalog.ProductResponse{}, err
	}

	return s.GetProduct(ctx, req.ID)
}

// DeleteProduct implements catalog.CatalogService.
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.catalogRepo.DeleteProduct(ctx, id)
}

// CreateVariant implements catalog.CatalogService.
func (s *CatalogServiceImpl) CreateVariant(ctx context.Context, req catalog.CreateVariantRequest) (catalog.VariantResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.VariantResponse{}, err
	}

	reorderPoint := 0
	if req.ReorderPoint != nil {
		reorderPoint = *req.ReorderPoint
	}

	created, err := s.catalogRepo.CreateVariant(ctx, catalog.ProductVariant{
		ProductID:     req.ProductID,
		Size:          req.Size,
		Color:         req.Color,
		SKU:           req.SKU,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ReorderPoint:  reorderPoint,
	})
	if err != nil {
		return catalog.VariantResponse{}, err
	}

	return toVariantResponse(created), nil
}

// ListVariantsByProduct implements catalog.CatalogService.
func (s *CatalogServiceImpl) ListVariantsByProduct(ctx context.Context, productID string) ([]catalog.VariantResponse, error) {
	if _, err := s.catalogRepo.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	variants, err := s.catalogRepo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return toVariantResponses(variants), nil
}

// ListInventory implements catalog.CatalogService.
func (s *CatalogServiceImpl) ListInventory(ctx context.Context, lowStockOnly bool) ([]catalog.VariantResponse, error) {
	variants, err := s.catalogRepo.ListAllVariants(ctx, lowStockOnly)
	if err != nil {
		return nil, err
	}

	return toVariantResponses(variants), nil
}

// UpdateVariant implements catalog.CatalogService.
func (s *CatalogServiceImpl) UpdateVariant(ctx context.Context, req catalog.UpdateVariantRequest) (catalog.VariantResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.VariantResponse{}, err
	}

	if err := s.catalogRepo.UpdateVariant(ctx, req); err != nil {
		return catalog.VariantResponse{}, err
	}

	v, err := s.catalogRepo.GetVariantByID(ctx, req.VariantID)
	if err != nil {
		return catalog.VariantResponse{}, err
	}

	return toVariantResponse(v), nil
}

// UpdateStock implements catalog.CatalogService.
func (s *CatalogServiceImpl) UpdateStock(ctx context.Context, req catalog.UpdateStockRequest) (catalog.VariantResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.VariantResponse{}, err
	}

	if err := s.catalogRepo.UpdateVariantStock(ctx, req.VariantID, req.StockQuantity); err != nil {
		return catalog.VariantResponse{}, err
	}

	v, err := s.catalogRepo.GetVariantByID(ctx, req.VariantID)
	if err != nil {
		return catalog.VariantResponse{}, err
	}

	return toVariantResponse(v), nil
}

// DeleteVariant implements catalog.CatalogService.
func (s *CatalogServiceImpl) DeleteVariant(ctx context.Context, id string) error {
	return s.catalogRepo.DeleteVariant(ctx, id)
}

func toProductResponse(p catalog.Product) catalog.ProductResponse {
	return catalog.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		BasePrice:    p.BasePrice,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func toVariantResponse(v catalog.ProductVariant) catalog.VariantResponse {
	return catalog.VariantResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		ProductName:   v.ProductName,
		Size:          v.Size,
		Color:         v.Color,
		SKU:           v.SKU,
		Price:         v.Price,
		StockQuantity: v.StockQuantity,
		ReorderPoint:  v.ReorderPoint,
		LowStock:      v.LowStock(),
	}
}

func toVariantResponses(variants []catalog.ProductVariant) []catalog.VariantResponse {
	responses := make([]catalog.VariantResponse, 0, len(variants))
	for _, v := range variants {
		responses = append(responses, toVariantResponse(v))
	}
	return responses
}
