package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickmart/console-backend-go/internal/domain/catalog"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type catalogRepositoryImpl struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.CatalogRepository {
	return &catalogRepositoryImpl{db: db}
}

func (r *catalogRepositoryImpl) CreateCategory(ctx context.Context, c catalog.Category) (catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var created catalog.Category
	err := q.QueryRow(ctx, query, c.Name).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "categories_name_key") {
			return catalog.Category{}, catalog.ErrCategoryNameExists
		}
		return catalog.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (r *catalogRepositoryImpl) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *catalogRepositoryImpl) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (name, description, category_id, base_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, category_id, base_price, created_at, updated_at
	`

	var created catalog.Product
	err := q.QueryRow(ctx, query, p.Name, p.Description, p.CategoryID, p.BasePrice).Scan(
		&created.ID, &created.Name, &created.Description, &created.CategoryID,
		&created.BasePrice, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "products_category_id_fkey") {
			return catalog.Product{}, catalog.ErrCategoryNotFound
		}
		return catalog.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

func (r *catalogRepositoryImpl) GetProductByID(ctx context.Context, id string) (catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.base_price, p.created_at, p.updated_at, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	var p catalog.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID,
		&p.BasePrice, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

func (r *catalogRepositoryImpl) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.base_price, p.created_at, p.updated_at, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.CategoryID,
			&p.BasePrice, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func (r *catalogRepositoryImpl) UpdateProduct(ctx context.Context, req catalog.UpdateProductRequest) error {
	q := GetQuerier(ctx, r.db)

	var setClauses []string
	var args []interface{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.CategoryID != nil {
		setClauses = append(setClauses, fmt.Sprintf("category_id = $%d", argIdx))
		args = append(args, *req.CategoryID)
		argIdx++
	}
	if req.BasePrice != nil {
		setClauses = append(setClauses, fmt.Sprintf("base_price = $%d", argIdx))
		args = append(args, *req.BasePrice)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), argIdx)

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *catalogRepositoryImpl) DeleteProduct(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *catalogRepositoryImpl) CreateVariant(ctx context.Context, v catalog.ProductVariant) (catalog.ProductVariant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_variants (product_id, size, color, sku, price, stock_quantity, reorder_point)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, product_id, size, color, sku, price, stock_quantity, reorder_point, created_at, updated_at
	`

	var created catalog.ProductVariant
	err := q.QueryRow(ctx, query,
		v.ProductID, v.Size, v.Color, v.SKU, v.Price, v.StockQuantity, v.ReorderPoint,
	).Scan(
		&created.ID, &created.ProductID, &created.Size, &created.Color, &created.SKU,
		&created.Price, &created.StockQuantity, &created.ReorderPoint, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "product_variants_sku_key") {
			return catalog.ProductVariant{}, catalog.ErrSKUExists
		}
		if strings.Contains(err.Error(), "product_variants_product_id_fkey") {
			return catalog.ProductVariant{}, catalog.ErrProductNotFound
		}
		return catalog.ProductVariant{}, fmt.Errorf("failed to create product variant: %w", err)
	}

	return created, nil
}

func (r *catalogRepositoryImpl) GetVariantByID(ctx context.Context, id string) (catalog.ProductVariant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.product_id, v.size, v.color, v.sku, v.price, v.stock_quantity,
			   v.reorder_point, v.created_at, v.updated_at, p.name
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		WHERE v.id = $1
	`

	var v catalog.ProductVariant
	err := q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ProductID, &v.Size, &v.Color, &v.SKU, &v.Price,
		&v.StockQuantity, &v.ReorderPoint, &v.CreatedAt, &v.UpdatedAt, &v.ProductName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ProductVariant{}, catalog.ErrVariantNotFound
		}
		return catalog.ProductVariant{}, fmt.Errorf("failed to get product variant: %w", err)
	}

	return v, nil
}

func (r *catalogRepositoryImpl) ListVariantsByProduct(ctx context.Context, productID string) ([]catalog.ProductVariant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, product_id, size, color, sku, price, stock_quantity, reorder_point, created_at, updated_at
		FROM product_variants
		WHERE product_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product variants: %w", err)
	}
	defer rows.Close()

	var variants []catalog.ProductVariant
	for rows.Next() {
		var v catalog.ProductVariant
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Size, &v.Color, &v.SKU, &v.Price,
			&v.StockQuantity, &v.ReorderPoint, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product variant: %w", err)
		}
		variants = append(variants, v)
	}

	return variants, nil
}

func (r *catalogRepositoryImpl) ListAllVariants(ctx context.Context, lowStockOnly bool) ([]catalog.ProductVariant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.product_id, v.size, v.color, v.sku, v.price, v.stock_quantity,
			   v.reorder_point, v.created_at, v.updated_at, p.name
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
	`
	if lowStockOnly {
		query += " WHERE v.stock_quantity <= v.reorder_point"
	}
	query += " ORDER BY p.name, v.created_at"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list product variants: %w", err)
	}
	defer rows.Close()

	var variants []catalog.ProductVariant
	for rows.Next() {
		var v catalog.ProductVariant
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Size, &v.Color, &v.SKU, &v.Price,
			&v.StockQuantity, &v.ReorderPoint, &v.CreatedAt, &v.UpdatedAt, &v.ProductName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product variant: %w", err)
		}
		variants = append(variants, v)
	}

	return variants, nil
}

func (r *catalogRepositoryImpl) UpdateVariant(ctx context.Context, req catalog.UpdateVariantRequest) error {
	q := GetQuerier(ctx, r.db)

	var setClauses []string
	var args []interface{}
	argIdx := 1

	if req.Size != nil {
		setClauses = append(setClauses, fmt.Sprintf("size = $%d", argIdx))
		args = append(args, *req.Size)
		argIdx++
	}
	if req.Color != nil {
		setClauses = append(setClauses, fmt.Sprintf("color = $%d", argIdx))
		args = append(args, *req.Color)
		argIdx++
	}
	if req.SKU != nil {
		setClauses = append(setClauses, fmt.Sprintf("sku = $%d", argIdx))
		args = append(args, *req.SKU)
		argIdx++
	}
	if req.Price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", argIdx))
		args = append(args, *req.Price)
		argIdx++
	}
	if req.ReorderPoint != nil {
		setClauses = append(setClauses, fmt.Sprintf("reorder_point = $%d", argIdx))
		args = append(args, *req.ReorderPoint)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.VariantID)

	query := fmt.Sprintf("UPDATE product_variants SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), argIdx)

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrVariantNotFound
		}
		if strings.Contains(err.Error(), "product_variants_sku_key") {
			return catalog.ErrSKUExists
		}
		return fmt.Errorf("failed to update product variant: %w", err)
	}

	return nil
}

func (r *catalogRepositoryImpl) UpdateVariantStock(ctx context.Context, id string, quantity int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE product_variants
		SET stock_quantity = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var returned string
	if err := q.QueryRow(ctx, query, quantity, id).Scan(&returned); err != nil {
		if err == pgx.ErrNoRows {
			return catalog.ErrVariantNotFound
		}
		return fmt.Errorf("failed to update variant stock: %w", err)
	}

	return nil
}

func (r *catalogRepositoryImpl) DeleteVariant(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product variant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrVariantNotFound
	}

	return nil
}
