package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cornerstore/internal/database"
	"cornerstore/internal/entities/category"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductInput = errors.New("invalid product input")
)

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context) ([]*Product, error)
	Search(ctx context.Context, query string) ([]*Product, error)
	Popular(ctx context.Context, limit int) ([]*Product, error)
}

type productRepository struct {
	db database.SQLClient
}

func NewProductRepository(db database.SQLClient) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *Product) error {
	if err := r.checkCategoryExists(ctx, product.CategoryId); err != nil {
		return err
	}

	query := `
		INSERT INTO products (product_name, price, brand, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		product.ProductName, product.Price, product.Brand, product.CategoryId,
	).Scan(&product.Id)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	query := selectProducts + ` WHERE p.id = $1`

	product, err := r.scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *Product) error {
	if err := r.checkCategoryExists(ctx, product.CategoryId); err != nil {
		return err
	}

	query := `
		UPDATE products
		SET product_name = $1, price = $2, brand = $3, category_id = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(
		ctx, query,
		product.ProductName, product.Price, product.Brand, product.CategoryId, product.Id,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *productRepository) List(ctx context.Context) ([]*Product, error) {
	query := selectProducts + ` ORDER BY p.id`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) Search(ctx context.Context, query string) ([]*Product, error) {
	searchQuery := selectProducts + `
		WHERE p.product_name ILIKE $1 OR p.brand ILIKE $1 OR c.category_name ILIKE $1
		ORDER BY p.id
	`
	return r.queryProducts(ctx, searchQuery, "%"+query+"%")
}

// Popular ranks products by total quantity sold across all orders, ties
// broken by ascending product id.
func (r *productRepository) Popular(ctx context.Context, limit int) ([]*Product, error) {
	query := `
		SELECT p.id, p.product_name, p.price, p.brand, p.category_id, c.category_name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN order_products op ON op.product_id = p.id
		GROUP BY p.id, p.product_name, p.price, p.brand, p.category_id, c.category_name
		ORDER BY SUM(op.quantity) DESC, p.id ASC
		LIMIT $1
	`
	return r.queryProducts(ctx, query, limit)
}

// Helper methods

const selectProducts = `
	SELECT p.id, p.product_name, p.price, p.brand, p.category_id, c.category_name
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

func (r *productRepository) checkCategoryExists(ctx context.Context, categoryId int) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", categoryId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) scanProduct(scanner interface {
	Scan(dest ...any) error
}) (*Product, error) {
	product := &Product{}
	var categoryName string

	err := scanner.Scan(
		&product.Id, &product.ProductName, &product.Price,
		&product.Brand, &product.CategoryId, &categoryName,
	)
	if err != nil {
		return nil, err
	}

	product.Category = &category.Category{
		Id:           product.CategoryId,
		CategoryName: categoryName,
	}

	return product, nil
}
