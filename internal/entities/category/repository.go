package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cornerstore/internal/database"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidCategoryInput = errors.New("invalid category input")
)

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

type categoryRepository struct {
	db database.SQLClient
}

func NewCategoryRepository(db database.SQLClient) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO categories (category_name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, category.CategoryName).Scan(&category.Id)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int) (*Category, error) {
	query := `
		SELECT id, category_name
		FROM categories
		WHERE id = $1
	`

	category := &Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.Id, &category.CategoryName)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*Category, error) {
	query := `
		SELECT id, category_name
		FROM categories
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.Id, &category.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}
