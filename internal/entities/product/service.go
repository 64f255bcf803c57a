package product

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// popularLimit caps the popular-products ranking.
const popularLimit = 5

type ProductService interface {
	CreateProduct(ctx context.Context, product Product) (*Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	UpdateProduct(ctx context.Context, id int, product Product) error
	ListProducts(ctx context.Context, search string) ([]*Product, error)
	PopularProducts(ctx context.Context) ([]*Product, error)
}

var validate = validator.New()

type productService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, product Product) (*Product, error) {
	if err := s.validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *productService) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) UpdateProduct(ctx context.Context, id int, product Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}

	// The path id is authoritative over whatever the body carries.
	product.Id = id

	return s.repo.Update(ctx, &product)
}

func (s *productService) ListProducts(ctx context.Context, search string) ([]*Product, error) {
	if search != "" {
		return s.repo.Search(ctx, search)
	}
	return s.repo.List(ctx)
}

func (s *productService) PopularProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.Popular(ctx, popularLimit)
}

func (s *productService) validateProduct(product Product) error {
	if err := validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProductInput, err)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProductInput)
	}
	return nil
}
