package category

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, category Category) (*Category, error)
	GetCategory(ctx context.Context, id int) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

var validate = validator.New()

type categoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, category Category) (*Category, error) {
	if err := validate.Struct(category); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCategoryInput, err)
	}

	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}
