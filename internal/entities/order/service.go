package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order Order) (*Order, error)
	GetOrder(ctx context.Context, id int) (*Order, error)
	ListOrders(ctx context.Context, paidOn *time.Time) ([]*Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

var validate = validator.New()

type orderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) CreateOrder(ctx context.Context, order Order) (*Order, error) {
	if err := validate.Struct(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrderInput, err)
	}

	if err := s.repo.Create(ctx, &order); err != nil {
		return nil, err
	}

	order.Total = order.ComputeTotal()
	return &order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int) (*Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Total = order.ComputeTotal()
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, paidOn *time.Time) ([]*Order, error) {
	orders, err := s.repo.List(ctx, OrderListOptions{PaidOn: paidOn})
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		order.Total = order.ComputeTotal()
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
