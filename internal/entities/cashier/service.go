package cashier

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"cornerstore/internal/entities/order"
)

type CashierService interface {
	CreateCashier(ctx context.Context, cashier Cashier) (*Cashier, error)
	GetCashier(ctx context.Context, id int) (*Cashier, error)
}

var validate = validator.New()

type cashierService struct {
	repo   CashierRepository
	orders order.OrderRepository
}

func NewCashierService(repo CashierRepository, orders order.OrderRepository) CashierService {
	return &cashierService{repo: repo, orders: orders}
}

func (s *cashierService) CreateCashier(ctx context.Context, cashier Cashier) (*Cashier, error) {
	if err := validate.Struct(cashier); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCashierInput, err)
	}

	// Orders are never accepted on create; they come in through /orders.
	cashier.Orders = nil

	if err := s.repo.Create(ctx, &cashier); err != nil {
		return nil, err
	}

	return &cashier, nil
}

// GetCashier returns the cashier with their orders populated, each order
// carrying its line items and computed total.
func (s *cashierService) GetCashier(ctx context.Context, id int) (*Cashier, error) {
	cashier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByCashier(ctx, cashier.Id)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.Total = o.ComputeTotal()
	}
	cashier.Orders = orders

	return cashier, nil
}
