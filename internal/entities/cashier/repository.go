package cashier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cornerstore/internal/database"
)

var (
	ErrCashierNotFound     = errors.New("cashier not found")
	ErrInvalidCashierInput = errors.New("invalid cashier input")
)

type CashierRepository interface {
	Create(ctx context.Context, cashier *Cashier) error
	GetByID(ctx context.Context, id int) (*Cashier, error)
}

type cashierRepository struct {
	db database.SQLClient
}

func NewCashierRepository(db database.SQLClient) CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) Create(ctx context.Context, cashier *Cashier) error {
	query := `
		INSERT INTO cashiers (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, cashier.FirstName, cashier.LastName).Scan(&cashier.Id)
	if err != nil {
		return fmt.Errorf("failed to create cashier: %w", err)
	}

	return nil
}

func (r *cashierRepository) GetByID(ctx context.Context, id int) (*Cashier, error) {
	query := `
		SELECT id, first_name, last_name
		FROM cashiers
		WHERE id = $1
	`

	cashier := &Cashier{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cashier.Id, &cashier.FirstName, &cashier.LastName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCashierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cashier: %w", err)
	}

	return cashier, nil
}
