package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cornerstore/internal/database"
	"cornerstore/internal/entities/category"
	"cornerstore/internal/entities/product"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderInput = errors.New("invalid order input")
	ErrCashierNotFound   = errors.New("cashier not found")
)

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id int) (*Order, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, opts OrderListOptions) ([]*Order, error)
	ListByCashier(ctx context.Context, cashierId int) ([]*Order, error)
}

type OrderListOptions struct {
	// PaidOn matches the calendar date of paid_on_date, ignoring
	// time-of-day. Nil means no date filter.
	PaidOn *time.Time
}

type orderRepository struct {
	db database.SQLClient
	tx database.TxManager
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db, tx: database.NewTxManager(db)}
}

// Create persists the order and its line items as one transaction. The
// cashier and every referenced product must exist, otherwise nothing is
// written. Line items come back with their products populated.
func (r *orderRepository) Create(ctx context.Context, order *Order) error {
	return r.tx.Run(ctx, func(ctx context.Context, client database.SQLClient) error {
		var exists bool
		err := client.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM cashiers WHERE id = $1)", order.CashierId,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check cashier: %w", err)
		}
		if !exists {
			return ErrCashierNotFound
		}

		for _, op := range order.OrderProducts {
			p, err := loadProduct(ctx, client, op.ProductId)
			if err != nil {
				return err
			}
			op.Product = p
		}

		err = client.QueryRowContext(ctx,
			`INSERT INTO orders (cashier_id, paid_on_date) VALUES ($1, $2) RETURNING id`,
			order.CashierId, order.PaidOnDate,
		).Scan(&order.Id)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, op := range order.OrderProducts {
			op.OrderId = order.Id
			err := client.QueryRowContext(ctx,
				`INSERT INTO order_products (order_id, product_id, quantity)
				 VALUES ($1, $2, $3) RETURNING id`,
				op.OrderId, op.ProductId, op.Quantity,
			).Scan(&op.Id)
			if err != nil {
				return fmt.Errorf("failed to create order line item: %w", err)
			}
		}

		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	query := `
		SELECT id, cashier_id, paid_on_date
		FROM orders
		WHERE id = $1
	`

	order := &Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.Id, &order.CashierId, &order.PaidOnDate,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := r.populateOrderProducts(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// Delete removes the order and its line items. The line-item delete rides
// in the same transaction even though the schema also cascades.
func (r *orderRepository) Delete(ctx context.Context, id int) error {
	return r.tx.Run(ctx, func(ctx context.Context, client database.SQLClient) error {
		if _, err := client.ExecContext(ctx,
			"DELETE FROM order_products WHERE order_id = $1", id,
		); err != nil {
			return fmt.Errorf("failed to delete order line items: %w", err)
		}

		result, err := client.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return ErrOrderNotFound
		}

		return nil
	})
}

func (r *orderRepository) List(ctx context.Context, opts OrderListOptions) ([]*Order, error) {
	query := `
		SELECT id, cashier_id, paid_on_date
		FROM orders
	`
	args := []any{}

	if opts.PaidOn != nil {
		day := opts.PaidOn.Truncate(24 * time.Hour)
		query += " WHERE paid_on_date >= $1 AND paid_on_date < $2"
		args = append(args, day, day.Add(24*time.Hour))
	}

	query += " ORDER BY id"

	return r.queryOrders(ctx, query, args...)
}

func (r *orderRepository) ListByCashier(ctx context.Context, cashierId int) ([]*Order, error) {
	query := `
		SELECT id, cashier_id, paid_on_date
		FROM orders
		WHERE cashier_id = $1
		ORDER BY id
	`
	return r.queryOrders(ctx, query, cashierId)
}

// Helper methods

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		order := &Order{}
		if err := rows.Scan(&order.Id, &order.CashierId, &order.PaidOnDate); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	for _, order := range orders {
		if err := r.populateOrderProducts(ctx, order); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *orderRepository) populateOrderProducts(ctx context.Context, order *Order) error {
	query := `
		SELECT op.id, op.order_id, op.product_id, op.quantity,
		       p.product_name, p.price, p.brand, p.category_id, c.category_name
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE op.order_id = $1
		ORDER BY op.id
	`

	rows, err := r.db.QueryContext(ctx, query, order.Id)
	if err != nil {
		return fmt.Errorf("failed to query order line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		op := &OrderProduct{}
		p := &product.Product{}
		var categoryName string

		err := rows.Scan(
			&op.Id, &op.OrderId, &op.ProductId, &op.Quantity,
			&p.ProductName, &p.Price, &p.Brand, &p.CategoryId, &categoryName,
		)
		if err != nil {
			return fmt.Errorf("failed to scan order line item: %w", err)
		}

		p.Id = op.ProductId
		p.Category = &category.Category{Id: p.CategoryId, CategoryName: categoryName}
		op.Product = p
		order.OrderProducts = append(order.OrderProducts, op)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	return nil
}

func loadProduct(ctx context.Context, client database.SQLClient, id int) (*product.Product, error) {
	query := `
		SELECT p.id, p.product_name, p.price, p.brand, p.category_id, c.category_name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	p := &product.Product{}
	var categoryName string

	err := client.QueryRowContext(ctx, query, id).Scan(
		&p.Id, &p.ProductName, &p.Price, &p.Brand, &p.CategoryId, &categoryName,
	)
	if err == sql.ErrNoRows {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	p.Category = &category.Category{Id: p.CategoryId, CategoryName: categoryName}
	return p, nil
}
