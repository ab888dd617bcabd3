package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// OrderItemRepository defines persistence access for order line items.
type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.OrderItem) error
	Update(ctx context.Context, item *domain.OrderItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.OrderItem, error)
	ListByOrder(ctx context.Context, orderID string) ([]*domain.OrderItem, error)
}

type orderItemRepository struct {
	pool *pgxpool.Pool
}

// NewOrderItemRepository returns a Postgres-backed implementation.
func NewOrderItemRepository(pool *pgxpool.Pool) OrderItemRepository {
	return &orderItemRepository{pool: pool}
}

func (r *orderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	const query = `
        INSERT INTO order_items (order_id, product_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.OrderID,
		item.ProductID,
		item.Quantity,
		item.UnitPrice,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *orderItemRepository) Update(ctx context.Context, item *domain.OrderItem) error {
	const query = `
        UPDATE order_items SET order_id=$1, product_id=$2, quantity=$3, unit_price=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		item.OrderID,
		item.ProductID,
		item.Quantity,
		item.UnitPrice,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM order_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderItemRepository) GetByID(ctx context.Context, id string) (*domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, product_id, quantity, unit_price, created_at, updated_at
        FROM order_items WHERE id=$1`

	var item domain.OrderItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.Quantity,
		&item.UnitPrice,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]*domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, product_id, quantity, unit_price, created_at, updated_at
        FROM order_items WHERE order_id=$1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
