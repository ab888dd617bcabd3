package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// CustomizationRepository defines persistence access for customizations.
type CustomizationRepository interface {
	Create(ctx context.Context, customization *domain.Customization) error
	Update(ctx context.Context, customization *domain.Customization) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Customization, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customization, error)
}

type customizationRepository struct {
	pool *pgxpool.Pool
}

// NewCustomizationRepository returns a Postgres-backed implementation.
func NewCustomizationRepository(pool *pgxpool.Pool) CustomizationRepository {
	return &customizationRepository{pool: pool}
}

func (r *customizationRepository) Create(ctx context.Context, customization *domain.Customization) error {
	const query = `
        INSERT INTO customizations (type, additional_cost, details)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		customization.Type,
		customization.AdditionalCost,
		customization.Details,
	).Scan(&customization.ID, &customization.CreatedAt, &customization.UpdatedAt)
}

func (r *customizationRepository) Update(ctx context.Context, customization *domain.Customization) error {
	const query = `
        UPDATE customizations SET type=$1, additional_cost=$2, details=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		customization.Type,
		customization.AdditionalCost,
		customization.Details,
		customization.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customizationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customizations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customizationRepository) GetByID(ctx context.Context, id string) (*domain.Customization, error) {
	const query = `
        SELECT id, type, additional_cost, details, created_at, updated_at
        FROM customizations WHERE id=$1`

	var customization domain.Customization
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&customization.ID,
		&customization.Type,
		&customization.AdditionalCost,
		&customization.Details,
		&customization.CreatedAt,
		&customization.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customization, nil
}

func (r *customizationRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customization, error) {
	const query = `
        SELECT id, type, additional_cost, details, created_at, updated_at
        FROM customizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customizations := make([]*domain.Customization, 0)
	for rows.Next() {
		var customization domain.Customization
		if err := rows.Scan(
			&customization.ID,
			&customization.Type,
			&customization.AdditionalCost,
			&customization.Details,
			&customization.CreatedAt,
			&customization.UpdatedAt,
		); err != nil {
			return nil, err
		}
		customizations = append(customizations, &customization)
	}
	return customizations, rows.Err()
}
