package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// ImageRepository defines persistence access for customization artwork.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) error
	Update(ctx context.Context, image *domain.Image) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Image, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Image, error)
}

type imageRepository struct {
	pool *pgxpool.Pool
}

// NewImageRepository returns a Postgres-backed implementation.
func NewImageRepository(pool *pgxpool.Pool) ImageRepository {
	return &imageRepository{pool: pool}
}

func (r *imageRepository) Create(ctx context.Context, image *domain.Image) error {
	const query = `
        INSERT INTO images (source, additional_cost)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		image.Source,
		image.AdditionalCost,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
}

func (r *imageRepository) Update(ctx context.Context, image *domain.Image) error {
	const query = `
        UPDATE images SET source=$1, additional_cost=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		image.Source,
		image.AdditionalCost,
		image.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *imageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *imageRepository) GetByID(ctx context.Context, id string) (*domain.Image, error) {
	const query = `
        SELECT id, source, additional_cost, created_at, updated_at
        FROM images WHERE id=$1`

	var image domain.Image
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.Source,
		&image.AdditionalCost,
		&image.CreatedAt,
		&image.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) List(ctx context.Context, limit, offset int) ([]*domain.Image, error) {
	const query = `
        SELECT id, source, additional_cost, created_at, updated_at
        FROM images ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]*domain.Image, 0)
	for rows.Next() {
		var image domain.Image
		if err := rows.Scan(
			&image.ID,
			&image.Source,
			&image.AdditionalCost,
			&image.CreatedAt,
			&image.UpdatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, &image)
	}
	return images, rows.Err()
}
