package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// MedicationRepository defines persistence access for the medication catalog.
type MedicationRepository interface {
	Create(ctx context.Context, medication *domain.Medication) error
	Update(ctx context.Context, medication *domain.Medication) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Medication, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Medication, error)
}

type medicationRepository struct {
	pool *pgxpool.Pool
}

// NewMedicationRepository returns a Postgres-backed implementation.
func NewMedicationRepository(pool *pgxpool.Pool) MedicationRepository {
	return &medicationRepository{pool: pool}
}

func (r *medicationRepository) Create(ctx context.Context, medication *domain.Medication) error {
	const query = `
        INSERT INTO medications (name, dosage_form, strength)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		medication.Name,
		medication.DosageForm,
		medication.Strength,
	).Scan(&medication.ID, &medication.CreatedAt, &medication.UpdatedAt)
}

func (r *medicationRepository) Update(ctx context.Context, medication *domain.Medication) error {
	const query = `
        UPDATE medications SET name=$1, dosage_form=$2, strength=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		medication.Name,
		medication.DosageForm,
		medication.Strength,
		medication.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *medicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM medications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *medicationRepository) GetByID(ctx context.Context, id string) (*domain.Medication, error) {
	const query = `
        SELECT id, name, dosage_form, strength, created_at, updated_at
        FROM medications WHERE id=$1`

	var medication domain.Medication
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&medication.ID,
		&medication.Name,
		&medication.DosageForm,
		&medication.Strength,
		&medication.CreatedAt,
		&medication.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) List(ctx context.Context, limit, offset int) ([]*domain.Medication, error) {
	const query = `
        SELECT id, name, dosage_form, strength, created_at, updated_at
        FROM medications ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medications := make([]*domain.Medication, 0)
	for rows.Next() {
		var medication domain.Medication
		if err := rows.Scan(
			&medication.ID,
			&medication.Name,
			&medication.DosageForm,
			&medication.Strength,
			&medication.CreatedAt,
			&medication.UpdatedAt,
		); err != nil {
			return nil, err
		}
		medications = append(medications, &medication)
	}
	return medications, rows.Err()
}
