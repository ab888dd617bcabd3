package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// PrescriptionRepository defines persistence access for prescriptions.
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *domain.Prescription) error
	Update(ctx context.Context, prescription *domain.Prescription) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Prescription, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Prescription, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Prescription, error)
}

type prescriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPrescriptionRepository returns a Postgres-backed implementation.
func NewPrescriptionRepository(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepository{pool: pool}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *domain.Prescription) error {
	const query = `
        INSERT INTO prescriptions (user_id, medication_id, dosage, frequency, starts_on, ends_on, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		prescription.UserID,
		prescription.MedicationID,
		prescription.Dosage,
		prescription.Frequency,
		prescription.StartsOn,
		prescription.EndsOn,
		prescription.Status,
	).Scan(&prescription.ID, &prescription.CreatedAt, &prescription.UpdatedAt)
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *domain.Prescription) error {
	const query = `
        UPDATE prescriptions SET dosage=$1, frequency=$2, starts_on=$3, ends_on=$4, status=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		prescription.Dosage,
		prescription.Frequency,
		prescription.StartsOn,
		prescription.EndsOn,
		prescription.Status,
		prescription.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *prescriptionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM prescriptions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id string) (*domain.Prescription, error) {
	const query = `
        SELECT id, user_id, medication_id, dosage, frequency, starts_on, ends_on, status, created_at, updated_at
        FROM prescriptions WHERE id=$1`

	var prescription domain.Prescription
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&prescription.ID,
		&prescription.UserID,
		&prescription.MedicationID,
		&prescription.Dosage,
		&prescription.Frequency,
		&prescription.StartsOn,
		&prescription.EndsOn,
		&prescription.Status,
		&prescription.CreatedAt,
		&prescription.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Prescription, error) {
	const query = `
        SELECT id, user_id, medication_id, dosage, frequency, starts_on, ends_on, status, created_at, updated_at
        FROM prescriptions ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrescriptions(rows)
}

func (r *prescriptionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Prescription, error) {
	const query = `
        SELECT id, user_id, medication_id, dosage, frequency, starts_on, ends_on, status, created_at, updated_at
        FROM prescriptions WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrescriptions(rows)
}

func scanPrescriptions(rows pgx.Rows) ([]*domain.Prescription, error) {
	prescriptions := make([]*domain.Prescription, 0)
	for rows.Next() {
		var prescription domain.Prescription
		if err := rows.Scan(
			&prescription.ID,
			&prescription.UserID,
			&prescription.MedicationID,
			&prescription.Dosage,
			&prescription.Frequency,
			&prescription.StartsOn,
			&prescription.EndsOn,
			&prescription.Status,
			&prescription.CreatedAt,
			&prescription.UpdatedAt,
		); err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, &prescription)
	}
	return prescriptions, rows.Err()
}
