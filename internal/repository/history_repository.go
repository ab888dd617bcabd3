package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/atelier-service/internal/domain"
)

// HistoryRepository defines persistence access for intake history entries.
type HistoryRepository interface {
	Create(ctx context.Context, entry *domain.HistoryEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.HistoryEntry, error)
	ListByPrescription(ctx context.Context, prescriptionID string) ([]*domain.HistoryEntry, error)
	List(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error)
}

type historyRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository returns a Postgres-backed implementation.
func NewHistoryRepository(pool *pgxpool.Pool) HistoryRepository {
	return &historyRepository{pool: pool}
}

func (r *historyRepository) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	const query = `
        INSERT INTO history_entries (prescription_id, taken_at, note)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.PrescriptionID,
		entry.TakenAt,
		entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *historyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM history_entries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *historyRepository) GetByID(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	const query = `
        SELECT id, prescription_id, taken_at, note, created_at
        FROM history_entries WHERE id=$1`

	var entry domain.HistoryEntry
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.PrescriptionID,
		&entry.TakenAt,
		&entry.Note,
		&entry.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) ListByPrescription(ctx context.Context, prescriptionID string) ([]*domain.HistoryEntry, error) {
	const query = `
        SELECT id, prescription_id, taken_at, note, created_at
        FROM history_entries WHERE prescription_id=$1 ORDER BY taken_at DESC`

	rows, err := r.pool.Query(ctx, query, prescriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistoryEntries(rows)
}

func (r *historyRepository) List(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error) {
	const query = `
        SELECT id, prescription_id, taken_at, note, created_at
        FROM history_entries ORDER BY taken_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistoryEntries(rows)
}

func scanHistoryEntries(rows pgx.Rows) ([]*domain.HistoryEntry, error) {
	entries := make([]*domain.HistoryEntry, 0)
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.PrescriptionID,
			&entry.TakenAt,
			&entry.Note,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
