package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WaterIntakeRepository performs water_intake table operations.
type WaterIntakeRepository struct {
	pool *pgxpool.Pool
}

// NewWaterIntakeRepository constructs a WaterIntakeRepository.
func NewWaterIntakeRepository(pool *pgxpool.Pool) *WaterIntakeRepository {
	return &WaterIntakeRepository{pool: pool}
}

// Upsert creates the record for date, or overwrites its count if one
// already exists. It is a single atomic statement riding on the unique
// constraint, never a read-then-write, so concurrent writers for the
// same date cannot race into duplicate rows.
func (r *WaterIntakeRepository) Upsert(ctx context.Context, date time.Time, count int64) error {
	query := `
	INSERT INTO water_intake (date, count)
	VALUES ($1, $2)
	ON CONFLICT (date) DO UPDATE SET count = EXCLUDED.count`

	_, err := r.pool.Exec(ctx, query, date, count)
	return err
}

// GetByDate looks up the unique record for date. Absence is not an
// error: it returns (nil, nil) so callers can answer with the
// zero-valued placeholder.
func (r *WaterIntakeRepository) GetByDate(ctx context.Context, date time.Time) (*WaterIntake, error) {
	query := `
	SELECT id, date, count
	FROM water_intake
	WHERE date = $1`

	var w WaterIntake
	err := r.pool.QueryRow(ctx, query, date).Scan(&w.ID, &w.Date, &w.Count)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// List returns all water intake rows, newest id first. An empty table
// yields an empty slice.
func (r *WaterIntakeRepository) List(ctx context.Context) ([]WaterIntake, error) {
	query := `
	SELECT id, date, count
	FROM water_intake
	ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []WaterIntake{}
	for rows.Next() {
		var w WaterIntake
		if err := rows.Scan(&w.ID, &w.Date, &w.Count); err != nil {
			return nil, err
		}
		records = append(records, w)
	}

	return records, rows.Err()
}
