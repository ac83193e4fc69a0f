package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StandSize is one bookable stand configuration.
type StandSize struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	AreaM2    int       `json:"areaM2"`
	Price     int       `json:"price"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"-"`
}

// ListStandSizes returns the catalog in display order.
func (r *Repository) ListStandSizes(ctx context.Context) ([]StandSize, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, label, area_m2, price, position, created_at
		FROM stand_sizes
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := []StandSize{}
	for rows.Next() {
		var s StandSize
		if err := rows.Scan(&s.ID, &s.Label, &s.AreaM2, &s.Price, &s.Position, &s.CreatedAt); err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

// GetStandSize returns one configuration by id.
func (r *Repository) GetStandSize(ctx context.Context, id uuid.UUID) (StandSize, error) {
	var s StandSize
	err := r.pool.QueryRow(ctx, `
		SELECT id, label, area_m2, price, position, created_at
		FROM stand_sizes WHERE id = $1
	`, id).Scan(&s.ID, &s.Label, &s.AreaM2, &s.Price, &s.Position, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return StandSize{}, ErrNotFound
	}
	return s, err
}
