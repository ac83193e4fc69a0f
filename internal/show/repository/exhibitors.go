package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Exhibitor is the record derived from a validated application.
type Exhibitor struct {
	ID             uuid.UUID `json:"id"`
	ApplicationID  uuid.UUID `json:"applicationId"`
	StructureName  string    `json:"structureName"`
	ContactName    string    `json:"contactName"`
	Email          string    `json:"email"`
	StandSizeID    uuid.UUID `json:"standSizeId"`
	StandSizeLabel string    `json:"standSizeLabel"`
	StandNumber    *int      `json:"standNumber"`
	FolderKey      string    `json:"folderKey"`
	CreatedAt      time.Time `json:"createdAt"`
}

const exhibitorColumns = `
	e.id, e.application_id, e.structure_name, e.contact_name, e.email,
	e.stand_size_id, ss.label, e.stand_number, e.folder_key, e.created_at`

func scanExhibitor(row pgx.Row) (Exhibitor, error) {
	var e Exhibitor
	err := row.Scan(
		&e.ID, &e.ApplicationID, &e.StructureName, &e.ContactName, &e.Email,
		&e.StandSizeID, &e.StandSizeLabel, &e.StandNumber, &e.FolderKey,
		&e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Exhibitor{}, ErrNotFound
	}
	return e, err
}

func (r *Repository) GetExhibitor(ctx context.Context, id uuid.UUID) (Exhibitor, error) {
	return scanExhibitor(r.pool.QueryRow(ctx, `
		SELECT `+exhibitorColumns+`
		FROM exhibitors e
		JOIN stand_sizes ss ON ss.id = e.stand_size_id
		WHERE e.id = $1
	`, id))
}

// ListExhibitors returns all exhibitors, assigned stands first by number,
// unassigned ones last by structure name.
func (r *Repository) ListExhibitors(ctx context.Context) ([]Exhibitor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+exhibitorColumns+`
		FROM exhibitors e
		JOIN stand_sizes ss ON ss.id = e.stand_size_id
		ORDER BY e.stand_number NULLS LAST, lower(e.structure_name)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exhibitors := []Exhibitor{}
	for rows.Next() {
		e, err := scanExhibitor(rows)
		if err != nil {
			return nil, err
		}
		exhibitors = append(exhibitors, e)
	}
	return exhibitors, rows.Err()
}

// AssignStand places an exhibitor on the floor plan.
func (r *Repository) AssignStand(ctx context.Context, id uuid.UUID, standNumber int) (Exhibitor, error) {
	return scanExhibitor(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE exhibitors SET stand_number = $2 WHERE id = $1 RETURNING *
		)
		SELECT `+exhibitorColumns+` FROM updated e
		JOIN stand_sizes ss ON ss.id = e.stand_size_id
	`, id, standNumber))
}
