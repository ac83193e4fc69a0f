// Package repository persists the show bounded context: applications,
// exhibitors, stand sizes and partners.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/search"
	"refuge_backend/internal/show/domain"
	"refuge_backend/internal/show/transport"
)

var ErrNotFound = errors.New("not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Application is one stored exhibitor application.
type Application struct {
	ID             uuid.UUID     `json:"id"`
	StructureName  string        `json:"structureName"`
	ContactName    string        `json:"contactName"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	WebsiteURL     string        `json:"websiteUrl"`
	Description    string        `json:"description"`
	StandSizeID    uuid.UUID     `json:"standSizeId"`
	StandSizeLabel string        `json:"standSizeLabel"`
	Targets        []string      `json:"targets"`
	Fields         []string      `json:"fields"`
	Status         domain.Status `json:"status"`
	RefusalMessage string        `json:"refusalMessage,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

const applicationColumns = `
	ea.id, ea.structure_name, ea.contact_name, ea.email, ea.phone,
	ea.website_url, ea.description, ea.stand_size_id, ss.label,
	ea.targets, ea.fields, ea.status, ea.refusal_message,
	ea.created_at, ea.updated_at`

const applicationJoins = `
	JOIN stand_sizes ss ON ss.id = ea.stand_size_id`

func scanApplication(row pgx.Row) (Application, error) {
	var a Application
	err := row.Scan(
		&a.ID, &a.StructureName, &a.ContactName, &a.Email, &a.Phone,
		&a.WebsiteURL, &a.Description, &a.StandSizeID, &a.StandSizeLabel,
		&a.Targets, &a.Fields, &a.Status, &a.RefusalMessage,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	return a, err
}

func (r *Repository) CreateApplication(ctx context.Context, a Application) (Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO exhibitor_applications
				(structure_name, contact_name, email, phone, website_url,
				 description, stand_size_id, targets, fields, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT `+applicationColumns+` FROM inserted ea `+applicationJoins+`
	`, a.StructureName, a.ContactName, a.Email, a.Phone, a.WebsiteURL,
		a.Description, a.StandSizeID, a.Targets, a.Fields, domain.StatusSubmitted))
}

func (r *Repository) GetApplication(ctx context.Context, id uuid.UUID) (Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM exhibitor_applications ea `+applicationJoins+`
		WHERE ea.id = $1
	`, id))
}

// Validate writes the VALIDATED status and derives the exhibitor record in
// one transaction, so a failure partway never leaves a validated application
// without its exhibitor.
func (r *Repository) Validate(ctx context.Context, app Application, folderKey string) (Exhibitor, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Exhibitor{}, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE exhibitor_applications
		SET status = $2, refusal_message = '', updated_at = now()
		WHERE id = $1 AND status = $3
	`, app.ID, domain.StatusValidated, domain.StatusSubmitted)
	if err != nil {
		return Exhibitor{}, err
	}
	if tag.RowsAffected() == 0 {
		return Exhibitor{}, ErrNotFound
	}

	exhibitor, err := scanExhibitor(tx.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO exhibitors
				(application_id, structure_name, contact_name, email,
				 stand_size_id, folder_key)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT `+exhibitorColumns+` FROM inserted e
		JOIN stand_sizes ss ON ss.id = e.stand_size_id
	`, app.ID, app.StructureName, app.ContactName, app.Email,
		app.StandSizeID, folderKey))
	if err != nil {
		return Exhibitor{}, err
	}

	return exhibitor, tx.Commit(ctx)
}

// Refuse writes the REFUSED status with its message. Only submitted
// applications move.
func (r *Repository) Refuse(ctx context.Context, id uuid.UUID, message string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE exhibitor_applications
		SET status = $2, refusal_message = $3, updated_at = now()
		WHERE id = $1 AND status = $4
	`, id, domain.StatusRefused, message, domain.StatusSubmitted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchApplications lists applications filtered by the descriptor. Targets
// and fields use overlap semantics against their multi-valued columns.
func (r *Repository) SearchApplications(ctx context.Context, params transport.ApplicationSearchParams, rankedIDs []uuid.UUID, page search.Page) (search.Result[Application], error) {
	var p search.Predicate
	search.WhereEnum(&p, "ea.status", params.Statuses)
	search.WhereEnumOverlap(&p, "ea.targets", params.Targets)
	search.WhereEnumOverlap(&p, "ea.fields", params.Fields)
	p.WhereIDs("ea.stand_size_id", params.StandSizes)

	orderBy := "ea.created_at DESC, ea.id DESC"
	if rankedIDs != nil {
		p.Where("ea.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("ea.id", rankedIDs)
	}

	q := search.Query{
		Base:    "FROM exhibitor_applications ea " + applicationJoins + " " + p.SQL(),
		Columns: applicationColumns,
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (Application, error) {
		return scanApplication(rows)
	})
}
