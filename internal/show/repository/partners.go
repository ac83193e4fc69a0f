package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"refuge_backend/internal/search"
	"refuge_backend/internal/show/domain"
	"refuge_backend/internal/show/transport"
)

// Partner is one stored show partner.
type Partner struct {
	ID         uuid.UUID              `json:"id"`
	Name       string                 `json:"name"`
	Category   domain.PartnerCategory `json:"category"`
	WebsiteURL string                 `json:"websiteUrl"`
	LogoKey    string                 `json:"logoKey"`
	Visible    bool                   `json:"visible"`
	CreatedAt  time.Time              `json:"-"`
	UpdatedAt  time.Time              `json:"-"`
}

const partnerColumns = `
	p.id, p.name, p.category, p.website_url, p.logo_key, p.visible,
	p.created_at, p.updated_at`

func scanPartner(row pgx.Row) (Partner, error) {
	var p Partner
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.WebsiteURL, &p.LogoKey, &p.Visible,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Partner{}, ErrNotFound
	}
	return p, err
}

func (r *Repository) CreatePartner(ctx context.Context, partner Partner) (Partner, error) {
	return scanPartner(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO partners (name, category, website_url, logo_key, visible)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT `+partnerColumns+` FROM inserted p
	`, partner.Name, partner.Category, partner.WebsiteURL, partner.LogoKey, partner.Visible))
}

func (r *Repository) GetPartner(ctx context.Context, id uuid.UUID) (Partner, error) {
	return scanPartner(r.pool.QueryRow(ctx, `
		SELECT `+partnerColumns+` FROM partners p WHERE p.id = $1
	`, id))
}

func (r *Repository) UpdatePartner(ctx context.Context, id uuid.UUID, partner Partner) (Partner, error) {
	return scanPartner(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE partners SET
				name = $2, category = $3, website_url = $4, logo_key = $5,
				visible = $6, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+partnerColumns+` FROM updated p
	`, id, partner.Name, partner.Category, partner.WebsiteURL, partner.LogoKey, partner.Visible))
}

func (r *Repository) DeletePartner(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchPartners lists partners filtered by the descriptor.
func (r *Repository) SearchPartners(ctx context.Context, params transport.PartnerSearchParams, rankedIDs []uuid.UUID, page search.Page) (search.Result[Partner], error) {
	var p search.Predicate
	search.WhereEnum(&p, "p.category", params.Categories)
	if params.VisibleOnly {
		p.Where("p.visible")
	}

	orderBy := "lower(p.name), p.id"
	if rankedIDs != nil {
		p.Where("p.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("p.id", rankedIDs)
	}

	q := search.Query{
		Base:    "FROM partners p " + p.SQL(),
		Columns: partnerColumns,
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (Partner, error) {
		return scanPartner(rows)
	})
}
