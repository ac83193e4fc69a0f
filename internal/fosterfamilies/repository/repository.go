package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/fosterfamilies/domain"
	"refuge_backend/internal/fosterfamilies/transport"
	"refuge_backend/internal/search"
)

var ErrNotFound = errors.New("not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FosterFamily is one stored host family with its live fostered count.
type FosterFamily struct {
	ID            uuid.UUID           `json:"id"`
	DisplayName   string              `json:"displayName"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	ZipCode       string              `json:"zipCode"`
	City          string              `json:"city"`
	SpeciesToHost []string            `json:"speciesToHost"`
	Availability  domain.Availability `json:"availability"`
	Comments      string              `json:"comments"`
	AnimalCount   int                 `json:"animalCount"`
	CreatedAt     time.Time           `json:"-"`
	UpdatedAt     time.Time           `json:"-"`
}

const familyColumns = `
	f.id, f.display_name, f.email, f.phone, f.address, f.zip_code, f.city,
	f.species_to_host, f.availability, f.comments,
	(SELECT COUNT(*) FROM animals a WHERE a.foster_family_id = f.id),
	f.created_at, f.updated_at`

func scanFamily(row pgx.Row) (FosterFamily, error) {
	var f FosterFamily
	err := row.Scan(
		&f.ID, &f.DisplayName, &f.Email, &f.Phone, &f.Address, &f.ZipCode,
		&f.City, &f.SpeciesToHost, &f.Availability, &f.Comments,
		&f.AnimalCount, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return FosterFamily{}, ErrNotFound
	}
	return f, err
}

func (r *Repository) Create(ctx context.Context, f FosterFamily) (FosterFamily, error) {
	return scanFamily(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO foster_families
				(display_name, email, phone, address, zip_code, city,
				 species_to_host, availability, comments)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT `+familyColumns+` FROM inserted f
	`, f.DisplayName, f.Email, f.Phone, f.Address, f.ZipCode, f.City,
		f.SpeciesToHost, f.Availability, f.Comments))
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (FosterFamily, error) {
	return scanFamily(r.pool.QueryRow(ctx, `
		SELECT `+familyColumns+` FROM foster_families f WHERE f.id = $1
	`, id))
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, f FosterFamily) (FosterFamily, error) {
	return scanFamily(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE foster_families SET
				display_name = $2, email = $3, phone = $4, address = $5,
				zip_code = $6, city = $7, species_to_host = $8,
				availability = $9, comments = $10, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT `+familyColumns+` FROM updated f
	`, id, f.DisplayName, f.Email, f.Phone, f.Address, f.ZipCode, f.City,
		f.SpeciesToHost, f.Availability, f.Comments))
}

// Delete removes a family. Animals still placed with it keep their history;
// the reference is detached first.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		UPDATE animals SET foster_family_id = NULL WHERE foster_family_id = $1
	`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM foster_families WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

// Search lists families filtered by the descriptor.
func (r *Repository) Search(ctx context.Context, params transport.SearchParams, rankedIDs []uuid.UUID, page search.Page) (search.Result[FosterFamily], error) {
	var p search.Predicate
	search.WhereEnum(&p, "f.availability", params.Availabilities)
	search.WhereEnumOverlap(&p, "f.species_to_host", params.Species)
	p.WherePrefix("f.zip_code", params.ZipPrefix)

	orderBy := "lower(f.display_name), f.id"
	if rankedIDs != nil {
		p.Where("f.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("f.id", rankedIDs)
	}

	q := search.Query{
		Base:    "FROM foster_families f " + p.SQL(),
		Columns: familyColumns,
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (FosterFamily, error) {
		return scanFamily(rows)
	})
}
