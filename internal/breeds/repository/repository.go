package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/breeds/transport"
	"refuge_backend/internal/search"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrReferenced = errors.New("referenced by animals")
)

// pg foreign_key_violation
const fkViolationCode = "23503"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Breed is one stored breed with its live animal count.
type Breed struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Species     domain.Species `json:"species"`
	AnimalCount int            `json:"animalCount"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

const breedColumns = `
	b.id, b.name, b.species,
	(SELECT COUNT(*) FROM animals a WHERE a.breed_id = b.id),
	b.created_at, b.updated_at`

func scanBreed(row pgx.Row) (Breed, error) {
	var b Breed
	err := row.Scan(&b.ID, &b.Name, &b.Species, &b.AnimalCount, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Breed{}, ErrNotFound
	}
	return b, err
}

func (r *Repository) Create(ctx context.Context, name string, species domain.Species) (Breed, error) {
	return scanBreed(r.pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO breeds (name, species) VALUES ($1, $2) RETURNING *
		)
		SELECT `+breedColumns+` FROM inserted b
	`, name, species))
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Breed, error) {
	return scanBreed(r.pool.QueryRow(ctx, `
		SELECT `+breedColumns+` FROM breeds b WHERE b.id = $1
	`, id))
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, name string, species domain.Species) (Breed, error) {
	return scanBreed(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE breeds SET name = $2, species = $3, updated_at = now()
			WHERE id = $1 RETURNING *
		)
		SELECT `+breedColumns+` FROM updated b
	`, id, name, species))
}

// Delete removes a breed. Breeds still referenced by animals cannot be
// deleted; the FK violation surfaces as ErrReferenced.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if isFKViolation(err) {
		return ErrReferenced
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Search lists breeds filtered by the descriptor.
func (r *Repository) Search(ctx context.Context, params transport.SearchParams, rankedIDs []uuid.UUID, page search.Page) (search.Result[Breed], error) {
	var p search.Predicate
	search.WhereEnum(&p, "b.species", params.Species)

	orderBy := sortExpr(params.Sort)
	if rankedIDs != nil {
		p.Where("b.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("b.id", rankedIDs)
	}

	q := search.Query{
		Base:    "FROM breeds b " + p.SQL(),
		Columns: breedColumns,
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (Breed, error) {
		return scanBreed(rows)
	})
}

func sortExpr(key transport.SortKey) string {
	if key == transport.SortAnimalCount {
		return "(SELECT COUNT(*) FROM animals a WHERE a.breed_id = b.id) DESC, lower(b.name)"
	}
	return "lower(b.name), b.id"
}

func isFKViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == fkViolationCode
}
