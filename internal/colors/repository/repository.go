package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

// Color is one stored coat color with its live animal count.
type Color struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AnimalCount int       `json:"animalCount"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

const colorColumns = `
	c.id, c.name,
	(SELECT COUNT(*) FROM animals a WHERE a.color_id = c.id),
	c.created_at, c.updated_at`

func scanColor(row pgx.Row) (Color, error) {
	var c Color
	err := row.Scan(&c.ID, &c.Name, &c.AnimalCount, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Color{}, ErrNotFound
	}
	return c, err
}

func (r *Repository) Create(ctx context.Context, name string) (Color, error) {
	return scanColor(r.pool.QueryRow(ctx, `
		WITH inserted AS (INSERT INTO colors (name) VALUES ($1) RETURNING *)
		SELECT `+colorColumns+` FROM inserted c
	`, name))
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Color, error) {
	return scanColor(r.pool.QueryRow(ctx, `
		SELECT `+colorColumns+` FROM colors c WHERE c.id = $1
	`, id))
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, name string) (Color, error) {
	return scanColor(r.pool.QueryRow(ctx, `
		WITH updated AS (
			UPDATE colors SET name = $2, updated_at = now() WHERE id = $1 RETURNING *
		)
		SELECT `+colorColumns+` FROM updated c
	`, id, name))
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM colors WHERE id = $1`, id)
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

// Search lists colors name-ordered, or in fuzzy rank order when rankedIDs is
// set.
func (r *Repository) Search(ctx context.Context, rankedIDs []uuid.UUID, page search.Page) (search.Result[Color], error) {
	var p search.Predicate
	orderBy := "lower(c.name), c.id"
	if rankedIDs != nil {
		p.Where("c.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("c.id", rankedIDs)
	}

	q := search.Query{
		Base:    "FROM colors c " + p.SQL(),
		Columns: colorColumns,
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (Color, error) {
		return scanColor(rows)
	})
}

func isFKViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == fkViolationCode
}
