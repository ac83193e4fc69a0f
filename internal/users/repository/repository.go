package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/search"
	"refuge_backend/internal/users/transport"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already in use")
)

// pg unique_violation
const uniqueViolationCode = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// User is the full member row.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DisplayName string    `json:"displayName"`
	Groups      []string  `json:"groups"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

const userColumns = `
	id, email, first_name, last_name, display_name, groups, archived,
	created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.DisplayName,
		&u.Groups,
		&u.Archived,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *Repository) Create(ctx context.Context, email, passwordHash, firstName, lastName string, groups []string) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, display_name, groups)
		VALUES ($1, $2, $3, $4, $3 || ' ' || $4, $5)
		RETURNING `+userColumns+`
	`, email, passwordHash, firstName, lastName, groups))
	if isUniqueViolation(err) {
		return User{}, ErrEmailTaken
	}
	return u, err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, email, firstName, lastName string) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4,
			display_name = $3 || ' ' || $4, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, email, firstName, lastName))
	if isUniqueViolation(err) {
		return User{}, ErrEmailTaken
	}
	return u, err
}

func (r *Repository) SetGroups(ctx context.Context, id uuid.UUID, groups []string) (User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET groups = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, groups))
}

func (r *Repository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) (User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET archived = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, archived))
}

// Search lists members filtered by the descriptor. When rankedIDs is non-nil
// a text query was resolved by the fuzzy index; the result is restricted to
// those ids and ordered by their rank instead of the declared sort.
func (r *Repository) Search(ctx context.Context, params transport.SearchParams, rankedIDs []uuid.UUID, page search.Page) (search.Result[User], error) {
	var p search.Predicate
	if !params.Groups.IsEmpty() {
		p.WhereOverlap("u.groups", params.Groups.Values())
	}
	if !params.IncludeArchived {
		p.Where("u.archived = false")
	}

	orderBy := sortExpr(params.Sort)
	if rankedIDs != nil {
		p.Where("u.id = ANY(" + p.Bind(rankedIDs) + ")")
		orderBy = p.OrderByRank("u.id", rankedIDs)
	}

	q := search.Query{
		Base:    "FROM users u " + p.SQL(),
		Columns: "u.id, u.email, u.first_name, u.last_name, u.display_name, u.groups, u.archived, u.created_at, u.updated_at",
		OrderBy: orderBy,
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (User, error) {
		return scanUser(rows)
	})
}

func sortExpr(key transport.SortKey) string {
	switch key {
	case transport.SortCreatedAt:
		return "u.created_at DESC, u.id"
	default:
		return "lower(u.display_name), u.id"
	}
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationCode
}
