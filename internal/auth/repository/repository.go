package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Account carries the credential fields of one member row.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	DisplayName  string
	Groups       []string
	Archived     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const accountColumns = `
	id, email, password_hash, first_name, last_name, display_name,
	groups, archived, created_at, updated_at`

func scanAccount(row pgx.Row) (Account, error) {
	var a Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.FirstName,
		&a.LastName,
		&a.DisplayName,
		&a.Groups,
		&a.Archived,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return a, err
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM users WHERE lower(email) = lower($1)
	`, email))
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM users WHERE id = $1
	`, id))
}

func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now()
		WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
