package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recipient struct {
	Email       string
	DisplayName string
	Archived    bool
}

// recipientReader resolves staff notification recipients. It reads the users
// table directly rather than depending on the users module.
type recipientReader struct {
	pool *pgxpool.Pool
}

func newRecipientReader(pool *pgxpool.Pool) *recipientReader {
	return &recipientReader{pool: pool}
}

func (r *recipientReader) Get(ctx context.Context, id uuid.UUID) (recipient, error) {
	var rec recipient
	err := r.pool.QueryRow(ctx, `
		SELECT email, display_name, archived FROM users WHERE id = $1
	`, id).Scan(&rec.Email, &rec.DisplayName, &rec.Archived)
	return rec, err
}
