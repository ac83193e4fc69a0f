// Package outbox persists notifications awaiting delivery. Rows are written
// on the event path and drained by the asynq worker, so a mail server outage
// never loses a notification.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusEnqueued  Status = "enqueued"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// maxAttempts is the delivery budget before a record is parked as failed.
const maxAttempts = 5

var ErrNotFound = errors.New("outbox record not found")

type Record struct {
	ID        uuid.UUID
	Kind      string
	Recipient string
	Payload   json.RawMessage
	Status    Status
	Attempts  int
	RunAt     time.Time
	CreatedAt time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores a pending notification.
func (r *Repository) Insert(ctx context.Context, kind, recipient string, payload any) (uuid.UUID, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, `
		INSERT INTO notification_outbox (kind, recipient, payload, status, run_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id
	`, kind, recipient, data, StatusPending).Scan(&id)
	return id, err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Record, error) {
	var rec Record
	err := r.pool.QueryRow(ctx, `
		SELECT id, kind, recipient, payload, status, attempts, run_at, created_at
		FROM notification_outbox
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.Kind, &rec.Recipient, &rec.Payload, &rec.Status,
		&rec.Attempts, &rec.RunAt, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

// ClaimPending atomically moves due pending records to enqueued and returns
// them. SKIP LOCKED keeps concurrent dispatchers from claiming the same rows.
func (r *Repository) ClaimPending(ctx context.Context, limit int) ([]Record, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
		WITH claimed AS (
			SELECT id FROM notification_outbox
			WHERE status = $1 AND run_at <= now()
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		UPDATE notification_outbox o
		SET status = $3
		FROM claimed
		WHERE o.id = claimed.id
		RETURNING o.id, o.kind, o.recipient, o.payload, o.status, o.attempts,
			o.run_at, o.created_at
	`, StatusPending, limit, StatusEnqueued)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Recipient, &rec.Payload,
			&rec.Status, &rec.Attempts, &rec.RunAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MarkSucceeded finalizes a delivered record.
func (r *Repository) MarkSucceeded(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE notification_outbox
		SET status = $2, attempts = attempts + 1
		WHERE id = $1
	`, id, StatusSucceeded)
	return err
}

// MarkFailed records a delivery failure. Records under the attempt budget go
// back to pending with a delay; exhausted ones are parked as failed.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE notification_outbox
		SET attempts = attempts + 1,
		    last_error = $2,
		    status = CASE WHEN attempts + 1 >= $3 THEN $4::text ELSE $5::text END,
		    run_at = now() + (interval '1 minute' * (attempts + 1))
		WHERE id = $1
	`, id, cause, maxAttempts, StatusFailed, StatusPending)
	return err
}
