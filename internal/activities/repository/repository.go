package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/activities/transport"
	"refuge_backend/internal/search"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Entry is one stored audit fact. Before and After are JSONB snapshots.
type Entry struct {
	ID           uuid.UUID
	Actor        uuid.UUID
	ActorName    string
	Action       audit.Action
	ResourceType audit.ResourceType
	ResourceID   uuid.UUID
	ChangedKeys  []string
	Before       map[string]any
	After        map[string]any
	CreatedAt    time.Time
}

func (r *Repository) Insert(ctx context.Context, e Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activities (actor_id, action, resource_type, resource_id, changed_keys, before, after)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.Actor, e.Action, e.ResourceType, e.ResourceID, e.ChangedKeys, e.Before, e.After)
	return err
}

// Search lists entries newest first, filtered by the descriptor.
func (r *Repository) Search(ctx context.Context, params transport.SearchParams, page search.Page) (search.Result[Entry], error) {
	var p search.Predicate
	p.WhereIDs("a.actor_id", params.Actors)
	search.WhereEnum(&p, "a.action", params.Actions)
	search.WhereEnum(&p, "a.resource_type", params.ResourceTypes)
	p.WhereDateRange("a.created_at", params.Date)

	q := search.Query{
		Base: `FROM activities a
			LEFT JOIN users u ON u.id = a.actor_id ` + p.SQL(),
		Columns: `a.id, a.actor_id, COALESCE(u.display_name, ''), a.action,
			a.resource_type, a.resource_id, a.changed_keys, a.before, a.after, a.created_at`,
		OrderBy: "a.created_at DESC, a.id DESC",
		Args:    p.Args(),
	}
	return search.FetchPage(ctx, r.pool, q, page, func(rows pgx.Rows) (Entry, error) {
		var e Entry
		err := rows.Scan(
			&e.ID,
			&e.Actor,
			&e.ActorName,
			&e.Action,
			&e.ResourceType,
			&e.ResourceID,
			&e.ChangedKeys,
			&e.Before,
			&e.After,
			&e.CreatedAt,
		)
		return e, err
	})
}
