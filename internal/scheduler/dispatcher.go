package scheduler

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"refuge_backend/internal/notification/outbox"
	"refuge_backend/platform/config"
	"refuge_backend/platform/logger"
)

// dispatchInterval is how often the dispatcher polls for due records.
const dispatchInterval = 2 * time.Second

// OutboxDispatcher drains pending outbox rows into the asynq queue.
type OutboxDispatcher struct {
	client *Client
	repo   *outbox.Repository
	log    *logger.Logger
}

func NewOutboxDispatcher(cfg config.SchedulerConfig, pool *pgxpool.Pool, log *logger.Logger) (*OutboxDispatcher, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &OutboxDispatcher{
		client: client,
		repo:   outbox.New(pool),
		log:    log,
	}, nil
}

func (d *OutboxDispatcher) Close() error {
	if d == nil {
		return nil
	}
	return d.client.Close()
}

// Run polls until the context is cancelled. Claim failures are logged and
// retried on the next tick.
func (d *OutboxDispatcher) Run(ctx context.Context) {
	if d == nil || d.client == nil || d.repo == nil {
		return
	}

	ticker := time.NewTicker(dispatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		records, err := d.repo.ClaimPending(ctx, 50)
		if err != nil {
			d.log.Warn("outbox claim failed", "error", err)
			continue
		}

		for _, rec := range records {
			if err := d.client.EnqueueNotificationDelivery(ctx, rec.ID); err != nil {
				d.log.Warn("outbox enqueue failed", "outbox_id", rec.ID, "error", err)
			}
		}
	}
}
