package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"refuge_backend/internal/email"
	"refuge_backend/internal/notification/outbox"
	"refuge_backend/platform/config"
	"refuge_backend/platform/logger"
)

// DelivererConfig provides the URLs rendered into notification bodies.
type DelivererConfig interface {
	config.NotificationConfig
	config.ShowConfig
}

// Deliverer sends one claimed outbox record. It runs inside the asynq
// worker; a returned error makes asynq retry the task.
type Deliverer struct {
	outbox *outbox.Repository
	sender email.Sender
	cfg    DelivererConfig
	log    *logger.Logger
}

func NewDeliverer(repo *outbox.Repository, sender email.Sender, cfg DelivererConfig, log *logger.Logger) *Deliverer {
	return &Deliverer{outbox: repo, sender: sender, cfg: cfg, log: log}
}

// Deliver loads the record, sends the matching email and finalizes the row.
func (d *Deliverer) Deliver(ctx context.Context, outboxID uuid.UUID) error {
	rec, err := d.outbox.GetByID(ctx, outboxID)
	if err != nil {
		return err
	}
	if rec.Status == outbox.StatusSucceeded {
		return nil
	}

	if err := d.send(ctx, rec); err != nil {
		if markErr := d.outbox.MarkFailed(ctx, rec.ID, err.Error()); markErr != nil {
			d.log.Error("outbox failure not recorded", "outbox_id", rec.ID, "error", markErr)
		}
		return err
	}
	return d.outbox.MarkSucceeded(ctx, rec.ID)
}

func (d *Deliverer) send(ctx context.Context, rec outbox.Record) error {
	switch rec.Kind {
	case KindApplicationValidated:
		var p applicationValidatedPayload
		if err := json.Unmarshal(rec.Payload, &p); err != nil {
			return err
		}
		return d.sender.SendApplicationValidatedEmail(ctx, rec.Recipient,
			p.ContactName, p.StructureName, d.cfg.GetShowPortalURL())

	case KindApplicationRefused:
		var p applicationRefusedPayload
		if err := json.Unmarshal(rec.Payload, &p); err != nil {
			return err
		}
		return d.sender.SendApplicationRefusedEmail(ctx, rec.Recipient,
			p.ContactName, p.StructureName, p.RefusalMessage)

	case KindAnimalAssigned:
		var p animalAssignedPayload
		if err := json.Unmarshal(rec.Payload, &p); err != nil {
			return err
		}
		animalURL := fmt.Sprintf("%s/animals/%s", d.cfg.GetAppBaseURL(), p.AnimalID)
		return d.sender.SendAnimalAssignedEmail(ctx, rec.Recipient,
			p.ManagerName, p.AnimalName, animalURL)

	default:
		return fmt.Errorf("unknown outbox kind %q", rec.Kind)
	}
}
