// Package notification turns domain events into outbox rows awaiting
// delivery. It inverts the dependency: domain modules publish events and
// never know about mail providers or templates.
package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	animaldomain "refuge_backend/internal/animals/domain"
	"refuge_backend/internal/notification/outbox"
	showdomain "refuge_backend/internal/show/domain"
	"refuge_backend/platform/events"
	"refuge_backend/platform/logger"
)

type Module struct {
	outbox *outbox.Repository
	users  *recipientReader
	log    *logger.Logger
}

// NewModule creates and initializes the notification module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	return &Module{
		outbox: outbox.New(pool),
		users:  newRecipientReader(pool),
		log:    log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notification"
}

// RegisterHandlers subscribes the module to the domain events it relays.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(showdomain.EventApplicationValidated, events.HandlerFunc(m.onApplicationValidated))
	bus.Subscribe(showdomain.EventApplicationRefused, events.HandlerFunc(m.onApplicationRefused))
	bus.Subscribe(animaldomain.EventAnimalAssigned, events.HandlerFunc(m.onAnimalAssigned))
}

func (m *Module) onApplicationValidated(ctx context.Context, event events.Event) error {
	e, ok := event.(showdomain.ApplicationValidated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	_, err := m.outbox.Insert(ctx, KindApplicationValidated, e.Email, applicationValidatedPayload{
		ApplicationID: e.ApplicationID,
		ExhibitorID:   e.ExhibitorID,
		ContactName:   e.ContactName,
		StructureName: e.StructureName,
	})
	return err
}

func (m *Module) onApplicationRefused(ctx context.Context, event events.Event) error {
	e, ok := event.(showdomain.ApplicationRefused)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	_, err := m.outbox.Insert(ctx, KindApplicationRefused, e.Email, applicationRefusedPayload{
		ApplicationID:  e.ApplicationID,
		ContactName:    e.ContactName,
		StructureName:  e.StructureName,
		RefusalMessage: e.RefusalMessage,
	})
	return err
}

func (m *Module) onAnimalAssigned(ctx context.Context, event events.Event) error {
	e, ok := event.(animaldomain.AnimalAssigned)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	recipient, err := m.users.Get(ctx, e.ManagerID)
	if err != nil {
		return err
	}
	if recipient.Archived {
		return nil
	}

	_, err = m.outbox.Insert(ctx, KindAnimalAssigned, recipient.Email, animalAssignedPayload{
		AnimalID:    e.AnimalID.String(),
		AnimalName:  e.AnimalName,
		ManagerName: recipient.DisplayName,
	})
	return err
}
