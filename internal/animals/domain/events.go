package domain

import (
	"github.com/google/uuid"

	"refuge_backend/platform/events"
)

const EventAnimalAssigned = "animals.assigned"

// AnimalAssigned is published when an animal gets a new referent manager.
type AnimalAssigned struct {
	events.BaseEvent
	AnimalID   uuid.UUID `json:"animalId"`
	AnimalName string    `json:"animalName"`
	ManagerID  uuid.UUID `json:"managerId"`
}

func (AnimalAssigned) EventName() string { return EventAnimalAssigned }
