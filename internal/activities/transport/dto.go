package transport

import (
	"time"

	"github.com/google/uuid"
)

type EntryResponse struct {
	ID           uuid.UUID      `json:"id"`
	Actor        uuid.UUID      `json:"actor"`
	ActorName    string         `json:"actorName"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resourceType"`
	ResourceID   uuid.UUID      `json:"resourceId"`
	ChangedKeys  []string       `json:"changedKeys"`
	Before       map[string]any `json:"before,omitempty"`
	After        map[string]any `json:"after,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
