// Package audit provides the append-only audit trail bounded context.
// Mutating services record who changed what; entries are never updated or
// deleted.
package audit

import (
	"context"

	"github.com/google/uuid"
)

// Action is the kind of mutation an entry records.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// ParseAction validates an action literal.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionCreate, ActionUpdate, ActionDelete:
		return Action(s), true
	}
	return "", false
}

// Resource types recorded by the audit trail.
type ResourceType string

const (
	ResourceAnimal       ResourceType = "ANIMAL"
	ResourceBreed        ResourceType = "BREED"
	ResourceColor        ResourceType = "COLOR"
	ResourceUser         ResourceType = "USER"
	ResourceFosterFamily ResourceType = "FOSTER_FAMILY"
	ResourceApplication  ResourceType = "EXHIBITOR_APPLICATION"
	ResourceExhibitor    ResourceType = "EXHIBITOR"
	ResourcePartner      ResourceType = "PARTNER"
)

// ParseResourceType validates a resource type literal.
func ParseResourceType(s string) (ResourceType, bool) {
	switch ResourceType(s) {
	case ResourceAnimal, ResourceBreed, ResourceColor, ResourceUser,
		ResourceFosterFamily, ResourceApplication, ResourceExhibitor,
		ResourcePartner:
		return ResourceType(s), true
	}
	return "", false
}

// Record is one audit fact to append. Before and After are snapshots of the
// mutated resource (either may be nil for CREATE/DELETE).
type Record struct {
	Actor        uuid.UUID
	Action       Action
	ResourceType ResourceType
	ResourceID   uuid.UUID
	Before       any
	After        any
}

// Recorder appends audit entries. Implementations must never fail the
// caller's request path; persistence errors are logged and swallowed.
type Recorder interface {
	Record(ctx context.Context, rec Record)
}

// NopRecorder discards every record. Used in tests.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Record) {}
