package domain

import "refuge_backend/platform/events"

const (
	EventApplicationValidated = "show.application.validated"
	EventApplicationRefused   = "show.application.refused"
)

// ApplicationValidated is published after the validating transaction commits.
type ApplicationValidated struct {
	events.BaseEvent
	ApplicationID string `json:"applicationId"`
	ExhibitorID   string `json:"exhibitorId"`
	Email         string `json:"email"`
	ContactName   string `json:"contactName"`
	StructureName string `json:"structureName"`
}

func (ApplicationValidated) EventName() string { return EventApplicationValidated }

// ApplicationRefused is published after the refusing transaction commits.
type ApplicationRefused struct {
	events.BaseEvent
	ApplicationID  string `json:"applicationId"`
	Email          string `json:"email"`
	ContactName    string `json:"contactName"`
	StructureName  string `json:"structureName"`
	RefusalMessage string `json:"refusalMessage"`
}

func (ApplicationRefused) EventName() string { return EventApplicationRefused }
