// Package transport carries the show module's request and response shapes.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// SubmitApplicationRequest is the exhibitor-facing application form.
type SubmitApplicationRequest struct {
	StructureName string   `json:"structureName" validate:"required,max=200"`
	ContactName   string   `json:"contactName" validate:"required,max=160"`
	Email         string   `json:"email" validate:"required,email,max=254"`
	Phone         string   `json:"phone" validate:"omitempty,max=32"`
	WebsiteURL    string   `json:"websiteUrl" validate:"omitempty,url,max=300"`
	Description   string   `json:"description" validate:"max=3000"`
	StandSizeID   string   `json:"standSizeId" validate:"required,uuid"`
	Targets       []string `json:"targets" validate:"min=1,max=10"`
	Fields        []string `json:"fields" validate:"min=1,max=10"`
}

// UpdateApplicationStatusRequest moves an application through its lifecycle.
type UpdateApplicationStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	RefusalMessage string `json:"refusalMessage" validate:"max=2000"`
}

type ApplicationResponse struct {
	ID             uuid.UUID `json:"id"`
	StructureName  string    `json:"structureName"`
	ContactName    string    `json:"contactName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	WebsiteURL     string    `json:"websiteUrl"`
	Description    string    `json:"description"`
	StandSizeID    uuid.UUID `json:"standSizeId"`
	StandSizeLabel string    `json:"standSizeLabel"`
	Targets        []string  `json:"targets"`
	Fields         []string  `json:"fields"`
	Status         string    `json:"status"`
	RefusalMessage string    `json:"refusalMessage,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type StandSizeResponse struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	AreaM2   int       `json:"areaM2"`
	Price    int       `json:"price"`
	Position int       `json:"position"`
}

type ExhibitorResponse struct {
	ID             uuid.UUID `json:"id"`
	ApplicationID  uuid.UUID `json:"applicationId"`
	StructureName  string    `json:"structureName"`
	ContactName    string    `json:"contactName"`
	Email          string    `json:"email"`
	StandSizeID    uuid.UUID `json:"standSizeId"`
	StandSizeLabel string    `json:"standSizeLabel"`
	StandNumber    *int      `json:"standNumber"`
	FolderKey      string    `json:"folderKey"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AssignStandRequest places an exhibitor on the floor plan.
type AssignStandRequest struct {
	StandNumber int `json:"standNumber" validate:"required,min=1,max=500"`
}

type CreatePartnerRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Category   string `json:"category" validate:"required"`
	WebsiteURL string `json:"websiteUrl" validate:"omitempty,url,max=300"`
	LogoKey    string `json:"logoKey" validate:"omitempty,max=300"`
	Visible    bool   `json:"visible"`
}

type UpdatePartnerRequest = CreatePartnerRequest

type PartnerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	WebsiteURL string    `json:"websiteUrl"`
	LogoKey    string    `json:"logoKey"`
	Visible    bool      `json:"visible"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type SuggestionResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       string    `json:"value"`
	Highlighted string    `json:"highlighted"`
}
