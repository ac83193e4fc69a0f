// Package transport carries the foster family request and response shapes.
package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateFosterFamilyRequest struct {
	DisplayName   string   `json:"displayName" validate:"required,max=160"`
	Email         string   `json:"email" validate:"omitempty,email,max=254"`
	Phone         string   `json:"phone" validate:"omitempty,max=32"`
	Address       string   `json:"address" validate:"omitempty,max=300"`
	ZipCode       string   `json:"zipCode" validate:"omitempty,max=10"`
	City          string   `json:"city" validate:"omitempty,max=120"`
	SpeciesToHost []string `json:"speciesToHost" validate:"max=10"`
	Availability  string   `json:"availability" validate:"required"`
	Comments      string   `json:"comments" validate:"max=2000"`
}

type UpdateFosterFamilyRequest = CreateFosterFamilyRequest

type FosterFamilyResponse struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   string    `json:"displayName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ZipCode       string    `json:"zipCode"`
	City          string    `json:"city"`
	SpeciesToHost []string  `json:"speciesToHost"`
	Availability  string    `json:"availability"`
	Comments      string    `json:"comments"`
	AnimalCount   int       `json:"animalCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FosterFamilyCard is the list projection.
type FosterFamilyCard struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   string    `json:"displayName"`
	City          string    `json:"city"`
	ZipCode       string    `json:"zipCode"`
	SpeciesToHost []string  `json:"speciesToHost"`
	Availability  string    `json:"availability"`
	AnimalCount   int       `json:"animalCount"`
}

type SuggestionResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       string    `json:"value"`
	Highlighted string    `json:"highlighted"`
}
