package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateBreedRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Species string `json:"species" validate:"required"`
}

type UpdateBreedRequest = CreateBreedRequest

type BreedResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	AnimalCount int       `json:"animalCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SuggestionResponse is one autocomplete hit for the breed input.
type SuggestionResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       string    `json:"value"`
	Highlighted string    `json:"highlighted"`
}
