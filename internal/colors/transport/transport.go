// Package transport carries the color module's request and response shapes.
package transport

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"refuge_backend/internal/search"
)

// CountPerPage is the color list page size.
const CountPerPage = 25

type CreateColorRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type UpdateColorRequest = CreateColorRequest

type ColorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AnimalCount int       `json:"animalCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SuggestionResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       string    `json:"value"`
	Highlighted string    `json:"highlighted"`
}

// SearchParams is the color list filter descriptor: a text query only.
type SearchParams struct {
	Text string
}

// ParseSearchParams builds the descriptor from a raw query string.
func ParseSearchParams(values url.Values) SearchParams {
	return SearchParams{Text: search.ParseText(values["text"])}
}

// IsEmpty reports whether no dimension constrains the result.
func (p SearchParams) IsEmpty() bool { return p.Text == "" }

// Format renders the canonical minimal query string of the descriptor.
func (p SearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Text("text", p.Text)
	return e.Values()
}
