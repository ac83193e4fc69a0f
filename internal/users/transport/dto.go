package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	FirstName string   `json:"firstName" validate:"required,max=100"`
	LastName  string   `json:"lastName" validate:"required,max=100"`
	Groups    []string `json:"groups" validate:"required,min=1"`
}

type UpdateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

type SetGroupsRequest struct {
	Groups []string `json:"groups" validate:"required,min=1"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DisplayName string    `json:"displayName"`
	Groups      []string  `json:"groups"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserCard is the projection used by list pages and suggestions.
type UserCard struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Groups      []string  `json:"groups"`
	Archived    bool      `json:"archived"`
}

// SuggestionResponse is one autocomplete hit for member inputs.
type SuggestionResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       string    `json:"value"`
	Highlighted string    `json:"highlighted"`
}
