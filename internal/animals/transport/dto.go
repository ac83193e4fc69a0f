package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnimalRequest struct {
	Name           string     `json:"name" validate:"required,max=120"`
	Alias          string     `json:"alias" validate:"max=120"`
	Species        string     `json:"species" validate:"required"`
	BreedID        *uuid.UUID `json:"breedId"`
	ColorID        *uuid.UUID `json:"colorId"`
	Gender         string     `json:"gender" validate:"required"`
	BirthDate      *string    `json:"birthDate"`
	Status         string     `json:"status" validate:"required"`
	PickUpDate     *string    `json:"pickUpDate"`
	PickUpLocation string     `json:"pickUpLocation" validate:"max=200"`
	PickUpReason   string     `json:"pickUpReason" validate:"max=500"`
	ManagerID      *uuid.UUID `json:"managerId"`
	FosterFamilyID *uuid.UUID `json:"fosterFamilyId"`
	Sterilization  string     `json:"sterilization" validate:"required"`
	NextVaccineDue *string    `json:"nextVaccineDue"`
	AdoptionDate   *string    `json:"adoptionDate"`
	Description    string     `json:"description" validate:"max=5000"`
}

// UpdateAnimalRequest carries the same editable surface as creation.
type UpdateAnimalRequest = CreateAnimalRequest

type AnimalResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Alias          string     `json:"alias,omitempty"`
	Species        string     `json:"species"`
	BreedID        *uuid.UUID `json:"breedId,omitempty"`
	BreedName      string     `json:"breedName,omitempty"`
	ColorID        *uuid.UUID `json:"colorId,omitempty"`
	ColorName      string     `json:"colorName,omitempty"`
	Gender         string     `json:"gender"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	Status         string     `json:"status"`
	PickUpDate     *time.Time `json:"pickUpDate,omitempty"`
	PickUpLocation string     `json:"pickUpLocation,omitempty"`
	PickUpReason   string     `json:"pickUpReason,omitempty"`
	ManagerID      *uuid.UUID `json:"managerId,omitempty"`
	FosterFamilyID *uuid.UUID `json:"fosterFamilyId,omitempty"`
	Sterilization  string     `json:"sterilization"`
	NextVaccineDue *time.Time `json:"nextVaccineDue,omitempty"`
	AdoptionDate   *time.Time `json:"adoptionDate,omitempty"`
	Description    string     `json:"description,omitempty"`
	Photos         []Photo    `json:"photos"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AnimalCard is the list page projection; the admin table and public cards
// never fetch the full record.
type AnimalCard struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Species        string     `json:"species"`
	BreedName      string     `json:"breedName,omitempty"`
	Status         string     `json:"status"`
	Gender         string     `json:"gender"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	PickUpDate     *time.Time `json:"pickUpDate,omitempty"`
	PickUpLocation string     `json:"pickUpLocation,omitempty"`
	NextVaccineDue *time.Time `json:"nextVaccineDue,omitempty"`
	PhotoKey       string     `json:"photoKey,omitempty"`
}

type Photo struct {
	ID        uuid.UUID  `json:"id"`
	Key       string     `json:"key"`
	TakenAt   *time.Time `json:"takenAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
