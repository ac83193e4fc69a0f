// Package domain holds the animal entity's enumerated vocabularies.
package domain

// Species of sheltered animals.
type Species string

const (
	SpeciesCat     Species = "CAT"
	SpeciesDog     Species = "DOG"
	SpeciesBird    Species = "BIRD"
	SpeciesReptile Species = "REPTILE"
	SpeciesRodent  Species = "RODENT"
)

// ParseSpecies validates a species literal.
func ParseSpecies(s string) (Species, bool) {
	switch Species(s) {
	case SpeciesCat, SpeciesDog, SpeciesBird, SpeciesReptile, SpeciesRodent:
		return Species(s), true
	}
	return "", false
}

// Status is the animal's shelter lifecycle state.
type Status string

const (
	StatusSheltered Status = "SHELTERED"
	StatusFostered  Status = "FOSTERED"
	StatusReserved  Status = "RESERVED"
	StatusAdopted   Status = "ADOPTED"
	StatusDeceased  Status = "DECEASED"
)

// ParseStatus validates a status literal.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusSheltered, StatusFostered, StatusReserved, StatusAdopted, StatusDeceased:
		return Status(s), true
	}
	return "", false
}

// Gender of the animal.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

// ParseGender validates a gender literal.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderUnknown:
		return Gender(s), true
	}
	return "", false
}

// Sterilization records whether the animal is sterilized. NOT_MANDATORY
// covers species where sterilization does not apply.
type Sterilization string

const (
	SterilizationYes          Sterilization = "YES"
	SterilizationNo           Sterilization = "NO"
	SterilizationNotMandatory Sterilization = "NOT_MANDATORY"
)

// ParseSterilization validates a sterilization literal.
func ParseSterilization(s string) (Sterilization, bool) {
	switch Sterilization(s) {
	case SterilizationYes, SterilizationNo, SterilizationNotMandatory:
		return Sterilization(s), true
	}
	return "", false
}
