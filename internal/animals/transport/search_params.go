package transport

import (
	"net/url"

	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/search"
)

// CountPerPage is the animal list page size.
const CountPerPage = 20

// SortKey selects the animal list ordering.
type SortKey string

const (
	SortName        SortKey = "NAME"
	SortPickUpDate  SortKey = "PICK_UP_DATE"
	SortBirthDate   SortKey = "BIRTH_DATE"
	SortVaccination SortKey = "VACCINATION"

	DefaultSort = SortPickUpDate
)

func parseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortName, SortPickUpDate, SortBirthDate, SortVaccination:
		return SortKey(s), true
	}
	return "", false
}

// SearchParams is the animal list filter descriptor. All dimensions combine
// conjunctively; each empty dimension matches everything.
type SearchParams struct {
	Species         search.EnumSet[domain.Species]
	Statuses        search.EnumSet[domain.Status]
	Sterilizations  search.EnumSet[domain.Sterilization]
	Managers        search.IDSet
	FosterFamilies  search.IDSet
	PickUpLocations search.StringSet
	PickUpDate      search.DateRange
	// Vaccination is restricted to admins and veterinarians; handlers reject
	// the request before the search runs when anyone else sets it.
	Vaccination search.DateRange
	// Text fuzzy-matches name and alias.
	Text string
	Sort SortKey
}

// ParseSearchParams builds the descriptor from a raw query string. Malformed
// values degrade to the unconstrained state, never an error.
func ParseSearchParams(values url.Values) SearchParams {
	return SearchParams{
		Species:         search.ParseEnumSet(values["species"], domain.ParseSpecies),
		Statuses:        search.ParseEnumSet(values["status"], domain.ParseStatus),
		Sterilizations:  search.ParseEnumSet(values["sterilization"], domain.ParseSterilization),
		Managers:        search.ParseIDSet(values["manager"]),
		FosterFamilies:  search.ParseIDSet(values["fosterFamily"]),
		PickUpLocations: search.ParseStringSet(values["pickUpLocation"]),
		PickUpDate:      search.ParseDateRange(values["pickUpDateStart"], values["pickUpDateEnd"]),
		Vaccination:     search.ParseDateRange(values["vaccinationStart"], values["vaccinationEnd"]),
		Text:            search.ParseText(values["text"]),
		Sort:            search.ParseSort(values["sort"], parseSortKey, DefaultSort),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p SearchParams) IsEmpty() bool {
	return p.Species.IsEmpty() &&
		p.Statuses.IsEmpty() &&
		p.Sterilizations.IsEmpty() &&
		p.Managers.IsEmpty() &&
		p.FosterFamilies.IsEmpty() &&
		p.PickUpLocations.IsEmpty() &&
		p.PickUpDate.IsEmpty() &&
		p.Vaccination.IsEmpty() &&
		p.Text == "" &&
		p.Sort == DefaultSort
}

// Format renders the canonical minimal query string of the descriptor.
func (p SearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings("species", p.Species.Strings())
	e.Strings("status", p.Statuses.Strings())
	e.Strings("sterilization", p.Sterilizations.Strings())
	e.Strings("manager", p.Managers.Strings())
	e.Strings("fosterFamily", p.FosterFamilies.Strings())
	e.Strings("pickUpLocation", p.PickUpLocations.Values())
	e.Date("pickUpDateStart", p.PickUpDate.Start)
	e.Date("pickUpDateEnd", p.PickUpDate.End)
	e.Date("vaccinationStart", p.Vaccination.Start)
	e.Date("vaccinationEnd", p.Vaccination.End)
	e.Text("text", p.Text)
	e.Sort("sort", string(p.Sort), string(DefaultSort))
	return e.Values()
}
