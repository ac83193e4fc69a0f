package transport

import (
	"net/url"

	animaldomain "refuge_backend/internal/animals/domain"
	"refuge_backend/internal/fosterfamilies/domain"
	"refuge_backend/internal/search"
)

// CountPerPage is the foster family list page size.
const CountPerPage = 20

// SearchParams is the foster family list filter descriptor. Species is an
// overlap filter: a family matches when it hosts at least one of the
// requested species.
type SearchParams struct {
	Availabilities search.EnumSet[domain.Availability]
	Species        search.EnumSet[animaldomain.Species]
	ZipPrefix      string
	Text           string
}

const (
	keyAvailability = "availability"
	keySpecies      = "species"
	keyZip          = "zip"
	keyText         = "text"
)

// ParseSearchParams builds the descriptor from a raw query string. Unknown
// enum literals are dropped.
func ParseSearchParams(values url.Values) SearchParams {
	return SearchParams{
		Availabilities: search.ParseEnumSet(values[keyAvailability], domain.ParseAvailability),
		Species:        search.ParseEnumSet(values[keySpecies], animaldomain.ParseSpecies),
		ZipPrefix:      search.ParseText(values[keyZip]),
		Text:           search.ParseText(values[keyText]),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p SearchParams) IsEmpty() bool {
	return p.Availabilities.IsEmpty() &&
		p.Species.IsEmpty() &&
		p.ZipPrefix == "" &&
		p.Text == ""
}

// Format renders the canonical minimal query string of the descriptor.
func (p SearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings(keyAvailability, p.Availabilities.Strings())
	e.Strings(keySpecies, p.Species.Strings())
	e.Text(keyZip, p.ZipPrefix)
	e.Text(keyText, p.Text)
	return e.Values()
}
