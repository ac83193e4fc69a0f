package transport

import (
	"net/url"

	"refuge_backend/internal/animals/domain"
	"refuge_backend/internal/search"
)

// CountPerPage is the breed list page size.
const CountPerPage = 25

// SortKey selects the breed list ordering.
type SortKey string

const (
	SortName        SortKey = "NAME"
	SortAnimalCount SortKey = "ANIMAL_COUNT"

	DefaultSort = SortName
)

func parseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortName, SortAnimalCount:
		return SortKey(s), true
	}
	return "", false
}

// SearchParams is the breed list filter descriptor.
type SearchParams struct {
	Species search.EnumSet[domain.Species]
	Text    string
	Sort    SortKey
}

// ParseSearchParams builds the descriptor from a raw query string.
func ParseSearchParams(values url.Values) SearchParams {
	return SearchParams{
		Species: search.ParseEnumSet(values["species"], domain.ParseSpecies),
		Text:    search.ParseText(values["text"]),
		Sort:    search.ParseSort(values["sort"], parseSortKey, DefaultSort),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p SearchParams) IsEmpty() bool {
	return p.Species.IsEmpty() && p.Text == "" && p.Sort == DefaultSort
}

// Format renders the canonical minimal query string of the descriptor.
func (p SearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings("species", p.Species.Strings())
	e.Text("text", p.Text)
	e.Sort("sort", string(p.Sort), string(DefaultSort))
	return e.Values()
}
