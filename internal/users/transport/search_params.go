package transport

import (
	"net/url"

	"refuge_backend/internal/auth"
	"refuge_backend/internal/search"
)

// CountPerPage is the member directory page size.
const CountPerPage = 20

// SortKey selects the member list ordering.
type SortKey string

const (
	SortName      SortKey = "NAME"
	SortCreatedAt SortKey = "CREATED_AT"

	DefaultSort = SortName
)

func parseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortName, SortCreatedAt:
		return SortKey(s), true
	}
	return "", false
}

func parseGroup(s string) (string, bool) {
	if auth.ValidGroup(s) {
		return s, true
	}
	return "", false
}

// SearchParams is the member directory filter descriptor.
type SearchParams struct {
	// Groups keeps members belonging to at least one of the set.
	Groups search.EnumSet[string]
	// Text fuzzy-matches the display name.
	Text string
	// IncludeArchived also lists disabled accounts.
	IncludeArchived bool
	Sort            SortKey
}

// ParseSearchParams builds the descriptor from a raw query string.
func ParseSearchParams(values url.Values) SearchParams {
	return SearchParams{
		Groups:          search.ParseEnumSet(values["group"], parseGroup),
		Text:            search.ParseText(values["text"]),
		IncludeArchived: search.ParseBool(values["includeArchived"]),
		Sort:            search.ParseSort(values["sort"], parseSortKey, DefaultSort),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p SearchParams) IsEmpty() bool {
	return p.Groups.IsEmpty() &&
		p.Text == "" &&
		!p.IncludeArchived &&
		p.Sort == DefaultSort
}

// Format renders the canonical minimal query string of the descriptor.
func (p SearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings("group", p.Groups.Strings())
	e.Text("text", p.Text)
	e.Bool("includeArchived", p.IncludeArchived)
	e.Sort("sort", string(p.Sort), string(DefaultSort))
	return e.Values()
}
