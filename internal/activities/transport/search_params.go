package transport

import (
	"net/url"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/search"
)

// CountPerPage is the audit trail page size.
const CountPerPage = 50

// SearchParams is the activity log filter descriptor. Entries are always
// listed newest first; there is no sort option.
type SearchParams struct {
	Actors        search.IDSet
	Actions       search.EnumSet[audit.Action]
	ResourceTypes search.EnumSet[audit.ResourceType]
	Date          search.DateRange
}

// ParseSearchParams builds the descriptor from a raw query string. Malformed
// values degrade to the unconstrained state.
func ParseSearchParams(values url.Values) SearchParams {
	return SearchParams{
		Actors:        search.ParseIDSet(values["actor"]),
		Actions:       search.ParseEnumSet(values["action"], audit.ParseAction),
		ResourceTypes: search.ParseEnumSet(values["resourceType"], audit.ParseResourceType),
		Date:          search.ParseDateRange(values["dateStart"], values["dateEnd"]),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p SearchParams) IsEmpty() bool {
	return p.Actors.IsEmpty() &&
		p.Actions.IsEmpty() &&
		p.ResourceTypes.IsEmpty() &&
		p.Date.IsEmpty()
}

// Format renders the canonical minimal query string of the descriptor.
func (p SearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings("actor", p.Actors.Strings())
	e.Strings("action", p.Actions.Strings())
	e.Strings("resourceType", p.ResourceTypes.Strings())
	e.Date("dateStart", p.Date.Start)
	e.Date("dateEnd", p.Date.End)
	return e.Values()
}
