package transport

import (
	"net/url"

	"refuge_backend/internal/search"
	"refuge_backend/internal/show/domain"
)

// ApplicationCountPerPage is the application list page size.
const ApplicationCountPerPage = 20

// PartnerCountPerPage is the partner list page size.
const PartnerCountPerPage = 25

// ApplicationSearchParams is the exhibitor application list filter
// descriptor. Targets and Fields use overlap semantics: an application
// matches when it shares at least one element with the requested set.
type ApplicationSearchParams struct {
	Statuses   search.EnumSet[domain.Status]
	Targets    search.EnumSet[domain.Target]
	Fields     search.EnumSet[domain.ActivityField]
	StandSizes search.IDSet
	Text       string
}

const (
	keyStatus    = "status"
	keyTarget    = "target"
	keyField     = "field"
	keyStandSize = "standSize"
	keyText      = "text"
)

// ParseApplicationSearchParams builds the descriptor from a raw query
// string. Unknown enum literals and malformed ids are dropped.
func ParseApplicationSearchParams(values url.Values) ApplicationSearchParams {
	return ApplicationSearchParams{
		Statuses:   search.ParseEnumSet(values[keyStatus], domain.ParseStatus),
		Targets:    search.ParseEnumSet(values[keyTarget], domain.ParseTarget),
		Fields:     search.ParseEnumSet(values[keyField], domain.ParseActivityField),
		StandSizes: search.ParseIDSet(values[keyStandSize]),
		Text:       search.ParseText(values[keyText]),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p ApplicationSearchParams) IsEmpty() bool {
	return p.Statuses.IsEmpty() &&
		p.Targets.IsEmpty() &&
		p.Fields.IsEmpty() &&
		p.StandSizes.IsEmpty() &&
		p.Text == ""
}

// Format renders the canonical minimal query string of the descriptor.
func (p ApplicationSearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings(keyStatus, p.Statuses.Strings())
	e.Strings(keyTarget, p.Targets.Strings())
	e.Strings(keyField, p.Fields.Strings())
	e.Strings(keyStandSize, p.StandSizes.Strings())
	e.Text(keyText, p.Text)
	return e.Values()
}

const keyCategory = "category"
const keyVisible = "visible"

// PartnerSearchParams is the partner list filter descriptor.
type PartnerSearchParams struct {
	Categories  search.EnumSet[domain.PartnerCategory]
	VisibleOnly bool
	Text        string
}

// ParsePartnerSearchParams builds the descriptor from a raw query string.
func ParsePartnerSearchParams(values url.Values) PartnerSearchParams {
	return PartnerSearchParams{
		Categories:  search.ParseEnumSet(values[keyCategory], domain.ParsePartnerCategory),
		VisibleOnly: search.ParseBool(values[keyVisible]),
		Text:        search.ParseText(values[keyText]),
	}
}

// IsEmpty reports whether no dimension constrains the result.
func (p PartnerSearchParams) IsEmpty() bool {
	return p.Categories.IsEmpty() && !p.VisibleOnly && p.Text == ""
}

// Format renders the canonical minimal query string of the descriptor.
func (p PartnerSearchParams) Format() url.Values {
	e := search.NewEncoder()
	e.Strings(keyCategory, p.Categories.Strings())
	e.Bool(keyVisible, p.VisibleOnly)
	e.Text(keyText, p.Text)
	return e.Values()
}
