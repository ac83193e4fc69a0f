// Package search implements the shared search core: typed filter descriptors
// parsed from query strings, SQL predicate composition, offset pagination and
// the fuzzy suggestion protocol. Per-entity descriptors live in each module's
// transport package and are built from the primitives here.
//
// Parsing is total: malformed input never produces an error, it degrades to
// the field's empty/default state so stale bookmarked URLs keep working.
package search

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used in query strings.
const DateLayout = "2006-01-02"

// =============================================================================
// EnumSet
// =============================================================================

// EnumSet is a set of enum values. The empty set means "no constraint".
type EnumSet[T ~string] struct {
	members map[T]struct{}
}

// NewEnumSet builds a set from the given values.
func NewEnumSet[T ~string](values ...T) EnumSet[T] {
	if len(values) == 0 {
		return EnumSet[T]{}
	}
	members := make(map[T]struct{}, len(values))
	for _, v := range values {
		members[v] = struct{}{}
	}
	return EnumSet[T]{members: members}
}

// ParseEnumSet parses raw query values using parse. Invalid literals are
// silently dropped.
func ParseEnumSet[T ~string](raw []string, parse func(string) (T, bool)) EnumSet[T] {
	var values []T
	for _, r := range raw {
		if v, ok := parse(strings.TrimSpace(r)); ok {
			values = append(values, v)
		}
	}
	return NewEnumSet(values...)
}

// IsEmpty reports whether the set carries no constraint.
func (s EnumSet[T]) IsEmpty() bool { return len(s.members) == 0 }

// Len returns the number of members.
func (s EnumSet[T]) Len() int { return len(s.members) }

// Has reports membership.
func (s EnumSet[T]) Has(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Values returns the members sorted, for canonical formatting.
func (s EnumSet[T]) Values() []T {
	out := make([]T, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted members as plain strings.
func (s EnumSet[T]) Strings() []string {
	values := s.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// =============================================================================
// IDSet
// =============================================================================

// IDSet is a set of entity identifiers. The empty set means "no constraint".
type IDSet struct {
	members map[uuid.UUID]struct{}
}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...uuid.UUID) IDSet {
	if len(ids) == 0 {
		return IDSet{}
	}
	members := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return IDSet{members: members}
}

// ParseIDSet parses raw query values as UUIDs. Invalid values are dropped.
func ParseIDSet(raw []string) IDSet {
	var ids []uuid.UUID
	for _, r := range raw {
		if id, err := uuid.Parse(strings.TrimSpace(r)); err == nil {
			ids = append(ids, id)
		}
	}
	return NewIDSet(ids...)
}

// IsEmpty reports whether the set carries no constraint.
func (s IDSet) IsEmpty() bool { return len(s.members) == 0 }

// Len returns the number of members.
func (s IDSet) Len() int { return len(s.members) }

// Has reports membership.
func (s IDSet) Has(id uuid.UUID) bool {
	_, ok := s.members[id]
	return ok
}

// Values returns the members sorted by string form, for canonical formatting.
func (s IDSet) Values() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Strings returns the sorted members as strings.
func (s IDSet) Strings() []string {
	values := s.Values()
	out := make([]string, len(values))
	for i, id := range values {
		out[i] = id.String()
	}
	return out
}

// =============================================================================
// StringSet
// =============================================================================

// StringSet is a set of free-text values (e.g. pick-up locations). The empty
// set means "no constraint".
type StringSet struct {
	members map[string]struct{}
}

// NewStringSet builds a set from the given values, dropping blanks.
func NewStringSet(values ...string) StringSet {
	var members map[string]struct{}
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if members == nil {
			members = make(map[string]struct{})
		}
		members[trimmed] = struct{}{}
	}
	return StringSet{members: members}
}

// ParseStringSet parses raw query values, trimming and dropping blanks.
func ParseStringSet(raw []string) StringSet {
	return NewStringSet(raw...)
}

// IsEmpty reports whether the set carries no constraint.
func (s StringSet) IsEmpty() bool { return len(s.members) == 0 }

// Len returns the number of members.
func (s StringSet) Len() int { return len(s.members) }

// Has reports membership.
func (s StringSet) Has(v string) bool {
	_, ok := s.members[v]
	return ok
}

// Values returns the members sorted, for canonical formatting.
func (s StringSet) Values() []string {
	out := make([]string, 0, len(s.members))
	for v := range s.members {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// =============================================================================
// TextQuery
// =============================================================================

// ParseText parses an optional free-text query: last value wins, surrounding
// whitespace is trimmed, and a blank value collapses to absent ("").
func ParseText(raw []string) string {
	if len(raw) == 0 {
		return ""
	}
	return strings.TrimSpace(raw[len(raw)-1])
}

// ParseBool parses an optional boolean flag: "true" or "1" means set,
// anything else means unset.
func ParseBool(raw []string) bool {
	v := ParseText(raw)
	return v == "true" || v == "1"
}

// =============================================================================
// DateRange
// =============================================================================

// DateRange is an optional calendar date interval; either bound may be absent.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsEmpty reports whether neither bound is set.
func (r DateRange) IsEmpty() bool { return r.Start == nil && r.End == nil }

// ParseDateRange parses the two bounds of a date range. Unparsable values
// collapse to an absent bound.
func ParseDateRange(startRaw, endRaw []string) DateRange {
	return DateRange{
		Start: parseDate(ParseText(startRaw)),
		End:   parseDate(ParseText(endRaw)),
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate renders a date bound in the query string format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// =============================================================================
// SortKey
// =============================================================================

// ParseSort parses a sort key, falling back to the entity's declared default
// when the value is missing or invalid.
func ParseSort[T ~string](raw []string, parse func(string) (T, bool), fallback T) T {
	if v, ok := parse(ParseText(raw)); ok {
		return v
	}
	return fallback
}

// =============================================================================
// Encoder
// =============================================================================

// Encoder builds the canonical query string form of a descriptor. Fields at
// their empty/default state are never emitted, so the empty descriptor
// formats to the empty string.
type Encoder struct {
	values url.Values
}

// NewEncoder creates an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{values: url.Values{}}
}

// Text emits an optional free-text value.
func (e *Encoder) Text(key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		e.values.Set(key, trimmed)
	}
}

// Strings emits a multi-valued field as repeated keys.
func (e *Encoder) Strings(key string, values []string) {
	for _, v := range values {
		e.values.Add(key, v)
	}
}

// Date emits an optional date bound.
func (e *Encoder) Date(key string, t *time.Time) {
	if t != nil {
		e.values.Set(key, FormatDate(*t))
	}
}

// Bool emits a flag only when set.
func (e *Encoder) Bool(key string, v bool) {
	if v {
		e.values.Set(key, "true")
	}
}

// Sort emits a sort key only when it differs from the entity default.
func (e *Encoder) Sort(key, value, fallback string) {
	if value != fallback {
		e.values.Set(key, value)
	}
}

// Values returns the accumulated parameters.
func (e *Encoder) Values() url.Values {
	return e.values
}

// Encode returns the canonical query string (keys sorted, empty descriptor
// encodes to "").
func (e *Encoder) Encode() string {
	return e.values.Encode()
}
