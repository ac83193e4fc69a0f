package search

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

type species string

const (
	speciesCat species = "CAT"
	speciesDog species = "DOG"
)

func parseSpecies(s string) (species, bool) {
	switch species(s) {
	case speciesCat, speciesDog:
		return species(s), true
	}
	return "", false
}

func TestParseEnumSetDropsInvalidLiterals(t *testing.T) {
	set := ParseEnumSet([]string{"DOG", "BOGUS", " CAT "}, parseSpecies)

	if set.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", set.Len())
	}
	if !set.Has(speciesDog) || !set.Has(speciesCat) {
		t.Errorf("expected DOG and CAT, got %v", set.Values())
	}
}

func TestParseEnumSetAllInvalidIsEmpty(t *testing.T) {
	set := ParseEnumSet([]string{"FISH", "BOGUS"}, parseSpecies)
	if !set.IsEmpty() {
		t.Errorf("expected empty set, got %v", set.Values())
	}
}

func TestParseIDSetDropsMalformedValues(t *testing.T) {
	valid := uuid.New()
	set := ParseIDSet([]string{valid.String(), "not-a-uuid", ""})

	if set.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", set.Len())
	}
	if !set.Has(valid) {
		t.Errorf("expected %s in set", valid)
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want string
	}{
		{"absent", nil, ""},
		{"trimmed", []string{"  milo  "}, "milo"},
		{"last wins", []string{"first", "second"}, "second"},
		{"blank collapses", []string{"   "}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseText(tt.raw); got != tt.want {
				t.Errorf("ParseText(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	r := ParseDateRange([]string{"2024-03-01"}, []string{"garbage"})

	if r.Start == nil || FormatDate(*r.Start) != "2024-03-01" {
		t.Errorf("expected start 2024-03-01, got %v", r.Start)
	}
	if r.End != nil {
		t.Errorf("unparsable end bound should be absent, got %v", r.End)
	}
	if r.IsEmpty() {
		t.Error("range with a start bound is not empty")
	}
}

func TestParseSortFallsBackOnInvalid(t *testing.T) {
	got := ParseSort([]string{"INVALID_SORT"}, parseSpecies, speciesCat)
	if got != speciesCat {
		t.Errorf("expected fallback CAT, got %s", got)
	}
}

// Stale bookmarked URLs parse leniently: unknown enum literals and sort keys
// degrade instead of erroring.
func TestParseStaleURLDegrades(t *testing.T) {
	values, err := url.ParseQuery("species=DOG&species=BOGUS&sort=INVALID_SORT")
	if err != nil {
		t.Fatal(err)
	}

	set := ParseEnumSet(values["species"], parseSpecies)
	if set.Len() != 1 || !set.Has(speciesDog) {
		t.Errorf("expected {DOG}, got %v", set.Values())
	}
	sort := ParseSort(values["sort"], parseSpecies, speciesDog)
	if sort != speciesDog {
		t.Errorf("expected default sort, got %s", sort)
	}
}

func TestEncoderEmptyDescriptorFormatsEmpty(t *testing.T) {
	e := NewEncoder()
	e.Text("name", "")
	e.Strings("species", nil)
	e.Date("pickUpDateStart", nil)
	e.Sort("sort", "PICK_UP_DATE", "PICK_UP_DATE")

	if got := e.Encode(); got != "" {
		t.Errorf("empty descriptor must encode to \"\", got %q", got)
	}
}

func TestEncoderRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	original := ParseEnumSet([]string{"CAT", "DOG"}, parseSpecies)

	e := NewEncoder()
	e.Strings("species", original.Strings())
	e.Text("name", "milo")
	e.Date("start", &start)
	e.Sort("sort", "NAME", "PICK_UP_DATE")

	values, err := url.ParseQuery(e.Encode())
	if err != nil {
		t.Fatal(err)
	}

	reparsed := ParseEnumSet(values["species"], parseSpecies)
	if !reflect.DeepEqual(reparsed.Values(), original.Values()) {
		t.Errorf("species round-trip: got %v, want %v", reparsed.Values(), original.Values())
	}
	if got := ParseText(values["name"]); got != "milo" {
		t.Errorf("name round-trip: got %q", got)
	}
	r := ParseDateRange(values["start"], nil)
	if r.Start == nil || !r.Start.Equal(start) {
		t.Errorf("start round-trip: got %v", r.Start)
	}
	if got := ParseText(values["sort"]); got != "NAME" {
		t.Errorf("sort round-trip: got %q", got)
	}
}

func TestStringSetTrimsAndDropsBlanks(t *testing.T) {
	set := ParseStringSet([]string{" Refuge Nord ", "", "  "})
	if set.Len() != 1 || !set.Has("Refuge Nord") {
		t.Errorf("expected {Refuge Nord}, got %v", set.Values())
	}
}
