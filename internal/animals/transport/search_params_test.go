package transport

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestParseSearchParamsDefaults(t *testing.T) {
	p := ParseSearchParams(url.Values{})
	if !p.IsEmpty() {
		t.Errorf("descriptor from empty query must be empty: %+v", p)
	}
	if p.Sort != SortPickUpDate {
		t.Errorf("default sort = %s, want PICK_UP_DATE", p.Sort)
	}
	if got := p.Format().Encode(); got != "" {
		t.Errorf("empty descriptor must format to \"\", got %q", got)
	}
}

// Stale bookmarks keep working: unknown enum literals and sort keys degrade.
func TestParseSearchParamsLeniency(t *testing.T) {
	values, err := url.ParseQuery("species=DOG&species=BOGUS&sort=INVALID_SORT")
	if err != nil {
		t.Fatal(err)
	}

	p := ParseSearchParams(values)
	if p.Species.Len() != 1 || !p.Species.Has("DOG") {
		t.Errorf("species = %v, want {DOG}", p.Species.Values())
	}
	if p.Sort != DefaultSort {
		t.Errorf("invalid sort must fall back to %s, got %s", DefaultSort, p.Sort)
	}
}

func TestSearchParamsRoundTrip(t *testing.T) {
	manager := uuid.New()
	raw := url.Values{
		"species":         {"CAT", "DOG"},
		"status":          {"SHELTERED"},
		"manager":         {manager.String()},
		"pickUpLocation":  {"Refuge Nord"},
		"pickUpDateStart": {"2024-01-15"},
		"text":            {"milo"},
		"sort":            {"NAME"},
	}

	original := ParseSearchParams(raw)
	reparsed := ParseSearchParams(original.Format())

	if !reflect.DeepEqual(reparsed, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", reparsed, original)
	}
	if reparsed.Format().Encode() != original.Format().Encode() {
		t.Errorf("format not canonical: %q vs %q",
			reparsed.Format().Encode(), original.Format().Encode())
	}
}

func TestSearchParamsFormatOmitsDefaults(t *testing.T) {
	values, _ := url.ParseQuery("sort=PICK_UP_DATE&species=CAT")
	p := ParseSearchParams(values)

	formatted := p.Format()
	if formatted.Get("sort") != "" {
		t.Error("default sort must not be emitted")
	}
	if formatted.Get("species") != "CAT" {
		t.Errorf("species missing from formatted params: %v", formatted)
	}
}
