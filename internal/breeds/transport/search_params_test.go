package transport

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseSearchParamsDefaults(t *testing.T) {
	p := ParseSearchParams(url.Values{})
	if !p.IsEmpty() {
		t.Errorf("descriptor from empty query must be empty: %+v", p)
	}
	if p.Sort != SortName {
		t.Errorf("default sort = %s, want NAME", p.Sort)
	}
	if got := p.Format().Encode(); got != "" {
		t.Errorf("empty descriptor must format to \"\", got %q", got)
	}
}

func TestParseSearchParamsLeniency(t *testing.T) {
	values, err := url.ParseQuery("species=DOG&species=UNICORN&sort=WEIGHT")
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
	raw := url.Values{
		"species": {"CAT"},
		"text":    {"siam"},
		"sort":    {"ANIMAL_COUNT"},
	}

	original := ParseSearchParams(raw)
	reparsed := ParseSearchParams(original.Format())

	if !reflect.DeepEqual(reparsed, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", reparsed, original)
	}
}
