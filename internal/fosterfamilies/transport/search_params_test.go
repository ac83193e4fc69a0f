package transport

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseSearchParamsDropsUnknownLiterals(t *testing.T) {
	values := url.Values{
		"availability": {"AVAILABLE", "SOMETIMES"},
		"species":      {"CAT", "UNICORN"},
		"zip":          {" 69 "},
	}

	params := ParseSearchParams(values)

	if got := params.Availabilities.Strings(); !reflect.DeepEqual(got, []string{"AVAILABLE"}) {
		t.Fatalf("availabilities = %v", got)
	}
	if got := params.Species.Strings(); !reflect.DeepEqual(got, []string{"CAT"}) {
		t.Fatalf("species = %v", got)
	}
	if params.ZipPrefix != "69" {
		t.Fatalf("zip prefix = %q", params.ZipPrefix)
	}
}

func TestSearchParamsRoundTrip(t *testing.T) {
	values := url.Values{
		"availability": {"PAUSED", "AVAILABLE"},
		"species":      {"DOG"},
		"zip":          {"75"},
		"text":         {"dupont"},
	}

	first := ParseSearchParams(values)
	second := ParseSearchParams(first.Format())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip mismatch: %+v vs %+v", first, second)
	}
}

func TestEmptyDescriptorFormatsToNothing(t *testing.T) {
	params := ParseSearchParams(url.Values{})
	if !params.IsEmpty() {
		t.Fatal("expected empty descriptor")
	}
	if encoded := params.Format().Encode(); encoded != "" {
		t.Fatalf("canonical form = %q, want empty", encoded)
	}
}
