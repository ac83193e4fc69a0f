package transport

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestParseSearchParamsDropsBadValues(t *testing.T) {
	values, err := url.ParseQuery("actor=not-a-uuid&action=UPDATE&action=RENAME&resourceType=ANIMAL")
	if err != nil {
		t.Fatal(err)
	}

	p := ParseSearchParams(values)
	if !p.Actors.IsEmpty() {
		t.Errorf("malformed actor id must be dropped, got %v", p.Actors.Strings())
	}
	if p.Actions.Len() != 1 || !p.Actions.Has("UPDATE") {
		t.Errorf("actions = %v, want {UPDATE}", p.Actions.Values())
	}
	if p.ResourceTypes.Len() != 1 {
		t.Errorf("resource types = %v, want {ANIMAL}", p.ResourceTypes.Values())
	}
}

func TestSearchParamsRoundTrip(t *testing.T) {
	actor := uuid.New()
	raw := url.Values{
		"actor":     {actor.String()},
		"action":    {"DELETE"},
		"dateStart": {"2025-02-01"},
		"dateEnd":   {"2025-02-28"},
	}

	original := ParseSearchParams(raw)
	reparsed := ParseSearchParams(original.Format())

	if !reflect.DeepEqual(reparsed, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", reparsed, original)
	}
}

func TestEmptyDescriptorFormatsToNothing(t *testing.T) {
	p := ParseSearchParams(url.Values{})
	if !p.IsEmpty() {
		t.Errorf("descriptor from empty query must be empty: %+v", p)
	}
	if got := p.Format().Encode(); got != "" {
		t.Errorf("empty descriptor must format to \"\", got %q", got)
	}
}
