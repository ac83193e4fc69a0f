package transport

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseApplicationSearchParamsDropsUnknownLiterals(t *testing.T) {
	values := url.Values{
		"status":    {"SUBMITTED", "NEGOTIATING"},
		"target":    {"DOGS", "HAMSTERS"},
		"field":     {"FOOD"},
		"standSize": {"not-a-uuid"},
		"unknown":   {"ignored"},
	}

	params := ParseApplicationSearchParams(values)

	if got := params.Statuses.Strings(); !reflect.DeepEqual(got, []string{"SUBMITTED"}) {
		t.Errorf("statuses = %v", got)
	}
	if got := params.Targets.Strings(); !reflect.DeepEqual(got, []string{"DOGS"}) {
		t.Errorf("targets = %v", got)
	}
	if !params.StandSizes.IsEmpty() {
		t.Error("malformed stand size id must be dropped")
	}
}

func TestApplicationSearchParamsRoundTrip(t *testing.T) {
	values := url.Values{
		"status": {"VALIDATED"},
		"target": {"CATS", "DOGS"},
		"field":  {"CARE", "FOOD"},
		"text":   {" royal "},
	}

	first := ParseApplicationSearchParams(values)
	second := ParseApplicationSearchParams(first.Format())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip mismatch: %+v vs %+v", first, second)
	}
}

func TestPartnerSearchParamsCanonicalEmpty(t *testing.T) {
	params := ParsePartnerSearchParams(url.Values{})
	if !params.IsEmpty() {
		t.Fatal("expected empty descriptor")
	}
	if encoded := params.Format().Encode(); encoded != "" {
		t.Fatalf("canonical form = %q, want empty", encoded)
	}
}

func TestPartnerSearchParamsVisibleFlag(t *testing.T) {
	params := ParsePartnerSearchParams(url.Values{"visible": {"true"}})
	if !params.VisibleOnly {
		t.Fatal("visible flag not parsed")
	}
	if got := params.Format().Get("visible"); got != "true" {
		t.Fatalf("formatted visible = %q", got)
	}
}
