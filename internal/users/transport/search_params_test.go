package transport

import (
	"net/url"
	"testing"
)

func TestParseSearchParamsDefaults(t *testing.T) {
	p := ParseSearchParams(url.Values{})
	if !p.IsEmpty() {
		t.Errorf("descriptor from empty query must be empty: %+v", p)
	}
	if p.Sort != DefaultSort {
		t.Errorf("sort = %s, want default %s", p.Sort, DefaultSort)
	}
	if got := p.Format().Encode(); got != "" {
		t.Errorf("empty descriptor must format to \"\", got %q", got)
	}
}

func TestParseSearchParamsLeniency(t *testing.T) {
	values, _ := url.ParseQuery("group=ADMIN&group=NOT_A_GROUP&sort=BOGUS&includeArchived=maybe")
	p := ParseSearchParams(values)

	if p.Groups.Len() != 1 || !p.Groups.Has("ADMIN") {
		t.Errorf("groups = %v, want {ADMIN}", p.Groups.Values())
	}
	if p.Sort != DefaultSort {
		t.Errorf("invalid sort must fall back to default, got %s", p.Sort)
	}
	if p.IncludeArchived {
		t.Error("unknown flag literal must parse as unset")
	}
}

func TestSearchParamsRoundTrip(t *testing.T) {
	original := SearchParams{
		Groups:          mustParse(t, "group=ADMIN&group=VOLUNTEER").Groups,
		Text:            "marie",
		IncludeArchived: true,
		Sort:            SortCreatedAt,
	}

	reparsed := ParseSearchParams(original.Format())
	if reparsed.Text != original.Text ||
		reparsed.IncludeArchived != original.IncludeArchived ||
		reparsed.Sort != original.Sort ||
		reparsed.Groups.Len() != original.Groups.Len() ||
		!reparsed.Groups.Has("ADMIN") || !reparsed.Groups.Has("VOLUNTEER") {
		t.Errorf("round trip mismatch: %+v vs %+v", reparsed, original)
	}
}

func mustParse(t *testing.T, query string) SearchParams {
	t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatal(err)
	}
	return ParseSearchParams(values)
}
