package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/animals/transport"
	"refuge_backend/internal/search"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/searchindex"
)

type stubFuzzy struct {
	ids []uuid.UUID
	err error
}

func (s stubFuzzy) SearchIDs(context.Context, string, string, string, int) ([]uuid.UUID, error) {
	return s.ids, s.err
}

func (s stubFuzzy) Suggest(context.Context, string, string, string, int, []string) ([]searchindex.Hit, error) {
	return nil, s.err
}

func newTestService(fuzzy search.Fuzzy) *Service {
	return New(nil, fuzzy, audit.NopRecorder{}, nil, "", nil, nil, logger.New("development"))
}

func textParams(t *testing.T, query string) transport.SearchParams {
	t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatal(err)
	}
	return transport.ParseSearchParams(values)
}

// Index failure is not a request failure: a text search degrades to an empty
// result set.
func TestSearchFuzzyFailureDegrades(t *testing.T) {
	svc := newTestService(stubFuzzy{err: errors.New("index down")})

	result, err := svc.Search(context.Background(), textParams(t, "text=milo"), search.NewPage(0, 20))
	if err != nil {
		t.Fatalf("degraded search must not error: %v", err)
	}
	if result.TotalCount != 0 || result.PageCount != 0 || len(result.Items) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestSearchFuzzyNoCandidates(t *testing.T) {
	svc := newTestService(stubFuzzy{ids: []uuid.UUID{}})

	result, err := svc.Search(context.Background(), textParams(t, "text=nothing"), search.NewPage(0, 20))
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalCount != 0 || len(result.Items) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestSpeciesFilter(t *testing.T) {
	if got := speciesFilter(textParams(t, "").Species); got != "" {
		t.Errorf("empty species set must yield no filter, got %q", got)
	}

	got := speciesFilter(textParams(t, "species=DOG&species=CAT").Species)
	if got != "species = CAT OR species = DOG" {
		t.Errorf("filter = %q", got)
	}
}

func TestFromRequestRejectsUnknownEnums(t *testing.T) {
	_, err := fromRequest(transport.CreateAnimalRequest{
		Name:          "Milo",
		Species:       "FISH",
		Gender:        "MALE",
		Status:        "SHELTERED",
		Sterilization: "YES",
	})
	if err == nil {
		t.Error("unknown species in a request body must be rejected")
	}
}

func TestFromRequestParsesDates(t *testing.T) {
	birth := "2020-06-01"
	a, err := fromRequest(transport.CreateAnimalRequest{
		Name:          "Milo",
		Species:       "DOG",
		Gender:        "MALE",
		Status:        "SHELTERED",
		Sterilization: "YES",
		BirthDate:     &birth,
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.BirthDate == nil || a.BirthDate.Format(search.DateLayout) != birth {
		t.Errorf("birth date = %v", a.BirthDate)
	}

	bad := "01/06/2020"
	if _, err := fromRequest(transport.CreateAnimalRequest{
		Name: "Milo", Species: "DOG", Gender: "MALE", Status: "SHELTERED",
		Sterilization: "YES", BirthDate: &bad,
	}); err == nil {
		t.Error("malformed body date must be rejected")
	}
}
