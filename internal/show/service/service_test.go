package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"refuge_backend/internal/activities/audit"
	"refuge_backend/internal/search"
	"refuge_backend/internal/show/transport"
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
	return New(nil, fuzzy, audit.NopRecorder{}, nil, nil, nil, logger.New("development"))
}

func TestSearchPartnersFuzzyFailureDegrades(t *testing.T) {
	svc := newTestService(stubFuzzy{err: errors.New("index down")})

	params := transport.ParsePartnerSearchParams(url.Values{"text": {"croquettes"}})
	result, err := svc.SearchPartners(context.Background(), params, search.NewPage(0, transport.PartnerCountPerPage))
	if err != nil {
		t.Fatalf("degraded search must not error: %v", err)
	}
	if result.TotalCount != 0 || len(result.Items) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestSearchApplicationsFuzzyNoCandidates(t *testing.T) {
	svc := newTestService(stubFuzzy{ids: []uuid.UUID{}})

	params := transport.ParseApplicationSearchParams(url.Values{"text": {"nothing"}})
	result, err := svc.SearchApplications(context.Background(), params, search.NewPage(0, transport.ApplicationCountPerPage))
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalCount != 0 || len(result.Items) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
