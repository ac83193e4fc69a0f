package globalsearch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"refuge_backend/platform/logger"
	"refuge_backend/platform/searchindex"
)

type stubFuzzy struct {
	mu      sync.Mutex
	queries map[string]string
	failing string
}

func (s *stubFuzzy) SearchIDs(context.Context, string, string, string, int) ([]uuid.UUID, error) {
	return nil, nil
}

func (s *stubFuzzy) Suggest(_ context.Context, index, query, _ string, _ int, _ []string) ([]searchindex.Hit, error) {
	s.mu.Lock()
	if s.queries == nil {
		s.queries = map[string]string{}
	}
	s.queries[index] = query
	s.mu.Unlock()

	if index == s.failing {
		return nil, errors.New("index down")
	}
	return []searchindex.Hit{{
		Source: map[string]any{
			"id":          uuid.NewString(),
			"name":        "Milo",
			"displayName": "Milo",
		},
	}}, nil
}

// An empty prefix is still a fan-out: each index returns its default top
// entries instead of the omnibox short-circuiting to empty lists.
func TestCollectEmptyPrefixQueriesEveryIndex(t *testing.T) {
	fuzzy := &stubFuzzy{}
	m := NewModule(fuzzy, logger.New("development"))

	results := m.collect(context.Background(), "")

	for field := range indexes {
		if len(results[field]) != 1 {
			t.Errorf("%s: empty prefix must list default entries, got %d", field, len(results[field]))
		}
	}
	for index, query := range fuzzy.queries {
		if query != "" {
			t.Errorf("%s: expected empty query passed through, got %q", index, query)
		}
	}
	if len(fuzzy.queries) != len(indexes) {
		t.Errorf("queried %d indexes, want %d", len(fuzzy.queries), len(indexes))
	}
}

func TestCollectFailingIndexDegradesAlone(t *testing.T) {
	fuzzy := &stubFuzzy{failing: "breeds"}
	m := NewModule(fuzzy, logger.New("development"))

	results := m.collect(context.Background(), "milo")

	if len(results["breeds"]) != 0 {
		t.Errorf("failing index must yield an empty list, got %v", results["breeds"])
	}
	for _, field := range []string{"animals", "users", "fosterFamilies", "partners"} {
		if len(results[field]) != 1 {
			t.Errorf("%s: healthy index must still answer, got %d hits", field, len(results[field]))
		}
	}
}

func TestCollectSkipsUnparseableHitIDs(t *testing.T) {
	fuzzy := &badIDFuzzy{}
	m := NewModule(fuzzy, logger.New("development"))

	results := m.collect(context.Background(), "milo")

	for field := range indexes {
		if len(results[field]) != 0 {
			t.Errorf("%s: hit without a uuid id must be dropped, got %v", field, results[field])
		}
	}
}

type badIDFuzzy struct{}

func (badIDFuzzy) SearchIDs(context.Context, string, string, string, int) ([]uuid.UUID, error) {
	return nil, nil
}

func (badIDFuzzy) Suggest(context.Context, string, string, string, int, []string) ([]searchindex.Hit, error) {
	return []searchindex.Hit{{Source: map[string]any{"id": "not-a-uuid", "name": "Milo"}}}, nil
}
