package search

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"refuge_backend/platform/searchindex"
)

// CandidateLimit caps how many ranked ids one fuzzy lookup may return.
const CandidateLimit = 500

// ErrFuzzyUnavailable is returned when no ranking index is configured.
// Callers degrade to an empty result instead of failing the request.
var ErrFuzzyUnavailable = errors.New("search index not configured")

// Fuzzy resolves a free-text query against a ranking index.
type Fuzzy interface {
	// SearchIDs returns matching entity ids in relevance order.
	SearchIDs(ctx context.Context, index, query, filter string, limit int) ([]uuid.UUID, error)
	// Suggest returns raw matching documents with highlighted fields.
	Suggest(ctx context.Context, index, query, filter string, limit int, highlight []string) ([]searchindex.Hit, error)
}

// IndexFuzzy is the Fuzzy implementation backed by the external ranking index.
type IndexFuzzy struct {
	client *searchindex.Client
}

// NewIndexFuzzy wraps the index client. A nil client yields an implementation
// whose calls fail with ErrFuzzyUnavailable.
func NewIndexFuzzy(client *searchindex.Client) *IndexFuzzy {
	return &IndexFuzzy{client: client}
}

func (f *IndexFuzzy) SearchIDs(ctx context.Context, index, query, filter string, limit int) ([]uuid.UUID, error) {
	if f.client == nil {
		return nil, ErrFuzzyUnavailable
	}
	resp, err := f.client.Search(ctx, index, query, searchindex.SearchOptions{
		Filter: filter,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		id, err := uuid.Parse(hit.ID())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *IndexFuzzy) Suggest(ctx context.Context, index, query, filter string, limit int, highlight []string) ([]searchindex.Hit, error) {
	if f.client == nil {
		return nil, ErrFuzzyUnavailable
	}
	resp, err := f.client.Search(ctx, index, query, searchindex.SearchOptions{
		Filter:              filter,
		Limit:               limit,
		HighlightAttributes: highlight,
	})
	if err != nil {
		return nil, err
	}
	return resp.Hits, nil
}
