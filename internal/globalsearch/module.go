// Package globalsearch provides the omnibox suggestion endpoint fanning out
// over every fuzzy index at once.
package globalsearch

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apphttp "refuge_backend/internal/http"
	"refuge_backend/internal/search"
	"refuge_backend/platform/httpkit"
	"refuge_backend/platform/logger"
	"refuge_backend/platform/searchindex"
)

// indexes fanned out by the omnibox, keyed by the response field name.
var indexes = map[string]struct {
	index     string
	attribute string
}{
	"animals":        {"animals", "name"},
	"breeds":         {"breeds", "name"},
	"users":          {"users", "displayName"},
	"fosterFamilies": {"fosterFamilies", "displayName"},
	"partners":       {"partners", "name"},
}

type Suggestion struct {
	ID          uuid.UUID `json:"id"`
	Value       string    `json:"value"`
	Highlighted string    `json:"highlighted"`
}

type Module struct {
	fuzzy search.Fuzzy
	log   *logger.Logger
}

// NewModule creates and initializes the global search module.
func NewModule(fuzzy search.Fuzzy, log *logger.Logger) *Module {
	return &Module{fuzzy: fuzzy, log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "globalsearch"
}

// RegisterRoutes mounts the omnibox route.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/search/suggestions", m.suggest)
}

func (m *Module) suggest(c *gin.Context) {
	text := search.ParseText(c.Request.URL.Query()["text"])
	httpkit.OK(c, m.collect(c.Request.Context(), text))
}

// collect queries every index concurrently. An empty text asks each index for
// its default top entries; a failing index degrades to an empty list without
// failing the others.
func (m *Module) collect(ctx context.Context, text string) map[string][]Suggestion {
	results := make(map[string][]Suggestion, len(indexes))
	for field := range indexes {
		results[field] = []Suggestion{}
	}

	g, ctx := errgroup.WithContext(ctx)
	out := make(chan fieldHits, len(indexes))

	for field, target := range indexes {
		g.Go(func() error {
			hits, err := m.fuzzy.Suggest(ctx, target.index, text, "", search.MaxSuggestions, []string{target.attribute})
			if err != nil {
				m.log.SearchIndexDegraded(target.index, err)
				return nil
			}
			out <- fieldHits{field: field, attribute: target.attribute, hits: hits}
			return nil
		})
	}
	_ = g.Wait()
	close(out)

	for fh := range out {
		results[fh.field] = toSuggestions(fh.hits, fh.attribute)
	}
	return results
}

type fieldHits struct {
	field     string
	attribute string
	hits      []searchindex.Hit
}

func toSuggestions(hits []searchindex.Hit, attribute string) []Suggestion {
	out := make([]Suggestion, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.ID())
		if err != nil {
			continue
		}
		out = append(out, Suggestion{
			ID:          id,
			Value:       hit.Field(attribute),
			Highlighted: hit.HighlightedField(attribute),
		})
	}
	return out
}

var _ apphttp.Module = (*Module)(nil)
