// Package searchindex provides a REST client for the external full-text
// fuzzy search index (Meilisearch API). The index itself is kept in sync by
// an external job; this client only reads.
package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// HighlightPreTag and HighlightPostTag wrap matched substrings in
	// highlighted fields. The suggestion fallback paths use the same tags so
	// the UI renders every source of suggestions identically.
	HighlightPreTag  = "<mark>"
	HighlightPostTag = "</mark>"
)

// Client is an HTTP client for the fuzzy search index.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config configures the search index client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new search index client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchOptions tune a single search call.
type SearchOptions struct {
	// Filter is an index filter expression scoping the candidates
	// (e.g. `species IN ["DOG","CAT"]`).
	Filter string
	// Limit caps the number of hits returned.
	Limit int
	// HighlightAttributes lists the document attributes to annotate with
	// HighlightPreTag/HighlightPostTag around matched substrings.
	HighlightAttributes []string
}

type searchPayload struct {
	Q                     string   `json:"q"`
	Filter                string   `json:"filter,omitempty"`
	Limit                 int      `json:"limit"`
	AttributesToHighlight []string `json:"attributesToHighlight,omitempty"`
	HighlightPreTag       string   `json:"highlightPreTag,omitempty"`
	HighlightPostTag      string   `json:"highlightPostTag,omitempty"`
}

// Hit is a single ranked document returned by the index.
type Hit struct {
	// Source holds the raw document attributes.
	Source map[string]any
	// Formatted holds the highlighted variants of the document attributes,
	// present only when highlighting was requested.
	Formatted map[string]any
}

// UnmarshalJSON splits the index document from its `_formatted` annotation.
func (h *Hit) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if formatted, ok := raw["_formatted"].(map[string]any); ok {
		h.Formatted = formatted
		delete(raw, "_formatted")
	}
	h.Source = raw
	return nil
}

// Field returns the string value of a document attribute, or "".
func (h Hit) Field(name string) string {
	v, _ := h.Source[name].(string)
	return v
}

// ID returns the document's `id` attribute.
func (h Hit) ID() string {
	return h.Field("id")
}

// HighlightedField returns the highlighted variant of an attribute, falling
// back to the plain value when no highlight was produced.
func (h Hit) HighlightedField(name string) string {
	if h.Formatted != nil {
		if v, ok := h.Formatted[name].(string); ok {
			return v
		}
	}
	return h.Field(name)
}

// SearchResponse is the response from a search query.
type SearchResponse struct {
	Hits               []Hit `json:"hits"`
	EstimatedTotalHits int   `json:"estimatedTotalHits"`
	Limit              int   `json:"limit"`
	Offset             int   `json:"offset"`
	ProcessingTimeMs   int   `json:"processingTimeMs"`
}

// Search runs a ranked fuzzy query against one index. An empty query returns
// the index's default ordering, which backs the "suggestions before the user
// types" behavior of autocomplete inputs.
func (c *Client) Search(ctx context.Context, index, query string, opts SearchOptions) (*SearchResponse, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	payload := searchPayload{
		Q:      query,
		Filter: opts.Filter,
		Limit:  limit,
	}
	if len(opts.HighlightAttributes) > 0 {
		payload.AttributesToHighlight = opts.HighlightAttributes
		payload.HighlightPreTag = HighlightPreTag
		payload.HighlightPostTag = HighlightPostTag
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/indexes/%s/search", c.baseURL, url.PathEscape(index))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search index returned status %d: %s", resp.StatusCode, string(body))
	}

	var out SearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return &out, nil
}

// Health checks that the index is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search index health returned status %d", resp.StatusCode)
	}
	return nil
}
