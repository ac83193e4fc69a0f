package search

import (
	"strings"
	"unicode/utf8"

	"refuge_backend/platform/searchindex"
)

// MaxSuggestions caps every suggestion list.
const MaxSuggestions = 6

// Suggestion is one autocomplete entry. IsNew marks the synthetic entry that
// offers to create a value that does not exist yet.
type Suggestion struct {
	Value       string `json:"value"`
	Highlighted string `json:"highlighted"`
	IsNew       bool   `json:"isNew,omitempty"`
}

// SuggestFromValues filters stored distinct values by case-insensitive
// containment of text and highlights the match. When the typed text equals no
// stored value, one synthetic entry carrying the literal text is appended so
// the caller can offer to create it. The list never exceeds max entries.
func SuggestFromValues(values []string, text string, max int) []Suggestion {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	matches := make([]Suggestion, 0, max)
	exact := false
	for _, v := range values {
		lv := strings.ToLower(v)
		if lv == lower {
			exact = true
		}
		if text != "" && !strings.Contains(lv, lower) {
			continue
		}
		matches = append(matches, Suggestion{
			Value:       v,
			Highlighted: Highlight(v, text),
		})
	}

	if text != "" && !exact {
		if len(matches) >= max {
			matches = matches[:max-1]
		}
		return append(matches, Suggestion{
			Value:       text,
			Highlighted: searchindex.HighlightPreTag + text + searchindex.HighlightPostTag,
			IsNew:       true,
		})
	}
	if len(matches) > max {
		matches = matches[:max]
	}
	return matches
}

// Highlight wraps the first case-insensitive occurrence of text in value with
// the index highlight tags. Blank text returns value unchanged. The match is
// located on the original string so case folds that change byte length never
// shift the span onto a rune boundary.
func Highlight(value, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return value
	}

	offsets := make([]int, 0, len(value)+1)
	for i := range value {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(value))

	n := utf8.RuneCountInString(text)
	for i := 0; i+n < len(offsets); i++ {
		start, end := offsets[i], offsets[i+n]
		if strings.EqualFold(value[start:end], text) {
			return value[:start] +
				searchindex.HighlightPreTag + value[start:end] + searchindex.HighlightPostTag +
				value[end:]
		}
	}
	return value
}
