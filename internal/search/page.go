package search

import (
	"net/url"
	"strconv"
)

// PageParam is the query string key carrying the zero-based page index.
const PageParam = "page"

// Page addresses one window of a result set.
type Page struct {
	Index        int
	CountPerPage int
}

// NewPage builds a page, clamping a negative index to the first page.
func NewPage(index, countPerPage int) Page {
	if index < 0 {
		index = 0
	}
	if countPerPage < 1 {
		countPerPage = 1
	}
	return Page{Index: index, CountPerPage: countPerPage}
}

// ParsePage reads the page index from the query string. Missing, malformed or
// negative values collapse to the first page.
func ParsePage(values url.Values, countPerPage int) Page {
	index := 0
	if raw := ParseText(values[PageParam]); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			index = n
		}
	}
	return NewPage(index, countPerPage)
}

// Offset returns the row offset of the page.
func (p Page) Offset() int { return p.Index * p.CountPerPage }

// Result is the paginated result envelope.
type Result[T any] struct {
	TotalCount int `json:"totalCount"`
	PageCount  int `json:"pageCount"`
	Items      []T `json:"items"`
}

// NewResult composes the envelope from one fetched page and the total match
// count.
func NewResult[T any](items []T, totalCount, countPerPage int) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		TotalCount: totalCount,
		PageCount:  PageCount(totalCount, countPerPage),
		Items:      items,
	}
}

// EmptyResult is the envelope for zero matches.
func EmptyResult[T any]() Result[T] {
	return Result[T]{Items: []T{}}
}

// PageCount returns the number of pages needed for totalCount rows. Zero rows
// means zero pages.
func PageCount(totalCount, countPerPage int) int {
	if totalCount <= 0 || countPerPage < 1 {
		return 0
	}
	return (totalCount + countPerPage - 1) / countPerPage
}
