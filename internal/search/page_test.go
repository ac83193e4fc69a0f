package search

import (
	"net/url"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent defaults to first", "", 0},
		{"explicit index", "page=2", 2},
		{"malformed defaults to first", "page=abc", 0},
		{"negative clamps to first", "page=-3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			p := ParsePage(values, 20)
			if p.Index != tt.want {
				t.Errorf("index = %d, want %d", p.Index, tt.want)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	p := NewPage(2, 20)
	if p.Offset() != 40 {
		t.Errorf("offset = %d, want 40", p.Offset())
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, per, want int
	}{
		{41, 20, 3},
		{40, 20, 2},
		{1, 20, 1},
		{0, 20, 0},
		{20, 20, 1},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.per); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.per, got, tt.want)
		}
	}
}

func TestNewResult(t *testing.T) {
	r := NewResult([]int{1, 2, 3}, 41, 20)
	if r.TotalCount != 41 || r.PageCount != 3 || len(r.Items) != 3 {
		t.Errorf("unexpected envelope: %+v", r)
	}
}

func TestNewResultNilItems(t *testing.T) {
	r := NewResult[int](nil, 0, 20)
	if r.Items == nil {
		t.Error("items must serialize as [] not null")
	}
	if r.PageCount != 0 {
		t.Errorf("zero matches means zero pages, got %d", r.PageCount)
	}
}
