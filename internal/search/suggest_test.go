package search

import (
	"testing"
)

func TestSuggestFromValuesContainment(t *testing.T) {
	values := []string{"Refuge Nord", "Refuge Sud", "Clinique Centrale"}

	got := SuggestFromValues(values, "refuge", MaxSuggestions)
	if len(got) != 3 {
		t.Fatalf("expected 2 matches plus synthetic entry, got %d", len(got))
	}
	if got[0].Value != "Refuge Nord" || got[1].Value != "Refuge Sud" {
		t.Errorf("unexpected matches: %+v", got)
	}
	if got[0].Highlighted != "<mark>Refuge</mark> Nord" {
		t.Errorf("highlight = %q", got[0].Highlighted)
	}
	if !got[2].IsNew || got[2].Value != "refuge" {
		t.Errorf("expected synthetic entry carrying literal text, got %+v", got[2])
	}
}

func TestSuggestFromValuesExactMatchSuppressesSynthetic(t *testing.T) {
	got := SuggestFromValues([]string{"Refuge Nord"}, "refuge nord", MaxSuggestions)

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].IsNew {
		t.Error("exact match must not produce a synthetic entry")
	}
}

func TestSuggestFromValuesUnknownTextAppendsSynthetic(t *testing.T) {
	got := SuggestFromValues([]string{"Refuge Nord"}, "Nouveau Lieu", MaxSuggestions)

	if len(got) != 1 {
		t.Fatalf("expected only the synthetic entry, got %+v", got)
	}
	s := got[0]
	if !s.IsNew || s.Value != "Nouveau Lieu" {
		t.Errorf("synthetic entry = %+v", s)
	}
	if s.Highlighted != "<mark>Nouveau Lieu</mark>" {
		t.Errorf("synthetic highlight = %q", s.Highlighted)
	}
}

func TestSuggestFromValuesCap(t *testing.T) {
	values := []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8"}

	got := SuggestFromValues(values, "a", MaxSuggestions)
	if len(got) != MaxSuggestions {
		t.Fatalf("expected cap at %d, got %d", MaxSuggestions, len(got))
	}
	if !got[MaxSuggestions-1].IsNew {
		t.Error("synthetic entry must survive the cap")
	}
}

func TestSuggestFromValuesEmptyTextListsAll(t *testing.T) {
	got := SuggestFromValues([]string{"Refuge Nord", "Refuge Sud"}, "", MaxSuggestions)

	if len(got) != 2 {
		t.Fatalf("expected all values, got %d", len(got))
	}
	for _, s := range got {
		if s.IsNew {
			t.Errorf("no synthetic entry for empty text: %+v", s)
		}
		if s.Highlighted != s.Value {
			t.Errorf("empty text must not highlight: %+v", s)
		}
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		value, text, want string
	}{
		{"Refuge Nord", "nord", "Refuge <mark>Nord</mark>"},
		{"Refuge Nord", "", "Refuge Nord"},
		{"Refuge Nord", "zzz", "Refuge Nord"},
		{"FÉLIX", "félix", "<mark>FÉLIX</mark>"},
		// U+0130 lowercases to two runes; the span must stay anchored to
		// the original bytes.
		{"İstanbul", "stan", "İ<mark>stan</mark>bul"},
	}
	for _, tt := range tests {
		if got := Highlight(tt.value, tt.text); got != tt.want {
			t.Errorf("Highlight(%q, %q) = %q, want %q", tt.value, tt.text, got, tt.want)
		}
	}
}
