package search

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPredicateEmpty(t *testing.T) {
	var p Predicate
	p.WhereIDs("manager_id", IDSet{})
	WhereEnum(&p, "species", EnumSet[species]{})
	p.WhereContains("name", "  ")
	p.WhereDateRange("pick_up_date", DateRange{})

	if !p.Empty() {
		t.Error("no constraints should leave the predicate empty")
	}
	if p.SQL() != "" {
		t.Errorf("empty predicate must render no WHERE clause, got %q", p.SQL())
	}
	if len(p.Args()) != 0 {
		t.Errorf("empty predicate must bind no args, got %v", p.Args())
	}
}

func TestPredicateConjunction(t *testing.T) {
	id := uuid.New()
	var p Predicate
	p.WhereIDs("manager_id", NewIDSet(id))
	WhereEnum(&p, "species", NewEnumSet(speciesDog))

	want := "WHERE manager_id = ANY($1) AND species = ANY($2)"
	if p.SQL() != want {
		t.Errorf("SQL() = %q, want %q", p.SQL(), want)
	}
	if len(p.Args()) != 2 {
		t.Fatalf("expected 2 args, got %d", len(p.Args()))
	}
}

func TestPredicateOverlap(t *testing.T) {
	var p Predicate
	p.WhereOverlap("species_to_host", []string{"CAT", "DOG"})

	if p.SQL() != "WHERE species_to_host && $1" {
		t.Errorf("SQL() = %q", p.SQL())
	}
}

func TestPredicateDateRangeEndCoversWholeDay(t *testing.T) {
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	var p Predicate
	p.WhereDateRange("pick_up_date", DateRange{End: &end})

	if p.SQL() != "WHERE pick_up_date < $1" {
		t.Errorf("SQL() = %q", p.SQL())
	}
	bound, ok := p.Args()[0].(time.Time)
	if !ok || !bound.Equal(end.AddDate(0, 0, 1)) {
		t.Errorf("end bound = %v, want start of next day", p.Args()[0])
	}
}

func TestPredicateContainsEscapesLikeMetacharacters(t *testing.T) {
	var p Predicate
	p.WhereContains("name", "50%_off")

	if got := p.Args()[0].(string); got != `%50\%\_off%` {
		t.Errorf("bound pattern = %q", got)
	}
}

func TestOrderByRank(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	var p Predicate
	p.WhereIDs("id", NewIDSet(ids...))
	order := p.OrderByRank("id", ids)

	if order != "array_position($2, id)" {
		t.Errorf("order expression = %q", order)
	}
	if len(p.Args()) != 2 {
		t.Errorf("expected ranked list bound as arg, got %v", p.Args())
	}
}
