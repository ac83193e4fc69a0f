package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Predicate accumulates WHERE clauses joined by AND, binding arguments to
// positional placeholders. Repositories compose one predicate per descriptor;
// an untouched predicate renders to no WHERE clause at all.
type Predicate struct {
	clauses []string
	args    []any
}

// Bind registers an argument and returns its placeholder.
func (p *Predicate) Bind(arg any) string {
	p.args = append(p.args, arg)
	return fmt.Sprintf("$%d", len(p.args))
}

// Where appends a raw clause. The clause must reference placeholders obtained
// from Bind on the same predicate.
func (p *Predicate) Where(clause string) {
	p.clauses = append(p.clauses, clause)
}

// WhereIDs constrains a uuid column to the set members. Empty sets add no
// clause.
func (p *Predicate) WhereIDs(column string, set IDSet) {
	if set.IsEmpty() {
		return
	}
	p.Where(fmt.Sprintf("%s = ANY(%s)", column, p.Bind(set.Values())))
}

// WhereStrings constrains a text column to the set members. Empty sets add no
// clause.
func (p *Predicate) WhereStrings(column string, set StringSet) {
	if set.IsEmpty() {
		return
	}
	p.Where(fmt.Sprintf("%s = ANY(%s)", column, p.Bind(set.Values())))
}

// WhereOverlap keeps rows whose text[] column shares at least one element
// with values. Empty input adds no clause.
func (p *Predicate) WhereOverlap(column string, values []string) {
	if len(values) == 0 {
		return
	}
	p.Where(fmt.Sprintf("%s && %s", column, p.Bind(values)))
}

// WhereDateRange constrains a date or timestamp column to the interval. Both
// bounds are inclusive; the end bound covers the whole named day.
func (p *Predicate) WhereDateRange(column string, r DateRange) {
	if r.Start != nil {
		p.Where(fmt.Sprintf("%s >= %s", column, p.Bind(*r.Start)))
	}
	if r.End != nil {
		p.Where(fmt.Sprintf("%s < %s", column, p.Bind(r.End.AddDate(0, 0, 1))))
	}
}

// WhereContains keeps rows whose text column contains text, case-insensitive.
// Blank text adds no clause.
func (p *Predicate) WhereContains(column, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.Where(fmt.Sprintf("%s ILIKE %s", column, p.Bind("%"+escapeLike(text)+"%")))
}

// WherePrefix keeps rows whose text column starts with text, case-insensitive.
// Blank text adds no clause.
func (p *Predicate) WherePrefix(column, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.Where(fmt.Sprintf("%s ILIKE %s", column, p.Bind(escapeLike(text)+"%")))
}

// OrderByRank returns an ORDER BY expression preserving the position of each
// row's id in the ranked list.
func (p *Predicate) OrderByRank(column string, ids []uuid.UUID) string {
	return fmt.Sprintf("array_position(%s, %s)", p.Bind(ids), column)
}

// Empty reports whether no clause was added.
func (p *Predicate) Empty() bool { return len(p.clauses) == 0 }

// SQL renders the WHERE clause, or "" when the predicate is empty.
func (p *Predicate) SQL() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(p.clauses, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (p *Predicate) Args() []any { return p.args }

// WhereEnum constrains a text column to the enum set members. Empty sets add
// no clause.
func WhereEnum[T ~string](p *Predicate, column string, set EnumSet[T]) {
	if set.IsEmpty() {
		return
	}
	p.Where(fmt.Sprintf("%s = ANY(%s)", column, p.Bind(set.Strings())))
}

// WhereEnumOverlap keeps rows whose text[] column shares at least one element
// with the enum set. Empty sets add no clause.
func WhereEnumOverlap[T ~string](p *Predicate, column string, set EnumSet[T]) {
	p.WhereOverlap(column, set.Strings())
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
