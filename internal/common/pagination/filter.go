package pagination

import "strings"

// Predicate is one independent boolean condition of a WHERE clause. Expr
// uses '?' placeholders; the executor rebinds them to PostgreSQL's $N form
// once the full statement is assembled, so predicates stay position
// independent and composable. Predicates are always combined under AND.
type Predicate struct {
	Expr string
	Args []any
}

// FilterSource builds the predicates for one entity's list query. Each
// entity provides one concrete implementation; the pagination core only
// composes the results.
type FilterSource interface {
	// SearchFilter returns the free-text predicate for a search term, or
	// nil when the entity has no text search or the term is empty.
	SearchFilter(term string) *Predicate

	// EntityFilters returns the equality/inclusion predicates derived from
	// the request's other filter options. Boolean options must be modeled
	// as pointers and tested for presence, not truthiness, so an explicit
	// `false` filter is honored.
	EntityFilters() []Predicate
}

// BuildFilters composes the full predicate list for a list query: the
// search predicate (skipped for blank terms) followed by the entity
// filters.
func BuildFilters(search string, src FilterSource) []Predicate {
	var preds []Predicate
	if term := strings.TrimSpace(search); term != "" {
		if p := src.SearchFilter(term); p != nil {
			preds = append(preds, *p)
		}
	}
	preds = append(preds, src.EntityFilters()...)
	return preds
}
