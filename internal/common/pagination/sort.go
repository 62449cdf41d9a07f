package pagination

import "strings"

// OrderClause is one (expression, direction) pair of an ORDER BY list.
// Args carries placeholder arguments when the expression is computed per
// query (e.g. a full-text rank).
type OrderClause struct {
	Expr string
	Args []any
	Dir  Direction
}

// SortField configures one named sort key: the orderable SQL expression,
// the token field that seeds the keyset predicate, the direction used when
// the request does not name one, and the ranking-boost expressions ordered
// ahead of it.
type SortField struct {
	Expression       string
	ExprArgs         []any
	CursorField      string
	DefaultDirection Direction

	// Boosts are SQL expressions prepended to the ORDER BY, always
	// descending (a boost ranks "has it" above "does not"). They are
	// recomputed per query and never participate in the continuation
	// predicate.
	Boosts []string
}

// Strategy maps sort keys to total orders and continuation predicates for
// one entity. Every order is terminated by the unique id column so rows
// with equal primary-sort values still have a deterministic, gap-free
// order.
type Strategy struct {
	Fields     map[string]SortField
	DefaultKey string
	IDColumn   string
}

// Resolve returns the effective sort key and its config, falling back to
// the default order for unknown keys.
func (s Strategy) Resolve(sortBy string) (string, SortField) {
	if f, ok := s.Fields[sortBy]; ok {
		return sortBy, f
	}
	return s.DefaultKey, s.Fields[s.DefaultKey]
}

// Direction returns the effective direction: the requested one, or the
// sort key's default when the request leaves it empty.
func (s Strategy) Direction(sortBy string, requested Direction) Direction {
	_, f := s.Resolve(sortBy)
	if requested == Asc || requested == Desc {
		return requested
	}
	if f.DefaultDirection == Asc {
		return Asc
	}
	return Desc
}

// OrderBy builds the full ORDER BY list for a sort key: boosts, the
// primary expression, then the id tiebreaker in the same direction as the
// primary sort.
func (s Strategy) OrderBy(sortBy string, dir Direction) []OrderClause {
	_, f := s.Resolve(sortBy)

	clauses := make([]OrderClause, 0, len(f.Boosts)+2)
	for _, boost := range f.Boosts {
		clauses = append(clauses, OrderClause{Expr: boost, Dir: Desc})
	}
	clauses = append(clauses,
		OrderClause{Expr: f.Expression, Args: f.ExprArgs, Dir: dir},
		OrderClause{Expr: s.IDColumn, Dir: dir},
	)
	return clauses
}

// Continuation builds the keyset predicate that resumes a query after the
// row identified by the token.
//
// With a cursor field value v the predicate is the composite form
//
//	(field > v) OR (field = v AND id > lastID)
//
// mirrored with '<' for descending. The composite form is required
// whenever the primary sort field has duplicate values; a field-only or
// id-only comparison would skip or repeat rows at page boundaries.
//
// When the token carries no value for the configured cursor field the
// predicate degrades to an id-only comparison.
func (s Strategy) Continuation(tok Token, sortBy string, dir Direction) *Predicate {
	_, f := s.Resolve(sortBy)

	op := ">"
	if dir == Desc {
		op = "<"
	}

	v, ok := tok.Fields[f.CursorField]
	if !ok || f.CursorField == "" {
		return &Predicate{
			Expr: s.IDColumn + " " + op + " ?",
			Args: []any{tok.ID},
		}
	}

	expr := f.Expression
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(expr)
	sb.WriteString(" " + op + " ? OR (")
	sb.WriteString(expr)
	sb.WriteString(" = ? AND ")
	sb.WriteString(s.IDColumn)
	sb.WriteString(" " + op + " ?))")

	// Each occurrence of the expression consumes its own copy of the
	// expression arguments; placeholders are positional.
	args := make([]any, 0, 2*len(f.ExprArgs)+3)
	args = append(args, f.ExprArgs...)
	args = append(args, v.Scalar())
	args = append(args, f.ExprArgs...)
	args = append(args, v.Scalar(), tok.ID)

	return &Predicate{Expr: sb.String(), Args: args}
}
