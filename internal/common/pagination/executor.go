package pagination

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Querier is the slice of *sql.DB the executor needs. Accepting the
// interface keeps the executor testable with sqlmock and usable inside
// transactions.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// CursorSeed carries the identity and sort-relevant values of a scanned
// row, from which the next continuation token is minted. Fields must hold
// exactly the cursor field the active sort key is configured with.
type CursorSeed struct {
	ID     string
	Fields map[string]FieldValue
}

// ScanFunc scans the current row into an item plus its cursor seed.
type ScanFunc[T any] func(rows *sql.Rows) (T, CursorSeed, error)

// QuerySpec describes one page query. Select may contain '?' placeholders
// (query-local projections such as a relevance rank) whose arguments go in
// SelectArgs; placeholder arguments are consumed in render order: select,
// filters, order by, limit.
type QuerySpec struct {
	Select     string
	SelectArgs []any
	From       string
	Filters    []Predicate
	Order      []OrderClause
	Limit      int
	SortBy     string // sort key the next token is minted under
}

// Execute runs one page fetch: it assembles the statement from the spec,
// over-fetches by one row to detect whether more pages exist, trims, and
// mints the next continuation token from the last row's cursor seed.
//
// Execute is pure given its inputs and the datastore snapshot at call
// time; it holds no state and never retries. Datastore errors propagate
// unmodified.
func Execute[T any](ctx context.Context, db Querier, codec *Codec, spec QuerySpec, scan ScanFunc[T]) (Page[T], error) {
	query, args := buildQuery(spec)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return Page[T]{}, fmt.Errorf("execute page: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]T, 0, spec.Limit+1)
	seeds := make([]CursorSeed, 0, spec.Limit+1)
	for rows.Next() {
		item, seed, err := scan(rows)
		if err != nil {
			return Page[T]{}, fmt.Errorf("execute page: scan: %w", err)
		}
		items = append(items, item)
		seeds = append(seeds, seed)
	}
	if err := rows.Err(); err != nil {
		return Page[T]{}, fmt.Errorf("execute page: %w", err)
	}

	hasMore := len(items) > spec.Limit
	if hasMore {
		items = items[:spec.Limit]
		seeds = seeds[:spec.Limit]
	}

	page := Page[T]{Items: items, HasMore: hasMore}
	if hasMore && len(seeds) > 0 {
		last := seeds[len(seeds)-1]
		next := codec.Encode(Token{ID: last.ID, Fields: last.Fields}, spec.SortBy)
		page.NextCursor = &next
	}
	return page, nil
}

// buildQuery assembles the SQL statement and its argument list, rebinding
// '?' placeholders to PostgreSQL's positional $N form.
func buildQuery(spec QuerySpec) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 8)

	sb.WriteString("SELECT ")
	sb.WriteString(spec.Select)
	args = append(args, spec.SelectArgs...)

	sb.WriteString(" FROM ")
	sb.WriteString(spec.From)

	sb.WriteString(" WHERE ")
	if len(spec.Filters) == 0 {
		sb.WriteString("TRUE")
	} else {
		for i, p := range spec.Filters {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString("(")
			sb.WriteString(p.Expr)
			sb.WriteString(")")
			args = append(args, p.Args...)
		}
	}

	sb.WriteString(" ORDER BY ")
	for i, c := range spec.Order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Expr)
		if c.Dir == Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
		args = append(args, c.Args...)
	}

	// Over-fetch by one to detect hasMore without a COUNT query.
	sb.WriteString(" LIMIT ?")
	args = append(args, spec.Limit+1)

	return rebind(sb.String()), args
}

// rebind replaces '?' placeholders with $1..$N. The assembled statements
// never contain literal question marks outside placeholder positions.
func rebind(query string) string {
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}
