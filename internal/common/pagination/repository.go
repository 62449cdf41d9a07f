package pagination

import "context"

// ListSpec is the per-entity input to the repository template: projection
// and FROM clause, the entity's sort strategy and pre-built filters, the
// raw request params, and the pagination config used to clamp the limit.
type ListSpec struct {
	Select     string
	SelectArgs []any
	From       string
	Strategy   Strategy
	Filters    []Predicate
	Params     Params
	Config     Config
}

// List is the shared entry point for every paginated list query. It clamps
// the limit, resolves the sort key and direction, decodes the incoming
// cursor — falling back to page one on any invalidity, never surfacing a
// cursor error to the caller — appends the continuation predicate, and
// delegates to the page executor.
func List[T any](ctx context.Context, db Querier, codec *Codec, spec ListSpec, scan ScanFunc[T]) (Page[T], error) {
	key, _ := spec.Strategy.Resolve(spec.Params.SortBy)
	dir := spec.Strategy.Direction(key, spec.Params.Order)

	filters := spec.Filters
	if tok, ok := codec.Decode(spec.Params.Cursor, key); ok {
		if p := spec.Strategy.Continuation(tok, key, dir); p != nil {
			filters = append(filters, *p)
		}
	}

	return Execute(ctx, db, codec, QuerySpec{
		Select:     spec.Select,
		SelectArgs: spec.SelectArgs,
		From:       spec.From,
		Filters:    filters,
		Order:      spec.Strategy.OrderBy(key, dir),
		Limit:      ClampLimit(spec.Params.Limit, spec.Config),
		SortBy:     key,
	}, scan)
}
