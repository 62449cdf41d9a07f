package pagination

import (
	"net/http"
	"strconv"
)

// Direction is a sort direction for an ORDER BY clause.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Params represents cursor-pagination query parameters from an HTTP request.
type Params struct {
	Limit  int       // Items per page, 0 means "use default"
	Cursor string    // Opaque continuation token, empty means page one
	SortBy string    // Named sort key (entity-specific enumeration)
	Order  Direction // Requested direction, empty means "sort key default"
}

// ParseQueryParams parses cursor-pagination parameters from an HTTP request
// query string. Unlike input validation elsewhere, out-of-range or malformed
// values are corrected silently: a garbage limit falls back to the default,
// an oversized limit is clamped, and an unknown sortOrder is ignored. A bad
// cursor is passed through unchanged; the repository template treats any
// decode failure as "no cursor" and serves page one.
//
// Query parameters:
//   - limit: items per page, clamped to [1, config.MaxLimit]
//   - cursor: opaque continuation token from a previous response
//   - sortBy: named sort key
//   - sortOrder: "asc" or "desc"
func ParseQueryParams(r *http.Request, config Config) Params {
	q := r.URL.Query()

	params := Params{
		Limit:  config.DefaultLimit,
		Cursor: q.Get("cursor"),
		SortBy: q.Get("sortBy"),
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	params.Limit = ClampLimit(params.Limit, config)

	switch q.Get("sortOrder") {
	case string(Asc):
		params.Order = Asc
	case string(Desc):
		params.Order = Desc
	}

	return params
}

// ClampLimit corrects a page size into [1, config.MaxLimit].
// Zero and negative values mean "use default".
func ClampLimit(limit int, config Config) int {
	if limit <= 0 {
		return config.DefaultLimit
	}
	if limit > config.MaxLimit {
		return config.MaxLimit
	}
	return limit
}
