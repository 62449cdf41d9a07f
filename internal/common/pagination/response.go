package pagination

// Page is a generic cursor-paginated result. NextCursor is nil on the last
// page; HasMore is true iff the datastore returned more rows than the
// requested limit.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor"`
	HasMore    bool    `json:"hasMore"`
}
