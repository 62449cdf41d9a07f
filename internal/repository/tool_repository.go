package repository

import (
	"context"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
)

// ToolWithMeta represents a tool along with query-time metadata the public
// listing shows: the category name and whether the tool currently holds an
// active sponsorship. Both are derived per query and never persisted on
// the tool.
type ToolWithMeta struct {
	Tool         *entity.Tool
	CategoryName string
	Sponsored    bool
}

// ToolListFilters contains optional filters for the tool listing. Pointer
// fields distinguish "absent" from zero values: Featured=false must filter
// for non-featured tools, not be dropped.
type ToolListFilters struct {
	CategoryIDs []string // Optional: restrict to these categories
	TagSlug     *string  // Optional: restrict to tools carrying this tag
	Featured    *bool    // Optional: featured flag, explicit false honored
	Status      *string  // Optional: lifecycle status
	Search      string   // Optional: free-text search term
}

type ToolRepository interface {
	// ListPaginated retrieves one page of tools under the request's
	// filters and sort key. Sort keys: name, newest, popular, relevance
	// (relevance with a blank search term falls back to newest).
	ListPaginated(ctx context.Context, filters ToolListFilters, params pagination.Params) (pagination.Page[ToolWithMeta], error)
	Get(ctx context.Context, id string) (*entity.Tool, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tool, error)
	Create(ctx context.Context, tool *entity.Tool) error
	Update(ctx context.Context, tool *entity.Tool) error
	Delete(ctx context.Context, id string) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
