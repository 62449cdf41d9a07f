package repository

import (
	"context"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
)

type CategoryRepository interface {
	// ListPaginated retrieves one page of categories ordered by name.
	ListPaginated(ctx context.Context, params pagination.Params) (pagination.Page[*entity.Category], error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

type TagRepository interface {
	// ListPaginated retrieves one page of tags ordered by name.
	ListPaginated(ctx context.Context, params pagination.Params) (pagination.Page[*entity.Tag], error)
	Get(ctx context.Context, id string) (*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id string) error
	// AttachToTool / DetachFromTool maintain the tool_tags join table.
	AttachToTool(ctx context.Context, toolID, tagID string) error
	DetachFromTool(ctx context.Context, toolID, tagID string) error
}
