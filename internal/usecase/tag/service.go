// Package tag provides tag management use cases.
package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

type CreateInput struct {
	Name string
	Slug string
}

type Service struct {
	Repo repository.TagRepository
}

func (s *Service) List(ctx context.Context, params pagination.Params) (pagination.Page[*entity.Tag], error) {
	page, err := s.Repo.ListPaginated(ctx, params)
	if err != nil {
		return pagination.Page[*entity.Tag]{}, fmt.Errorf("list tags: %w", err)
	}
	return page, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Tag, error) {
	if id == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	tag, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return tag, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Tag, error) {
	tag := &entity.Tag{
		ID:   uuid.NewString(),
		Name: in.Name,
		Slug: in.Slug,
	}
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func (s *Service) AttachToTool(ctx context.Context, toolID, tagID string) error {
	if toolID == "" || tagID == "" {
		return &entity.ValidationError{Field: "tool_id", Message: "tool_id and tag_id are required"}
	}
	if err := s.Repo.AttachToTool(ctx, toolID, tagID); err != nil {
		return fmt.Errorf("attach tag: %w", err)
	}
	return nil
}

func (s *Service) DetachFromTool(ctx context.Context, toolID, tagID string) error {
	if toolID == "" || tagID == "" {
		return &entity.ValidationError{Field: "tool_id", Message: "tool_id and tag_id are required"}
	}
	if err := s.Repo.DetachFromTool(ctx, toolID, tagID); err != nil {
		return fmt.Errorf("detach tag: %w", err)
	}
	return nil
}
