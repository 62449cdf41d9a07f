// Package category provides category management use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

type CreateInput struct {
	Name        string
	Slug        string
	Description string
}

// UpdateInput carries the updatable category fields. Empty strings are
// left unchanged.
type UpdateInput struct {
	ID          string
	Name        string
	Slug        string
	Description string
}

type Service struct {
	Repo repository.CategoryRepository
}

func (s *Service) List(ctx context.Context, params pagination.Params) (pagination.Page[*entity.Category], error) {
	page, err := s.Repo.ListPaginated(ctx, params)
	if err != nil {
		return pagination.Page[*entity.Category]{}, fmt.Errorf("list categories: %w", err)
	}
	return page, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Category, error) {
	if id == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	if slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}
	c, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	c := &entity.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Category, error) {
	if in.ID == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	c, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Slug != "" {
		c.Slug = in.Slug
	}
	if in.Description != "" {
		c.Description = in.Description
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
