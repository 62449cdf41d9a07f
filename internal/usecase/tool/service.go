// Package tool provides tool catalogue management use cases.
package tool

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

// Metadata is the page metadata scraped from a tool's website, used to
// pre-fill descriptive fields on submission.
type Metadata struct {
	Title       string
	Description string
}

// MetadataFetcher retrieves page metadata for a submitted tool URL.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (Metadata, error)
}

// CreateInput represents the input parameters for submitting a new tool.
type CreateInput struct {
	CategoryID  string
	Name        string
	Slug        string
	Tagline     string
	Description string
	WebsiteURL  string
	Featured    bool
	Status      string
	TagIDs      []string
}

// UpdateInput represents the input parameters for updating a tool. Empty
// string fields and nil pointer fields are left unchanged.
type UpdateInput struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Tagline     string
	Description string
	WebsiteURL  string
	Featured    *bool
	Status      string
}

// ListInput bundles the listing filters with the pagination request.
type ListInput struct {
	Filters repository.ToolListFilters
	Params  pagination.Params
}

// Service provides tool management use cases. It owns input validation,
// slug uniqueness, and best-effort metadata enrichment; persistence and
// ranking live in the repository.
type Service struct {
	Repo    repository.ToolRepository
	Tags    repository.TagRepository
	Fetcher MetadataFetcher
	Logger  *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// List retrieves one page of tools under the given filters and sort key.
func (s *Service) List(ctx context.Context, in ListInput) (pagination.Page[repository.ToolWithMeta], error) {
	page, err := s.Repo.ListPaginated(ctx, in.Filters, in.Params)
	if err != nil {
		return pagination.Page[repository.ToolWithMeta]{}, fmt.Errorf("list tools: %w", err)
	}
	return page, nil
}

// Get retrieves a tool by id.
func (s *Service) Get(ctx context.Context, id string) (*entity.Tool, error) {
	if id == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	tool, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return tool, nil
}

// GetBySlug retrieves a tool by its URL slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Tool, error) {
	if slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}
	tool, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get tool by slug: %w", err)
	}
	return tool, nil
}

// Create submits a new tool. The slug must be free; when the tagline or
// description is blank and a fetcher is configured, page metadata from the
// tool's website fills the gap. Enrichment is best effort and never fails
// the submission.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Tool, error) {
	now := time.Now().UTC()
	t := &entity.Tool{
		ID:          uuid.NewString(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Tagline:     in.Tagline,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
		Featured:    in.Featured,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsBySlug(ctx, t.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, entity.ErrSlugTaken
	}

	s.enrich(ctx, t)

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}

	for _, tagID := range in.TagIDs {
		if err := s.Tags.AttachToTool(ctx, t.ID, tagID); err != nil {
			return nil, fmt.Errorf("attach tag: %w", err)
		}
	}
	return t, nil
}

// enrich fills blank descriptive fields from the website's page metadata.
func (s *Service) enrich(ctx context.Context, t *entity.Tool) {
	if s.Fetcher == nil || (t.Tagline != "" && t.Description != "") {
		return
	}
	meta, err := s.Fetcher.Fetch(ctx, t.WebsiteURL)
	if err != nil {
		s.logger().Warn("metadata enrichment failed",
			slog.String("url", t.WebsiteURL),
			slog.String("error", err.Error()))
		return
	}
	if t.Tagline == "" {
		t.Tagline = meta.Title
	}
	if t.Description == "" {
		t.Description = meta.Description
	}
}

// Update modifies an existing tool. A changed slug must be free.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Tool, error) {
	if in.ID == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}

	t, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get tool: %w", err)
	}

	if in.Slug != "" && in.Slug != t.Slug {
		taken, err := s.Repo.ExistsBySlug(ctx, in.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return nil, entity.ErrSlugTaken
		}
		t.Slug = in.Slug
	}
	if in.CategoryID != "" {
		t.CategoryID = in.CategoryID
	}
	if in.Name != "" {
		t.Name = in.Name
	}
	if in.Tagline != "" {
		t.Tagline = in.Tagline
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	if in.WebsiteURL != "" {
		t.WebsiteURL = in.WebsiteURL
	}
	if in.Featured != nil {
		t.Featured = *in.Featured
	}
	if in.Status != "" {
		t.Status = in.Status
	}
	t.UpdatedAt = time.Now().UTC()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update tool: %w", err)
	}
	return t, nil
}

// Delete removes a tool by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}
