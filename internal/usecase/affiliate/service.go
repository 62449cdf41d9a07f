// Package affiliate provides affiliate link management use cases.
package affiliate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

type CreateInput struct {
	ToolID  string
	URL     string
	Network string
}

type Service struct {
	Repo repository.AffiliateLinkRepository
}

func (s *Service) Get(ctx context.Context, id string) (*entity.AffiliateLink, error) {
	if id == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	link, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get affiliate link: %w", err)
	}
	return link, nil
}

func (s *Service) ListByTool(ctx context.Context, toolID string) ([]*entity.AffiliateLink, error) {
	if toolID == "" {
		return nil, &entity.ValidationError{Field: "tool_id", Message: "is required"}
	}
	links, err := s.Repo.ListByTool(ctx, toolID)
	if err != nil {
		return nil, fmt.Errorf("list affiliate links: %w", err)
	}
	return links, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.AffiliateLink, error) {
	link := &entity.AffiliateLink{
		ID:        uuid.NewString(),
		ToolID:    in.ToolID,
		URL:       in.URL,
		Network:   in.Network,
		CreatedAt: time.Now().UTC(),
	}
	if err := link.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("create affiliate link: %w", err)
	}
	return link, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete affiliate link: %w", err)
	}
	return nil
}
