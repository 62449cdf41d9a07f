// Package sponsorship provides sponsorship lifecycle use cases: paid
// placements are created with a bounded active window and swept into the
// inactive state once the window passes.
package sponsorship

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

type CreateInput struct {
	ToolID         string
	PriorityWeight int
	StartDate      time.Time
	EndDate        time.Time
}

// UpdateInput carries the updatable sponsorship fields. Nil pointers are
// left unchanged.
type UpdateInput struct {
	ID             string
	PriorityWeight *int
	IsActive       *bool
	StartDate      *time.Time
	EndDate        *time.Time
}

type Service struct {
	Repo   repository.SponsorshipRepository
	Logger *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Sponsorship, error) {
	if id == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	sp, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sponsorship: %w", err)
	}
	return sp, nil
}

func (s *Service) ListByTool(ctx context.Context, toolID string) ([]*entity.Sponsorship, error) {
	if toolID == "" {
		return nil, &entity.ValidationError{Field: "tool_id", Message: "is required"}
	}
	sponsorships, err := s.Repo.ListByTool(ctx, toolID)
	if err != nil {
		return nil, fmt.Errorf("list sponsorships: %w", err)
	}
	return sponsorships, nil
}

// Create opens a new sponsorship window. New sponsorships start active;
// the sweeper deactivates them when the window closes.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Sponsorship, error) {
	sp := &entity.Sponsorship{
		ID:             uuid.NewString(),
		ToolID:         in.ToolID,
		PriorityWeight: in.PriorityWeight,
		IsActive:       true,
		StartDate:      in.StartDate.UTC(),
		EndDate:        in.EndDate.UTC(),
		CreatedAt:      time.Now().UTC(),
	}
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("create sponsorship: %w", err)
	}
	return sp, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Sponsorship, error) {
	if in.ID == "" {
		return nil, &entity.ValidationError{Field: "id", Message: "is required"}
	}
	sp, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get sponsorship: %w", err)
	}

	if in.PriorityWeight != nil {
		sp.PriorityWeight = *in.PriorityWeight
	}
	if in.IsActive != nil {
		sp.IsActive = *in.IsActive
	}
	if in.StartDate != nil {
		sp.StartDate = in.StartDate.UTC()
	}
	if in.EndDate != nil {
		sp.EndDate = in.EndDate.UTC()
	}
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, sp); err != nil {
		return nil, fmt.Errorf("update sponsorship: %w", err)
	}
	return sp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sponsorship: %w", err)
	}
	return nil
}

// SweepExpired deactivates every sponsorship whose window has closed.
// Rankings read the window directly, so a missed sweep only leaves stale
// is_active flags, never stale boosts.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.Repo.DeactivateExpired(ctx, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("sweep expired sponsorships: %w", err)
	}
	if n > 0 {
		s.logger().Info("expired sponsorships deactivated", slog.Int64("count", n))
	}
	return n, nil
}
