package repository

import (
	"context"
	"time"

	"tooldex/internal/domain/entity"
)

type SponsorshipRepository interface {
	Get(ctx context.Context, id string) (*entity.Sponsorship, error)
	ListByTool(ctx context.Context, toolID string) ([]*entity.Sponsorship, error)
	Create(ctx context.Context, sponsorship *entity.Sponsorship) error
	Update(ctx context.Context, sponsorship *entity.Sponsorship) error
	Delete(ctx context.Context, id string) error
	// DeactivateExpired clears the is_active flag on every sponsorship
	// whose window ended at or before now. Returns the number of rows
	// deactivated. Called by the background sweeper.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type AffiliateLinkRepository interface {
	Get(ctx context.Context, id string) (*entity.AffiliateLink, error)
	ListByTool(ctx context.Context, toolID string) ([]*entity.AffiliateLink, error)
	Create(ctx context.Context, link *entity.AffiliateLink) error
	Delete(ctx context.Context, id string) error
}
