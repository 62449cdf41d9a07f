package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

// Querier is the subset of *sql.DB the sponsorship repository needs. It is
// also satisfied by circuitbreaker.DBCircuitBreaker, which the sweep worker
// uses to shield the database from retry storms.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SponsorshipRepo implements the SponsorshipRepository interface using PostgreSQL.
type SponsorshipRepo struct{ db Querier }

// NewSponsorshipRepo creates a new PostgreSQL-backed sponsorship repository.
func NewSponsorshipRepo(db Querier) repository.SponsorshipRepository {
	return &SponsorshipRepo{db: db}
}

const sponsorshipColumns = `id, tool_id, priority_weight, is_active, start_date, end_date, created_at`

func (repo *SponsorshipRepo) Get(ctx context.Context, id string) (*entity.Sponsorship, error) {
	var s entity.Sponsorship
	err := repo.db.QueryRowContext(ctx,
		`SELECT `+sponsorshipColumns+` FROM sponsorships WHERE id = $1`, id,
	).Scan(&s.ID, &s.ToolID, &s.PriorityWeight, &s.IsActive, &s.StartDate, &s.EndDate, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &s, nil
}

// ListByTool retrieves all sponsorships for a tool, newest window first.
func (repo *SponsorshipRepo) ListByTool(ctx context.Context, toolID string) ([]*entity.Sponsorship, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT `+sponsorshipColumns+` FROM sponsorships WHERE tool_id = $1 ORDER BY start_date DESC, id DESC`,
		toolID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListByTool: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sponsorships := make([]*entity.Sponsorship, 0, 8)
	for rows.Next() {
		var s entity.Sponsorship
		if err := rows.Scan(&s.ID, &s.ToolID, &s.PriorityWeight, &s.IsActive, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByTool: Scan: %w", err)
		}
		sponsorships = append(sponsorships, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByTool: rows.Err: %w", err)
	}
	return sponsorships, nil
}

func (repo *SponsorshipRepo) Create(ctx context.Context, sponsorship *entity.Sponsorship) error {
	const query = `
INSERT INTO sponsorships (id, tool_id, priority_weight, is_active, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := repo.db.ExecContext(ctx, query,
		sponsorship.ID, sponsorship.ToolID, sponsorship.PriorityWeight,
		sponsorship.IsActive, sponsorship.StartDate, sponsorship.EndDate,
		sponsorship.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *SponsorshipRepo) Update(ctx context.Context, sponsorship *entity.Sponsorship) error {
	const query = `
UPDATE sponsorships
SET priority_weight = $2, is_active = $3, start_date = $4, end_date = $5
WHERE id = $1
`
	res, err := repo.db.ExecContext(ctx, query,
		sponsorship.ID, sponsorship.PriorityWeight, sponsorship.IsActive,
		sponsorship.StartDate, sponsorship.EndDate,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	return requireAffected(res, "Update")
}

func (repo *SponsorshipRepo) Delete(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM sponsorships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected(res, "Delete")
}

// DeactivateExpired clears the is_active flag on every sponsorship whose
// window ended at or before now, returning the number of rows deactivated.
// The window is half-open, so end_date <= now means expired.
func (repo *SponsorshipRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE sponsorships SET is_active = FALSE WHERE is_active AND end_date <= $1`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("DeactivateExpired: ExecContext: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeactivateExpired: RowsAffected: %w", err)
	}
	return affected, nil
}
