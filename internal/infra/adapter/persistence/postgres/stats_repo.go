package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CatalogueStats is a point-in-time snapshot of the catalogue-wide
// aggregates published as Prometheus gauges.
type CatalogueStats struct {
	ToolsByStatus      map[string]int
	ActiveSponsorships int
	Categories         int
	Tags               int
	AffiliateLinks     int
}

// StatsRepo reads catalogue-wide aggregates for the periodic metrics
// collector. It is deliberately separate from the entity repositories:
// these queries serve gauges, not API responses.
type StatsRepo struct{ db *sql.DB }

// NewStatsRepo creates a PostgreSQL-backed stats reader.
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Snapshot collects the current catalogue aggregates. Active sponsorships
// are counted against the half-open window, not the is_active flag, so the
// gauge stays correct even between sweeper runs.
func (repo *StatsRepo) Snapshot(ctx context.Context, now time.Time) (*CatalogueStats, error) {
	stats := &CatalogueStats{ToolsByStatus: make(map[string]int)}

	rows, err := repo.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM tools GROUP BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("Snapshot: tools by status: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("Snapshot: Scan: %w", err)
		}
		stats.ToolsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Snapshot: rows.Err: %w", err)
	}

	err = repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sponsorships WHERE is_active AND start_date <= $1 AND end_date > $1`,
		now.UTC(),
	).Scan(&stats.ActiveSponsorships)
	if err != nil {
		return nil, fmt.Errorf("Snapshot: active sponsorships: %w", err)
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM categories`, &stats.Categories},
		{`SELECT COUNT(*) FROM tags`, &stats.Tags},
		{`SELECT COUNT(*) FROM affiliate_links`, &stats.AffiliateLinks},
	}
	for _, c := range counts {
		if err := repo.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("Snapshot: %q: %w", c.query, err)
		}
	}

	return stats, nil
}
