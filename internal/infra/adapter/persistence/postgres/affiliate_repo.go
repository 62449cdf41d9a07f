package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

// AffiliateLinkRepo implements the AffiliateLinkRepository interface using PostgreSQL.
type AffiliateLinkRepo struct{ db *sql.DB }

// NewAffiliateLinkRepo creates a new PostgreSQL-backed affiliate link repository.
func NewAffiliateLinkRepo(db *sql.DB) repository.AffiliateLinkRepository {
	return &AffiliateLinkRepo{db: db}
}

func (repo *AffiliateLinkRepo) Get(ctx context.Context, id string) (*entity.AffiliateLink, error) {
	var a entity.AffiliateLink
	err := repo.db.QueryRowContext(ctx,
		`SELECT id, tool_id, url, network, created_at FROM affiliate_links WHERE id = $1`, id,
	).Scan(&a.ID, &a.ToolID, &a.URL, &a.Network, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &a, nil
}

// ListByTool retrieves all affiliate links for a tool, newest first.
func (repo *AffiliateLinkRepo) ListByTool(ctx context.Context, toolID string) ([]*entity.AffiliateLink, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT id, tool_id, url, network, created_at FROM affiliate_links WHERE tool_id = $1 ORDER BY created_at DESC, id DESC`,
		toolID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListByTool: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	links := make([]*entity.AffiliateLink, 0, 8)
	for rows.Next() {
		var a entity.AffiliateLink
		if err := rows.Scan(&a.ID, &a.ToolID, &a.URL, &a.Network, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByTool: Scan: %w", err)
		}
		links = append(links, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByTool: rows.Err: %w", err)
	}
	return links, nil
}

func (repo *AffiliateLinkRepo) Create(ctx context.Context, link *entity.AffiliateLink) error {
	const query = `
INSERT INTO affiliate_links (id, tool_id, url, network, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := repo.db.ExecContext(ctx, query,
		link.ID, link.ToolID, link.URL, link.Network, link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *AffiliateLinkRepo) Delete(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM affiliate_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected(res, "Delete")
}
