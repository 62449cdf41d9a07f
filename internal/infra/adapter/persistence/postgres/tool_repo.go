// Package postgres provides PostgreSQL implementations of the repository
// interfaces. List queries run through the shared cursor-pagination engine;
// ranking boosts are computed per query and never persisted.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

// Ranking boost expressions. Each one is recomputed per query against the
// sponsorship and affiliate tables; none of them is stored on the tool row.
const (
	// sponsoredExpr is true while the tool holds a sponsorship whose
	// half-open window [start_date, end_date) contains now.
	sponsoredExpr = `EXISTS (SELECT 1 FROM sponsorships sp WHERE sp.tool_id = t.id AND sp.is_active AND sp.start_date <= now() AND sp.end_date > now())`

	// maxPriorityExpr is the highest active sponsorship weight, 0 without one.
	maxPriorityExpr = `COALESCE((SELECT MAX(sp.priority_weight) FROM sponsorships sp WHERE sp.tool_id = t.id AND sp.is_active AND sp.start_date <= now() AND sp.end_date > now()), 0)`

	affiliateExpr = `EXISTS (SELECT 1 FROM affiliate_links al WHERE al.tool_id = t.id)`

	// relevanceExpr ranks a row against the free-text search term. The
	// placeholder is bound to the term everywhere the expression appears.
	relevanceExpr = `ts_rank(t.search_vector, websearch_to_tsquery('english', ?))`
)

const toolColumns = `t.id, t.category_id, t.name, t.slug, t.tagline, t.description, t.website_url, t.featured, t.status, t.created_at, t.updated_at`

// ToolRepo implements the ToolRepository interface using PostgreSQL.
type ToolRepo struct {
	db    *sql.DB
	codec *pagination.Codec
	cfg   pagination.Config
}

// NewToolRepo creates a new PostgreSQL-backed tool repository.
func NewToolRepo(db *sql.DB, codec *pagination.Codec, cfg pagination.Config) repository.ToolRepository {
	return &ToolRepo{db: db, codec: codec, cfg: cfg}
}

// toolSortStrategy builds the sort registry for the tool listing. The search
// term is bound into the relevance expression so the rank placeholder is
// satisfied wherever the expression renders (projection, order, keyset).
func toolSortStrategy(term string) pagination.Strategy {
	return pagination.Strategy{
		IDColumn:   "t.id",
		DefaultKey: "newest",
		Fields: map[string]pagination.SortField{
			"name": {
				Expression:       "t.name",
				CursorField:      "name",
				DefaultDirection: pagination.Asc,
			},
			"newest": {
				Expression:       "t.created_at",
				CursorField:      "createdAt",
				DefaultDirection: pagination.Desc,
				Boosts:           []string{sponsoredExpr, affiliateExpr},
			},
			"popular": {
				Expression:       "t.created_at",
				CursorField:      "createdAt",
				DefaultDirection: pagination.Desc,
				Boosts:           []string{sponsoredExpr, maxPriorityExpr, affiliateExpr, "t.featured"},
			},
			"relevance": {
				Expression:       relevanceExpr,
				ExprArgs:         []any{term},
				CursorField:      "rank",
				DefaultDirection: pagination.Desc,
				Boosts:           []string{sponsoredExpr, maxPriorityExpr, affiliateExpr},
			},
		},
	}
}

// toolFilters adapts ToolListFilters to the pagination filter composer.
type toolFilters struct {
	f repository.ToolListFilters
}

func (s *toolFilters) SearchFilter(term string) *pagination.Predicate {
	return &pagination.Predicate{
		Expr: "t.search_vector @@ websearch_to_tsquery('english', ?)",
		Args: []any{term},
	}
}

func (s *toolFilters) EntityFilters() []pagination.Predicate {
	var preds []pagination.Predicate
	if n := len(s.f.CategoryIDs); n > 0 {
		args := make([]any, 0, n)
		for _, id := range s.f.CategoryIDs {
			args = append(args, id)
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
		preds = append(preds, pagination.Predicate{
			Expr: "t.category_id IN (" + placeholders + ")",
			Args: args,
		})
	}
	if s.f.TagSlug != nil {
		preds = append(preds, pagination.Predicate{Expr: "tg.slug = ?", Args: []any{*s.f.TagSlug}})
	}
	if s.f.Featured != nil {
		preds = append(preds, pagination.Predicate{Expr: "t.featured = ?", Args: []any{*s.f.Featured}})
	}
	if s.f.Status != nil {
		preds = append(preds, pagination.Predicate{Expr: "t.status = ?", Args: []any{*s.f.Status}})
	}
	return preds
}

// ListPaginated retrieves one page of tools under the request's filters and
// sort key. Relevance with a blank search term normalizes to newest before
// the registry lookup, so the fallback is consistent end to end: ordering,
// cursor minting, and continuation all run under the effective key.
func (repo *ToolRepo) ListPaginated(ctx context.Context, filters repository.ToolListFilters, params pagination.Params) (pagination.Page[repository.ToolWithMeta], error) {
	term := strings.TrimSpace(filters.Search)
	if params.SortBy == "relevance" && term == "" {
		params.SortBy = "newest"
	}

	strategy := toolSortStrategy(term)
	key, _ := strategy.Resolve(params.SortBy)
	withRank := key == "relevance"

	sel := toolColumns + ", c.name, " + sponsoredExpr
	var selArgs []any
	if withRank {
		// Project the rank so the cursor seed can carry it; it is
		// stripped from the returned entity.
		sel += ", " + relevanceExpr
		selArgs = append(selArgs, term)
	}

	from := "tools t JOIN categories c ON c.id = t.category_id"
	if filters.TagSlug != nil {
		// The join is added only when the tag filter needs it; the
		// (tool_id, tag_id) primary key keeps the result row-unique.
		from += " JOIN tool_tags tt ON tt.tool_id = t.id JOIN tags tg ON tg.id = tt.tag_id"
	}

	scan := func(rows *sql.Rows) (repository.ToolWithMeta, pagination.CursorSeed, error) {
		var t entity.Tool
		var meta repository.ToolWithMeta
		var rank float64

		dest := []any{
			&t.ID, &t.CategoryID, &t.Name, &t.Slug, &t.Tagline, &t.Description,
			&t.WebsiteURL, &t.Featured, &t.Status, &t.CreatedAt, &t.UpdatedAt,
			&meta.CategoryName, &meta.Sponsored,
		}
		if withRank {
			dest = append(dest, &rank)
		}
		if err := rows.Scan(dest...); err != nil {
			return repository.ToolWithMeta{}, pagination.CursorSeed{}, err
		}
		meta.Tool = &t

		seed := pagination.CursorSeed{ID: t.ID, Fields: map[string]pagination.FieldValue{}}
		switch key {
		case "name":
			seed.Fields["name"] = pagination.StringValue(t.Name)
		case "relevance":
			seed.Fields["rank"] = pagination.NumberValue(rank)
		default:
			seed.Fields["createdAt"] = pagination.TimeValue(t.CreatedAt)
		}
		return meta, seed, nil
	}

	page, err := pagination.List(ctx, repo.db, repo.codec, pagination.ListSpec{
		Select:     sel,
		SelectArgs: selArgs,
		From:       from,
		Strategy:   strategy,
		Filters:    pagination.BuildFilters(term, &toolFilters{f: filters}),
		Params:     params,
		Config:     repo.cfg,
	}, scan)
	if err != nil {
		return pagination.Page[repository.ToolWithMeta]{}, fmt.Errorf("ListPaginated: %w", err)
	}
	return page, nil
}

func (repo *ToolRepo) Get(ctx context.Context, id string) (*entity.Tool, error) {
	const query = `
SELECT id, category_id, name, slug, tagline, description, website_url, featured, status, created_at, updated_at
FROM tools
WHERE id = $1
`
	return repo.getRow(ctx, query, id)
}

func (repo *ToolRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tool, error) {
	const query = `
SELECT id, category_id, name, slug, tagline, description, website_url, featured, status, created_at, updated_at
FROM tools
WHERE slug = $1
`
	return repo.getRow(ctx, query, slug)
}

func (repo *ToolRepo) getRow(ctx context.Context, query string, arg any) (*entity.Tool, error) {
	var t entity.Tool
	err := repo.db.QueryRowContext(ctx, query, arg).Scan(
		&t.ID, &t.CategoryID, &t.Name, &t.Slug, &t.Tagline, &t.Description,
		&t.WebsiteURL, &t.Featured, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &t, nil
}

func (repo *ToolRepo) Create(ctx context.Context, tool *entity.Tool) error {
	const query = `
INSERT INTO tools (id, category_id, name, slug, tagline, description, website_url, featured, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := repo.db.ExecContext(ctx, query,
		tool.ID, tool.CategoryID, tool.Name, tool.Slug, tool.Tagline,
		tool.Description, tool.WebsiteURL, tool.Featured, tool.Status,
		tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlugTaken
		}
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *ToolRepo) Update(ctx context.Context, tool *entity.Tool) error {
	const query = `
UPDATE tools
SET category_id = $2, name = $3, slug = $4, tagline = $5, description = $6,
    website_url = $7, featured = $8, status = $9, updated_at = $10
WHERE id = $1
`
	res, err := repo.db.ExecContext(ctx, query,
		tool.ID, tool.CategoryID, tool.Name, tool.Slug, tool.Tagline,
		tool.Description, tool.WebsiteURL, tool.Featured, tool.Status,
		tool.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlugTaken
		}
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	return requireAffected(res, "Update")
}

func (repo *ToolRepo) Delete(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected(res, "Delete")
}

func (repo *ToolRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tools WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsBySlug: QueryRowContext: %w", err)
	}
	return exists, nil
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
