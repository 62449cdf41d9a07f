package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

// TagRepo implements the TagRepository interface using PostgreSQL.
type TagRepo struct {
	db    *sql.DB
	codec *pagination.Codec
	cfg   pagination.Config
}

// NewTagRepo creates a new PostgreSQL-backed tag repository.
func NewTagRepo(db *sql.DB, codec *pagination.Codec, cfg pagination.Config) repository.TagRepository {
	return &TagRepo{db: db, codec: codec, cfg: cfg}
}

var tagStrategy = pagination.Strategy{
	IDColumn:   "tg.id",
	DefaultKey: "name",
	Fields: map[string]pagination.SortField{
		"name": {
			Expression:       "tg.name",
			CursorField:      "name",
			DefaultDirection: pagination.Asc,
		},
	},
}

// ListPaginated retrieves one page of tags ordered by name.
func (repo *TagRepo) ListPaginated(ctx context.Context, params pagination.Params) (pagination.Page[*entity.Tag], error) {
	page, err := pagination.List(ctx, repo.db, repo.codec, pagination.ListSpec{
		Select:   "tg.id, tg.name, tg.slug",
		From:     "tags tg",
		Strategy: tagStrategy,
		Params:   params,
		Config:   repo.cfg,
	}, func(rows *sql.Rows) (*entity.Tag, pagination.CursorSeed, error) {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, pagination.CursorSeed{}, err
		}
		seed := pagination.CursorSeed{
			ID:     t.ID,
			Fields: map[string]pagination.FieldValue{"name": pagination.StringValue(t.Name)},
		}
		return &t, seed, nil
	})
	if err != nil {
		return pagination.Page[*entity.Tag]{}, fmt.Errorf("ListPaginated: %w", err)
	}
	return page, nil
}

func (repo *TagRepo) Get(ctx context.Context, id string) (*entity.Tag, error) {
	var t entity.Tag
	err := repo.db.QueryRowContext(ctx,
		`SELECT id, name, slug FROM tags WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &t, nil
}

func (repo *TagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO tags (id, name, slug) VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, tag.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlugTaken
		}
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *TagRepo) Delete(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected(res, "Delete")
}

// AttachToTool links a tag to a tool. Attaching an already-attached tag is
// a no-op; a missing tool or tag surfaces as a foreign key error.
func (repo *TagRepo) AttachToTool(ctx context.Context, toolID, tagID string) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO tool_tags (tool_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		toolID, tagID,
	)
	if err != nil {
		return fmt.Errorf("AttachToTool: ExecContext: %w", err)
	}
	return nil
}

// DetachFromTool unlinks a tag from a tool.
func (repo *TagRepo) DetachFromTool(ctx context.Context, toolID, tagID string) error {
	res, err := repo.db.ExecContext(ctx,
		`DELETE FROM tool_tags WHERE tool_id = $1 AND tag_id = $2`,
		toolID, tagID,
	)
	if err != nil {
		return fmt.Errorf("DetachFromTool: ExecContext: %w", err)
	}
	return requireAffected(res, "DetachFromTool")
}
