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

// CategoryRepo implements the CategoryRepository interface using PostgreSQL.
type CategoryRepo struct {
	db    *sql.DB
	codec *pagination.Codec
	cfg   pagination.Config
}

// NewCategoryRepo creates a new PostgreSQL-backed category repository.
func NewCategoryRepo(db *sql.DB, codec *pagination.Codec, cfg pagination.Config) repository.CategoryRepository {
	return &CategoryRepo{db: db, codec: codec, cfg: cfg}
}

// Categories are browsed alphabetically; name is the only sort key.
var categoryStrategy = pagination.Strategy{
	IDColumn:   "c.id",
	DefaultKey: "name",
	Fields: map[string]pagination.SortField{
		"name": {
			Expression:       "c.name",
			CursorField:      "name",
			DefaultDirection: pagination.Asc,
		},
	},
}

// ListPaginated retrieves one page of categories ordered by name.
func (repo *CategoryRepo) ListPaginated(ctx context.Context, params pagination.Params) (pagination.Page[*entity.Category], error) {
	page, err := pagination.List(ctx, repo.db, repo.codec, pagination.ListSpec{
		Select:   "c.id, c.name, c.slug, c.description, c.created_at",
		From:     "categories c",
		Strategy: categoryStrategy,
		Params:   params,
		Config:   repo.cfg,
	}, func(rows *sql.Rows) (*entity.Category, pagination.CursorSeed, error) {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, pagination.CursorSeed{}, err
		}
		seed := pagination.CursorSeed{
			ID:     c.ID,
			Fields: map[string]pagination.FieldValue{"name": pagination.StringValue(c.Name)},
		}
		return &c, seed, nil
	})
	if err != nil {
		return pagination.Page[*entity.Category]{}, fmt.Errorf("ListPaginated: %w", err)
	}
	return page, nil
}

func (repo *CategoryRepo) Get(ctx context.Context, id string) (*entity.Category, error) {
	return repo.getRow(ctx, `SELECT id, name, slug, description, created_at FROM categories WHERE id = $1`, id)
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.getRow(ctx, `SELECT id, name, slug, description, created_at FROM categories WHERE slug = $1`, slug)
}

func (repo *CategoryRepo) getRow(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := repo.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &c, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
INSERT INTO categories (id, name, slug, description, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := repo.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlugTaken
		}
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `
UPDATE categories
SET name = $2, slug = $3, description = $4
WHERE id = $1
`
	res, err := repo.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlugTaken
		}
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	return requireAffected(res, "Update")
}

func (repo *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return requireAffected(res, "Delete")
}
