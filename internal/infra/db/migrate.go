package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/categories.sql
var seedCategoriesSQL string

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL,
    slug        TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// search_vector is generated from the descriptive text columns so the
	// relevance sort and the free-text filter never recompute it per row.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tools (
    id            UUID PRIMARY KEY,
    category_id   UUID NOT NULL REFERENCES categories(id),
    name          TEXT NOT NULL,
    slug          TEXT NOT NULL UNIQUE,
    tagline       TEXT NOT NULL DEFAULT '',
    description   TEXT NOT NULL DEFAULT '',
    website_url   TEXT NOT NULL,
    featured      BOOLEAN NOT NULL DEFAULT FALSE,
    status        VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    search_vector TSVECTOR GENERATED ALWAYS AS (
        setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
        setweight(to_tsvector('english', coalesce(tagline, '')), 'B') ||
        setweight(to_tsvector('english', coalesce(description, '')), 'C')
    ) STORED
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tags (
    id   UUID PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tool_tags (
    tool_id UUID NOT NULL REFERENCES tools(id) ON DELETE CASCADE,
    tag_id  UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (tool_id, tag_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS sponsorships (
    id              UUID PRIMARY KEY,
    tool_id         UUID NOT NULL REFERENCES tools(id) ON DELETE CASCADE,
    priority_weight INT NOT NULL DEFAULT 0,
    is_active       BOOLEAN NOT NULL DEFAULT TRUE,
    start_date      TIMESTAMPTZ NOT NULL,
    end_date        TIMESTAMPTZ NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    CHECK (end_date > start_date)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS affiliate_links (
    id         UUID PRIMARY KEY,
    tool_id    UUID NOT NULL REFERENCES tools(id) ON DELETE CASCADE,
    url        TEXT NOT NULL,
    network    TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Keyset walks: (created_at, id) for newest/popular, (name, id)
		// for the alphabetical order.
		`CREATE INDEX IF NOT EXISTS idx_tools_created_at_id ON tools(created_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_tools_name_id ON tools(name ASC, id ASC)`,
		`CREATE INDEX IF NOT EXISTS idx_tools_category_id ON tools(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tools_status ON tools(status)`,
		// Sponsorship boost subqueries probe by tool within the active
		// window; the partial index keeps that probe on active rows only.
		`CREATE INDEX IF NOT EXISTS idx_sponsorships_tool_active ON sponsorships(tool_id, start_date, end_date) WHERE is_active`,
		`CREATE INDEX IF NOT EXISTS idx_sponsorships_end_date ON sponsorships(end_date) WHERE is_active`,
		`CREATE INDEX IF NOT EXISTS idx_affiliate_links_tool_id ON affiliate_links(tool_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tool_tags_tag_id ON tool_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_name_id ON categories(name ASC, id ASC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// Full-text search over the generated column.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tools_search_vector ON tools USING gin(search_vector)`); err != nil {
		return err
	}

	// Seed the browsable sections; duplicates are skipped.
	if _, err := db.Exec(seedCategoriesSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown rolls back the database schema in reverse dependency order.
// Use with caution: this deletes all catalogue data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS affiliate_links CASCADE`,
		`DROP TABLE IF EXISTS sponsorships CASCADE`,
		`DROP TABLE IF EXISTS tool_tags CASCADE`,
		`DROP TABLE IF EXISTS tags CASCADE`,
		`DROP TABLE IF EXISTS tools CASCADE`,
		`DROP TABLE IF EXISTS categories CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
