package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		business_line TEXT NOT NULL DEFAULT '',
		start_date    TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'active'
		              CHECK(status IN ('active','archived')),
		archived_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS line_items (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		business_line TEXT NOT NULL,
		cost_line     TEXT NOT NULL,
		spend_type    TEXT NOT NULL,
		sub_category  TEXT NOT NULL,
		budget_cost   REAL NOT NULL CHECK(budget_cost > 0),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_line_items_project ON line_items(project_id)`,

	`CREATE TABLE IF NOT EXISTS versions (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		version_number INTEGER NOT NULL CHECK(version_number >= 0),
		reason         TEXT NOT NULL CHECK(length(reason) > 0),
		created_by     TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,

	// Conflict backstop for concurrent version creation on one project.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_versions_project_number
		ON versions(project_id, version_number)`,

	// ON DELETE RESTRICT on line_item_id: a line item referenced by any
	// persisted forecast entry must not be hard-deleted.
	`CREATE TABLE IF NOT EXISTS forecast_entries (
		version_id      TEXT NOT NULL REFERENCES versions(id) ON DELETE CASCADE,
		line_item_id    TEXT NOT NULL REFERENCES line_items(id) ON DELETE RESTRICT,
		forecasted_cost REAL NOT NULL,
		excluded        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (version_id, line_item_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_forecast_entries_item ON forecast_entries(line_item_id)`,

	// Externally owned: the engine reads mappings but never mutates them.
	// Writes exist only for import and test seeding.
	`CREATE TABLE IF NOT EXISTS po_mappings (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		line_item_id   TEXT NOT NULL REFERENCES line_items(id) ON DELETE RESTRICT,
		po_number      TEXT NOT NULL DEFAULT '',
		description    TEXT NOT NULL DEFAULT '',
		mapped_amount  REAL NOT NULL,
		invoiced_value REAL,
		line_value     REAL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_po_mappings_project ON po_mappings(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_po_mappings_item ON po_mappings(line_item_id)`,
}
