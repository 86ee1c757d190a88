package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// It reflects the state after all migrations have run.
//
// This is the single source of truth for the database schema. Repository
// tests load it through GetSchemaSQL() so a column referenced by repository
// code but missing here fails with "no such column" at test time.
//
// When adding columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Counters (one row per category, issued_total is the last count handed out
-- under last_prefix at digit_width; digit_width 0 means not yet recorded)
CREATE TABLE IF NOT EXISTS counters (
	category TEXT PRIMARY KEY,
	issued_total INTEGER NOT NULL DEFAULT 0 CHECK(issued_total >= 0),
	last_prefix TEXT,
	digit_width INTEGER NOT NULL DEFAULT 0 CHECK(digit_width >= 0),
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Label batches (append-only ledger of issued ranges)
CREATE TABLE IF NOT EXISTS label_batches (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	category TEXT NOT NULL,
	prefix TEXT NOT NULL,
	start_count INTEGER NOT NULL,
	end_count INTEGER NOT NULL,
	run_start INTEGER NOT NULL,
	continuation INTEGER NOT NULL DEFAULT 0,
	actor TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	CHECK(start_count >= 1 AND end_count >= start_count AND run_start <= start_count)
);

CREATE INDEX IF NOT EXISTS idx_label_batches_category ON label_batches(category);
CREATE INDEX IF NOT EXISTS idx_label_batches_run ON label_batches(run_id);
`

// InitSchema creates the schema on a fresh database and migrates older ones.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(database)
	}

	// Completely fresh install - create the current schema directly
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to mark migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
