// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the single point where the database schema is loaded for tests.
// All test setup goes through db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/yms/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection would get its own empty :memory: database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCounter inserts a counter row. An empty prefix is stored as NULL.
func seedCounter(t *testing.T, db *sql.DB, categoryName string, total int, prefix string) {
	t.Helper()
	var p sql.NullString
	if prefix != "" {
		p = sql.NullString{String: prefix, Valid: true}
	}
	_, err := db.Exec("INSERT INTO counters (category, issued_total, last_prefix) VALUES (?, ?, ?)", categoryName, total, p)
	if err != nil {
		t.Fatalf("failed to seed counter: %v", err)
	}
}

// seedBatch inserts a batch row and returns its ID.
func seedBatch(t *testing.T, db *sql.DB, id, categoryName, prefix string, start, end int) string {
	t.Helper()
	if id == "" {
		id = "BATCH-001"
	}
	_, err := db.Exec(
		`INSERT INTO label_batches (id, run_id, category, prefix, start_count, end_count, run_start)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, "run-"+id, categoryName, prefix, start, end, start,
	)
	if err != nil {
		t.Fatalf("failed to seed batch: %v", err)
	}
	return id
}
