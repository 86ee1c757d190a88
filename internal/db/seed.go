package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: counters
// mid-way through their ranges and a short batch history behind them.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	// Counters
	counters := []struct {
		category string
		total    int
		prefix   sql.NullString
		width    int
	}{
		{"Crates", 42, sql.NullString{String: "Stackbox", Valid: true}, 4},
		{"Cartons", 9998, sql.NullString{String: "SBX", Valid: true}, 4},
		{"Pallets", 0, sql.NullString{}, 0},
		{"Custom", 3, sql.NullString{String: "DOCK7-", Valid: true}, 4},
		{"LR", 12, sql.NullString{String: "IN987098", Valid: true}, 0},
	}
	for _, c := range counters {
		if _, err := database.Exec(
			"INSERT INTO counters (category, issued_total, last_prefix, digit_width, updated_at) VALUES (?, ?, ?, ?, ?)",
			c.category, c.total, c.prefix, c.width, now,
		); err != nil {
			return fmt.Errorf("seed counters: %w", err)
		}
	}

	// Batches - one run per category, Crates split across a continuation
	batches := []struct {
		id, run, category, prefix string
		start, end, runStart      int
		continuation              bool
	}{
		{"BATCH-001", "seed-run-crates", "Crates", "Stackbox", 1, 40, 1, false},
		{"BATCH-002", "seed-run-crates", "Crates", "Stackbox", 41, 42, 1, true},
		{"BATCH-003", "seed-run-cartons", "Cartons", "SBX", 9901, 9998, 9901, false},
		{"BATCH-004", "seed-run-custom", "Custom", "DOCK7-", 1, 3, 1, false},
		{"BATCH-005", "seed-run-lr", "LR", "IN987098", 1, 12, 1, false},
	}
	for _, b := range batches {
		if _, err := database.Exec(
			`INSERT INTO label_batches (id, run_id, category, prefix, start_count, end_count, run_start, continuation, actor, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'seed', ?)`,
			b.id, b.run, b.category, b.prefix, b.start, b.end, b.runStart, b.continuation, now,
		); err != nil {
			return fmt.Errorf("seed label_batches: %w", err)
		}
	}

	return nil
}
