// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/yms/internal/ports/secondary"
)

const upsertCounterSQL = `
	INSERT INTO counters (category, issued_total, last_prefix, digit_width, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(category) DO UPDATE SET
		issued_total = excluded.issued_total,
		last_prefix = excluded.last_prefix,
		digit_width = excluded.digit_width,
		updated_at = CURRENT_TIMESTAMP`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CounterRepository implements secondary.CounterRepository with SQLite.
type CounterRepository struct {
	db *sql.DB
}

// NewCounterRepository creates a new SQLite counter repository.
func NewCounterRepository(db *sql.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// LoadAll retrieves every stored counter ordered by category.
func (r *CounterRepository) LoadAll(ctx context.Context) ([]*secondary.CounterRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT category, issued_total, last_prefix, digit_width, updated_at FROM counters ORDER BY category",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	defer rows.Close()

	var counters []*secondary.CounterRecord
	for rows.Next() {
		record, err := scanCounter(rows)
		if err != nil {
			return nil, err
		}
		counters = append(counters, record)
	}

	return counters, rows.Err()
}

// Get retrieves one counter, nil when the category has no row yet.
func (r *CounterRepository) Get(ctx context.Context, categoryName string) (*secondary.CounterRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT category, issued_total, last_prefix, digit_width, updated_at FROM counters WHERE category = ?",
		categoryName,
	)
	record, err := scanCounter(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Save upserts a counter.
func (r *CounterRepository) Save(ctx context.Context, counter *secondary.CounterRecord) error {
	if err := saveCounter(ctx, r.db, counter); err != nil {
		return err
	}
	return nil
}

// RecordBatch upserts the counter and appends the batch in one transaction.
func (r *CounterRepository) RecordBatch(ctx context.Context, counter *secondary.CounterRecord, batch *secondary.BatchRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveCounter(ctx, tx, counter); err != nil {
		return err
	}

	var actor sql.NullString
	if batch.ActorID != "" {
		actor = sql.NullString{String: batch.ActorID, Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO label_batches (id, run_id, category, prefix, start_count, end_count, run_start, continuation, actor)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		batch.ID, batch.RunID, batch.Category, batch.Prefix,
		batch.StartCount, batch.EndCount, batch.RunStart, batch.Continuation, actor,
	)
	if err != nil {
		return fmt.Errorf("failed to append batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func saveCounter(ctx context.Context, ex execer, counter *secondary.CounterRecord) error {
	var prefix sql.NullString
	if counter.PrefixSeen {
		prefix = sql.NullString{String: counter.LastPrefix, Valid: true}
	}

	if _, err := ex.ExecContext(ctx, upsertCounterSQL, counter.Category, counter.IssuedTotal, prefix, counter.DigitWidth); err != nil {
		return fmt.Errorf("failed to save counter %s: %w", counter.Category, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCounter(s scanner) (*secondary.CounterRecord, error) {
	var (
		prefix    sql.NullString
		updatedAt sql.NullTime
	)

	record := &secondary.CounterRecord{}
	err := s.Scan(&record.Category, &record.IssuedTotal, &prefix, &record.DigitWidth, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan counter: %w", err)
	}

	record.LastPrefix = prefix.String
	record.PrefixSeen = prefix.Valid
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
	}
	return record, nil
}

var _ secondary.CounterRepository = (*CounterRepository)(nil)
