package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/yms/internal/ports/secondary"
)

const batchIDPrefix = "BATCH-"

// newestFirst orders batches by the numeric part of their ID, which grows with
// every append.
var newestFirst = fmt.Sprintf("CAST(SUBSTR(id, %d) AS INTEGER) DESC", len(batchIDPrefix)+1)

// BatchLogRepository implements secondary.BatchLogRepository with SQLite.
type BatchLogRepository struct {
	db *sql.DB
}

// NewBatchLogRepository creates a new SQLite batch ledger repository.
func NewBatchLogRepository(db *sql.DB) *BatchLogRepository {
	return &BatchLogRepository{db: db}
}

// GetNextID returns the next available batch ID.
func (r *BatchLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM label_batches", len(batchIDPrefix)+1),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next batch ID: %w", err)
	}

	return fmt.Sprintf("%s%03d", batchIDPrefix, maxID+1), nil
}

// GetLatest retrieves the most recent batch of a category, nil if none.
func (r *BatchLogRepository) GetLatest(ctx context.Context, categoryName string) (*secondary.BatchRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+batchColumns+" FROM label_batches WHERE category = ? ORDER BY "+newestFirst+" LIMIT 1",
		categoryName,
	)
	record, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves batches matching the filters, newest first.
func (r *BatchLogRepository) List(ctx context.Context, filters secondary.BatchFilters) ([]*secondary.BatchRecord, error) {
	query := "SELECT " + batchColumns + " FROM label_batches WHERE 1=1"
	args := []any{}

	if filters.Category != "" {
		query += " AND category = ?"
		args = append(args, filters.Category)
	}

	query += " ORDER BY " + newestFirst

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []*secondary.BatchRecord
	for rows.Next() {
		record, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, record)
	}

	return batches, rows.Err()
}

const batchColumns = "id, run_id, category, prefix, start_count, end_count, run_start, continuation, actor, created_at"

func scanBatch(s scanner) (*secondary.BatchRecord, error) {
	var (
		actor     sql.NullString
		createdAt sql.NullTime
	)

	record := &secondary.BatchRecord{}
	err := s.Scan(&record.ID, &record.RunID, &record.Category, &record.Prefix,
		&record.StartCount, &record.EndCount, &record.RunStart, &record.Continuation,
		&actor, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan batch: %w", err)
	}

	record.ActorID = actor.String
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time.Format(time.RFC3339)
	}
	return record, nil
}

var _ secondary.BatchLogRepository = (*BatchLogRepository)(nil)
