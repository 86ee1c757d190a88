package secondary

import "context"

// BatchLogRepository defines the secondary port for the issued-batch ledger.
// Every batch that advances a counter is appended here by
// CounterRepository.RecordBatch.
type BatchLogRepository interface {
	// GetNextID returns the next available batch ID.
	GetNextID(ctx context.Context) (string, error)

	// GetLatest retrieves the most recent batch for a category, nil if none.
	GetLatest(ctx context.Context, categoryName string) (*BatchRecord, error)

	// List retrieves batches matching the filters, newest first.
	List(ctx context.Context, filters BatchFilters) ([]*BatchRecord, error)
}

// BatchRecord represents an issued batch as stored in persistence.
type BatchRecord struct {
	ID           string
	RunID        string
	Category     string
	Prefix       string
	StartCount   int
	EndCount     int
	RunStart     int // First count of the run this batch belongs to
	Continuation bool
	ActorID      string // Empty string means null
	CreatedAt    string
}

// BatchFilters contains filter options for querying batches.
type BatchFilters struct {
	Category string
	Limit    int
}
