package secondary

import "context"

// CounterRepository defines the secondary port for category counter persistence.
type CounterRepository interface {
	// LoadAll retrieves every stored counter.
	LoadAll(ctx context.Context) ([]*CounterRecord, error)

	// Get retrieves one counter, nil if the category has never been stored.
	Get(ctx context.Context, categoryName string) (*CounterRecord, error)

	// Save upserts a counter.
	Save(ctx context.Context, counter *CounterRecord) error

	// RecordBatch upserts a counter and appends the batch that advanced it,
	// atomically.
	RecordBatch(ctx context.Context, counter *CounterRecord, batch *BatchRecord) error
}

// CounterRecord represents a category counter as stored in persistence.
type CounterRecord struct {
	Category    string
	IssuedTotal int
	LastPrefix  string
	PrefixSeen  bool // false means last_prefix is null
	DigitWidth  int  // 0 until a padded batch records one
	UpdatedAt   string
}

// Locker serializes counter mutations across processes sharing one store.
type Locker interface {
	// Lock blocks until the lock is held and returns its release function.
	Lock(ctx context.Context) (unlock func() error, err error)
}
