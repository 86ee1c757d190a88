package primary

import "context"

// LabelService defines the primary port for label numbering operations.
type LabelService interface {
	// GenerateLabels issues a batch of labels for a category.
	GenerateLabels(ctx context.Context, req GenerateLabelsRequest) (*GenerateLabelsResponse, error)

	// GetCounter retrieves the counter of one category.
	GetCounter(ctx context.Context, categoryName string) (*Counter, error)

	// ListCounters retrieves the counters of every known category.
	ListCounters(ctx context.Context) ([]*Counter, error)

	// ResetCounter zeroes a category counter.
	ResetCounter(ctx context.Context, req ResetCounterRequest) (*Counter, error)

	// ListCategories retrieves the configured categories.
	ListCategories(ctx context.Context) ([]*Category, error)

	// DecodeLabel recovers the count behind a printed label.
	DecodeLabel(ctx context.Context, req DecodeLabelRequest) (*DecodedLabel, error)

	// ListBatches retrieves issued batches, newest first.
	ListBatches(ctx context.Context, filters BatchFilters) ([]*Batch, error)
}

// GenerateLabelsRequest contains parameters for issuing a batch.
type GenerateLabelsRequest struct {
	Category     string
	Prefix       string // Required for user-set prefixes, optional otherwise
	Count        int
	Continuation bool // "Generate more" for the current run
}

// GenerateLabelsResponse contains the issued batch.
type GenerateLabelsResponse struct {
	BatchID      string
	RunID        string
	Category     string
	Prefix       string
	StartCount   int
	EndCount     int
	RunStart     int
	Reset        bool
	Continuation bool
	Labels       []*Label
}

// Label is one printed label at the port boundary.
type Label struct {
	Text    string
	Count   int
	Caption string // "Case k of N" within the run
}

// Counter represents a category counter at the port boundary.
type Counter struct {
	Category    string
	IssuedTotal int
	LastPrefix  string
	Capacity    int    // 0 when the category has no upper bound
	NextLabel   string // Empty when the next label cannot be predicted
}

// ResetCounterRequest contains parameters for zeroing a counter.
type ResetCounterRequest struct {
	Category string
	Force    bool
}

// Category represents a label category at the port boundary.
type Category struct {
	Name          string
	Prefix        string
	DigitWidth    int
	Policy        string
	PrefixMutable bool
	Description   string
}

// DecodeLabelRequest contains parameters for decoding a label.
type DecodeLabelRequest struct {
	Category string
	Prefix   string // Defaults to the category prefix, then the last observed prefix
	Label    string
}

// DecodedLabel is the result of decoding a label.
type DecodedLabel struct {
	Category string
	Prefix   string
	Label    string
	Count    int
	Issued   bool // Count has been issued under the current prefix
}

// BatchFilters contains filter options for batch history.
type BatchFilters struct {
	Category string
	Limit    int
}

// Batch represents an issued batch in history.
type Batch struct {
	ID           string
	RunID        string
	Category     string
	Prefix       string
	StartCount   int
	EndCount     int
	RunStart     int
	Continuation bool
	ActorID      string
	CreatedAt    string
}
