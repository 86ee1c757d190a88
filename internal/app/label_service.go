package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/yms/internal/core/batch"
	"github.com/example/yms/internal/core/category"
	"github.com/example/yms/internal/core/counter"
	"github.com/example/yms/internal/core/label"
	"github.com/example/yms/internal/core/labelerr"
	"github.com/example/yms/internal/core/suffix"
	"github.com/example/yms/internal/ctxutil"
	"github.com/example/yms/internal/logger"
	"github.com/example/yms/internal/ports/primary"
	"github.com/example/yms/internal/ports/secondary"
)

// LabelServiceOptions holds the tunables of a LabelService.
type LabelServiceOptions struct {
	MaxBatch int            // Upper bound per request; 0 disables it
	Logger   *logger.Logger // Defaults to a no-op logger
}

// LabelServiceImpl implements the LabelService interface.
type LabelServiceImpl struct {
	catalog     *category.Catalog
	store       *counter.Store
	generator   *batch.Generator
	counterRepo secondary.CounterRepository
	batchRepo   secondary.BatchLogRepository
	locker      secondary.Locker
	maxBatch    int
	log         *logger.Logger
	newRunID    func() string
}

// NewLabelService creates a new LabelService with injected dependencies.
// The counter store is seeded from counterRepo, so totals survive restarts.
func NewLabelService(
	ctx context.Context,
	catalog *category.Catalog,
	counterRepo secondary.CounterRepository,
	batchRepo secondary.BatchLogRepository,
	locker secondary.Locker,
	opts LabelServiceOptions,
) (*LabelServiceImpl, error) {
	records, err := counterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load counters: %w", err)
	}

	state := make(counter.State, len(records))
	for _, r := range records {
		state[r.Category] = recordToEntry(r)
	}
	store := counter.NewStore(catalog.Names(), state)

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &LabelServiceImpl{
		catalog:     catalog,
		store:       store,
		generator:   batch.NewGenerator(store),
		counterRepo: counterRepo,
		batchRepo:   batchRepo,
		locker:      locker,
		maxBatch:    opts.MaxBatch,
		log:         log,
		newRunID:    func() string { return uuid.NewString() },
	}, nil
}

// GenerateLabels issues a batch of labels for a category.
func (s *LabelServiceImpl) GenerateLabels(ctx context.Context, req primary.GenerateLabelsRequest) (*primary.GenerateLabelsResponse, error) {
	cat, err := s.lookup(req.Category)
	if err != nil {
		return nil, err
	}

	guard := category.CanGenerate(category.GenerateContext{
		CategoryName:   cat.Name,
		RequestedCount: req.Count,
		MaxBatch:       s.maxBatch,
	})
	if !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", labelerr.ErrInvalidRequest, guard.Reason)
	}

	prefix, err := category.ResolvePrefix(cat, req.Prefix)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock counters: %w", err)
	}
	defer unlock()

	if err := s.refresh(ctx, cat.Name); err != nil {
		return nil, err
	}

	latest, err := s.batchRepo.GetLatest(ctx, cat.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to read last batch: %w", err)
	}
	batchID, err := s.batchRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch ID: %w", err)
	}

	before, _ := s.store.Entry(cat.Name)
	b, err := s.generator.Generate(cat, prefix, req.Count, req.Continuation)
	if err != nil {
		return nil, err
	}
	after, _ := s.store.Entry(cat.Name)

	runID, runStart, joined := s.newRunID(), b.StartCount, false
	if b.Continuation && latest != nil && latest.Prefix == b.Prefix && latest.EndCount == b.StartCount-1 {
		runID, runStart, joined = latest.RunID, latest.RunStart, true
	}

	record := &secondary.BatchRecord{
		ID:           batchID,
		RunID:        runID,
		Category:     cat.Name,
		Prefix:       b.Prefix,
		StartCount:   b.StartCount,
		EndCount:     b.EndCount,
		RunStart:     runStart,
		Continuation: joined,
		ActorID:      ctxutil.ActorFromContext(ctx),
	}
	if err := s.counterRepo.RecordBatch(ctx, entryToRecord(cat.Name, after), record); err != nil {
		s.generator.Restore(cat.Name, before)
		return nil, fmt.Errorf("failed to record batch: %w", err)
	}

	log := logger.C(ctx, s.log)
	if b.Reset {
		log.Info().Str("category", cat.Name).Str("prefix", b.Prefix).Int("digit_width", after.DigitWidth).
			Int("previous_total", before.IssuedTotal).Msg("prefix or digit width changed, counter reset")
	}
	log.Debug().Str("category", cat.Name).Str("batch", batchID).Str("run", runID).
		Int("start", b.StartCount).Int("end", b.EndCount).Bool("continuation", joined).Msg("batch issued")

	return s.batchToResponse(batchID, runID, runStart, joined, b), nil
}

// GetCounter retrieves the counter of one category.
func (s *LabelServiceImpl) GetCounter(ctx context.Context, categoryName string) (*primary.Counter, error) {
	cat, err := s.lookup(categoryName)
	if err != nil {
		return nil, err
	}
	if err := s.refresh(ctx, cat.Name); err != nil {
		return nil, err
	}
	return s.counterView(cat), nil
}

// ListCounters retrieves the counters of every catalog category.
func (s *LabelServiceImpl) ListCounters(ctx context.Context) ([]*primary.Counter, error) {
	records, err := s.counterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	for _, r := range records {
		s.generator.Restore(r.Category, recordToEntry(r))
	}

	cats := s.catalog.All()
	counters := make([]*primary.Counter, len(cats))
	for i, cat := range cats {
		counters[i] = s.counterView(cat)
	}
	return counters, nil
}

// ResetCounter zeroes a category counter.
func (s *LabelServiceImpl) ResetCounter(ctx context.Context, req primary.ResetCounterRequest) (*primary.Counter, error) {
	cat, err := s.lookup(req.Category)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock counters: %w", err)
	}
	defer unlock()

	if err := s.refresh(ctx, cat.Name); err != nil {
		return nil, err
	}

	before, _ := s.store.Entry(cat.Name)
	guard := category.CanResetCounter(category.ResetContext{
		CategoryName: cat.Name,
		IssuedTotal:  before.IssuedTotal,
		Force:        req.Force,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	s.generator.Reset(cat.Name)
	after, _ := s.store.Entry(cat.Name)
	if err := s.counterRepo.Save(ctx, entryToRecord(cat.Name, after)); err != nil {
		s.generator.Restore(cat.Name, before)
		return nil, fmt.Errorf("failed to save counter: %w", err)
	}

	logger.C(ctx, s.log).Info().Str("category", cat.Name).Int("previous_total", before.IssuedTotal).Msg("counter reset by hand")
	return s.counterView(cat), nil
}

// ListCategories retrieves the configured categories.
func (s *LabelServiceImpl) ListCategories(ctx context.Context) ([]*primary.Category, error) {
	cats := s.catalog.All()
	out := make([]*primary.Category, len(cats))
	for i, c := range cats {
		out[i] = &primary.Category{
			Name:          c.Name,
			Prefix:        c.Prefix,
			DigitWidth:    c.DigitWidth,
			Policy:        string(c.Policy),
			PrefixMutable: c.PrefixMutable,
			Description:   c.Description,
		}
	}
	return out, nil
}

// DecodeLabel recovers the count behind a printed label.
func (s *LabelServiceImpl) DecodeLabel(ctx context.Context, req primary.DecodeLabelRequest) (*primary.DecodedLabel, error) {
	cat, err := s.lookup(req.Category)
	if err != nil {
		return nil, err
	}
	if err := s.refresh(ctx, cat.Name); err != nil {
		return nil, err
	}
	entry, _ := s.store.Entry(cat.Name)

	prefix := req.Prefix
	if prefix == "" {
		prefix = cat.Prefix
	}
	if prefix == "" && entry.PrefixSeen {
		prefix = entry.LastPrefix
	}
	if prefix == "" {
		return nil, fmt.Errorf("%w: category %s needs a prefix to decode %q", labelerr.ErrInvalidRequest, cat.Name, req.Label)
	}

	count, err := label.Parse(req.Label, prefix, cat.DigitWidth, cat.Policy)
	if err != nil {
		return nil, err
	}

	samePrefix := !entry.PrefixSeen || entry.LastPrefix == prefix
	sameWidth := cat.Policy != label.PolicyPadded || entry.DigitWidth == 0 || entry.DigitWidth == cat.DigitWidth
	return &primary.DecodedLabel{
		Category: cat.Name,
		Prefix:   prefix,
		Label:    req.Label,
		Count:    count,
		Issued:   samePrefix && sameWidth && count <= entry.IssuedTotal,
	}, nil
}

// ListBatches retrieves issued batches, newest first.
func (s *LabelServiceImpl) ListBatches(ctx context.Context, filters primary.BatchFilters) ([]*primary.Batch, error) {
	name := filters.Category
	if name != "" {
		cat, err := s.lookup(name)
		if err != nil {
			return nil, err
		}
		name = cat.Name
	}

	records, err := s.batchRepo.List(ctx, secondary.BatchFilters{Category: name, Limit: filters.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	out := make([]*primary.Batch, len(records))
	for i, r := range records {
		out[i] = &primary.Batch{
			ID:           r.ID,
			RunID:        r.RunID,
			Category:     r.Category,
			Prefix:       r.Prefix,
			StartCount:   r.StartCount,
			EndCount:     r.EndCount,
			RunStart:     r.RunStart,
			Continuation: r.Continuation,
			ActorID:      r.ActorID,
			CreatedAt:    r.CreatedAt,
		}
	}
	return out, nil
}

// Helper methods

func (s *LabelServiceImpl) lookup(name string) (category.Category, error) {
	cat, ok := s.catalog.Lookup(name)
	if !ok {
		return category.Category{}, fmt.Errorf("%w: unknown category %q (known: %v)", labelerr.ErrInvalidRequest, name, s.catalog.Names())
	}
	return cat, nil
}

// refresh pulls the stored entry for a category into the in-memory store so
// that writes from other processes are not overwritten.
func (s *LabelServiceImpl) refresh(ctx context.Context, name string) error {
	record, err := s.counterRepo.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load counter: %w", err)
	}
	if record != nil {
		s.generator.Restore(name, recordToEntry(record))
	}
	return nil
}

func (s *LabelServiceImpl) counterView(cat category.Category) *primary.Counter {
	entry, _ := s.store.Entry(cat.Name)
	view := &primary.Counter{
		Category:    cat.Name,
		IssuedTotal: entry.IssuedTotal,
		LastPrefix:  entry.LastPrefix,
	}
	if cat.Policy == label.PolicyPadded {
		view.Capacity = suffix.Capacity(cat.DigitWidth)
	}

	prefix := cat.Prefix
	if cat.PrefixMutable {
		prefix = entry.LastPrefix
	}
	if prefix != "" {
		// The next batch restarts at 1 when the catalog moved the prefix or width.
		nextCount := entry.IssuedTotal + 1
		if s.store.WouldReset(cat.Name, prefix) ||
			(cat.Policy == label.PolicyPadded && s.store.WouldResetWidth(cat.Name, cat.DigitWidth)) {
			nextCount = 1
		}
		if next, err := label.Format(prefix, nextCount, cat.DigitWidth, cat.Policy); err == nil {
			view.NextLabel = next
		}
	}
	return view
}

func (s *LabelServiceImpl) batchToResponse(batchID, runID string, runStart int, joined bool, b batch.Batch) *primary.GenerateLabelsResponse {
	runSize := b.EndCount - runStart + 1
	labels := make([]*primary.Label, len(b.Labels))
	for i, text := range b.Labels {
		count := b.StartCount + i
		labels[i] = &primary.Label{
			Text:    text,
			Count:   count,
			Caption: label.CaseCaption(count-runStart+1, runSize),
		}
	}

	return &primary.GenerateLabelsResponse{
		BatchID:      batchID,
		RunID:        runID,
		Category:     b.Category,
		Prefix:       b.Prefix,
		StartCount:   b.StartCount,
		EndCount:     b.EndCount,
		RunStart:     runStart,
		Reset:        b.Reset,
		Continuation: joined,
		Labels:       labels,
	}
}

func recordToEntry(r *secondary.CounterRecord) counter.Entry {
	return counter.Entry{
		IssuedTotal: r.IssuedTotal,
		LastPrefix:  r.LastPrefix,
		PrefixSeen:  r.PrefixSeen,
		DigitWidth:  r.DigitWidth,
	}
}

func entryToRecord(name string, e counter.Entry) *secondary.CounterRecord {
	return &secondary.CounterRecord{
		Category:    name,
		IssuedTotal: e.IssuedTotal,
		LastPrefix:  e.LastPrefix,
		PrefixSeen:  e.PrefixSeen,
		DigitWidth:  e.DigitWidth,
	}
}

// Ensure LabelServiceImpl implements the interface.
var _ primary.LabelService = (*LabelServiceImpl)(nil)
