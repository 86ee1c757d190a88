// Package batch turns a print request into an ordered run of labels and
// advances the category counter by the batch size.
package batch

import (
	"fmt"
	"sync"

	"github.com/example/yms/internal/core/category"
	"github.com/example/yms/internal/core/counter"
	"github.com/example/yms/internal/core/label"
	"github.com/example/yms/internal/core/labelerr"
	"github.com/example/yms/internal/core/suffix"
)

// Batch is one contiguous run of labels produced by a single request.
type Batch struct {
	Category     string
	Prefix       string
	Labels       []string
	StartCount   int
	EndCount     int
	Reset        bool // The prefix or digit width changed and the counter restarted at 1
	Continuation bool // Numbered onward from a previous batch with the same prefix
}

// Size returns the number of labels in the batch.
func (b Batch) Size() int {
	return b.EndCount - b.StartCount + 1
}

// Generator serializes batch requests against a counter store so that the
// read of the current total and the advance happen as one step.
type Generator struct {
	mu    sync.Mutex
	store *counter.Store
}

// NewGenerator creates a Generator over store.
func NewGenerator(store *counter.Store) *Generator {
	return &Generator{store: store}
}

// Generate issues requested labels for cat under prefix.
//
// A continuation whose prefix or digit width no longer matches the last
// observed one is issued as a fresh run. Rejected requests leave the store
// untouched.
func (g *Generator) Generate(cat category.Category, prefix string, requested int, continuation bool) (Batch, error) {
	if requested <= 0 {
		return Batch{}, fmt.Errorf("%w: batch size %d must be positive", labelerr.ErrInvalidRequest, requested)
	}
	if err := category.Validate(cat); err != nil {
		return Batch{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	padded := cat.Policy == label.PolicyPadded
	current := g.store.CurrentTotal(cat.Name)
	if g.store.WouldReset(cat.Name, prefix) || (padded && g.store.WouldResetWidth(cat.Name, cat.DigitWidth)) {
		current = 0
	}
	start := current + 1
	end := current + requested

	if padded && end > suffix.Capacity(cat.DigitWidth) {
		return Batch{}, fmt.Errorf("%w: %s would reach count %d, limit is %d at digit width %d",
			labelerr.ErrCapacityExceeded, cat.Name, end, suffix.Capacity(cat.DigitWidth), cat.DigitWidth)
	}

	labels := make([]string, 0, requested)
	for c := start; c <= end; c++ {
		l, err := label.Format(prefix, c, cat.DigitWidth, cat.Policy)
		if err != nil {
			return Batch{}, err
		}
		labels = append(labels, l)
	}

	reset := g.store.ObservePrefix(cat.Name, prefix)
	if padded && g.store.ObserveWidth(cat.Name, cat.DigitWidth) {
		reset = true
	}
	total, err := g.store.Advance(cat.Name, requested)
	if err != nil {
		return Batch{}, err
	}

	return Batch{
		Category:     cat.Name,
		Prefix:       prefix,
		Labels:       labels,
		StartCount:   start,
		EndCount:     total,
		Reset:        reset,
		Continuation: continuation && !reset,
	}, nil
}

// Reset zeroes a category counter between batches.
func (g *Generator) Reset(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.store.Reset(name)
}

// Restore puts back a category entry captured before a batch, for hosts
// that fail to persist the batch after issuing it.
func (g *Generator) Restore(name string, e counter.Entry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.store.Restore(name, e)
}
