// Package counter holds the per-category issued-count state machine.
//
// A Store maps each category name to the highest count issued so far and the
// prefix and digit width last observed for it. Observing a different prefix or
// width zeroes the count, advancing adds a batch size. The store is in-memory only; hosts that want
// durability seed NewStore with a State they loaded and save entries back.
package counter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/example/yms/internal/core/labelerr"
)

// Entry is the counter state of one category.
type Entry struct {
	IssuedTotal int
	LastPrefix  string
	PrefixSeen  bool // LastPrefix has been observed at least once
	DigitWidth  int  // Width the current run was issued under, 0 if never observed
}

// State maps category names to their entries.
type State map[string]Entry

// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewStore returns a store with a zero entry for every name, overlaid with
// any entries from initial.
func NewStore(names []string, initial State) *Store {
	s := &Store{entries: make(map[string]Entry, len(names)+len(initial))}
	for _, name := range names {
		s.entries[name] = Entry{}
	}
	for name, e := range initial {
		if e.IssuedTotal < 0 {
			e.IssuedTotal = 0
		}
		s.entries[name] = e
	}
	return s
}

// CurrentTotal returns the last issued count for the category, 0 if none.
func (s *Store) CurrentTotal(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[name].IssuedTotal
}

// ObservePrefix records prefix for the category and reports whether the
// counter was reset because it differs from the previously observed prefix.
// The first observation only records the prefix.
func (s *Store) ObservePrefix(name, prefix string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[name]
	if e.PrefixSeen && e.LastPrefix == prefix {
		return false
	}

	reset := e.PrefixSeen
	if reset {
		e.IssuedTotal = 0
	}
	e.LastPrefix = prefix
	e.PrefixSeen = true
	s.entries[name] = e
	return reset
}

// WouldReset reports whether ObservePrefix(name, prefix) would reset the
// counter, without recording anything.
func (s *Store) WouldReset(name, prefix string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[name]
	return e.PrefixSeen && e.LastPrefix != prefix
}

// ObserveWidth records the digit width for the category and reports whether
// the counter was reset because it differs from the previously observed
// width. Labels of one run never mix widths.
func (s *Store) ObserveWidth(name string, width int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[name]
	if e.DigitWidth == width {
		return false
	}

	reset := e.DigitWidth != 0
	if reset {
		e.IssuedTotal = 0
	}
	e.DigitWidth = width
	s.entries[name] = e
	return reset
}

// WouldResetWidth reports whether ObserveWidth(name, width) would reset the
// counter, without recording anything.
func (s *Store) WouldResetWidth(name string, width int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[name]
	return e.DigitWidth != 0 && e.DigitWidth != width
}

// Advance adds by to the category total and returns the new total.
func (s *Store) Advance(name string, by int) (int, error) {
	if by <= 0 {
		return 0, fmt.Errorf("%w: advance by %d must be positive", labelerr.ErrInvalidRequest, by)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[name]
	e.IssuedTotal += by
	s.entries[name] = e
	return e.IssuedTotal, nil
}

// Reset zeroes the category total. The observed prefix is kept.
func (s *Store) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[name]
	e.IssuedTotal = 0
	s.entries[name] = e
}

// Entry returns the category entry and whether the store knows the category.
func (s *Store) Entry(name string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[name]
	return e, ok
}

// Restore overwrites the category entry, undoing a mutation whose effects
// could not be made durable.
func (s *Store) Restore(name string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = e
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(State, len(s.entries))
	for name, e := range s.entries {
		out[name] = e
	}
	return out
}

// Names returns the known category names, sorted.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
