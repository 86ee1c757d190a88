// Package labelerr holds the error taxonomy shared by the label numbering core.
// Every error returned by the core wraps exactly one of these sentinels, so
// callers classify failures with errors.Is.
package labelerr

import "errors"

var (
	// ErrInvalidConfiguration is returned for a category descriptor that can
	// never produce labels (digit width below 1, unknown policy).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidRequest is returned for a request the caller can correct
	// (batch size of zero or less, count below 1, prefix not allowed).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidSuffix is returned when decoding a string that is neither a
	// numeric nor a letter+digits suffix for the given width.
	ErrInvalidSuffix = errors.New("invalid suffix")

	// ErrCapacityExceeded is returned when a count lies beyond the last
	// lettered range ('Z') for the digit width.
	ErrCapacityExceeded = errors.New("category capacity exceeded")
)
