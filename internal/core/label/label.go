// Package label composes category prefixes with count suffixes into the
// final label strings printed on physical units.
// This is part of the Functional Core - no I/O, only pure functions.
package label

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/yms/internal/core/labelerr"
	"github.com/example/yms/internal/core/suffix"
)

// Policy selects how a category turns a count into a label.
type Policy string

const (
	// PolicyPadded appends the fixed-width suffix codec output: SBX0001.
	PolicyPadded Policy = "padded"
	// PolicySimple appends a dash and the bare count: IN987098-1.
	PolicySimple Policy = "simple"
)

// ParsePolicy maps a configured policy name to a Policy.
// An empty name selects PolicyPadded.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyPadded:
		return PolicyPadded, nil
	case PolicySimple:
		return PolicySimple, nil
	default:
		return "", fmt.Errorf("%w: unknown label policy %q", labelerr.ErrInvalidConfiguration, name)
	}
}

// Format returns the label for count under the given policy.
func Format(prefix string, count, width int, policy Policy) (string, error) {
	switch policy {
	case PolicyPadded:
		s, err := suffix.Encode(count, width)
		if err != nil {
			return "", err
		}
		return prefix + s, nil
	case PolicySimple:
		if count < 1 {
			return "", fmt.Errorf("%w: count %d must be at least 1", labelerr.ErrInvalidRequest, count)
		}
		return prefix + "-" + strconv.Itoa(count), nil
	default:
		return "", fmt.Errorf("%w: unknown label policy %q", labelerr.ErrInvalidConfiguration, policy)
	}
}

// Parse recovers the count from a label produced by Format with the same
// prefix, width and policy.
func Parse(lbl, prefix string, width int, policy Policy) (int, error) {
	rest, ok := strings.CutPrefix(lbl, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: label %q does not start with prefix %q", labelerr.ErrInvalidSuffix, lbl, prefix)
	}

	switch policy {
	case PolicyPadded:
		return suffix.Decode(rest, width)
	case PolicySimple:
		digits, ok := strings.CutPrefix(rest, "-")
		if !ok {
			return 0, fmt.Errorf("%w: label %q has no '-' after prefix %q", labelerr.ErrInvalidSuffix, lbl, prefix)
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || strconv.Itoa(n) != digits {
			return 0, fmt.Errorf("%w: %q is not a case number", labelerr.ErrInvalidSuffix, digits)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unknown label policy %q", labelerr.ErrInvalidConfiguration, policy)
	}
}

// CaseCaption renders the "Case k of N" line printed under a label.
func CaseCaption(k, n int) string {
	return fmt.Sprintf("Case %d of %d", k, n)
}
