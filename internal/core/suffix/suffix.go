// Package suffix contains the pure codec between an issued count and the
// printable suffix stamped on a label.
// This is part of the Functional Core - no I/O, only pure functions.
//
// A suffix has two disjoint forms. Counts from 1 to MaxNumeric(width) print as
// width zero-padded digits. Larger counts print as one letter followed by
// width-1 zero-padded digits, walking 'A' through 'Z' one numeric range at a
// time. The letter never wraps: Capacity(width) is the last encodable count.
package suffix

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/example/yms/internal/core/labelerr"
)

// MaxDigitWidth is the widest suffix whose capacity still fits in an int64.
const MaxDigitWidth = 17

// Letters is the number of lettered overflow ranges ('A' through 'Z').
const Letters = 26

var (
	numericPattern  = regexp.MustCompile(`^\d+$`)
	overflowPattern = regexp.MustCompile(`^([A-Z])(\d+)$`)
)

// ValidateWidth rejects digit widths the codec cannot represent.
func ValidateWidth(width int) error {
	if width < 1 || width > MaxDigitWidth {
		return fmt.Errorf("%w: digit width %d outside 1..%d", labelerr.ErrInvalidConfiguration, width, MaxDigitWidth)
	}
	return nil
}

// MaxNumeric returns 10^width - 1, the largest count printed in numeric form.
// The width must already be valid.
func MaxNumeric(width int) int {
	m := 1
	for i := 0; i < width; i++ {
		m *= 10
	}
	return m - 1
}

// Capacity returns the largest count Encode accepts for width: the numeric
// range followed by 26 lettered ranges.
func Capacity(width int) int {
	return (Letters + 1) * MaxNumeric(width)
}

// Encode turns a 1-based count into its suffix.
func Encode(count, width int) (string, error) {
	if err := ValidateWidth(width); err != nil {
		return "", err
	}
	if count < 1 {
		return "", fmt.Errorf("%w: count %d must be at least 1", labelerr.ErrInvalidRequest, count)
	}

	m := MaxNumeric(width)
	if count <= m {
		return fmt.Sprintf("%0*d", width, count), nil
	}
	if count > Capacity(width) {
		return "", fmt.Errorf("%w: count %d exceeds %d for digit width %d", labelerr.ErrCapacityExceeded, count, Capacity(width), width)
	}

	beyond := count - m
	letter := byte('A' + (beyond-1)/m)
	numeric := (beyond-1)%m + 1

	// Width 1 pads to zero digits: "A1".."Z9".
	return fmt.Sprintf("%c%0*d", letter, width-1, numeric), nil
}

// Decode turns a suffix back into its count. Only canonical suffixes, exactly
// as Encode would print them, are accepted.
func Decode(s string, width int) (int, error) {
	if err := ValidateWidth(width); err != nil {
		return 0, err
	}

	count, ok := parse(s, width)
	if !ok {
		return 0, invalidSuffix(s, width)
	}

	canonical, err := Encode(count, width)
	if err != nil || canonical != s {
		return 0, invalidSuffix(s, width)
	}
	return count, nil
}

// parse applies the decoding arithmetic without checking canonical form.
func parse(s string, width int) (int, bool) {
	if numericPattern.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	match := overflowPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}
	numeric, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, false
	}

	m := MaxNumeric(width)
	if numeric < 1 || numeric > m {
		return 0, false
	}
	a := int(match[1][0]-'A') + 1
	return m + (a-1)*m + numeric, true
}

func invalidSuffix(s string, width int) error {
	return fmt.Errorf("%w: %q is not a suffix of digit width %d", labelerr.ErrInvalidSuffix, s, width)
}
