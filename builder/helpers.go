// Package builder internal helpers shared by staging, validation and the
// index construction.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap sentinels with wrapf for uniform reporting.
//   - Readability: explicit naming, minimal nesting, consistent style.
package builder

import (
	"fmt"
	"strconv"
)

// wrapf attaches method context and a formatted message to a sentinel,
// preserving it for errors.Is via %w. The result reads
// "<Method>: <message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func wrapf(method string, sentinel error, format string, args ...any) error {
	// Build the inner message first, then wrap the sentinel once.
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// ordinal renders a 1-based position as a human ordinal ("1st", "2nd",
// "3rd", "4th", ..., "11th", "21st"), used to name key positions in
// diagnostics.
func ordinal(n int) string {
	suffix := "th"
	// 11th–13th are irregular; every other number follows its last digit.
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
