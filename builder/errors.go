// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed, plus one
//     structured type (DuplicateKeyError) whose diagnostics demand payload.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Entry points attach context using %w (see wrapf in helpers.go).
//   • Every validation failure is raised before any partitioning occurs;
//     no partial lookup structure is ever returned.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySource indicates that the source collection is nil or contains no
// elements. A lookup over nothing has no meaningful shape.
// Usage: if errors.Is(err, ErrEmptySource) { /* supply elements */ }.
var ErrEmptySource = errors.New("builder: source must contain at least one element")

// ErrNilSelector indicates that Select was given a nil value-selection
// function. Use From when the elements themselves are the stored values.
var ErrNilSelector = errors.New("builder: value selector is nil")

// ErrNoConverters indicates that Build was invoked before any key
// converter was staged via By or ByProperty.
var ErrNoConverters = errors.New("builder: at least one key converter is required")

// ErrNilConverter indicates that a nil Converter was staged. The wrapped
// context names the offending position ("2nd key converter is nil").
var ErrNilConverter = errors.New("builder: key converter is nil")

// ErrTooManyLevels indicates that more than LevelLimit key converters were
// staged. The cap bounds recursion depth by contract.
var ErrTooManyLevels = errors.New("builder: level limit exceeded")

// ErrUnknownPolicy indicates that OnDuplicate received a DuplicatePolicy
// value outside the declared constants.
var ErrUnknownPolicy = errors.New("builder: unknown duplicate policy")

// ErrLevelMismatch indicates that BuildSingle or BuildNested was invoked
// with a converter count other than the shape it produces (1 or 2).
var ErrLevelMismatch = errors.New("builder: converter count does not match requested shape")

// ErrDuplicateKey is the sentinel carried by every DuplicateKeyError;
// branch with errors.Is and unwrap with errors.As for the diagnostics.
var ErrDuplicateKey = errors.New("builder: duplicate key")

// DuplicateKeyError reports a leaf-level key collision under the
// DuplicateFail policy. It names the complete key path (one key per level,
// outermost first) and both selected values, so the caller can identify
// exactly which two input elements collided and at which key combination.
type DuplicateKeyError struct {
	// KeyPath holds the key value recorded at each depth, outermost first.
	KeyPath []any
	// Existing is the selected value already stored under the key path.
	Existing any
	// Incoming is the selected value of the element that collided.
	Incoming any
}

// Error renders the full diagnostic, numbering each key by its
// human-ordinal position in the hierarchy.
func (e *DuplicateKeyError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder: duplicate key at ")
	for i, k := range e.KeyPath {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s key %v", ordinal(i+1), k)
	}
	fmt.Fprintf(&sb, ": existing value %v collides with incoming value %v", e.Existing, e.Incoming)
	return sb.String()
}

// Unwrap ties the structured error to the ErrDuplicateKey sentinel so that
// errors.Is(err, ErrDuplicateKey) holds for every collision.
func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }
