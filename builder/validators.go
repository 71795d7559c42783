// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// validators.go — the single validating step run by every Build* entry
// point, before any element is read or partitioned.
//
// Ordering (tie-break guidance when multiple mistakes coexist):
//   • staged errors first (recorded during ByProperty),
//   • then the source (ErrEmptySource),
//   • then the selector (ErrNilSelector),
//   • then converter count (ErrNoConverters / ErrTooManyLevels) and
//     per-position nil checks (ErrNilConverter, ordinal-named),
//   • then the duplicate policy (ErrUnknownPolicy),
//   • finally the shape constraint of the entry point (ErrLevelMismatch).

package builder

// validate checks the complete staged configuration. want is the exact
// converter count required by the entry point, or 0 for any count within
// [1, LevelLimit]. All failures are wrapped with the method name.
//
// Complexity: O(len(converters)).
func (b *Builder[E, T]) validate(method string, want int) error {
	if b.staged != nil {
		return b.staged
	}
	if len(b.source) == 0 {
		return wrapf(method, ErrEmptySource, "source has %d elements", len(b.source))
	}
	if b.selector == nil {
		return wrapf(method, ErrNilSelector, "Select received a nil selector")
	}
	if len(b.converters) == 0 {
		return wrapf(method, ErrNoConverters, "stage converters with By or ByProperty")
	}
	if len(b.converters) > LevelLimit {
		return wrapf(method, ErrTooManyLevels, "%d converters staged, limit is %d",
			len(b.converters), LevelLimit)
	}
	for i, c := range b.converters {
		if c == nil {
			return wrapf(method, ErrNilConverter, "%s key converter is nil", ordinal(i+1))
		}
	}
	if b.policy > DuplicateLast {
		return wrapf(method, ErrUnknownPolicy, "policy value %d", b.policy)
	}
	if want > 0 && len(b.converters) != want {
		return wrapf(method, ErrLevelMismatch, "%d converters staged, %s requires exactly %d",
			len(b.converters), method, want)
	}
	return nil
}
