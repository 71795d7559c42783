// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Staging: From/Select start a Builder; By/ByProperty/DefaultTo/
//     OnDuplicate accumulate; nothing is checked until a Build* call.
//   - One validating step: every Build* entry point runs the full
//     validation (validators.go) before any element is touched, then the
//     chain pre-pass (impl_chain.go), then the partition (impl_index.go).
//   - Determinism: same source order, converters and options ⇒ identical
//     structure and identical duplicate resolution.
//   - Safety: never panic; return sentinel errors wrapped with the entry
//     point name; no partial structure escapes a failed build.

package builder

import (
	"github.com/katalvlaran/lvlookup/lookup"
)

// From starts a builder over source whose stored values are the elements
// themselves (identity selection). The slice header is kept only until the
// Build call; the built tables retain no reference to it.
//
// Complexity: O(1); all cost is in Build.
func From[E any](source []E) *Builder[E, E] {
	return &Builder[E, E]{
		source:   source,
		selector: func(e E) (E, error) { return e, nil },
	}
}

// Select starts a builder over source whose stored values are derived from
// each element by sel at the leaf level (the value-selection transform).
// A nil sel is reported by Build as ErrNilSelector.
func Select[E, T any](source []E, sel Selector[E, T]) *Builder[E, T] {
	return &Builder[E, T]{source: source, selector: sel}
}

// Build validates the staged configuration and constructs the full
// N-level structure, N being the number of staged converters. The result
// is untyped: intermediate values are lookup.Lookup[any] stored as any,
// the analogue of a wildcard nested lookup. Use lookup.As / lookup.AsNested
// for typed views, or BuildSingle / BuildNested for the common shapes.
//
// Errors: ErrEmptySource, ErrNilSelector, ErrNoConverters, ErrNilConverter,
// ErrTooManyLevels, ErrUnknownPolicy, ErrDuplicateKey (as
// *DuplicateKeyError), plus any converter/selector error wrapped with %w.
//
// Complexity: O(N·|source|) key extractions, O(|source|) temporary group
// storage per level; the recursion depth equals N ≤ LevelLimit.
func (b *Builder[E, T]) Build() (lookup.Lookup[any], error) {
	if err := b.validate(MethodBuild, 0); err != nil {
		return nil, err
	}
	return b.newIndexer(MethodBuild).run()
}

// BuildSingle constructs a fully typed single-level table. Exactly one
// converter must be staged; any other count fails with ErrLevelMismatch.
// The leaf default (if set) is attached directly — no chain is needed for
// a single level, since the leaf IS the default-bearing level.
func (b *Builder[E, T]) BuildSingle() (lookup.Lookup[T], error) {
	if err := b.validate(MethodBuildSingle, SingleLevel); err != nil {
		return nil, err
	}

	keys := make([]any, SingleLevel)
	entries, err := insertLeaf(b.source, b.converters[0], b.selector, b.policy, keys, 0, MethodBuildSingle)
	if err != nil {
		return nil, err
	}

	var opts []lookup.Option[T]
	if b.hasDef {
		opts = append(opts, lookup.WithDefault(b.def))
	}
	return lookup.New(entries, opts...), nil
}

// BuildNested constructs a typed two-level table. Exactly two converters
// must be staged; any other count fails with ErrLevelMismatch. The result
// is the untyped two-level structure projected through lookup.AsNested, so
// Get on a missing outer key still yields a navigable inner table whose
// Get surfaces the leaf default.
func (b *Builder[E, T]) BuildNested() (lookup.Lookup[lookup.Lookup[T]], error) {
	if err := b.validate(MethodBuildNested, NestedLevels); err != nil {
		return nil, err
	}
	root, err := b.newIndexer(MethodBuildNested).run()
	if err != nil {
		return nil, err
	}
	return lookup.AsNested[T](root), nil
}

// =============================================================================
// One-call conveniences for property-keyed tables
// =============================================================================

// Create builds an N-level lookup over source keyed by the named
// properties, outermost first. Equivalent to
// From(source).ByProperty(properties...).Build().
func Create[E any](source []E, properties ...string) (lookup.Lookup[any], error) {
	return From(source).ByProperty(properties...).Build()
}

// CreateSingle builds a typed single-level lookup over source keyed by the
// named property; the stored values are the elements themselves.
func CreateSingle[E any](source []E, property string) (lookup.Lookup[E], error) {
	return From(source).ByProperty(property).BuildSingle()
}

// CreateNested builds a typed two-level lookup over source keyed by first
// then second; the stored values are the elements themselves.
func CreateNested[E any](source []E, first, second string) (lookup.Lookup[lookup.Lookup[E]], error) {
	return From(source).ByProperty(first, second).BuildNested()
}
