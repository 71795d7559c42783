// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public constructors and functional options for lookup tables.
// Policy:
//   - No algorithms here; construction copies inputs and freezes state.
//   - Options are applied left-to-right; the last value wins.
//   - Constructors are infallible by contract: a nil map is a legal empty
//     table in Go, so there is nothing to validate at this boundary.

package lookup

// Option customizes a table at construction time.
// Applying N options costs O(N) time, O(1) space.
type Option[T any] func(*settings[T])

// settings aggregates the optional construction knobs shared by New and
// Empty. It is resolved once per constructor call and then discarded.
type settings[T any] struct {
	def      T
	hasDef   bool
	fallback Lookup[T]
}

// WithDefault sets the table's own default value, returned by Get when the
// key is absent. The zero value of T is a legal default: setting it still
// marks the default as present.
func WithDefault[T any](def T) Option[T] {
	return func(s *settings[T]) {
		s.def = def
		s.hasDef = true
	}
}

// WithFallback sets the outer table consulted by Get when the key is absent
// and no own default is set. A nil fallback is ignored (no-op), keeping the
// zero configuration valid.
func WithFallback[T any](fb Lookup[T]) Option[T] {
	return func(s *settings[T]) {
		if fb == nil {
			return
		}
		s.fallback = fb
	}
}

// New creates an immutable map-backed Lookup from the given entries.
// The map is copied, so the caller may keep mutating its own copy; the
// returned table never changes. A nil map yields a table with no entries.
//
// Complexity: O(len(entries)) time and space.
func New[T any](entries map[any]T, opts ...Option[T]) Lookup[T] {
	s := resolve(opts...)

	// Copy once; the snapshot is the table's permanent state.
	snap := make(map[any]T, len(entries))
	for k, v := range entries {
		snap[k] = v
	}

	return &table[T]{
		entries:  snap,
		def:      s.def,
		hasDef:   s.hasDef,
		fallback: s.fallback,
	}
}

// Empty creates a degenerate Lookup with no entries, used to carry a
// default value or to continue a fallback chain. Hunt always fails with
// ErrKeyNotFound and Find always reports absent; only Get is productive.
//
// Complexity: O(1).
func Empty[T any](opts ...Option[T]) Lookup[T] {
	s := resolve(opts...)
	return &empty[T]{def: s.def, hasDef: s.hasDef, fallback: s.fallback}
}

// resolve applies options in order onto zeroed settings.
func resolve[T any](opts ...Option[T]) settings[T] {
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
