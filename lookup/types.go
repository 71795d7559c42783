// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Core Lookup[T] contract, concrete table types and sentinel errors.
// Policy:
//   - Tables are immutable after construction; every method is a pure read.
//   - Key equality is whatever Go map equality gives for the extractor's
//     output type; keys must therefore be comparable values.
//   - Absent-key behavior is the ONLY difference between the three modes.

package lookup

import "errors"

// ErrKeyNotFound indicates that Hunt was called with a key the table does
// not contain. Hunt never consults defaults or fallbacks.
// Usage: if errors.Is(err, lookup.ErrKeyNotFound) { /* key absent */ }.
var ErrKeyNotFound = errors.New("lookup: key not found")

// Lookup is an immutable, read-only mapping from opaque comparable keys to
// values of type T. In multi-level structures T is itself a Lookup, so the
// same three-mode protocol applies at every level.
//
// All implementations in this package are safe for unbounded concurrent
// readers: construction fully materializes the table, and no method
// mutates state.
type Lookup[T any] interface {
	// Hunt returns the value associated with key, or the zero value and
	// ErrKeyNotFound when key is absent. Defaults are never consulted.
	Hunt(key any) (T, error)

	// Find returns the value associated with key and true, or the zero
	// value and false when key is absent. Defaults are never consulted.
	Find(key any) (T, bool)

	// Get returns the value associated with key when present; otherwise
	// the table's own default value if one is set; otherwise it delegates
	// to the fallback table; otherwise the zero value of T.
	Get(key any) T
}

// table is the map-backed Lookup implementation holding real entries.
// It carries an optional default value (hasDef guards it, since the zero
// value of T is a legal default) and an optional fallback table consulted
// by Get only when the key is absent and no own default is set.
type table[T any] struct {
	entries  map[any]T
	def      T
	hasDef   bool
	fallback Lookup[T]
}

// empty is the degenerate Lookup with no entries. It either terminates a
// fallback chain (carrying the configured leaf default) or continues it
// (carrying the next chain table as its default value).
type empty[T any] struct {
	def      T
	hasDef   bool
	fallback Lookup[T]
}

// zero returns the zero value of T; the canonical "null sentinel" of the
// access protocol.
func zero[T any]() T {
	var z T
	return z
}
