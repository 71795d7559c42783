// Package lookup provides the immutable, read-only keyed table at the heart
// of lvlookup, with three access modes that differ only in their
// absent-key behavior.
//
// The central abstraction is Lookup[T], a mapping from opaque comparable
// keys to values of a uniform type T:
//
//   - Hunt(key) (T, error) — strict access; absent keys fail with
//     ErrKeyNotFound and defaults are never consulted.
//   - Find(key) (T, bool)  — tolerant access; absent keys yield the zero
//     value and ok == false, defaults are never consulted.
//   - Get(key) T           — safe access; absent keys yield the table's own
//     default value if set, else delegate to its fallback table, else the
//     zero value.
//
// Two implementations exist:
//
//   - the map-backed table created by New, holding real entries, and
//   - the degenerate empty table created by Empty, holding no entries at
//     all; it exists purely to carry a default value or to continue a
//     fallback chain across the levels of a multi-level structure.
//
// In a multi-level structure (see the builder package) the value type of an
// intermediate level is itself a Lookup, so queries chain naturally:
//
//	record := root.Get("MS").Get("Greene")
//
// Because Get on a missing key returns a pre-built empty table rather than
// nil, such chains never panic and surface the single configured leaf
// default no matter at which level the key went missing.
//
// Immutability contract: a table's entries, default and fallback are fixed
// at construction; New copies the supplied map. All three access modes are
// pure reads, so any number of goroutines may query a table concurrently
// without locking.
//
// Errors:
//
//	ErrKeyNotFound - Hunt was called with a key the table does not contain.
package lookup
