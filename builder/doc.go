// Package builder turns a flat collection of elements plus an ordered list
// of key extractors into an immutable, multi-level lookup.Lookup structure.
// It lives alongside the lookup package to centralize staging, validation,
// duplicate-key policy and the default-propagation chain, keeping the core
// table type free of construction logic.
//
// The package offers the following key components:
//
//   - Staging primitives:
//     – Builder[E, T]:     accumulating value object; one validating Build step.
//     – From(source):      start from a collection, values are the elements.
//     – Select(source, f): start from a collection, values derived by f.
//   - Key extraction:
//     – Converter[E]:      func(E) (any, error) — one key per level.
//     – By(convs...):      append converter levels in order.
//     – ByProperty(names...): reflection-based levels via the prop package.
//   - Duplicate policies (leaf level only):
//     – DuplicateFail:     abort the build with a DuplicateKeyError (default).
//     – DuplicateFirst:    keep the value that arrived first.
//     – DuplicateLast:     keep the value that arrived last.
//   - Build entry points:
//     – Build():           N-level result as lookup.Lookup[any].
//     – BuildSingle():     exactly one level, fully typed lookup.Lookup[T].
//     – BuildNested():     exactly two levels, lookup.Lookup[lookup.Lookup[T]].
//   - One-call conveniences:
//     – Create / CreateSingle / CreateNested for property-keyed tables.
//   - Shared constants:
//     – LevelLimit, SingleLevel, NestedLevels.
//     – MethodBuild, MethodBuildSingle, … tokens for error context.
//
// Construction algorithm (impl_index.go): the source is partitioned
// recursively, one extractor per depth, preserving each element's relative
// order inside its group so that duplicate resolution at the leaf matches
// input order. Before any element is processed, a chain of empty tables is
// pre-built (impl_chain.go), one per depth, so that a single configured
// leaf default surfaces through Get at every level without being copied
// into each table.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - All build-time failures are fatal: no partial structure is returned.
//   - Extractor and selector errors propagate out of Build wrapped with %w.
//   - DuplicateKeyError carries the full key path and both colliding values.
//
// The build call reads the source exactly once and retains no reference to
// it; the returned tables are immutable and safe for unbounded concurrent
// readers.
package builder
