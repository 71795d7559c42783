// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// impl_index.go — the recursive multi-level partition.
//
// Algorithm (depth d over N staged converters):
//   • d < N-1: apply converter[d] to every element of the current group,
//     splitting it into sub-groups keyed by the converter's output while
//     preserving each element's relative order inside its sub-group (the
//     leaf's duplicate resolution depends on input order). Recurse into
//     each sub-group, record the key at position d of the key path, and
//     assemble an intermediate table whose fallback is chain[d].
//   • d = N-1: insert selected values into the leaf map under the
//     duplicate policy; attach the leaf default directly.
//
// Groups are per-call temporaries, discarded once the child table exists;
// nothing is shared or mutated across recursive calls except the key-path
// scratch, which is copied into any DuplicateKeyError it reaches.

package builder

import "github.com/katalvlaran/lvlookup/lookup"

// indexer carries the resolved configuration of one build run: converters,
// selector, policy, the pre-built fallback chain and the key-path scratch.
type indexer[E, T any] struct {
	method   string
	source   []E
	selector Selector[E, T]
	convs    []Converter[E]
	policy   DuplicatePolicy
	def      T
	hasDef   bool

	chain []lookup.Lookup[any]
	keys  []any // one slot per depth; diagnostic key path
}

// newIndexer snapshots the validated builder state for one run.
func (b *Builder[E, T]) newIndexer(method string) *indexer[E, T] {
	return &indexer[E, T]{
		method:   method,
		source:   b.source,
		selector: b.selector,
		convs:    b.converters,
		policy:   b.policy,
		def:      b.def,
		hasDef:   b.hasDef,
		keys:     make([]any, len(b.converters)),
	}
}

// run pre-builds the fallback chain, then partitions the whole source from
// depth 0. The chain pre-pass MUST precede partitioning (see impl_chain.go).
func (x *indexer[E, T]) run() (lookup.Lookup[any], error) {
	x.chain = buildChain(len(x.convs), x.def, x.hasDef)
	return x.partition(x.source, 0)
}

// partition builds the table for one group at the given depth.
func (x *indexer[E, T]) partition(group []E, depth int) (lookup.Lookup[any], error) {
	conv := x.convs[depth]
	if depth == len(x.convs)-1 {
		return x.leaf(group, conv, depth)
	}

	// Split the group by this level's key, keeping input order within each
	// sub-group and remembering first-seen key order for deterministic
	// construction (not a query-visible property, but it keeps duplicate
	// diagnostics reproducible run to run).
	subs := make(map[any][]E, len(group))
	order := make([]any, 0, len(group))
	for _, e := range group {
		k, err := conv(e)
		if err != nil {
			return nil, wrapf(x.method, err, "%s key converter failed", ordinal(depth+1))
		}
		if _, seen := subs[k]; !seen {
			order = append(order, k)
		}
		subs[k] = append(subs[k], e)
	}

	// Recurse into every sub-group, recording this level's key so a leaf
	// collision can report the full path.
	entries := make(map[any]any, len(subs))
	for _, k := range order {
		x.keys[depth] = k
		child, err := x.partition(subs[k], depth+1)
		if err != nil {
			return nil, err
		}
		entries[k] = child
	}

	// Intermediate tables carry no default of their own; absent keys fall
	// through to this depth's chain entry.
	return lookup.New(entries, lookup.WithFallback[any](x.chain[depth])), nil
}

// leaf builds the innermost table for one group, applying the selector and
// the duplicate policy in input order.
func (x *indexer[E, T]) leaf(group []E, conv Converter[E], depth int) (lookup.Lookup[any], error) {
	entries, err := insertLeaf(group, conv, x.anySelector(), x.policy, x.keys, depth, x.method)
	if err != nil {
		return nil, err
	}

	var opts []lookup.Option[any]
	if x.hasDef {
		opts = append(opts, lookup.WithDefault[any](x.def))
	}
	return lookup.New(entries, opts...), nil
}

// anySelector erases the selector's value type for the untyped leaf map.
func (x *indexer[E, T]) anySelector() Selector[E, any] {
	return func(e E) (any, error) {
		return x.selector(e)
	}
}

// insertLeaf performs leaf-level insertion under the duplicate policy. It
// is generic over the stored value type so the typed BuildSingle path and
// the untyped recursion share one implementation.
//
// keys is the key-path scratch of the current recursion (depth slots
// filled above the leaf); on a DuplicateFail collision the leaf key is
// recorded and the whole path is copied into the returned error.
func insertLeaf[E, V any](group []E, conv Converter[E], sel Selector[E, V],
	policy DuplicatePolicy, keys []any, depth int, method string) (map[any]V, error) {

	entries := make(map[any]V, len(group))
	for _, e := range group {
		v, err := sel(e)
		if err != nil {
			return nil, wrapf(method, err, "value selector failed")
		}
		k, err := conv(e)
		if err != nil {
			return nil, wrapf(method, err, "%s key converter failed", ordinal(depth+1))
		}

		prev, exists := entries[k]
		if !exists {
			entries[k] = v
			continue
		}
		switch policy {
		case DuplicateFirst:
			// Keep the existing entry, discard the new one.
		case DuplicateLast:
			entries[k] = v
		default: // DuplicateFail
			keys[depth] = k
			return nil, &DuplicateKeyError{
				KeyPath:  append([]any(nil), keys...),
				Existing: prev,
				Incoming: v,
			}
		}
	}
	return entries, nil
}
