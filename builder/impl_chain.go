// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// impl_chain.go — the default-propagation chain pre-pass.
//
// The crux of coherent default semantics in a multi-level structure: one
// empty table is pre-built per depth, deepest first, so that Get chains
// through nested levels surface the single configured leaf default without
// the default being duplicated into every table.
//
// Shape (N levels, depths 0..N-1):
//   • chain[N-1] carries the configured leaf default (possibly unset).
//   • chain[d] for d < N-1 carries chain[d+1] as its default value, so
//     Get on it yields the next table down the chain.
//   • every intermediate data table built at depth d references (never
//     copies) chain[d] as its fallback.
//
// Worked example, two levels with default D and a missing outer key k1:
// root.Get(k1) finds no entry and no own default, delegates to its
// fallback chain[0], whose Get yields chain[1]; chain[1].Get(k2) yields D.
//
// The chain MUST be complete before any element is processed: each
// intermediate table built by the partition references a chain entry that
// has to exist already.

package builder

import "github.com/katalvlaran/lvlookup/lookup"

// buildChain pre-computes the per-depth empty tables for an n-level build.
// Complexity: O(n) time and space, n ≤ LevelLimit.
func buildChain[T any](n int, def T, hasDef bool) []lookup.Lookup[any] {
	chain := make([]lookup.Lookup[any], n)

	// Deepest entry: terminates the chain with the leaf default, if any.
	var leafOpts []lookup.Option[any]
	if hasDef {
		leafOpts = append(leafOpts, lookup.WithDefault[any](def))
	}
	chain[n-1] = lookup.Empty(leafOpts...)

	// Every shallower entry continues the chain by handing out the next
	// table as its default value.
	for d := n - 2; d >= 0; d-- {
		chain[d] = lookup.Empty(lookup.WithDefault[any](chain[d+1]))
	}
	return chain
}
