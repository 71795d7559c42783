// Package lvlookup is your in-memory toolkit for building immutable,
// multi-level lookup tables over plain Go collections — index once,
// read forever, from any number of goroutines.
//
// 🚀 What is lvlookup?
//
//	A small, deterministic library that turns a flat slice of elements plus
//	an ordered list of key extractors into a nested, read-only index:
//		• Three access modes per table: Hunt (error), Find (comma-ok), Get (default)
//		• Multi-level indexing: key by state, then county, then anything — up to 10 levels
//		• A single leaf default that propagates through every level via a fallback chain
//		• Duplicate-key policies: fail fast (default), keep first, keep last
//		• Property-based extractors via reflection, or arbitrary converter functions
//
// ✨ Why choose lvlookup?
//
//   - Build once, read lock-free — tables never mutate after construction
//   - Rock-solid diagnostics — duplicate keys report the full key path and both values
//   - Sentinel errors everywhere — branch with errors.Is, never string matching
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	lookup/  — the Lookup[T] interface, map-backed and empty tables, typed cast views
//	builder/ — the staged builder and the recursive multi-level index construction
//	prop/    — reflection-based property key extractors
//
// Quick example:
//
//	tbl, err := builder.From(codes).ByProperty("State", "County").Build()
//	// tbl.Get("MS") is a Lookup; .Get("Greene") is the matching record.
//
// Dive into README.md and the package docs for the full access protocol,
// the default-chain semantics, and the duplicate-policy contract.
//
//	go get github.com/katalvlaran/lvlookup
package lvlookup
