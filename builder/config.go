// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// config.go — the accumulating Builder value and its staging methods.
//
// Design:
//   • Builder is the single source of truth for all construction knobs.
//   • Staging methods only record state; every check is deferred to the
//     one validating Build step (see validators.go), so a half-staged
//     builder is inert rather than dangerous.
//   • Defaults are deterministic: identity-equivalent selection is set by
//     From, the duplicate policy starts at DuplicateFail, no leaf default.

package builder

import (
	"github.com/katalvlaran/lvlookup/prop"
)

// Converter extracts one key value from an element; one converter per
// lookup level. A returned error aborts the whole build and propagates out
// of the Build call wrapped with position context.
//
// Converters must be pure and produce stable, comparable keys: key equality
// inside the built tables is exactly Go map equality over their output.
type Converter[E any] func(E) (any, error)

// Selector derives the stored value from an element at the leaf level.
// From stages an identity selector; Select stages a caller-provided one.
type Selector[E, T any] func(E) (T, error)

// DuplicatePolicy resolves leaf-level key collisions. Intermediate levels
// cannot collide: grouping merges equal keys by definition, so only the
// final scalar assignment can conflict.
type DuplicatePolicy uint8

const (
	// DuplicateFail aborts the build with a DuplicateKeyError. Default.
	DuplicateFail DuplicatePolicy = iota
	// DuplicateFirst keeps the entry that appeared first in source order.
	DuplicateFirst
	// DuplicateLast keeps the entry that appeared last in source order.
	DuplicateLast
)

// Builder accumulates the configuration of one lookup construction:
// the source collection, the value selector, the ordered key converters,
// the leaf default and the duplicate policy. It is ephemeral — the built
// tables retain no reference to it or to the source.
type Builder[E, T any] struct {
	source     []E
	selector   Selector[E, T]
	converters []Converter[E]
	def        T
	hasDef     bool
	policy     DuplicatePolicy

	// staged holds the first staging mistake (e.g. an empty property
	// name); Build surfaces it before any other validation.
	staged error
}

// DefaultTo sets the leaf default value returned by Get on absent keys at
// any level, via the fallback chain. The zero value of T is a legal
// default. Returns the builder for chaining.
func (b *Builder[E, T]) DefaultTo(def T) *Builder[E, T] {
	b.def = def
	b.hasDef = true
	return b
}

// OnDuplicate sets the leaf-level duplicate policy. The value is validated
// at Build time; unknown values fail with ErrUnknownPolicy.
func (b *Builder[E, T]) OnDuplicate(p DuplicatePolicy) *Builder[E, T] {
	b.policy = p
	return b
}

// By appends key converters, one lookup level each, in query order:
// the first converter staged becomes the outermost level.
func (b *Builder[E, T]) By(convs ...Converter[E]) *Builder[E, T] {
	b.converters = append(b.converters, convs...)
	return b
}

// ByProperty appends reflection-based key converters reading the named
// field or niladic method of each element (see the prop package). An empty
// name is recorded immediately and surfaced by Build with its position.
func (b *Builder[E, T]) ByProperty(names ...string) *Builder[E, T] {
	for _, name := range names {
		if name == "" {
			if b.staged == nil {
				pos := len(b.converters) + 1
				b.staged = wrapf(MethodByProperty, prop.ErrEmptyProperty,
					"%s property name is empty", ordinal(pos))
			}
			// Keep the slot so later positions stay accurate in diagnostics.
			b.converters = append(b.converters, nil)
			continue
		}
		b.converters = append(b.converters, prop.Key[E](name))
	}
	return b
}
