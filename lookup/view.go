// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Typed, non-copying cast views over untyped multi-level results.
// Determinism:
//   - Views never copy entries; they project the underlying table lazily.
// Concurrency:
//   - Views are stateless wrappers; they inherit the source's read safety.

package lookup

// As adapts an untyped lookup (as returned by a multi-level build) into a
// typed Lookup[T] view. Values are asserted to T on access; a value the
// source reports as absent-with-no-default (nil) coerces to the zero value
// of T. A genuinely mistyped entry panics on access, the moment the wrong
// assumption is exercised.
//
// A nil source yields an Empty[T]() so chained queries never panic.
func As[T any](l Lookup[any]) Lookup[T] {
	if l == nil {
		return Empty[T]()
	}
	return castView[T]{inner: l}
}

// AsNested adapts an untyped two-level lookup into Lookup[Lookup[T]]: the
// outer view yields typed inner views on access. Chain entries produced by
// the builder's fallback chain are projected the same way, so
// v.Get(missing).Get(k) still surfaces the leaf default, fully typed.
func AsNested[T any](l Lookup[any]) Lookup[Lookup[T]] {
	if l == nil {
		return Empty[Lookup[T]]()
	}
	return nestedView[T]{inner: l}
}

// castView projects Lookup[any] onto Lookup[T] with per-access assertions.
type castView[T any] struct {
	inner Lookup[any]
}

func (v castView[T]) Hunt(key any) (T, error) {
	raw, err := v.inner.Hunt(key)
	if err != nil {
		return zero[T](), err
	}
	return coerce[T](raw), nil
}

func (v castView[T]) Find(key any) (T, bool) {
	raw, ok := v.inner.Find(key)
	if !ok {
		return zero[T](), false
	}
	return coerce[T](raw), true
}

func (v castView[T]) Get(key any) T {
	return coerce[T](v.inner.Get(key))
}

// nestedView projects Lookup[any] onto Lookup[Lookup[T]]; each child table
// surfacing from the source is wrapped in a castView on the way out.
type nestedView[T any] struct {
	inner Lookup[any]
}

func (v nestedView[T]) Hunt(key any) (Lookup[T], error) {
	raw, err := v.inner.Hunt(key)
	if err != nil {
		return nil, err
	}
	return child[T](raw), nil
}

func (v nestedView[T]) Find(key any) (Lookup[T], bool) {
	raw, ok := v.inner.Find(key)
	if !ok {
		return nil, false
	}
	return child[T](raw), true
}

func (v nestedView[T]) Get(key any) Lookup[T] {
	return child[T](v.inner.Get(key))
}

// coerce asserts raw to T, mapping the untyped nil (absent with no default)
// to the zero value of T.
func coerce[T any](raw any) T {
	if raw == nil {
		return zero[T]()
	}
	return raw.(T)
}

// child wraps an untyped inner table in a typed view; an untyped nil
// becomes an Empty[T]() so the chain stays navigable.
func child[T any](raw any) Lookup[T] {
	if raw == nil {
		return Empty[T]()
	}
	return As[T](raw.(Lookup[any]))
}
