// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: The three-mode access protocol for both table implementations.
// Invariants:
//   - Hunt and Find never consult defaults or fallbacks.
//   - Get resolution order: entry → own default → fallback.Get(key) → zero.
//   - No method allocates or mutates; all are safe under concurrent readers.

package lookup

// Hunt returns the stored value or ErrKeyNotFound. O(1).
func (t *table[T]) Hunt(key any) (T, error) {
	if v, ok := t.entries[key]; ok {
		return v, nil
	}
	return zero[T](), ErrKeyNotFound
}

// Find returns the stored value and true, or the zero value and false. O(1).
func (t *table[T]) Find(key any) (T, bool) {
	v, ok := t.entries[key]
	if !ok {
		return zero[T](), false
	}
	return v, true
}

// Get returns the stored value, else the own default, else the fallback's
// Get result, else the zero value. O(1) plus fallback-chain length.
func (t *table[T]) Get(key any) T {
	if v, ok := t.entries[key]; ok {
		return v
	}
	if t.hasDef {
		return t.def
	}
	if t.fallback != nil {
		return t.fallback.Get(key)
	}
	return zero[T]()
}

// Hunt on an empty table always fails: there are no entries by definition.
func (e *empty[T]) Hunt(any) (T, error) {
	return zero[T](), ErrKeyNotFound
}

// Find on an empty table always reports absent.
func (e *empty[T]) Find(any) (T, bool) {
	return zero[T](), false
}

// Get on an empty table is the productive mode: it surfaces the carried
// default (for a chain entry, the next table down the chain) or delegates
// to the fallback.
func (e *empty[T]) Get(key any) T {
	if e.hasDef {
		return e.def
	}
	if e.fallback != nil {
		return e.fallback.Get(key)
	}
	return zero[T]()
}
