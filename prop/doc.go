// Package prop provides property-based key extractors: converter functions
// that read a named accessor off an element via reflection, for use as
// lookup keys in the builder package.
//
// A property name resolves, in order, to:
//
//  1. a niladic, single-result method of the element (value or pointer
//     receiver), or
//  2. an exported struct field of the element, following any pointers.
//
// A name starting with a lower-case letter is retried with its first rune
// upper-cased, so "state" finds either a State field or a State() method —
// the familiar property ergonomics of config-driven indexing.
//
// Extractors built here are pure with respect to their element and return
// whatever the accessor yields as an opaque key value; the caller's lookup
// tables compare those keys with ordinary Go map equality, so accessors
// must produce comparable, stable values.
//
// Errors:
//
//	ErrEmptyProperty   - the property name is empty.
//	ErrNilElement      - the element (or a pointer on the path) is nil.
//	ErrUnknownProperty - no matching field or method exists.
//
// Failures propagate out of the enclosing build unretried; a lookup built
// over elements that cannot answer their keys is aborted, never degraded.
package prop
