// SPDX-License-Identifier: MIT
// Package: lvlookup/prop
//
// converter.go — reflection-based property extraction.
//
// Resolution order per candidate name (original, then upper-cased first
// rune): method on the value, method on an addressed copy (pointer
// receivers), then — unwrapping pointers and interfaces — method or
// exported field on the element itself. First hit wins.

package prop

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Key returns an extractor reading the named property of E. The extractor
// is reusable across elements and across builds; reflection cost is paid
// per call, resolution rules are documented on the package.
//
// Complexity: O(1) reflection lookups per element (bounded by the two name
// candidates), no allocations beyond reflect's own.
func Key[E any](name string) func(E) (any, error) {
	return func(e E) (any, error) {
		if name == "" {
			return nil, fmt.Errorf("prop: Key: %w", ErrEmptyProperty)
		}
		root := reflect.ValueOf(e)
		for _, candidate := range candidates(name) {
			v, ok, err := resolve(root, candidate)
			if err != nil {
				return nil, err
			}
			if ok {
				return v, nil
			}
		}
		return nil, fmt.Errorf("prop: Key(%q) on %T: %w", name, e, ErrUnknownProperty)
	}
}

// candidates yields the name as given and, when it differs, with its first
// rune upper-cased ("state" → "State").
func candidates(name string) []string {
	r, size := utf8.DecodeRuneInString(name)
	upper := string(unicode.ToUpper(r)) + name[size:]
	if upper == name {
		return []string{name}
	}
	return []string{name, upper}
}

// resolve walks one candidate name against the element value. The bool
// result reports whether the property was found; absence is not an error
// here so the caller can try the next candidate.
func resolve(v reflect.Value, name string) (any, bool, error) {
	if !v.IsValid() {
		// A nil interface element has no dynamic value to read.
		return nil, false, fmt.Errorf("prop: Key(%q): %w", name, ErrNilElement)
	}

	// Method on the value's own receiver set.
	if m := v.MethodByName(name); m.IsValid() {
		if out, ok := call(m); ok {
			return out, true, nil
		}
	}

	// Pointer-receiver methods are invisible on a plain value: address a
	// copy and retry.
	if v.Kind() != reflect.Pointer {
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		if m := pv.MethodByName(name); m.IsValid() {
			if out, ok := call(m); ok {
				return out, true, nil
			}
		}
	}

	// Unwrap pointers and interfaces for field (and nested method) access.
	elem := v
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return nil, false, fmt.Errorf("prop: Key(%q): %w", name, ErrNilElement)
		}
		elem = elem.Elem()
		if m := elem.MethodByName(name); m.IsValid() {
			if out, ok := call(m); ok {
				return out, true, nil
			}
		}
	}

	if elem.Kind() == reflect.Struct {
		f := elem.FieldByName(name)
		if f.IsValid() && f.CanInterface() {
			return f.Interface(), true, nil
		}
	}
	return nil, false, nil
}

// call invokes a candidate accessor method when its shape fits a getter:
// no parameters, at least one result. The first result is the key value.
func call(m reflect.Value) (any, bool) {
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() == 0 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}
