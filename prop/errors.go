// SPDX-License-Identifier: MIT
// Package: lvlookup/prop
//
// errors.go — sentinel errors for property extraction.
// Callers branch with errors.Is; extraction failures are wrapped with the
// property name and element type for context.

package prop

import "errors"

// ErrEmptyProperty indicates that Key was given an empty property name.
var ErrEmptyProperty = errors.New("prop: property name is empty")

// ErrNilElement indicates that the element, or a pointer encountered while
// resolving the property, is nil and cannot be read.
var ErrNilElement = errors.New("prop: element is nil")

// ErrUnknownProperty indicates that the element's type declares neither a
// matching exported field nor a matching niladic method.
var ErrUnknownProperty = errors.New("prop: no such field or method")
