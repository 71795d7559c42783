// SPDX-License-Identifier: MIT
// Package: lvlookup/builder
//
// constants.go — shared constants used by the build entry points, keeping
// limits and error context consistent across the package.

package builder

//-----------------------------------------------------------------------------
// Build Method Name Constants
//   used to prefix errors with the entry point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the N-level Build entry point.
	MethodBuild = "Build"
	// MethodBuildSingle is the canonical name for the single-level entry point.
	MethodBuildSingle = "BuildSingle"
	// MethodBuildNested is the canonical name for the two-level entry point.
	MethodBuildNested = "BuildNested"
	// MethodByProperty is the canonical name for the property staging call.
	MethodByProperty = "ByProperty"
)

//-----------------------------------------------------------------------------
// Level Counts
//-----------------------------------------------------------------------------

// LevelLimit is the maximum number of key extraction levels a build may
// request. The cap bounds recursion depth and keeps pathological structures
// (and their diagnostics) tractable.
const LevelLimit = 10

// SingleLevel is the exact level count required by BuildSingle.
const SingleLevel = 1

// NestedLevels is the exact level count required by BuildNested.
const NestedLevels = 2
