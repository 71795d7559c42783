// Package builder_test verifies the leaf-level duplicate policies and the
// diagnostics carried by DuplicateKeyError.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlookup/builder"
	"github.com/stretchr/testify/require"
)

// TestDuplicate_FailIsDefault verifies that a composite-key collision
// aborts the build when no policy was staged.
func TestDuplicate_FailIsDefault(t *testing.T) {
	t.Parallel()

	_, err := builder.From(dupComposite).By(byState, byCounty).Build()
	require.ErrorIs(t, err, builder.ErrDuplicateKey)
}

// TestDuplicate_Diagnostics verifies the full error payload: the key path
// with one key per level, both colliding selected values, and the
// ordinal-numbered message.
func TestDuplicate_Diagnostics(t *testing.T) {
	t.Parallel()

	_, err := builder.Select(dupComposite, selectCode).By(byState, byCounty).Build()
	require.Error(t, err)

	var dke *builder.DuplicateKeyError
	require.True(t, errors.As(err, &dke), "got: %v", err)

	require.Equal(t, []any{"MS", "Greene"}, dke.KeyPath)
	require.Equal(t, 28041, dke.Existing, "value stored first")
	require.Equal(t, 99999, dke.Incoming, "value that collided")

	msg := err.Error()
	require.Contains(t, msg, "1st key MS")
	require.Contains(t, msg, "2nd key Greene")
	require.Contains(t, msg, "28041")
	require.Contains(t, msg, "99999")
}

// TestDuplicate_First verifies that DuplicateFirst keeps whichever element
// appeared first in source iteration order.
func TestDuplicate_First(t *testing.T) {
	t.Parallel()

	tbl, err := builder.Select(dupStates, selectCode).
		OnDuplicate(builder.DuplicateFirst).
		ByProperty("State").
		BuildSingle()
	require.NoError(t, err)

	got, err := tbl.Hunt("MS")
	require.NoError(t, err)
	require.Equal(t, 100, got, "first MS record wins")

	// Non-colliding keys are unaffected by the policy.
	got, err = tbl.Hunt("AL")
	require.NoError(t, err)
	require.Equal(t, 300, got)
}

// TestDuplicate_Last verifies that DuplicateLast keeps whichever element
// appeared last in source iteration order.
func TestDuplicate_Last(t *testing.T) {
	t.Parallel()

	tbl, err := builder.Select(dupStates, selectCode).
		OnDuplicate(builder.DuplicateLast).
		ByProperty("State").
		BuildSingle()
	require.NoError(t, err)

	got, err := tbl.Hunt("MS")
	require.NoError(t, err)
	require.Equal(t, 200, got, "last MS record wins")
}

// TestDuplicate_LeafOnly verifies that equal keys at intermediate levels
// are grouping, not collisions: two records sharing a state but not a
// county build fine under the FAIL policy.
func TestDuplicate_LeafOnly(t *testing.T) {
	t.Parallel()

	tbl, err := builder.From(dupStates).ByProperty("State", "County").BuildNested()
	require.NoError(t, err)

	greene, err := tbl.Get("MS").Hunt("Greene")
	require.NoError(t, err)
	require.Equal(t, 100, greene.Code)

	jones, err := tbl.Get("MS").Hunt("Jones")
	require.NoError(t, err)
	require.Equal(t, 200, jones.Code)
}

// TestBuild_ConverterErrorPropagates verifies that a failing extractor
// aborts the whole build and stays branchable through the wrap.
func TestBuild_ConverterErrorPropagates(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken extractor")
	bad := func(countyCode) (any, error) { return nil, errBroken }

	_, err := builder.From(censusCodes).By(byState, bad).Build()
	require.ErrorIs(t, err, errBroken)

	// Outer level too: the error surfaces from intermediate partitioning.
	_, err = builder.From(censusCodes).By(bad, byCounty).Build()
	require.ErrorIs(t, err, errBroken)
}

// TestBuild_SelectorErrorPropagates verifies the same for the value
// selector at the leaf.
func TestBuild_SelectorErrorPropagates(t *testing.T) {
	t.Parallel()

	errSel := errors.New("selector refused")
	sel := func(countyCode) (int, error) { return 0, errSel }

	_, err := builder.Select(censusCodes, sel).By(byState).BuildSingle()
	require.ErrorIs(t, err, errSel)

	_, err = builder.Select(censusCodes, sel).By(byState, byCounty).Build()
	require.ErrorIs(t, err, errSel)
}
