// Package lookup_test verifies the unlimited-concurrent-readers invariant:
// a built table is immutable, so any number of goroutines may query it
// simultaneously without locking.
package lookup_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlookup/lookup"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReads hammers one table with parallel Hunt/Find/Get calls
// across all keys; run with -race to prove the no-locking claim.
func TestConcurrentReads(t *testing.T) {
	const (
		keys    = 1000
		readers = 64
	)

	entries := make(map[any]int, keys)
	for i := 0; i < keys; i++ {
		entries[fmt.Sprintf("k%d", i)] = i
	}
	tbl := lookup.New(entries, lookup.WithDefault(-1))

	var g errgroup.Group
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for i := 0; i < keys; i++ {
				key := fmt.Sprintf("k%d", i)

				v, err := tbl.Hunt(key)
				if err != nil {
					return fmt.Errorf("Hunt(%s): %w", key, err)
				}
				if v != i {
					return fmt.Errorf("Hunt(%s): got %d, want %d", key, v, i)
				}

				if fv, ok := tbl.Find(key); !ok || fv != i {
					return fmt.Errorf("Find(%s): got (%d,%t)", key, fv, ok)
				}

				if gv := tbl.Get(key); gv != i {
					return fmt.Errorf("Get(%s): got %d", key, gv)
				}
				if gv := tbl.Get("missing"); gv != -1 {
					return fmt.Errorf("Get(missing): got %d, want -1", gv)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestConcurrentChainedReads walks a two-level structure (with its fallback
// chain) from many goroutines at once; the chain entries are shared across
// every absent-key query and must be just as read-safe as the tables.
func TestConcurrentChainedReads(t *testing.T) {
	inner := lookup.New(map[any]any{"x": 1}, lookup.WithDefault[any](0))
	chainLeaf := lookup.Empty(lookup.WithDefault[any](0))
	chainRoot := lookup.Empty(lookup.WithDefault[any](chainLeaf))
	root := lookup.New(map[any]any{"a": inner}, lookup.WithFallback[any](chainRoot))

	nested := lookup.AsNested[int](root)

	var g errgroup.Group
	for r := 0; r < 32; r++ {
		g.Go(func() error {
			for i := 0; i < 500; i++ {
				if v := nested.Get("a").Get("x"); v != 1 {
					return fmt.Errorf("present path: got %d", v)
				}
				if v := nested.Get("nope").Get("x"); v != 0 {
					return fmt.Errorf("fallback path: got %d", v)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
