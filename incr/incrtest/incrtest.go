// Package incrtest collects small helpers for testing graphs built with
// incr, mirroring the assertion style the rest of this codebase's test
// files use.
package incrtest

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/stretchr/testify/require"
)

// RequireValue fails t unless n's current value equals want.
func RequireValue[A comparable](t *testing.T, n *incr.Node[A], want A) {
	t.Helper()
	got, err := n.ValueExn()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// RequireInvariants walks every node reachable from roots and fails t on
// the first invariant violation.
func RequireInvariants(t *testing.T, roots ...incr.Packed) {
	t.Helper()
	incr.IterDescendants(roots, func(p incr.Packed) {
		require.NoError(t, incr.CheckInvariant(p), "node #%d (%s)", incr.ID(p), "invariant violated")
	})
}

// CountingHandler returns an OnUpdateHandler that increments *n every time
// it fires, for assertions about how many times an observer saw an update.
func CountingHandler[A comparable](n *int) incr.OnUpdateHandler[A] {
	return func(incr.UpdateEvent[A], incr.StabilizationNum) {
		*n++
	}
}
