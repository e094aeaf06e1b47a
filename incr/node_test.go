package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/stretchr/testify/assert"
)

// TestRemoveParentSlotKeepsParent1AndBeyondInLockstep exercises the
// add/remove/add pattern a shared node sees when multiple combinators
// reference it and one of the non-last parents is later dropped (as
// happens when If/Join rewire a branch that has other live consumers): the
// overflow parent array must shrink in step with num_parents, or a later
// GetParent reads a stale leftover slot instead of the newly added parent.
func TestRemoveParentSlotKeepsParent1AndBeyondInLockstep(t *testing.T) {
	state := incr.NewState()
	child := incr.CreateVar(state, 1)
	p := incr.Map1(state, child.Node, func(x int) int { return x })
	q := incr.Map1(state, child.Node, func(x int) int { return x })
	r := incr.Map1(state, child.Node, func(x int) int { return x })

	incr.RemoveParent(child.Node.Pack(), q.Pack(), 0)

	s := incr.Map1(state, child.Node, func(x int) int { return x })

	assert.NoError(t, incr.CheckInvariant(child.Node.Pack()))

	found := map[int64]bool{}
	child.Node.IterateParents(func(_ int, parent incr.Packed) {
		found[incr.ID(parent)] = true
	})
	assert.True(t, found[incr.ID(p.Pack())])
	assert.True(t, found[incr.ID(r.Pack())])
	assert.True(t, found[incr.ID(s.Pack())], "s must be reachable, not shadowed by q's leftover slot")
	assert.False(t, found[incr.ID(q.Pack())])
	assert.Equal(t, 3, len(found))
}
