package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
	"github.com/stretchr/testify/assert"
)

func TestBindSwitchesBranchAndInvalidatesOldRHS(t *testing.T) {
	state := incr.NewState()
	flag := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 2)

	rebuilds := 0
	var lastRHS *incr.Node[int]
	bound := incr.Bind(state, flag.Node, func(cond bool) *incr.Node[int] {
		rebuilds++
		var n *incr.Node[int]
		if cond {
			n = incr.Map1(state, a.Node, func(x int) int { return x * 2 })
		} else {
			n = incr.Map1(state, b.Node, func(x int) int { return x * 10 })
		}
		lastRHS = n
		return n
	})
	bound.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, bound, 2)
	assert.Equal(t, 1, rebuilds)
	firstRHS := lastRHS

	flag.SetValue(false)
	state.Stabilize()
	incrtest.RequireValue(t, bound, 20)
	assert.Equal(t, 2, rebuilds)
	assert.False(t, incr.IsValid(firstRHS.Pack()), "the old branch's rhs subgraph is invalidated on switch")

	flag.SetValue(true)
	state.Stabilize()
	incrtest.RequireValue(t, bound, 2)
	assert.Equal(t, 3, rebuilds, "flipping back rebuilds again rather than reusing the invalidated old rhs")
}

func TestBindDoesNotRebuildWhenLHSCutoffSuppresses(t *testing.T) {
	state := incr.NewState()
	flag := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)

	rebuilds := 0
	bound := incr.Bind(state, flag.Node, func(cond bool) *incr.Node[int] {
		rebuilds++
		return incr.Map1(state, a.Node, func(x int) int { return x })
	})
	bound.Observe(state)
	state.Stabilize()
	assert.Equal(t, 1, rebuilds)

	flag.SetValue(true)
	state.Stabilize()
	assert.Equal(t, 1, rebuilds, "setting lhs to its current value does not trigger a rebuild")

	a.SetValue(99)
	state.Stabilize()
	incrtest.RequireValue(t, bound, 99)
	assert.Equal(t, 1, rebuilds, "changing an unrelated var never rebinds")
}

func TestBindInvariants(t *testing.T) {
	state := incr.NewState()
	flag := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 2)
	bound := incr.Bind(state, flag.Node, func(cond bool) *incr.Node[int] {
		if cond {
			return a.Node
		}
		return b.Node
	})
	bound.Observe(state)
	state.Stabilize()
	incrtest.RequireInvariants(t, bound.Pack())

	flag.SetValue(false)
	state.Stabilize()
	incrtest.RequireInvariants(t, bound.Pack())
}
