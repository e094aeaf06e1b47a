package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
	"github.com/stretchr/testify/assert"
)

// TestHeightRaisesCascadeThroughDownstreamConsumers exercises the
// adjust-heights-heap: switching a Bind to a much deeper rhs subgraph must
// raise the Bind's own height, which must in turn raise every node that
// consumes it, before the same stabilization pass finishes.
func TestHeightRaisesCascadeThroughDownstreamConsumers(t *testing.T) {
	state := incr.NewState()
	flag := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)

	bound := incr.Bind(state, flag.Node, func(cond bool) *incr.Node[int] {
		if cond {
			return a.Node
		}
		deep := a.Node
		for i := 0; i < 20; i++ {
			deep = incr.Map1(state, deep, func(x int) int { return x + 1 })
		}
		return deep
	})
	consumer := incr.Map1(state, bound, func(x int) int { return x * 2 })
	consumer.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, consumer, 2)
	incrtest.RequireInvariants(t, consumer.Pack())

	flag.SetValue(false)
	state.Stabilize()
	incrtest.RequireValue(t, consumer, (1+20)*2)
	incrtest.RequireInvariants(t, consumer.Pack())
	assert.Greater(t, incr.Height(consumer.Pack()), incr.Height(bound.Pack()))
}

func TestInvalidatingAVarsOnlyConsumerRemovesItFromRecomputeHeap(t *testing.T) {
	state := incr.NewState()
	flag := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)
	bound := incr.Bind(state, flag.Node, func(cond bool) *incr.Node[int] {
		if cond {
			return incr.Map1(state, a.Node, func(x int) int { return x })
		}
		return incr.Const(state, 0)
	})
	bound.Observe(state)
	state.Stabilize()

	flag.SetValue(false)
	a.SetValue(2) // stale, but its sole consumer is about to be invalidated
	state.Stabilize()
	incrtest.RequireValue(t, bound, 0)
	incrtest.RequireInvariants(t, bound.Pack())
}
