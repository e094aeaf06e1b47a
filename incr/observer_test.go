package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/stretchr/testify/assert"
)

func TestUnobserveDropsNecessityWhenNothingElseHoldsIt(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	derived := incr.Map1(state, a.Node, func(x int) int { return x + 1 })
	ob := derived.Observe(state)
	state.Stabilize()
	assert.True(t, incr.IsNecessary(derived.Pack()))

	ob.Unobserve(state)
	assert.False(t, incr.IsNecessary(derived.Pack()))
	assert.Equal(t, -1, incr.Height(derived.Pack()))
}

func TestSecondObserverKeepsNodeNecessaryAfterFirstUnobserves(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	derived := incr.Map1(state, a.Node, func(x int) int { return x + 1 })
	ob1 := derived.Observe(state)
	ob2 := derived.Observe(state)
	state.Stabilize()

	ob1.Unobserve(state)
	assert.True(t, incr.IsNecessary(derived.Pack()), "ob2 still keeps it necessary")

	ob2.Unobserve(state)
	assert.False(t, incr.IsNecessary(derived.Pack()))
}

func TestUnobserveDemotesTransitiveAncestorsNotJustTheRoot(t *testing.T) {
	state := incr.NewState()
	v := incr.CreateVar(state, 1)
	m := incr.Map1(state, v.Node, func(x int) int { return x + 1 })
	ob := m.Observe(state)
	state.Stabilize()
	assert.True(t, incr.IsNecessary(v.Node.Pack()))
	assert.GreaterOrEqual(t, incr.Height(v.Node.Pack()), 0)

	ob.Unobserve(state)
	assert.False(t, incr.IsNecessary(m.Pack()))
	assert.False(t, incr.IsNecessary(v.Node.Pack()), "v is only reachable through m's now-unnecessary edge")
	assert.Equal(t, -1, incr.Height(v.Node.Pack()))
}

func TestDisallowStopsHandlerFromFiringWithoutLosingNecessity(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	ob := a.Observe(state)
	fired := 0
	ob.OnUpdate(func(incr.UpdateEvent[int], incr.StabilizationNum) { fired++ })
	state.Stabilize()
	assert.Equal(t, 1, fired)

	ob.Disallow()
	a.SetValue(2)
	state.Stabilize()
	assert.Equal(t, 1, fired, "disallowed observer's handlers stop firing")
	assert.True(t, incr.IsNecessary(a.Pack()), "disallowed observer still contributes to necessity")

	ob.Allow()
	a.SetValue(3)
	state.Stabilize()
	assert.Equal(t, 2, fired)
}
