package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap2CombinesTwoInputs(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 2)
	b := incr.CreateVar(state, 3)
	sum := incr.Map2(state, a.Node, b.Node, func(x, y int) int { return x + y })
	sum.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, sum, 5)

	a.SetValue(10)
	state.Stabilize()
	incrtest.RequireValue(t, sum, 13)
}

func TestHeightIsMaxChildHeightPlusOne(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 1)
	deep := incr.Map1(state, a.Node, func(x int) int { return x })
	deep = incr.Map1(state, deep, func(x int) int { return x })
	shallow := b.Node
	combined := incr.Map2(state, deep, shallow, func(x, y int) int { return x + y })
	combined.Observe(state)
	state.Stabilize()

	require.Equal(t, 0, incr.Height(a.Pack()))
	assert.GreaterOrEqual(t, incr.Height(deep.Pack()), 2)
	assert.Greater(t, incr.Height(combined.Pack()), incr.Height(deep.Pack()))
	assert.Greater(t, incr.Height(combined.Pack()), incr.Height(shallow.Pack()))
}

func TestUnobservedNodeIsNotNecessaryAndNotRecomputed(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	calls := 0
	derived := incr.Map1(state, a.Node, func(x int) int {
		calls++
		return x
	})
	// no Observe call
	state.Stabilize()
	assert.Equal(t, 0, calls)
	assert.False(t, incr.IsNecessary(derived.Pack()))
	assert.Equal(t, -1, incr.Height(derived.Pack()))
}
