package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/stretchr/testify/assert"
)

func TestVarSetValueTakesEffectNextStabilize(t *testing.T) {
	state := incr.NewState()
	v := incr.CreateVar(state, 1)
	doubled := incr.Map1(state, v.Node, func(x int) int { return x * 2 })
	doubled.Observe(state)
	state.Stabilize()
	assert.Equal(t, 2, doubled.UnsafeValue())

	v.SetValue(5)
	// Value() reflects the pending set immediately...
	assert.Equal(t, 5, v.Value())
	// ...but doubled hasn't seen it until the next stabilization.
	assert.Equal(t, 2, doubled.UnsafeValue())

	state.Stabilize()
	assert.Equal(t, 10, doubled.UnsafeValue())
}

func TestVarCutoffSuppressesUnchangedPropagation(t *testing.T) {
	state := incr.NewState()
	v := incr.CreateVar(state, 1)
	calls := 0
	derived := incr.Map1(state, v.Node, func(x int) int {
		calls++
		return x
	})
	derived.Observe(state)
	state.Stabilize()
	assert.Equal(t, 1, calls)

	v.SetValue(1)
	state.Stabilize()
	assert.Equal(t, 1, calls, "var's own cutoff suppresses propagation when the set value is unchanged")
	assert.Equal(t, 1, derived.UnsafeValue())
}
