package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
	"github.com/stretchr/testify/assert"
)

func TestConstNeverRecomputesAfterFirstStabilize(t *testing.T) {
	state := incr.NewState()
	c := incr.Const(state, 42)
	c.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, c, 42)
	assert.False(t, incr.NeedsToBeComputed(c.Pack()))
}

func TestFreezeLatchesValueAndIgnoresLaterChanges(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	frozen := incr.Freeze(state, a.Node)
	frozen.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, frozen, 1)

	a.SetValue(2)
	state.Stabilize()
	incrtest.RequireValue(t, frozen, 1)

	a.SetValue(3)
	state.Stabilize()
	incrtest.RequireValue(t, frozen, 1)
}
