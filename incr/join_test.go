package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
)

func TestJoinFollowsWhicheverInnerNodeOuterPointsTo(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 2)
	outerVal := incr.CreateVar(state, a.Node)

	joined := incr.Join(state, outerVal.Node)
	joined.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, joined, 1)

	a.SetValue(10)
	state.Stabilize()
	incrtest.RequireValue(t, joined, 10)

	outerVal.SetValue(b.Node)
	state.Stabilize()
	incrtest.RequireValue(t, joined, 2)

	b.SetValue(20)
	state.Stabilize()
	incrtest.RequireValue(t, joined, 20)

	a.SetValue(999)
	state.Stabilize()
	incrtest.RequireValue(t, joined, 20)
}
