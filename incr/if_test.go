package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
	"github.com/stretchr/testify/assert"
)

func TestIfSwitchesBranchWithoutInvalidatingEither(t *testing.T) {
	state := incr.NewState()
	test := incr.CreateVar(state, true)
	thenBranch := incr.Const(state, "yes")
	elseBranch := incr.Const(state, "no")
	picked := incr.If(state, test.Node, thenBranch, elseBranch)
	picked.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, picked, "yes")

	test.SetValue(false)
	state.Stabilize()
	incrtest.RequireValue(t, picked, "no")
	assert.True(t, incr.IsValid(thenBranch.Pack()), "If never invalidates its branches, only rewires")
	assert.True(t, incr.IsValid(elseBranch.Pack()))

	test.SetValue(true)
	state.Stabilize()
	incrtest.RequireValue(t, picked, "yes")
}

func TestIfFollowsChosenBranchUpdates(t *testing.T) {
	state := incr.NewState()
	test := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 100)
	picked := incr.If(state, test.Node, a.Node, b.Node)
	picked.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, picked, 1)

	a.SetValue(2)
	state.Stabilize()
	incrtest.RequireValue(t, picked, 2)

	b.SetValue(200)
	state.Stabilize()
	incrtest.RequireValue(t, picked, 2)

	test.SetValue(false)
	state.Stabilize()
	incrtest.RequireValue(t, picked, 200)
}
