package incr_test

import (
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
)

func TestArrayFoldSumsChildrenInOrder(t *testing.T) {
	state := incr.NewState()
	vars := make([]*incr.Var[int], 5)
	children := make([]*incr.Node[int], 5)
	for i := range vars {
		vars[i] = incr.CreateVar(state, i+1)
		children[i] = vars[i].Node
	}
	sum := incr.ArrayFold(state, 0, children, func(acc, v int) int { return acc + v })
	sum.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, sum, 1+2+3+4+5)

	vars[2].SetValue(100)
	state.Stabilize()
	incrtest.RequireValue(t, sum, 1+2+100+4+5)
}

func TestUnorderedArrayFoldIsOrderIndependentForCommutativeF(t *testing.T) {
	state := incr.NewState()
	children := []*incr.Node[int]{
		incr.CreateVar(state, 3).Node,
		incr.CreateVar(state, 5).Node,
		incr.CreateVar(state, 7).Node,
	}
	product := incr.UnorderedArrayFold(state, 1, children, func(acc, v int) int { return acc * v })
	product.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, product, 105)
}
