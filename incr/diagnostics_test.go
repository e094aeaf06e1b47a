package incr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterDescendantsVisitsEachNodeOnce(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 2)
	sum := incr.Map2(state, a.Node, b.Node, func(x, y int) int { return x + y })
	doubled := incr.Map1(state, sum, func(x int) int { return x * 2 })
	doubled.Observe(state)
	state.Stabilize()

	seen := map[int64]int{}
	incr.IterDescendants([]incr.Packed{doubled.Pack()}, func(p incr.Packed) {
		seen[incr.ID(p)]++
	})
	for id, count := range seen {
		assert.Equal(t, 1, count, "node #%d visited more than once", id)
	}
	assert.Equal(t, 4, len(seen), "doubled, sum, a, b")
}

func TestSaveDotProducesGraphvizWithEveryNode(t *testing.T) {
	state := incr.NewState()
	a := incr.CreateVar(state, 1)
	derived := incr.Map1(state, a.Node, func(x int) int { return x + 1 })
	derived.Observe(state)
	state.Stabilize()

	var buf bytes.Buffer
	require.NoError(t, state.SaveDot(&buf, []incr.Packed{derived.Pack()}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "->")
	assert.Equal(t, 2, strings.Count(out, "[label="), "one vertex each for derived and a")
}
