package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pacemkr/incremental-kernel/incr"
)

// dotdump builds a handful of representative incr graphs, stabilizes
// each, writes its DOT export to disk, and prints a summary table of
// node counts, necessary counts, and max height per graph.
func main() {
	log.Print("Starting dotdump, please wait...")
	defer log.Print("Finished dotdump")

	scenarios := []struct {
		name string
		fn   func() (*incr.State, []incr.Packed)
	}{
		{"map-chain", scenarioMapChain},
		{"array-fold", scenarioArrayFold},
		{"bind", scenarioBind},
		{"if", scenarioIf},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"graph", "dot file", "nodes", "necessary", "max height"})

	for _, sc := range scenarios {
		state, roots := sc.fn()

		path := fmt.Sprintf("%s.dot", sc.name)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := state.SaveDot(f, roots); err != nil {
			log.Fatal(err)
		}
		f.Close()

		nodes, necessary, maxHeight := 0, 0, -1
		incr.IterDescendants(roots, func(p incr.Packed) {
			nodes++
			if incr.IsNecessary(p) {
				necessary++
			}
			if h := incr.Height(p); h > maxHeight {
				maxHeight = h
			}
		})

		table.Append([]string{
			sc.name,
			path,
			humanize.Comma(int64(nodes)),
			humanize.Comma(int64(necessary)),
			humanize.Comma(int64(maxHeight)),
		})
	}

	table.Render()
}

func scenarioMapChain() (*incr.State, []incr.Packed) {
	state := incr.NewState()
	v := incr.CreateVar(state, 1)
	n := v.Node
	for i := 0; i < 8; i++ {
		n = incr.Map1(state, n, func(x int) int { return x + 1 })
	}
	n.Observe(state)
	state.Stabilize()
	return state, []incr.Packed{n.Pack()}
}

func scenarioArrayFold() (*incr.State, []incr.Packed) {
	state := incr.NewState()
	children := make([]*incr.Node[int], 0, 16)
	for i := 0; i < 16; i++ {
		children = append(children, incr.CreateVar(state, i).Node)
	}
	sum := incr.ArrayFold(state, 0, children, func(acc, x int) int { return acc + x })
	sum.Observe(state)
	state.Stabilize()
	return state, []incr.Packed{sum.Pack()}
}

func scenarioBind() (*incr.State, []incr.Packed) {
	state := incr.NewState()
	flag := incr.CreateVar(state, true)
	a := incr.CreateVar(state, 1)
	b := incr.CreateVar(state, 2)
	bound := incr.Bind(state, flag.Node, func(cond bool) *incr.Node[int] {
		if cond {
			return incr.Map1(state, a.Node, func(x int) int { return x * 10 })
		}
		return incr.Map1(state, b.Node, func(x int) int { return x * 100 })
	})
	bound.Observe(state)
	state.Stabilize()
	return state, []incr.Packed{bound.Pack()}
}

func scenarioIf() (*incr.State, []incr.Packed) {
	state := incr.NewState()
	test := incr.CreateVar(state, true)
	thenBranch := incr.Const(state, "yes")
	elseBranch := incr.Const(state, "no")
	picked := incr.If(state, test.Node, thenBranch, elseBranch)
	picked.Observe(state)
	state.Stabilize()
	return state, []incr.Packed{picked.Pack()}
}
