package incr

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// IterDescendants depth-first visits every node reachable from roots
// exactly once, tracking visited ids in a set so cycles in a malformed
// graph terminate the walk instead of looping it.
func IterDescendants(roots []Packed, visit func(Packed)) {
	seen := mapset.NewThreadUnsafeSet[int64]()
	var walk func(p Packed)
	walk = func(p Packed) {
		if seen.Contains(p.id()) {
			return
		}
		seen.Add(p.id())
		visit(p)
		p.kind().IterChildren(func(_ int, c Packed) { walk(c) })
	}
	for _, r := range roots {
		walk(r)
	}
}

// dotNodeLabel hashes a node id with xxhash into a stable, short DOT node
// name, avoiding collisions between #id and any diagnostic string that
// happens to look like one.
func dotNodeLabel(id int64) string {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(id >> (8 * i))
	}
	return fmt.Sprintf("n%x", xxhash.Sum64(buf[:]))
}

// SaveDot writes a Graphviz DOT rendering of every node reachable from
// roots: one vertex per node labeled name(kind) and height, and solid
// child->node edges. It draws no dashed rhs edges; SaveDotWithScopes (and
// State.SaveDot, which calls it) adds those.
func SaveDot(w io.Writer, roots []Packed) error {
	if _, err := fmt.Fprintln(w, "digraph incr {"); err != nil {
		return err
	}
	var walkErr error
	IterDescendants(roots, func(p Packed) {
		if walkErr != nil {
			return
		}
		label := dotNodeLabel(p.id())
		if _, err := fmt.Fprintf(w, "  %s [label=\"#%d %s h=%d\"];\n", label, p.id(), p.kindName(), p.height()); err != nil {
			walkErr = err
			return
		}
		p.kind().IterChildren(func(_ int, c Packed) {
			if walkErr != nil {
				return
			}
			if _, err := fmt.Fprintf(w, "  %s -> %s;\n", dotNodeLabel(c.id()), label); err != nil {
				walkErr = err
			}
		})
	})
	if walkErr != nil {
		return walkErr
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// SaveDotWithScopes is SaveDot plus dashed edges from each bindScopes entry
// (keyed by the owning sentinel's id) to every node IterNodesCreatedOnRhs
// surfaces for it, for callers that track a Bind sentinel -> scope
// association alongside the graph; State.SaveDot passes the scopes its
// Binds registered.
func SaveDotWithScopes(w io.Writer, roots []Packed, bindScopes map[int64]*BindScope) error {
	if _, err := fmt.Fprintln(w, "digraph incr {"); err != nil {
		return err
	}
	visited := mapset.NewThreadUnsafeSet[int64]()
	var walkErr error
	IterDescendants(roots, func(p Packed) {
		visited.Add(p.id())
		if walkErr != nil {
			return
		}
		label := dotNodeLabel(p.id())
		if _, err := fmt.Fprintf(w, "  %s [label=\"#%d %s h=%d\"];\n", label, p.id(), p.kindName(), p.height()); err != nil {
			walkErr = err
			return
		}
		p.kind().IterChildren(func(_ int, c Packed) {
			if walkErr != nil {
				return
			}
			if _, err := fmt.Fprintf(w, "  %s -> %s;\n", dotNodeLabel(c.id()), label); err != nil {
				walkErr = err
			}
		})
	})
	for sentinelID, scope := range bindScopes {
		if !visited.Contains(sentinelID) || walkErr != nil {
			continue
		}
		sentinelLabel := dotNodeLabel(sentinelID)
		scope.IterNodesCreatedOnRhs(func(rhsNode Packed) {
			if walkErr != nil || !visited.Contains(rhsNode.id()) {
				return
			}
			if _, err := fmt.Fprintf(w, "  %s -> %s [style=dashed];\n", sentinelLabel, dotNodeLabel(rhsNode.id())); err != nil {
				walkErr = err
			}
		})
	}
	if walkErr != nil {
		return walkErr
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
