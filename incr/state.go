package incr

import "io"

// State owns a graph's top scope, its recompute and adjust-heights heaps,
// and the monotonic stabilization counter. There is
// normally exactly one State per incremental computation; nothing here
// prevents more, but nodes from different States must never be wired
// together.
type State struct {
	top  *TopScope
	stabilizationNum StabilizationNum

	// curScope is the scope every combinator creates its node in. It is
	// the top scope except while a Bind main node is, mid-recompute,
	// evaluating its rhs-building callback inside a freshly created
	// BindScope.
	curScope Scope

	recompute     *recomputeHeap
	adjustHeights *adjustHeightsHeap

	handleAfterStabilization []Packed

	// bindScopes tracks each live Bind_lhs_change sentinel's current rhs
	// scope, keyed by the sentinel's id, purely for SaveDot's dashed
	// rhs-membership edges.
	bindScopes map[int64]*BindScope
}

// NewState constructs an empty graph, ready to have nodes created in its
// TopScope.
func NewState() *State {
	s := &State{
		top:              &TopScope{},
		stabilizationNum: 0,
		recompute:        newRecomputeHeap(),
		adjustHeights:    newAdjustHeightsHeap(),
		bindScopes:       make(map[int64]*BindScope),
	}
	s.curScope = s.top
	return s
}

// RegisterBindScope records sentinelID's current rhs scope for SaveDot's
// dashed-edge rendering. Bind calls this on every rebuild.
func (s *State) RegisterBindScope(sentinelID int64, scope *BindScope) {
	s.bindScopes[sentinelID] = scope
}

// SaveDot renders every node reachable from roots, including dashed edges
// from each live Bind's lhs-change sentinel to its current rhs's nodes.
func (s *State) SaveDot(w io.Writer, roots []Packed) error {
	return SaveDotWithScopes(w, roots, s.bindScopes)
}

// TopScope is the scope new top-level nodes should be created in.
func (s *State) TopScope() Scope { return s.top }

// CurrentScope is the scope a combinator creates its node in right now.
func (s *State) CurrentScope() Scope { return s.curScope }

// StabilizationNum is the number of the last completed (or, mid-Stabilize,
// currently running) pass.
func (s *State) StabilizationNum() StabilizationNum { return s.stabilizationNum }

// Stabilize drains the recompute heap in non-decreasing height order,
// recomputing or invalidating each node it pops, then dispatches on-update
// handlers for every node that changed or was invalidated this pass.
func (s *State) Stabilize() {
	s.stabilizationNum++
	now := s.stabilizationNum
	for !s.recompute.isEmpty() {
		s.recomputeOne(s.recompute.popMin(), now)
	}
	for _, p := range s.handleAfterStabilization {
		p.runOnUpdateHandlersPacked(now)
	}
	for _, p := range s.handleAfterStabilization {
		p.finishAfterStabilization()
	}
	s.handleAfterStabilization = s.handleAfterStabilization[:0]
}

func (s *State) recomputeOne(p Packed, now StabilizationNum) {
	if !p.isValid() {
		return
	}
	if p.shouldBeInvalidated() {
		s.invalidate(p, now)
		return
	}
	p.recompute(now)
	if p.numOnUpdateHandlers() > 0 && p.changedAt() == now {
		s.scheduleHandleAfterStabilization(p)
	}
	p.iterParents(func(_ int, parent Packed) {
		if parent.needsToBeComputed() && !parent.isInRecomputeHeap() {
			s.recompute.insert(parent)
		}
	})
	debugCheckInvariant(p)
}

// debugCheckInvariant runs the universal per-node invariant check and panics
// on the first violation, but only when SetDebug(true) is in effect. Cheap
// enough for tests; too costly to run unconditionally on every mutation.
func debugCheckInvariant(p Packed) {
	if !isDebug() {
		return
	}
	if err := p.invariant(); err != nil {
		contractViolation("debug assertion failed: %v", err)
	}
}

func (s *State) scheduleHandleAfterStabilization(p Packed) {
	if p.isInHandleAfterStabilization() {
		return
	}
	p.setIsInHandleAfterStabilization(true)
	s.handleAfterStabilization = append(s.handleAfterStabilization, p)
}

// invalidate transitions p to Invalid, releases its hold on its (former)
// children, schedules its on-update handlers, and enqueues any parent whose
// staleness just changed.
func (s *State) invalidate(p Packed, now StabilizationNum) {
	if !p.isValid() {
		return
	}
	oldKind := p.kind()
	oldKind.IterChildren(func(i int, c Packed) {
		RemoveParent(c, p, i)
		s.becomeUnnecessaryIfNeeded(c)
	})
	p.markInvalid(now)
	if p.isInRecomputeHeap() {
		s.recompute.remove(p)
	}
	if p.numOnUpdateHandlers() > 0 {
		s.scheduleHandleAfterStabilization(p)
	}
	p.iterParents(func(_ int, parent Packed) {
		if parent.needsToBeComputed() && !parent.isInRecomputeHeap() {
			s.recompute.insert(parent)
		}
	})
	debugCheckInvariant(p)
}

// invalidateScope tears down every node created on a Bind's former
// rhs in one pass, walking the scope's node list exactly once.
func (s *State) invalidateScope(scope *BindScope, now StabilizationNum) {
	for n := scope.head; n != nil; {
		next := n.nextNodeInSameScope()
		n.setNextNodeInSameScope(nil)
		if n.isValid() {
			s.invalidate(n, now)
		}
		n = next
	}
	scope.head = nil
	scope.createdIDs = make(map[int64]Packed)
}

// becomeNecessary assigns p, and every child it does not already have a
// height for, a height, recursing depth-first so a node's
// height is always computed after all of its children's. A node whose
// height is already >= 0 is treated as already necessary and is not
// revisited; see ensureHeightAtLeast for raising an existing height.
// Every node reached here is necessary (it is observed, or a necessary
// parent depends on it), so a stale one is queued for recompute even though
// IsNecessary cannot see that yet: the parent that made it necessary only
// gets its own height after this call returns.
func (s *State) becomeNecessary(p Packed) {
	if p.height() >= 0 {
		return
	}
	maxChildHeight := -1
	p.kind().IterChildren(func(_ int, c Packed) {
		s.becomeNecessary(c)
		if c.height() > maxChildHeight {
			maxChildHeight = c.height()
		}
	})
	createdHeight := -1
	if scope := p.createdIn(); scope != nil {
		createdHeight = scope.Height()
	}
	newHeight := maxChildHeight
	if createdHeight > newHeight {
		newHeight = createdHeight
	}
	newHeight++
	p.setHeight(newHeight)
	if p.isStale() && !p.isInRecomputeHeap() {
		s.recompute.insert(p)
	}
}

// becomeUnnecessaryIfNeeded demotes p back to height -1, and out of the
// recompute heap, if nothing keeps it necessary any longer, and recurses to
// its children since their only necessary parent may have been p.
func (s *State) becomeUnnecessaryIfNeeded(p Packed) {
	if p.isNecessary() {
		return
	}
	if p.height() < 0 {
		return
	}
	p.setHeight(-1)
	if p.isInRecomputeHeap() {
		s.recompute.remove(p)
	}
	p.kind().IterChildren(func(_ int, c Packed) {
		s.becomeUnnecessaryIfNeeded(c)
	})
}

// ensureHeightAtLeast raises p's height to at least minHeight, cascading
// the raise to every transitive parent whose own height invariant would
// otherwise be violated. It is a no-op if p is not already necessary: a
// not-yet-necessary node gets its height from becomeNecessary once
// something wires it in.
func (s *State) ensureHeightAtLeast(p Packed, minHeight int) {
	if p.height() < 0 || p.height() >= minHeight {
		return
	}
	s.adjustHeights.add(p, minHeight)
	for {
		node, target, ok := s.adjustHeights.popMin()
		if !ok {
			break
		}
		if node.height() >= target {
			continue
		}
		if node.isInRecomputeHeap() {
			s.recompute.moveToHeight(node, target)
		} else {
			node.setHeight(target)
		}
		node.iterParents(func(_ int, parent Packed) {
			need := target + 1
			if parent.height() >= 0 && parent.height() < need {
				s.adjustHeights.add(parent, need)
			}
		})
	}
}

// wireChild links child as parent's childIndex'th child, promotes child to
// necessary if parent already is, and raises parent's height above
// child's if needed. Combinators that restructure themselves at runtime
// (Bind, If, Join) use this instead of the constructor-time AddParent so
// the engine's bookkeeping stays consistent mid-pass.
func (s *State) wireChild(parent, child Packed, childIndex int) {
	AddParent(child, parent, childIndex)
	if parent.height() < 0 {
		return
	}
	s.becomeNecessary(child)
	s.ensureHeightAtLeast(parent, child.height()+1)
	debugCheckInvariant(parent)
	debugCheckInvariant(child)
}

// unwireChild undoes wireChild's edge and, if child is no longer reachable
// from any observer, demotes it back to unnecessary.
func (s *State) unwireChild(parent, child Packed, childIndex int) {
	RemoveParent(child, parent, childIndex)
	s.becomeUnnecessaryIfNeeded(child)
	debugCheckInvariant(parent)
	debugCheckInvariant(child)
}

// drainBelow recomputes every node currently in the recompute heap whose
// height is strictly less than height. Bind/If/Join's main node calls this
// right after wiring in a freshly built rhs subgraph: that subgraph is
// guaranteed (by ensureHeightAtLeast, run as part of wireChild) to sit
// entirely below the main node's own height, but it was created mid-pass
// and so cannot rely on the ordinary popMin scan to have reached it
// already — the main node needs its value settled before its own
// recompute function returns.
func (s *State) drainBelow(height int, now StabilizationNum) {
	for {
		p := s.recompute.peek()
		if p == nil || p.height() >= height {
			return
		}
		s.recompute.remove(p)
		s.recomputeOne(p, now)
	}
}

// noteMaybeStale enqueues p into the recompute heap if it just became
// stale and necessary and is not already queued. Var.SetValue uses this
// after bumping set_at.
func (s *State) noteMaybeStale(p Packed) {
	if p.needsToBeComputed() && !p.isInRecomputeHeap() {
		s.recompute.insert(p)
	}
}
