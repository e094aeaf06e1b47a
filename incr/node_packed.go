package incr

// This file implements the unexported half of the Packed interface for
// Node[A] — the plumbing the recompute engine and edge bookkeeping need
// that has no business being part of the node's public, value-typed API.

func (n *Node[A]) id() int64        { return n.idVal }
func (n *Node[A]) kind() Kind        { return n.k }
func (n *Node[A]) setKind(k Kind)    { n.SetKind(k) }
func (n *Node[A]) isValid() bool     { return n.IsValid() }
func (n *Node[A]) isConst() bool     { return n.IsConst() }
func (n *Node[A]) kindName() string  { return n.k.Name() }

func (n *Node[A]) isNecessary() bool          { return n.IsNecessary() }
func (n *Node[A]) setForceNecessary(v bool)   { n.forceNecessaryVal = v }
func (n *Node[A]) forceNecessary() bool       { return n.forceNecessaryVal }
func (n *Node[A]) isStale() bool              { return n.IsStale() }
func (n *Node[A]) needsToBeComputed() bool    { return n.NeedsToBeComputed() }
func (n *Node[A]) shouldBeInvalidated() bool  { return n.ShouldBeInvalidated() }
func (n *Node[A]) hasChild() bool             { return n.HasChild() }
func (n *Node[A]) hasParent() bool            { return n.HasParent() }
func (n *Node[A]) hasInvalidChild() bool      { return n.HasInvalidChild() }

// markInvalid transitions this node to KindInvalid in place, clearing its
// value. Propagation to parents is State's job, triggered by parents
// observing HasInvalidChild/ShouldBeInvalidated on their next staleness
// check.
func (n *Node[A]) markInvalid(now StabilizationNum) {
	if n.k.tag == KindInvalid {
		return
	}
	if isVerbose() {
		logf("invalidate #%d (was %s)", n.idVal, n.k.Name())
	}
	n.SetKind(invalidKind())
	n.valueOpt = None[A]()
	n.oldValueOpt = None[A]()
	n.nextInScope = nil
	n.recomputedAtVal = now
	n.changedAtVal = now
}

func (n *Node[A]) height() int                  { return n.heightVal }
func (n *Node[A]) setHeight(h int)              { n.heightVal = h }
func (n *Node[A]) heightInRecomputeHeap() int   { return n.heightInRecomputeHeapVal }
func (n *Node[A]) setHeightInRecomputeHeap(h int) { n.heightInRecomputeHeapVal = h }
func (n *Node[A]) prevInRecomputeHeap() Packed  { return n.prevInRecomputeHeapVal }
func (n *Node[A]) setPrevInRecomputeHeap(p Packed) { n.prevInRecomputeHeapVal = p }
func (n *Node[A]) nextInRecomputeHeap() Packed  { return n.nextInRecomputeHeapVal }
func (n *Node[A]) setNextInRecomputeHeap(p Packed) { n.nextInRecomputeHeapVal = p }
func (n *Node[A]) isInRecomputeHeap() bool      { return n.IsInRecomputeHeap() }

func (n *Node[A]) heightInAdjustHeightsHeap() int      { return n.heightInAdjustHeightsHeapVal }
func (n *Node[A]) setHeightInAdjustHeightsHeap(h int)  { n.heightInAdjustHeightsHeapVal = h }
func (n *Node[A]) nextInAdjustHeightsHeap() Packed     { return n.nextInAdjustHeightsHeapVal }
func (n *Node[A]) setNextInAdjustHeightsHeap(p Packed) { n.nextInAdjustHeightsHeapVal = p }
func (n *Node[A]) isInAdjustHeightsHeap() bool         { return n.IsInAdjustHeightsHeap() }

func (n *Node[A]) numParents() int { return n.numParentsVal }
func (n *Node[A]) parentAt(i int) Packed { return n.GetParent(i) }
func (n *Node[A]) iterParents(visit func(int, Packed)) { n.IterateParents(visit) }

// appendParentSlot grows this node's parent array by one, storing parent,
// and returns the new entry's index.
func (n *Node[A]) appendParentSlot(parent Packed) int {
	if n.numParentsVal == 0 {
		n.parent0 = parent
	} else {
		n.parent1AndBeyond = append(n.parent1AndBeyond, parent)
	}
	n.myChildIdxInParent = append(n.myChildIdxInParent, -1)
	idx := n.numParentsVal
	n.numParentsVal++
	return idx
}

// removeParentAtSlot removes the parent at parentIndex via swap-with-last,
// fixing up both ends' back-indices.
func (n *Node[A]) removeParentAtSlot(parentIndex int) {
	lastIndex := n.numParentsVal - 1
	if parentIndex < 0 || parentIndex > lastIndex {
		contractViolation("removeParentAtSlot index %d out of range (num_parents=%d) on node #%d", parentIndex, n.numParentsVal, n.idVal)
	}
	if parentIndex != lastIndex {
		moved := n.getParentRaw(lastIndex)
		movedChildIndex := n.myChildIdxInParent[lastIndex]
		n.setParentRaw(parentIndex, moved)
		n.myChildIdxInParent[parentIndex] = movedChildIndex
		moved.setMyParentIndexInChildAt(movedChildIndex, parentIndex)
	}
	n.setParentRaw(lastIndex, nil)
	if lastIndex >= 1 {
		n.parent1AndBeyond = n.parent1AndBeyond[:len(n.parent1AndBeyond)-1]
	}
	n.myChildIdxInParent = n.myChildIdxInParent[:lastIndex]
	n.numParentsVal--
}

func (n *Node[A]) getParentRaw(i int) Packed {
	if i == 0 {
		return n.parent0
	}
	return n.parent1AndBeyond[i-1]
}

func (n *Node[A]) setParentRaw(i int, p Packed) {
	if i == 0 {
		n.parent0 = p
		return
	}
	n.parent1AndBeyond[i-1] = p
}

func (n *Node[A]) myParentIndexInChildAt(childIndex int) int {
	if childIndex < 0 || childIndex >= len(n.myParentIdxInChild) {
		contractViolation("myParentIndexInChildAt index %d out of range on node #%d", childIndex, n.idVal)
	}
	return n.myParentIdxInChild[childIndex]
}

func (n *Node[A]) setMyParentIndexInChildAt(childIndex, value int) {
	if childIndex < 0 || childIndex >= len(n.myParentIdxInChild) {
		contractViolation("setMyParentIndexInChildAt index %d out of range on node #%d", childIndex, n.idVal)
	}
	n.myParentIdxInChild[childIndex] = value
}

func (n *Node[A]) myChildIndexInParentAt(parentIndex int) int {
	if parentIndex < 0 || parentIndex >= len(n.myChildIdxInParent) {
		contractViolation("myChildIndexInParentAt index %d out of range on node #%d", parentIndex, n.idVal)
	}
	return n.myChildIdxInParent[parentIndex]
}

func (n *Node[A]) setMyChildIndexInParentAt(parentIndex, value int) {
	if parentIndex < 0 || parentIndex >= len(n.myChildIdxInParent) {
		contractViolation("setMyChildIndexInParentAt index %d out of range on node #%d", parentIndex, n.idVal)
	}
	n.myChildIdxInParent[parentIndex] = value
}

func (n *Node[A]) changedAt() StabilizationNum        { return n.changedAtVal }
func (n *Node[A]) recomputedAt() StabilizationNum     { return n.recomputedAtVal }
func (n *Node[A]) setChangedAt(s StabilizationNum)    { n.changedAtVal = s }
func (n *Node[A]) setRecomputedAt(s StabilizationNum) { n.recomputedAtVal = s }

func (n *Node[A]) createdIn() Scope                 { return n.createdInVal }
func (n *Node[A]) setCreatedIn(s Scope)             { n.createdInVal = s }
func (n *Node[A]) nextNodeInSameScope() Packed      { return n.nextInScope }
func (n *Node[A]) setNextNodeInSameScope(p Packed)  { n.nextInScope = p }

func (n *Node[A]) numOnUpdateHandlers() int { return n.numOnUpdateHandlersVal }

func (n *Node[A]) runOnUpdateHandlersPacked(now StabilizationNum) {
	event := UpdateEvent[A]{NewValue: n.valueOpt}
	if n.oldValueOpt.IsSome() {
		event.OldValue = n.oldValueOpt
		event.Kind = EventChanged
	} else {
		event.Kind = EventNecessary
	}
	if !n.IsValid() {
		event.Kind = EventInvalidated
	}
	n.runOnUpdateHandlers(event, now)
}

func (n *Node[A]) isInHandleAfterStabilization() bool { return n.inHandleAfterStabilizationVal }
func (n *Node[A]) setIsInHandleAfterStabilization(v bool) {
	n.inHandleAfterStabilizationVal = v
}

// finishAfterStabilization clears the old-value snapshot kept alive for
// on-update handlers, once those handlers have run.
func (n *Node[A]) finishAfterStabilization() {
	n.oldValueOpt = None[A]()
	n.inHandleAfterStabilizationVal = false
}

// iterObservers walks the observer list until the nil sentinel, the
// type-erased view usable from a Packed handle.
func (n *Node[A]) iterObservers(visit func(ObserverState)) {
	for ob := n.observers; ob != nil; ob = ob.next {
		visit(ob.state)
	}
}

func (n *Node[A]) userInfo() string          { return n.userInfoVal }
func (n *Node[A]) setUserInfo(s string)      { n.userInfoVal = s }
func (n *Node[A]) creationBacktrace() string { return n.creationBacktraceVal }
func (n *Node[A]) invariant() error          { return n.Invariant() }
