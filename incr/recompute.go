package incr

// recompute runs this node's computation function, applies cutoff, and
// advances recomputed_at/changed_at. It never touches heap membership or
// height — that is State's job before and after calling this.
func (n *Node[A]) recompute(now StabilizationNum) {
	switch n.k.tag {
	case KindUninitialized:
		contractViolation("recompute called on an Uninitialized node #%d", n.idVal)
	case KindInvalid:
		return
	}
	if n.computeFn == nil {
		contractViolation("recompute called on node #%d (%s) with no compute function", n.idVal, n.k.Name())
	}

	trackOld := n.numOnUpdateHandlersVal > 0
	oldOpt := n.valueOpt
	newVal := n.computeFn(oldOpt)

	n.recomputedAtVal = now
	if oldOpt.IsSome() && n.cutoffFn(oldOpt.Unwrap(), newVal) {
		// Cutoff fired: value is unchanged for scheduling purposes, so
		// changed_at is left alone.
	} else {
		n.changedAtVal = now
	}
	n.valueOpt = Some(newVal)

	if trackOld {
		n.oldValueOpt = oldOpt
	} else {
		n.oldValueOpt = None[A]()
	}
}
