package incr

// Const creates a leaf that never changes after its first computation.
// It is stale exactly once, at creation.
func Const[A comparable](state *State, value A) *Node[A] {
	n := CreateNode[A](state.CurrentScope(), leafKind(KindConst))
	n.computeFn = func(Optional[A]) A { return value }
	return n
}

// Freeze observes child's current value once it stops being stale and then
// behaves like a Const holding that value forever after, ignoring all later
// changes to child.
func Freeze[A comparable](state *State, child *Node[A]) *Node[A] {
	n := CreateNode[A](state.CurrentScope(), fixedKind(KindFreeze, "freeze", child.Pack()))
	frozen := false
	n.computeFn = func(old Optional[A]) A {
		if frozen {
			v, _ := old.Get()
			return v
		}
		if child.IsStale() {
			// Child hasn't settled yet; hold whatever we have (none on the
			// first pass) until it does. Freeze only latches once the
			// watched node itself is no longer stale.
			v, _ := old.Get()
			return v
		}
		frozen = true
		return child.UnsafeValue()
	}
	n.SetCutoff(func(oldV, newV A) bool { return frozen && oldV == newV })
	state.wireChild(n.Pack(), child.Pack(), 0)
	return n
}
