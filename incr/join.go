package incr

// Join flattens a node of a node into a single node tracking whichever
// inner node outer currently points to. Like If and unlike Bind, the inner
// node already exists in the graph; Join only ever rewires which one it
// forwards.
func Join[A comparable](state *State, outer *Node[*Node[A]]) *Node[A] {
	sentinel := CreateNode[int64](state.CurrentScope(), changeSentinelKind(KindJoinLHSChange, outer.Pack()))
	sentinel.computeFn = func(Optional[int64]) int64 { return int64(outer.ChangedAt()) }
	state.wireChild(sentinel.Pack(), outer.Pack(), 0)

	var zero A
	placeholder := Const[A](state, zero)
	main := CreateNode[A](state.CurrentScope(), mainKind(KindJoinMain, "join", sentinel.Pack(), placeholder.Pack()))

	curInner := placeholder
	lastSeenOuterChange := NoStabilization

	main.computeFn = func(old Optional[A]) A {
		now := state.stabilizationNum
		if sentinel.ChangedAt() > lastSeenOuterChange {
			lastSeenOuterChange = sentinel.ChangedAt()
			desired := outer.UnsafeValue()
			if desired == nil {
				desired = placeholder
			}
			if ID(desired.Pack()) != ID(curInner.Pack()) {
				state.unwireChild(main.Pack(), curInner.Pack(), 1)
				main.k.replaceChildAt(1, desired.Pack())
				state.wireChild(main.Pack(), desired.Pack(), 1)
				state.drainBelow(main.Height(), now)
				curInner = desired
			}
		}
		return curInner.UnsafeValue()
	}

	state.wireChild(main.Pack(), sentinel.Pack(), 0)
	state.wireChild(main.Pack(), placeholder.Pack(), 1)
	return main
}
