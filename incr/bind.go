package incr

// Bind evaluates f once lhs settles and splices f's result into the graph
// as the node's sole dependency; whenever lhs changes, every node f created
// on its previous run is invalidated and f runs again to build a new one.
// Nodes f returned or read without creating them are left valid.
func Bind[A, B comparable](state *State, lhs *Node[A], f func(A) *Node[B]) *Node[B] {
	sentinel := CreateNode[int64](state.CurrentScope(), changeSentinelKind(KindBindLHSChange, lhs.Pack()))
	sentinel.computeFn = func(Optional[int64]) int64 { return int64(lhs.ChangedAt()) }
	state.wireChild(sentinel.Pack(), lhs.Pack(), 0)

	var zero B
	placeholder := Const[B](state, zero)

	main := CreateNode[B](state.CurrentScope(), mainKind(KindBindMain, "bind", sentinel.Pack(), placeholder.Pack()))

	curRhs := placeholder
	var curScope *BindScope
	lastSeenLHSChange := NoStabilization

	main.computeFn = func(old Optional[B]) B {
		now := state.stabilizationNum
		if sentinel.ChangedAt() > lastSeenLHSChange {
			lastSeenLHSChange = sentinel.ChangedAt()

			if curScope != nil {
				state.invalidateScope(curScope, now)
			}
			newScope := NewBindScope(sentinel.Height())
			prevScope := state.curScope
			state.curScope = newScope
			newRhs := f(lhs.UnsafeValue())
			state.curScope = prevScope

			state.unwireChild(main.Pack(), curRhs.Pack(), 1)
			main.k.replaceChildAt(1, newRhs.Pack())
			state.wireChild(main.Pack(), newRhs.Pack(), 1)
			state.drainBelow(main.Height(), now)

			curRhs = newRhs
			curScope = newScope
			state.RegisterBindScope(sentinel.ID(), newScope)
		}
		return curRhs.UnsafeValue()
	}

	state.wireChild(main.Pack(), sentinel.Pack(), 0)
	state.wireChild(main.Pack(), placeholder.Pack(), 1)
	return main
}
