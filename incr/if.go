package incr

// If selects between two existing nodes based on test's value, switching
// which one is wired in as test changes. Unlike Bind, the branches are not
// built on demand and are never invalidated by If itself — only rewired in
// and out.
func If[A comparable](state *State, test *Node[bool], thenBranch, elseBranch *Node[A]) *Node[A] {
	sentinel := CreateNode[int64](state.CurrentScope(), changeSentinelKind(KindIfTestChange, test.Pack()))
	sentinel.computeFn = func(Optional[int64]) int64 { return int64(test.ChangedAt()) }
	state.wireChild(sentinel.Pack(), test.Pack(), 0)

	main := CreateNode[A](state.CurrentScope(), mainKind(KindIfThenElse, "if", sentinel.Pack(), thenBranch.Pack()))

	curBranch := thenBranch
	lastSeenTestChange := NoStabilization

	main.computeFn = func(old Optional[A]) A {
		now := state.stabilizationNum
		if sentinel.ChangedAt() > lastSeenTestChange {
			lastSeenTestChange = sentinel.ChangedAt()
			desired := elseBranch
			if test.UnsafeValue() {
				desired = thenBranch
			}
			if ID(desired.Pack()) != ID(curBranch.Pack()) {
				state.unwireChild(main.Pack(), curBranch.Pack(), 1)
				main.k.replaceChildAt(1, desired.Pack())
				state.wireChild(main.Pack(), desired.Pack(), 1)
				state.drainBelow(main.Height(), now)
				curBranch = desired
			}
		}
		return curBranch.UnsafeValue()
	}

	state.wireChild(main.Pack(), sentinel.Pack(), 0)
	state.wireChild(main.Pack(), thenBranch.Pack(), 1)
	return main
}
