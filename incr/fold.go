package incr

// ArrayFold folds f over children's current values, left to right, on
// every recompute.
func ArrayFold[A, B comparable](state *State, init B, children []*Node[A], f func(acc B, v A) B) *Node[B] {
	packedChildren := make([]Packed, len(children))
	for i, c := range children {
		packedChildren[i] = c.Pack()
	}
	n := CreateNode[B](state.CurrentScope(), fixedKind(KindArrayFold, "array_fold", packedChildren...))
	n.computeFn = func(Optional[B]) B {
		acc := init
		for _, c := range children {
			acc = f(acc, c.UnsafeValue())
		}
		return acc
	}
	for i, c := range children {
		state.wireChild(n.Pack(), c.Pack(), i)
	}
	return n
}

// UnorderedArrayFold is ArrayFold for an f that is commutative and
// associative: the node layer still folds children in index order, but
// callers may rely on the result being independent of that order.
func UnorderedArrayFold[A, B comparable](state *State, init B, children []*Node[A], f func(acc B, v A) B) *Node[B] {
	packedChildren := make([]Packed, len(children))
	for i, c := range children {
		packedChildren[i] = c.Pack()
	}
	n := CreateNode[B](state.CurrentScope(), fixedKind(KindUnorderedArrayFold, "unordered_array_fold", packedChildren...))
	n.computeFn = func(Optional[B]) B {
		acc := init
		for _, c := range children {
			acc = f(acc, c.UnsafeValue())
		}
		return acc
	}
	for i, c := range children {
		state.wireChild(n.Pack(), c.Pack(), i)
	}
	return n
}
