package incr

// KindTag enumerates every node shape. It is a closed set: the engine
// interrogates kinds in hot loops, so this is a discriminated union (a tag
// plus a structural payload of erased children) rather than virtual
// dispatch across many small types.
type KindTag uint8

const (
	KindUninitialized KindTag = iota
	KindInvalid

	// Leaves, stale only when recomputed_at = none.
	KindConst
	KindAt
	KindAtIntervals
	KindSnapshot
	KindStepFunction

	// Var is a leaf that is also mutable; stale iff set_at > recomputed_at.
	KindVar

	// Fixed-arity combinators over a slice of children.
	KindMapN
	KindArrayFold
	KindUnorderedArrayFold
	KindFreeze

	// Bind/If/Join main nodes and their change-sentinels.
	KindBindMain
	KindBindLHSChange
	KindIfThenElse
	KindIfTestChange
	KindJoinMain
	KindJoinLHSChange
)

func (k KindTag) String() string {
	switch k {
	case KindUninitialized:
		return "uninitialized"
	case KindInvalid:
		return "invalid"
	case KindConst:
		return "const"
	case KindAt:
		return "at"
	case KindAtIntervals:
		return "at_intervals"
	case KindSnapshot:
		return "snapshot"
	case KindStepFunction:
		return "step_function"
	case KindVar:
		return "var"
	case KindMapN:
		return "map"
	case KindArrayFold:
		return "array_fold"
	case KindUnorderedArrayFold:
		return "unordered_array_fold"
	case KindFreeze:
		return "freeze"
	case KindBindMain:
		return "bind"
	case KindBindLHSChange:
		return "bind_lhs_change"
	case KindIfThenElse:
		return "if_then_else"
	case KindIfTestChange:
		return "if_test_change"
	case KindJoinMain:
		return "join"
	case KindJoinLHSChange:
		return "join_lhs_change"
	default:
		return "unknown"
	}
}

// Kind is the structural payload of a node: its tag plus its current
// children, exposed as erased Packed values. The value-typed computation
// (what to do with those children) lives on the owning Node[A] as a
// closure, mirroring how rocket's ReadonlySignalN stores a typed getter
// alongside an erased Cell slice.
type Kind struct {
	tag      KindTag
	children []Packed // current children, in stable index order
	watched  Packed   // for change-sentinel kinds: the sole watched child
	name     string   // diagnostic override, e.g. "map2"; falls back to tag.String()
}

func uninitializedKind() Kind { return Kind{tag: KindUninitialized} }

func invalidKind() Kind { return Kind{tag: KindInvalid} }

func leafKind(tag KindTag) Kind { return Kind{tag: tag} }

func fixedKind(tag KindTag, name string, children ...Packed) Kind {
	return Kind{tag: tag, name: name, children: children}
}

func changeSentinelKind(tag KindTag, watched Packed) Kind {
	return Kind{tag: tag, watched: watched, children: []Packed{watched}}
}

func mainKind(tag KindTag, name string, lhsChange, rhs Packed) Kind {
	return Kind{tag: tag, name: name, children: []Packed{lhsChange, rhs}}
}

// Name is the diagnostic name.
func (k Kind) Name() string {
	if k.name != "" {
		return k.name
	}
	return k.tag.String()
}

// MaxNumChildren is the upper bound on child slots, used to size
// my_parent_index_in_child_at_index.
func (k Kind) MaxNumChildren() int { return len(k.children) }

// IterChildren enumerates current children in stable index order.
func (k Kind) IterChildren(visit func(index int, child Packed)) {
	for i, c := range k.children {
		visit(i, c)
	}
}

// SlowGetChild retrieves a child by index in O(arity).
func (k Kind) SlowGetChild(index int) Packed {
	if index < 0 || index >= len(k.children) {
		contractViolation("SlowGetChild index %d out of range (arity %d)", index, len(k.children))
	}
	return k.children[index]
}

// replaceChildAt swaps the child at index, used by Bind/If/Join when the
// current rhs is rebuilt; the slot count (arity) never changes.
func (k *Kind) replaceChildAt(index int, child Packed) {
	k.children[index] = child
}

func (k Kind) isLeaf() bool {
	switch k.tag {
	case KindConst, KindAt, KindAtIntervals, KindSnapshot, KindStepFunction, KindVar:
		return true
	default:
		return false
	}
}

func (k Kind) isChangeSentinel() bool {
	switch k.tag {
	case KindBindLHSChange, KindIfTestChange, KindJoinLHSChange:
		return true
	default:
		return false
	}
}

func (k Kind) isMainWithSentinel() bool {
	switch k.tag {
	case KindBindMain, KindIfThenElse, KindJoinMain:
		return true
	default:
		return false
	}
}

// sentinelChild returns the change-sentinel child of a Bind/If/Join main
// node — always child slot 0.
func (k Kind) sentinelChild() Packed {
	if !k.isMainWithSentinel() {
		contractViolation("sentinelChild called on kind %s", k.Name())
	}
	return k.children[0]
}
