package incr

// Packed is a node with its value type erased, for storage in parent
// arrays, kind child slices, and heap buckets. The engine never reads a
// value through this view.
//
// Its methods are unexported so that only *Node[A], for every A, can
// implement it — the set of shapes a node can take is closed.
type Packed interface {
	// -- identity & structure --
	id() int64
	kind() Kind
	setKind(Kind)
	isValid() bool
	isConst() bool
	kindName() string

	// -- necessity, staleness, invalidation --
	isNecessary() bool
	setForceNecessary(bool)
	forceNecessary() bool
	isStale() bool
	needsToBeComputed() bool
	shouldBeInvalidated() bool
	hasChild() bool
	hasParent() bool
	hasInvalidChild() bool
	markInvalid(now StabilizationNum)

	// -- height & heap membership --
	height() int
	setHeight(int)
	heightInRecomputeHeap() int
	setHeightInRecomputeHeap(int)
	prevInRecomputeHeap() Packed
	setPrevInRecomputeHeap(Packed)
	nextInRecomputeHeap() Packed
	setNextInRecomputeHeap(Packed)
	isInRecomputeHeap() bool
	heightInAdjustHeightsHeap() int
	setHeightInAdjustHeightsHeap(int)
	nextInAdjustHeightsHeap() Packed
	setNextInAdjustHeightsHeap(Packed)
	isInAdjustHeightsHeap() bool

	// -- parent/child linkage --
	numParents() int
	parentAt(index int) Packed
	iterParents(visit func(index int, parent Packed))
	appendParentSlot(parent Packed) int
	removeParentAtSlot(parentIndex int)
	myParentIndexInChildAt(childIndex int) int
	setMyParentIndexInChildAt(childIndex, value int)
	myChildIndexInParentAt(parentIndex int) int
	setMyChildIndexInParentAt(parentIndex, value int)

	// -- stabilization bookkeeping --
	changedAt() StabilizationNum
	recomputedAt() StabilizationNum
	setChangedAt(StabilizationNum)
	setRecomputedAt(StabilizationNum)
	recompute(now StabilizationNum)

	// -- scope --
	createdIn() Scope
	setCreatedIn(Scope)
	nextNodeInSameScope() Packed
	setNextNodeInSameScope(Packed)

	// -- observers & handlers --
	numOnUpdateHandlers() int
	recountOnUpdateHandlers()
	runOnUpdateHandlersPacked(now StabilizationNum)
	isInHandleAfterStabilization() bool
	setIsInHandleAfterStabilization(bool)
	finishAfterStabilization()
	iterObservers(visit func(ObserverState))

	// -- diagnostics --
	userInfo() string
	setUserInfo(string)
	creationBacktrace() string
	invariant() error
}

// ID returns the node's process-unique identifier.
func ID(p Packed) int64 { return p.id() }

// Height returns the node's scheduling height, or -1 if not necessary.
func Height(p Packed) int { return p.height() }

// IsValid reports whether a node's kind is not Invalid.
func IsValid(p Packed) bool { return p.isValid() }

// IsNecessary reports whether the node is reachable from an observer or is
// force-necessary.
func IsNecessary(p Packed) bool { return p.isNecessary() }

// IsStale reports whether p needs recomputation before its value can be trusted.
func IsStale(p Packed) bool { return p.isStale() }

// NeedsToBeComputed is is_necessary(t) && is_stale(t).
func NeedsToBeComputed(p Packed) bool { return p.needsToBeComputed() }

// ShouldBeInvalidated reports whether p must be torn down rather than recomputed.
func ShouldBeInvalidated(p Packed) bool { return p.shouldBeInvalidated() }

// Same is an identity check between two packed views.
func Same(a, b Packed) bool { return a.id() == b.id() }

// CheckInvariant runs the per-node universal invariant checks against p.
func CheckInvariant(p Packed) error { return p.invariant() }

// AddParent appends parent onto child's parent list and records both
// back-indices at childIndex. It never deduplicates.
func AddParent(child, parent Packed, childIndex int) {
	parentIndex := child.appendParentSlot(parent)
	child.setMyChildIndexInParentAt(parentIndex, childIndex)
	parent.setMyParentIndexInChildAt(childIndex, parentIndex)
}

// RemoveParent undoes one AddParent(child, parent, childIndex) edge in O(1)
// via swap-with-last.
func RemoveParent(child, parent Packed, childIndex int) {
	parentIndex := parent.myParentIndexInChildAt(childIndex)
	child.removeParentAtSlot(parentIndex)
}

// IterObservers visits the lifecycle state of every observer currently
// attached to p, walking the observer list until the nil sentinel.
func IterObservers(p Packed, visit func(ObserverState)) { p.iterObservers(visit) }

// FoldObservers reduces over every observer state attached to p, threading
// acc through f in list order.
func FoldObservers[B any](p Packed, init B, f func(B, ObserverState) B) B {
	acc := init
	p.iterObservers(func(s ObserverState) { acc = f(acc, s) })
	return acc
}
