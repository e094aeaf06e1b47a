package incr

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync/atomic"
)

var nextNodeID atomic.Int64

// Node is the DAG vertex, parameterized by its value type A.
// It owns its value slot, kind, cutoff, parent/back-edge arrays, height,
// heap membership pointers, observer list, update handlers and creation
// scope.
type Node[A comparable] struct {
	idVal int64
	k     Kind

	valueOpt    Optional[A]
	oldValueOpt Optional[A]
	cutoffFn    Cutoff[A]

	// varPendingVal holds a value set via CreateVar or Var.SetValue that has
	// not yet been picked up by recompute. Only meaningful for
	// KindVar nodes.
	varPendingVal Optional[A]

	// computeFn is the per-kind computation, set by the constructor that
	// built this node (Var/Const close over a stored value; MapN closes
	// over typed children and a user function; Bind/If/Join set one on
	// their change-sentinel and main nodes). (*Node[A]).recompute never
	// calls it for Invalid or Uninitialized kinds.
	computeFn func(old Optional[A]) A

	setAt StabilizationNum // meaningful only for KindVar

	recomputedAtVal StabilizationNum
	changedAtVal    StabilizationNum

	numOnUpdateHandlersVal int
	onUpdateHandlers       []OnUpdateHandler[A]

	parent0            Packed
	parent1AndBeyond   []Packed
	numParentsVal      int
	myChildIdxInParent []int // len = 1 + len(parent1AndBeyond)

	myParentIdxInChild []int // len = MaxNumChildren(kind)

	createdInVal Scope
	nextInScope  Packed

	heightVal int

	heightInRecomputeHeapVal int
	prevInRecomputeHeapVal   Packed
	nextInRecomputeHeapVal   Packed

	heightInAdjustHeightsHeapVal int
	nextInAdjustHeightsHeapVal  Packed

	observers *Observer[A]

	inHandleAfterStabilizationVal bool
	forceNecessaryVal            bool

	userInfoVal           string
	creationBacktraceVal  string
}

// CreateNode constructs a node of the given kind in scope. The cutoff
// defaults to PhysicalEqual.
func CreateNode[A comparable](scope Scope, kind Kind) *Node[A] {
	n := &Node[A]{
		idVal:           nextNodeID.Add(1),
		k:               kind,
		cutoffFn:        PhysicalEqual[A],
		recomputedAtVal: NoStabilization,
		changedAtVal:    NoStabilization,
		setAt:           NoStabilization,
		heightVal:       -1,
		heightInRecomputeHeapVal:    -1,
		heightInAdjustHeightsHeapVal: -1,
		createdInVal:    scope,
		myParentIdxInChild: makeFilled(kind.MaxNumChildren(), -1),
	}
	if scope != nil {
		scope.AddNode(n)
	}
	if keepNodeCreationBacktrace.Load() {
		n.creationBacktraceVal = string(debug.Stack())
	}
	if isVerbose() {
		logf("create #%d kind=%s", n.idVal, kind.Name())
	}
	return n
}

func makeFilled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Pack returns this node with its value type erased.
func (n *Node[A]) Pack() Packed { return n }

// ID is the process-unique identifier assigned at creation.
func (n *Node[A]) ID() int64 { return n.idVal }

// Kind returns the node's current tagged variant.
func (n *Node[A]) Kind() Kind { return n.k }

// SetKind reinitializes my_parent_index_in_child_at_index to length
// max_num_children(newKind), all -1. Used to mutate a node to
// Invalid or otherwise restructure its children.
func (n *Node[A]) SetKind(newKind Kind) {
	n.k = newKind
	n.myParentIdxInChild = makeFilled(newKind.MaxNumChildren(), -1)
}

// CreatedIn is the scope active when the node was created.
func (n *Node[A]) CreatedIn() Scope { return n.createdInVal }

// NextNodeInSameScope is the intrusive singly-linked list of nodes sharing
// a scope.
func (n *Node[A]) NextNodeInSameScope() Packed { return n.nextInScope }

// Height is the non-negative scheduling height, or -1 when not necessary.
func (n *Node[A]) Height() int { return n.heightVal }

// RecomputedAt is the stabilization number of the last pass in which this
// node's computation ran, or NoStabilization.
func (n *Node[A]) RecomputedAt() StabilizationNum { return n.recomputedAtVal }

// ChangedAt is the stabilization number of the last pass in which the value
// was considered changed (cutoff did not fire), or NoStabilization.
func (n *Node[A]) ChangedAt() StabilizationNum { return n.changedAtVal }

// NumOnUpdateHandlers is the cached count of this node's own handlers plus
// every attached observer's handlers.
func (n *Node[A]) NumOnUpdateHandlers() int { return n.numOnUpdateHandlersVal }

// GetCutoff returns the current cutoff predicate.
func (n *Node[A]) GetCutoff() Cutoff[A] { return n.cutoffFn }

// SetCutoff replaces the cutoff predicate.
func (n *Node[A]) SetCutoff(c Cutoff[A]) { n.cutoffFn = c }

// MaxNumChildren delegates to the node's kind.
func (n *Node[A]) MaxNumChildren() int { return n.k.MaxNumChildren() }

// MaxNumParents is the current size of the parent array; in
// this implementation the array always holds exactly num_parents live
// entries (Go's append amortizes growth for us), so this equals NumParents.
func (n *Node[A]) MaxNumParents() int { return n.numParentsVal }

// IsValid reports whether the node's kind is not Invalid.
func (n *Node[A]) IsValid() bool { return n.k.tag != KindInvalid }

// IsConst reports whether the node is a constant leaf.
func (n *Node[A]) IsConst() bool { return n.k.tag == KindConst }

// HasChild reports whether the kind currently has any children.
func (n *Node[A]) HasChild() bool { return n.k.MaxNumChildren() > 0 }

// HasParent reports whether any parent currently references this node.
func (n *Node[A]) HasParent() bool { return n.numParentsVal > 0 }

// HasInvalidChild reports whether any current child is invalid.
func (n *Node[A]) HasInvalidChild() bool {
	invalid := false
	n.k.IterChildren(func(_ int, c Packed) {
		if !c.isValid() {
			invalid = true
		}
	})
	return invalid
}

// ForceNecessary is the user-forced necessity bit.
func (n *Node[A]) ForceNecessary() bool { return n.forceNecessaryVal }

// SetForceNecessary sets the user-forced necessity bit.
func (n *Node[A]) SetForceNecessary(v bool) { n.forceNecessaryVal = v }

// IsNecessary reports whether the node is on some path from an observer, or
// is force-necessary. A parent that has itself already been demoted
// (height -1) does not count: checking numParentsVal alone would still see
// that stale edge and wrongly call the node necessary until the edge is
// torn down, which for a node visited mid-recursion by
// becomeUnnecessaryIfNeeded hasn't happened yet.
func (n *Node[A]) IsNecessary() bool {
	if n.forceNecessaryVal {
		return true
	}
	necessary := false
	n.IterObservers(func(ob *Observer[A]) {
		if ob.state == ObserverInUse || ob.state == ObserverDisallowed {
			necessary = true
		}
	})
	if necessary {
		return true
	}
	for i := 0; i < n.numParentsVal; i++ {
		if n.GetParent(i).height() >= 0 {
			return true
		}
	}
	return false
}

// IterObservers visits, in list order, every observer currently attached to
// n, walking the observer list until the nil sentinel.
func (n *Node[A]) IterObservers(visit func(*Observer[A])) {
	for ob := n.observers; ob != nil; ob = ob.next {
		visit(ob)
	}
}

// IsStale reports whether the node needs recomputation before its value can be trusted.
func (n *Node[A]) IsStale() bool {
	switch n.k.tag {
	case KindUninitialized:
		contractViolation("IsStale called on an Uninitialized node #%d", n.idVal)
	case KindInvalid:
		return false
	case KindVar:
		return n.setAt > n.recomputedAtVal
	case KindConst, KindAt, KindAtIntervals, KindSnapshot, KindStepFunction:
		return n.recomputedAtVal.isNone()
	default:
		if n.recomputedAtVal.isNone() {
			return true
		}
		stale := false
		n.k.IterChildren(func(_ int, c Packed) {
			if c.changedAt() > n.recomputedAtVal {
				stale = true
			}
		})
		return stale
	}
	return false
}

// NeedsToBeComputed is is_necessary(t) && is_stale(t).
func (n *Node[A]) NeedsToBeComputed() bool { return n.IsNecessary() && n.IsStale() }

// IsInRecomputeHeap reports current recompute-heap membership, which must
// always equal NeedsToBeComputed.
func (n *Node[A]) IsInRecomputeHeap() bool { return n.heightInRecomputeHeapVal != -1 }

// IsInAdjustHeightsHeap reports adjust-heights-heap membership.
func (n *Node[A]) IsInAdjustHeightsHeap() bool { return n.heightInAdjustHeightsHeapVal != -1 }

// ShouldBeInvalidated reports whether the node must be torn down rather than recomputed.
func (n *Node[A]) ShouldBeInvalidated() bool {
	switch n.k.tag {
	case KindUninitialized:
		contractViolation("ShouldBeInvalidated called on an Uninitialized node #%d", n.idVal)
	case KindInvalid, KindConst, KindAt, KindAtIntervals, KindSnapshot, KindStepFunction, KindVar:
		return false
	}
	if n.k.isChangeSentinel() {
		return !n.k.watched.isValid()
	}
	if n.k.isMainWithSentinel() {
		return !n.k.sentinelChild().isValid()
	}
	// fixed-set children: MapN, folds, freeze.
	return n.HasInvalidChild()
}

// UnsafeValue returns the current value without checking presence.
func (n *Node[A]) UnsafeValue() A {
	v, _ := n.valueOpt.Get()
	return v
}

// ValueExn returns the current value. It returns a *NodeError if the node is
// invalid, and panics as a contract violation if the node has never been
// computed.
func (n *Node[A]) ValueExn() (A, error) {
	if !n.IsValid() {
		var zero A
		return zero, &NodeError{Op: "ValueExn", NodeID: n.idVal, KindName: n.k.Name(), Snapshot: n.snapshot()}
	}
	v, ok := n.valueOpt.Get()
	if !ok {
		contractViolation("ValueExn on node #%d (%s) with no value: %s", n.idVal, n.k.Name(), n.snapshot())
	}
	return v, nil
}

func (n *Node[A]) snapshot() string {
	v, ok := n.valueOpt.Get()
	return fmt.Sprintf("height=%d necessary=%v valid=%v value_present=%v value=%v",
		n.heightVal, n.IsNecessary(), n.IsValid(), ok, v)
}

// GetParent returns the parent at index, failing out of
// bounds.
func (n *Node[A]) GetParent(index int) Packed {
	if index < 0 || index >= n.numParentsVal {
		contractViolation("GetParent index %d out of range (num_parents=%d) on node #%d", index, n.numParentsVal, n.idVal)
	}
	if index == 0 {
		return n.parent0
	}
	return n.parent1AndBeyond[index-1]
}

// IterateParents visits every parent in its current (unobservable) order.
func (n *Node[A]) IterateParents(visit func(index int, parent Packed)) {
	for i := 0; i < n.numParentsVal; i++ {
		visit(i, n.GetParent(i))
	}
}

// IterateChildren delegates to the kind.
func (n *Node[A]) IterateChildren(visit func(index int, child Packed)) { n.k.IterChildren(visit) }

// SetUserInfo attaches a diagnostic annotation.
func (n *Node[A]) SetUserInfo(s string) { n.userInfoVal = s }

// UserInfo returns the diagnostic annotation.
func (n *Node[A]) UserInfo() string { return n.userInfoVal }

// CreationBacktrace returns the captured backtrace, if
// SetKeepNodeCreationBacktrace(true) was active at creation time.
func (n *Node[A]) CreationBacktrace() string { return n.creationBacktraceVal }

// OnUpdate registers a direct handler on this node.
func (n *Node[A]) OnUpdate(h OnUpdateHandler[A]) { n.onUpdate(h) }

// RunOnUpdateHandlers dispatches event to this node's and its observers'
// handlers.
func (n *Node[A]) RunOnUpdateHandlers(event UpdateEvent[A], now StabilizationNum) {
	n.runOnUpdateHandlers(event, now)
}

// Observe creates a new observer on n, in the InUse state, and promotes n
// (and everything it depends on) to necessary.
func (n *Node[A]) Observe(s *State) *Observer[A] {
	ob := newObserver(n)
	s.becomeNecessary(n.Pack())
	return ob
}

func (n *Node[A]) recountOnUpdateHandlers() {
	total := len(n.onUpdateHandlers)
	n.IterObservers(func(ob *Observer[A]) { total += len(ob.onUpdateHandlers) })
	n.numOnUpdateHandlersVal = total
}

// Invariant performs the recursive structural check of the engine's
// universal invariants, restricted to this node.
func (n *Node[A]) Invariant() error {
	if n.k.tag == KindUninitialized {
		return fmt.Errorf("node #%d is Uninitialized", n.idVal)
	}
	if n.NeedsToBeComputed() != n.IsInRecomputeHeap() {
		return fmt.Errorf("node #%d: needs_to_be_computed=%v but is_in_recompute_heap=%v",
			n.idVal, n.NeedsToBeComputed(), n.IsInRecomputeHeap())
	}
	if n.IsNecessary() {
		if n.createdInVal != nil && n.heightVal <= n.createdInVal.Height() {
			return fmt.Errorf("node #%d: height %d not > created_in height %d", n.idVal, n.heightVal, n.createdInVal.Height())
		}
		var childErr error
		n.k.IterChildren(func(i int, c Packed) {
			if childErr != nil {
				return
			}
			if n.heightVal <= c.height() {
				childErr = fmt.Errorf("node #%d: height %d not > child #%d height %d", n.idVal, n.heightVal, c.id(), c.height())
			}
		})
		if childErr != nil {
			return childErr
		}
	}
	if n.changedAtVal.isNone() == false && n.recomputedAtVal.isNone() == false && n.changedAtVal > n.recomputedAtVal {
		return fmt.Errorf("node #%d: changed_at %d > recomputed_at %d", n.idVal, n.changedAtVal, n.recomputedAtVal)
	}
	if len(n.myParentIdxInChild) != n.k.MaxNumChildren() {
		return fmt.Errorf("node #%d: my_parent_index_in_child_at_index length %d != max_num_children %d",
			n.idVal, len(n.myParentIdxInChild), n.k.MaxNumChildren())
	}
	// parent0 is only a real slot once num_parents >= 1; with zero parents
	// parent1AndBeyond must be empty too rather than satisfying 1+len(...).
	if n.numParentsVal == 0 {
		if len(n.parent1AndBeyond) != 0 {
			return fmt.Errorf("node #%d: parent1_and_beyond length %d but num_parents=0", n.idVal, len(n.parent1AndBeyond))
		}
	} else if len(n.myChildIdxInParent) != 1+len(n.parent1AndBeyond) {
		return fmt.Errorf("node #%d: my_child_index_in_parent_at_index length %d != 1 + len(parent1_and_beyond) (%d)",
			n.idVal, len(n.myChildIdxInParent), 1+len(n.parent1AndBeyond))
	}
	sum := len(n.onUpdateHandlers)
	var obErr error
	n.IterObservers(func(ob *Observer[A]) {
		if obErr != nil {
			return
		}
		if ob.state == ObserverCreated || ob.state == ObserverUnlinked {
			obErr = fmt.Errorf("node #%d: observer in state %s reachable from observer list", n.idVal, ob.state)
			return
		}
		sum += len(ob.onUpdateHandlers)
	})
	if obErr != nil {
		return obErr
	}
	if sum != n.numOnUpdateHandlersVal {
		return fmt.Errorf("node #%d: num_on_update_handlers=%d, computed sum=%d", n.idVal, n.numOnUpdateHandlersVal, sum)
	}
	return nil
}

// FoldObserversTyped reduces over every observer attached to n, threading
// acc through f in list order. A free function rather than a method since
// Go methods cannot introduce their own type parameter beyond the
// receiver's.
func FoldObserversTyped[A comparable, B any](n *Node[A], init B, f func(B, *Observer[A]) B) B {
	acc := init
	n.IterObservers(func(ob *Observer[A]) { acc = f(acc, ob) })
	return acc
}

func logf(format string, args ...any) {
	if isVerbose() {
		log.Printf("incr: "+format, args...)
	}
}
