package incr

// ObserverState is the observer lifecycle state machine: Created -> InUse ->
// (Disallowed)* -> Unlinked. A node's observer list must only ever contain
// observers in InUse or Disallowed; Created/Unlinked reachable from a live
// node is a contract violation.
type ObserverState int

const (
	ObserverCreated ObserverState = iota
	ObserverInUse
	ObserverDisallowed
	ObserverUnlinked
)

func (s ObserverState) String() string {
	switch s {
	case ObserverCreated:
		return "created"
	case ObserverInUse:
		return "in_use"
	case ObserverDisallowed:
		return "disallowed"
	case ObserverUnlinked:
		return "unlinked"
	default:
		return "unknown"
	}
}

// Observer is an external handle on a node's value. It owns its own
// on-update handler list, separate from the node's own on_update_handlers,
// and contributes its handler count to the node's cached
// NumOnUpdateHandlers sum.
type Observer[A comparable] struct {
	observing        *Node[A]
	state            ObserverState
	onUpdateHandlers []OnUpdateHandler[A]

	prev, next *Observer[A]
}

// newObserver creates an observer on node and links it into the node's
// observer list in the InUse state. Necessity recomputation is the
// caller's job.
func newObserver[A comparable](node *Node[A]) *Observer[A] {
	o := &Observer[A]{observing: node, state: ObserverInUse}
	o.next = node.observers
	if node.observers != nil {
		node.observers.prev = o
	}
	node.observers = o
	node.recountOnUpdateHandlers()
	return o
}

// Observing returns the node this observer watches.
func (o *Observer[A]) Observing() *Node[A] { return o.observing }

// State returns the observer's current lifecycle state.
func (o *Observer[A]) State() ObserverState { return o.state }

// OnUpdate attaches a handler to this observer (not to the underlying node).
func (o *Observer[A]) OnUpdate(h OnUpdateHandler[A]) {
	if o.state != ObserverInUse && o.state != ObserverDisallowed {
		contractViolation("OnUpdate called on observer in state %s", o.state)
	}
	o.onUpdateHandlers = append([]OnUpdateHandler[A]{h}, o.onUpdateHandlers...)
	o.observing.recountOnUpdateHandlers()
}

// Disallow transitions InUse -> Disallowed. A disallowed observer still
// contributes to necessity (it may be re-allowed) but its handlers stop
// firing mid-dispatch as soon as they observe the transition.
func (o *Observer[A]) Disallow() {
	if o.state == ObserverInUse {
		o.state = ObserverDisallowed
	}
}

// Allow transitions Disallowed -> InUse.
func (o *Observer[A]) Allow() {
	if o.state == ObserverDisallowed {
		o.state = ObserverInUse
	}
}

// Unobserve releases this observer, marking it Unlinked, and demotes the
// observed node (and anything that was only necessary on its account) back
// to unnecessary if nothing else keeps it alive.
func (o *Observer[A]) Unobserve(s *State) {
	node := o.observing
	o.unlink()
	s.becomeUnnecessaryIfNeeded(node.Pack())
}

// unlink removes the observer from its node's list and marks it Unlinked.
// Called by Unobserve.
func (o *Observer[A]) unlink() {
	if o.state == ObserverUnlinked {
		return
	}
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		o.observing.observers = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	}
	o.prev, o.next = nil, nil
	o.state = ObserverUnlinked
	o.observing.recountOnUpdateHandlers()
}
