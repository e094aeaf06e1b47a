package incr

// UpdateEventKind tags why an on-update handler fired.
type UpdateEventKind int

const (
	// EventNecessary fires the first time a node with no prior value
	// becomes necessary and is computed.
	EventNecessary UpdateEventKind = iota
	// EventChanged fires when cutoff did not suppress the new value.
	EventChanged
	// EventInvalidated fires when the node became invalid.
	EventInvalidated
)

// UpdateEvent is the payload handed to an OnUpdateHandler.
type UpdateEvent[A comparable] struct {
	Kind     UpdateEventKind
	OldValue Optional[A]
	NewValue Optional[A]
}

// OnUpdateHandler is a callback invoked by RunOnUpdateHandlers.
type OnUpdateHandler[A comparable] func(event UpdateEvent[A], now StabilizationNum)

// onUpdate adds h to the front of node's own handler list (direct handlers). Handlers
// are append-only (no removal) and fire newest-first: new handlers are
// prepended and drained from the head.
func (n *Node[A]) onUpdate(h OnUpdateHandler[A]) {
	n.onUpdateHandlers = append([]OnUpdateHandler[A]{h}, n.onUpdateHandlers...)
	n.recountOnUpdateHandlers()
}

// runOnUpdateHandlers dispatches this node's own handlers first, then each
// linked observer's handlers, with the observer's state re-read before every
// single invocation.
func (n *Node[A]) runOnUpdateHandlers(event UpdateEvent[A], now StabilizationNum) {
	handlers := n.onUpdateHandlers
	for _, h := range handlers {
		h(event, now)
	}

	for ob := n.observers; ob != nil; ob = ob.next {
		obHandlers := ob.onUpdateHandlers
		for _, h := range obHandlers {
			switch ob.state {
			case ObserverDisallowed:
				continue
			case ObserverInUse:
				h(event, now)
			default:
				contractViolation("observer in state %s reachable from node #%d's observer list", ob.state, n.idVal)
			}
		}
	}
}
