package incr

// Var is a leaf whose value is supplied from outside the graph rather than
// computed from children. It is the only kind whose staleness check
// compares set_at against recomputed_at instead of looking at children.
type Var[A comparable] struct {
	*Node[A]
	state *State
}

// CreateVar creates a Var in state's current scope holding initial, stale from
// creation so the first Stabilize picks it up.
func CreateVar[A comparable](state *State, initial A) *Var[A] {
	n := CreateNode[A](state.CurrentScope(), leafKind(KindVar))
	n.setAt = 0
	n.varPendingVal = Some(initial)
	n.computeFn = func(old Optional[A]) A {
		if v, ok := n.varPendingVal.Get(); ok {
			n.varPendingVal = None[A]()
			return v
		}
		if ov, ok := old.Get(); ok {
			return ov
		}
		var zero A
		return zero
	}
	return &Var[A]{Node: n, state: state}
}

// Value returns the Var's last-set value, independent of whether a
// Stabilize has run to pick it up yet.
func (v *Var[A]) Value() A {
	if pending, ok := v.varPendingVal.Get(); ok {
		return pending
	}
	return v.UnsafeValue()
}

// SetValue schedules newValue to be observed on the next Stabilize.
func (v *Var[A]) SetValue(newValue A) {
	v.varPendingVal = Some(newValue)
	v.setAt = v.state.stabilizationNum + 1
	v.state.noteMaybeStale(v.Pack())
}
