package incr

import "time"

// Clock is the injected time source for the time-leaf constructors below.
// The Alarm timing subsystem that would actually schedule and re-fire these
// nodes on a wall clock is out of scope here; without it, At/AtIntervals/
// Snapshot/StepFunction can only be structural leaf kinds (stale exactly
// once, at creation) rather than genuinely time-driven nodes. A real Alarm
// would re-stale them by bumping their
// equivalent of set_at, the same mechanism Var already uses.
type Clock func() time.Time

// AtTime reports, once, the first time it is computed, whether clock() has
// already reached at; it is not recomputed afterwards.
func AtTime(state *State, clock Clock, at time.Time) *Node[bool] {
	n := CreateNode[bool](state.CurrentScope(), leafKind(KindAt))
	n.computeFn = func(Optional[bool]) bool { return !clock().Before(at) }
	return n
}

// AtIntervals reports, once, which interval-aligned boundary clock() last
// crossed.
func AtIntervals(state *State, clock Clock, interval time.Duration) *Node[time.Time] {
	n := CreateNode[time.Time](state.CurrentScope(), leafKind(KindAtIntervals))
	n.computeFn = func(Optional[time.Time]) time.Time {
		now := clock()
		if interval <= 0 {
			return now
		}
		elapsed := now.Sub(now.Truncate(interval))
		return now.Add(-elapsed)
	}
	return n
}

// Snapshot captures source's value once, the first time the snapshot node
// itself is computed, and holds it forever after. Snapshot is a childless
// leaf, so this reads source through a
// closure rather than a graph edge: source's later changes are invisible
// to it by design, not by omission.
func Snapshot[A comparable](state *State, source *Node[A]) *Node[A] {
	n := CreateNode[A](state.CurrentScope(), leafKind(KindSnapshot))
	n.computeFn = func(Optional[A]) A { return source.UnsafeValue() }
	return n
}

// TimedValue is one (threshold, value) step of a StepFunction.
type TimedValue[A any] struct {
	At    time.Time
	Value A
}

// StepFunction picks, once, the value of the latest step whose At has
// already passed according to clock().
func StepFunction[A comparable](state *State, clock Clock, initial A, steps []TimedValue[A]) *Node[A] {
	n := CreateNode[A](state.CurrentScope(), leafKind(KindStepFunction))
	n.computeFn = func(Optional[A]) A {
		now := clock()
		result := initial
		for _, step := range steps {
			if !step.At.After(now) {
				result = step.Value
			}
		}
		return result
	}
	return n
}
