package incr_test

import (
	"testing"
	"time"

	"github.com/pacemkr/incremental-kernel/incr"
	"github.com/pacemkr/incremental-kernel/incr/incrtest"
)

func fixedClock(t time.Time) incr.Clock {
	return func() time.Time { return t }
}

func TestAtTimeIsSettledOnceAtCreation(t *testing.T) {
	state := incr.NewState()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	at := incr.AtTime(state, fixedClock(base.Add(time.Hour)), base)
	at.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, at, true)
}

func TestSnapshotReadsSourceOnceAndIgnoresLaterChanges(t *testing.T) {
	state := incr.NewState()
	source := incr.CreateVar(state, 1)
	snap := incr.Snapshot(state, source.Node)
	snap.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, snap, 1)

	source.SetValue(2)
	state.Stabilize()
	incrtest.RequireValue(t, snap, 1)
}

func TestStepFunctionPicksLatestPassedStep(t *testing.T) {
	state := incr.NewState()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	steps := []incr.TimedValue[string]{
		{At: base.Add(time.Minute), Value: "one"},
		{At: base.Add(2 * time.Minute), Value: "two"},
	}
	sf := incr.StepFunction(state, fixedClock(base.Add(90*time.Second)), "zero", steps)
	sf.Observe(state)
	state.Stabilize()
	incrtest.RequireValue(t, sf, "one")
}
