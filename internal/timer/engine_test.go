package timer

import (
	"testing"

	"github.com/mfriesen/daybook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tick advances the engine n accrual steps without waiting on the wall clock.
func tick(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

func TestEngine_InitialState(t *testing.T) {
	e := NewEngine()
	defer e.End()

	snap := e.Snapshot()
	assert.Equal(t, domain.SessionCompleted, snap.Status)
	assert.Equal(t, 0, snap.WorkSeconds)
	assert.Equal(t, 0, snap.BreakSeconds)
}

func TestEngine_WorkAccruesWhileActive(t *testing.T) {
	e := NewEngine()
	defer e.End()

	e.Start()
	tick(e, 5)

	snap := e.Snapshot()
	assert.Equal(t, domain.SessionActive, snap.Status)
	assert.Equal(t, 5, snap.WorkSeconds)
	assert.Equal(t, 0, snap.BreakSeconds)
}

func TestEngine_BreakAccruesWhilePaused(t *testing.T) {
	e := NewEngine()
	defer e.End()

	e.Start()
	tick(e, 3)
	e.Pause()
	tick(e, 2)

	snap := e.Snapshot()
	assert.Equal(t, domain.SessionPaused, snap.Status)
	assert.Equal(t, 3, snap.WorkSeconds, "work counter frozen while paused")
	assert.Equal(t, 2, snap.BreakSeconds)
}

func TestEngine_StartWhileActiveIsNoOp(t *testing.T) {
	e := NewEngine()
	defer e.End()

	e.Start()
	tick(e, 4)
	e.Start()

	snap := e.Snapshot()
	assert.Equal(t, 4, snap.WorkSeconds, "re-start must not reset the counter")
	assert.Equal(t, domain.SessionActive, snap.Status)
}

func TestEngine_PauseOnlyValidFromActive(t *testing.T) {
	e := NewEngine()
	defer e.End()

	// Pause from completed: nothing happens.
	e.Pause()
	assert.Equal(t, domain.SessionCompleted, e.Status())

	// Pause from paused: stays paused, break keeps accruing.
	e.Start()
	e.Pause()
	tick(e, 2)
	e.Pause()
	tick(e, 1)

	snap := e.Snapshot()
	assert.Equal(t, domain.SessionPaused, snap.Status)
	assert.Equal(t, 3, snap.BreakSeconds)
}

func TestEngine_ResumeAfterPause(t *testing.T) {
	e := NewEngine()
	defer e.End()

	e.Start()
	tick(e, 2)
	e.Pause()
	tick(e, 1)
	e.Start()
	tick(e, 3)

	snap := e.Snapshot()
	assert.Equal(t, domain.SessionActive, snap.Status)
	assert.Equal(t, 5, snap.WorkSeconds)
	assert.Equal(t, 1, snap.BreakSeconds)
}

func TestEngine_EndReturnsSnapshotThenResets(t *testing.T) {
	e := NewEngine()

	e.Start()
	tick(e, 1500)
	e.Pause()
	tick(e, 300)

	work, brk := e.End()
	assert.Equal(t, 1500, work)
	assert.Equal(t, 300, brk)

	snap := e.Snapshot()
	assert.Equal(t, domain.SessionCompleted, snap.Status)
	assert.Equal(t, 0, snap.WorkSeconds)
	assert.Equal(t, 0, snap.BreakSeconds)
}

func TestEngine_EndFromCompletedIsNoOp(t *testing.T) {
	e := NewEngine()

	work, brk := e.End()
	assert.Equal(t, 0, work)
	assert.Equal(t, 0, brk)
	assert.Equal(t, domain.SessionCompleted, e.Status())
}

func TestEngine_EndOnlyWorkNoBreak(t *testing.T) {
	e := NewEngine()

	e.Start()
	tick(e, 7)
	work, brk := e.End()

	assert.Equal(t, 7, work, "end after a single start yields the held duration")
	assert.Equal(t, 0, brk)
}

func TestEngine_NewCycleAfterEnd(t *testing.T) {
	e := NewEngine()
	defer e.End()

	e.Start()
	tick(e, 10)
	e.End()

	e.Start()
	tick(e, 2)
	snap := e.Snapshot()
	assert.Equal(t, 2, snap.WorkSeconds, "counters start from zero in a new cycle")
	assert.Equal(t, domain.SessionActive, snap.Status)
}

func TestEngine_CountersNeverDecreaseExceptViaEnd(t *testing.T) {
	e := NewEngine()
	defer e.End()

	prevWork, prevBreak := 0, 0
	step := func() {
		snap := e.Snapshot()
		require.GreaterOrEqual(t, snap.WorkSeconds, prevWork)
		require.GreaterOrEqual(t, snap.BreakSeconds, prevBreak)
		prevWork, prevBreak = snap.WorkSeconds, snap.BreakSeconds
	}

	e.Start()
	for i := 0; i < 20; i++ {
		tick(e, 1)
		step()
		if i%5 == 0 {
			e.Pause()
		} else if i%7 == 0 {
			e.Start()
		}
		step()
	}
}

func TestEngine_TickIgnoredWhenCompleted(t *testing.T) {
	e := NewEngine()

	tick(e, 3)
	snap := e.Snapshot()
	assert.Equal(t, 0, snap.WorkSeconds)
	assert.Equal(t, 0, snap.BreakSeconds)
}
