// Package timer implements the single live work/break timer: a small state
// machine whose counters accrue one second at a time while the timer is
// active (work) or paused (break).
package timer

import (
	"sync"
	"time"

	"github.com/mfriesen/daybook/internal/domain"
)

// Snapshot is a point-in-time copy of the engine's counters and status.
type Snapshot struct {
	WorkSeconds  int
	BreakSeconds int
	Status       domain.SessionStatus
}

// Engine is the process-wide timer state machine.
//
// States: completed (initial and terminal) -> active <-> paused, and both
// running states end back in completed. Exactly one repeating tick is
// outstanding at any time; every transition cancels the previous tick
// before scheduling the next, so at most one accrual goroutine exists.
//
// Safe for concurrent use; all state is guarded by one mutex.
type Engine struct {
	mu           sync.Mutex
	workSeconds  int
	breakSeconds int
	status       domain.SessionStatus

	interval time.Duration
	cancel   chan struct{} // closes to stop the current tick goroutine
}

// NewEngine creates an Engine in the completed (idle) state with a
// one-second accrual interval.
func NewEngine() *Engine {
	return &Engine{
		status:   domain.SessionCompleted,
		interval: time.Second,
	}
}

// Start transitions to active and begins work accrual. Calling Start while
// already active is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == domain.SessionActive {
		return
	}
	e.status = domain.SessionActive
	e.scheduleLocked()
}

// Pause transitions from active to paused and begins break accrual.
// A no-op from any other state.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != domain.SessionActive {
		return
	}
	e.status = domain.SessionPaused
	e.scheduleLocked()
}

// End stops all accrual, resets both counters to zero and returns the final
// counters as they stood before the reset, so the caller can materialize a
// work session. From the completed state End is a no-op returning zeros.
func (e *Engine) End() (workSeconds, breakSeconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == domain.SessionCompleted {
		return 0, 0
	}
	workSeconds, breakSeconds = e.workSeconds, e.breakSeconds
	e.workSeconds = 0
	e.breakSeconds = 0
	e.status = domain.SessionCompleted
	e.cancelLocked()
	return workSeconds, breakSeconds
}

// Tick applies one accrual step: one second of work while active, one
// second of break while paused, nothing once completed. The internal
// runner calls it once per interval; tests call it directly.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.status {
	case domain.SessionActive:
		e.workSeconds++
	case domain.SessionPaused:
		e.breakSeconds++
	}
}

// Snapshot returns the current counters and status.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		WorkSeconds:  e.workSeconds,
		BreakSeconds: e.breakSeconds,
		Status:       e.status,
	}
}

// Status returns the current state without the counters.
func (e *Engine) Status() domain.SessionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// scheduleLocked cancels the outstanding tick, if any, and starts a new
// repeating one. Caller holds the mutex.
func (e *Engine) scheduleLocked() {
	e.cancelLocked()
	cancel := make(chan struct{})
	e.cancel = cancel

	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				e.Tick()
			}
		}
	}()
}

// cancelLocked stops the outstanding tick goroutine. Caller holds the mutex.
func (e *Engine) cancelLocked() {
	if e.cancel != nil {
		close(e.cancel)
		e.cancel = nil
	}
}
