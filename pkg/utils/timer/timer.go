// Package timer measures the total duration of a command and of its current stage.
package timer

import (
	"sync"
	"time"
)

// Timer tracks elapsed time for a command split into stages.
type Timer interface {
	// Start resets the timer and starts both the total and the stage clock.
	Start()
	// NewStage restarts the stage clock without touching the total.
	NewStage()
	// GetTiming returns the total and the current stage duration.
	GetTiming() (time.Duration, time.Duration)
	// Stop freezes both durations.
	Stop()
}

type timer struct {
	mu         sync.Mutex
	now        func() time.Time
	start      time.Time
	stageStart time.Time
	stopped    time.Time
}

// New creates a timer. It reports zero durations until Start is called.
func New() Timer {
	return &timer{now: time.Now}
}

func (t *timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.start = now
	t.stageStart = now
	t.stopped = time.Time{}
}

func (t *timer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stageStart = t.now()
}

func (t *timer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	end := t.stopped
	if end.IsZero() {
		end = t.now()
	}

	return end.Sub(t.start), end.Sub(t.stageStart)
}

func (t *timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() || !t.stopped.IsZero() {
		return
	}

	t.stopped = t.now()
}
