package slideshow

import (
	"context"
	"sync"
	"time"
)

const (
	defaultAutoAdvanceInterval = 2 * time.Second
)

// AutoAdvance is the optional slideshow timer.
type AutoAdvance struct {
	mu                 sync.Mutex
	isPaused           bool
	wasPlayingBeforeOp bool
	interval           time.Duration
}

// NewAutoAdvance creates a running timer that ticks every interval.
func NewAutoAdvance(interval time.Duration) *AutoAdvance {
	if interval <= 0 {
		interval = defaultAutoAdvanceInterval
	}
	return &AutoAdvance{interval: interval}
}

// TogglePlayPause toggles the play/pause state.
func (a *AutoAdvance) TogglePlayPause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.isPaused = !a.isPaused
	a.wasPlayingBeforeOp = false
}

// Pause stops ticks from advancing. With forOperation set, ResumeAfterOperation
// restores the previous state.
func (a *AutoAdvance) Pause(forOperation bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if forOperation {
		a.wasPlayingBeforeOp = !a.isPaused
	}
	a.isPaused = true
}

// ResumeAfterOperation resumes only if the timer was running before Pause(true).
func (a *AutoAdvance) ResumeAfterOperation() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.wasPlayingBeforeOp {
		a.isPaused = false
	}
	a.wasPlayingBeforeOp = false
}

// IsPaused reports whether ticks are currently ignored.
func (a *AutoAdvance) IsPaused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isPaused
}

// Interval returns the tick period.
func (a *AutoAdvance) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

// Run calls tick every interval while not paused, until ctx is done.
func (a *AutoAdvance) Run(ctx context.Context, tick func()) {
	ticker := time.NewTicker(a.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !a.IsPaused() {
				tick()
			}
		}
	}
}
