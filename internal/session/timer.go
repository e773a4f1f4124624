// Package session implements the exposure-session core: a resumable
// stopwatch and an append-only log of (elapsed time, rating) pairs.
package session

import "time"

// Timer is a resumable stopwatch. It is not safe for concurrent use;
// all calls are expected to come from the single UI goroutine.
type Timer struct {
	running bool
	anchor  time.Time
	elapsed time.Duration
	now     func() time.Time
}

// NewTimer creates a stopped timer at zero elapsed time.
func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock creates a timer that reads time from the given
// clock function instead of time.Now (useful for testing).
func NewTimerWithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Start begins or resumes timing. No-op if already running.
// Resuming anchors the clock at now minus the committed elapsed time,
// so the stopwatch continues from where it left off.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.anchor = t.now().Add(-t.elapsed)
}

// Stop pauses timing and commits the elapsed duration. No-op if
// already stopped.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.elapsed = t.now().Sub(t.anchor)
	t.running = false
}

// Toggle flips between running and stopped and returns the new
// running state. A false return means the timer just stopped and the
// caller should present results.
func (t *Timer) Toggle() bool {
	if t.running {
		t.Stop()
	} else {
		t.Start()
	}
	return t.running
}

// Running reports whether the clock is currently advancing.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the current elapsed time: a live reading while
// running, the committed duration while stopped.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.now().Sub(t.anchor)
	}
	return t.elapsed
}
