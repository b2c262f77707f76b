package session

import "time"

// Timer is the step clock for one game. It never fires on its own: the host
// either schedules callbacks tagged with Generation and checks them with
// Current, or feeds frame time through Advance. Stopping bumps the
// generation, so anything scheduled earlier becomes stale.
type Timer struct {
	period  time.Duration
	active  bool
	gen     uint64
	pending time.Duration
}

// NewTimer returns a stopped timer with the given period.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Period returns the step period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Start arms the timer and returns its generation. Starting an active
// timer returns the live generation without creating a second one.
func (t *Timer) Start() uint64 {
	if t.active {
		return t.gen
	}
	t.gen++
	t.active = true
	t.pending = 0
	return t.gen
}

// Stop disarms the timer. Returns false if it was not active.
func (t *Timer) Stop() bool {
	if !t.active {
		return false
	}
	t.active = false
	t.gen++
	t.pending = 0
	return true
}

// Active reports whether the timer is armed.
func (t *Timer) Active() bool {
	return t.active
}

// Generation returns the current generation.
func (t *Timer) Generation() uint64 {
	return t.gen
}

// Current reports whether gen belongs to the live, armed timer.
func (t *Timer) Current(gen uint64) bool {
	return t.active && gen == t.gen
}

// Advance accumulates elapsed time and returns how many periods are due.
// Nothing accumulates while the timer is stopped.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.active || t.period <= 0 {
		return 0
	}
	t.pending += dt
	n := int(t.pending / t.period)
	t.pending -= time.Duration(n) * t.period
	return n
}
