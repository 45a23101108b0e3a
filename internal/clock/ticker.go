package clock

import "time"

// Ticker is an accumulator scheduler. On every wakeup the owner asks Due(now);
// the ticker fires when the time since its last firing has met or exceeded the
// interval, then resets the accumulator to now.
//
// The interval is read on each Due call, so a variable ticker honors interval
// changes on the next wakeup without being restarted.
type Ticker struct {
	interval func() time.Duration
	last     time.Time
	running  bool
}

// NewFixed creates a ticker with a constant interval.
func NewFixed(d time.Duration) *Ticker {
	return &Ticker{interval: func() time.Duration { return d }}
}

// NewVariable creates a ticker whose interval is read from fn at every wakeup.
func NewVariable(fn func() time.Duration) *Ticker {
	return &Ticker{interval: fn}
}

// Start arms the ticker. The first firing happens one interval after now.
func (t *Ticker) Start(now time.Time) {
	t.last = now
	t.running = true
}

// Stop disarms the ticker. Due returns false until the next Start.
func (t *Ticker) Stop() {
	t.running = false
}

// Running reports whether the ticker is armed.
func (t *Ticker) Running() bool {
	return t.running
}

// Due reports whether the ticker fires at now. Fires at most once per call.
func (t *Ticker) Due(now time.Time) bool {
	if !t.running || t.interval == nil {
		return false
	}
	d := t.interval()
	if d <= 0 {
		return false
	}
	if now.Sub(t.last) < d {
		return false
	}
	t.last = now
	return true
}

// Remaining returns the time until the next firing, or 0 when stopped or overdue.
func (t *Ticker) Remaining(now time.Time) time.Duration {
	if !t.running || t.interval == nil {
		return 0
	}
	left := t.interval() - now.Sub(t.last)
	if left < 0 {
		return 0
	}
	return left
}
