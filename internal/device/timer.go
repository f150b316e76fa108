package device

import "time"

// Clock returns the current time. Tests substitute a manual clock.
type Clock func() time.Time

// OneShot is a polled software timer. Once started it reports expiry
// exactly once; further polls return false until it is started again.
type OneShot struct {
	now      Clock
	deadline time.Time
	armed    bool
}

// NewOneShot creates an idle timer reading time from now.
// A nil clock falls back to time.Now.
func NewOneShot(now Clock) *OneShot {
	if now == nil {
		now = time.Now
	}
	return &OneShot{now: now}
}

// Start arms the timer to expire d from now, replacing any pending run.
func (t *OneShot) Start(d time.Duration) {
	t.deadline = t.now().Add(d)
	t.armed = true
}

// Expired reports whether the deadline has passed since the last Start.
// It does not block.
func (t *OneShot) Expired() bool {
	if !t.armed {
		return false
	}
	if t.now().Before(t.deadline) {
		return false
	}
	t.armed = false
	return true
}

// Running reports whether the timer is armed and not yet expired.
func (t *OneShot) Running() bool {
	return t.armed
}

// Remaining returns the time left before expiry, zero when idle or due.
func (t *OneShot) Remaining() time.Duration {
	if !t.armed {
		return 0
	}
	if left := t.deadline.Sub(t.now()); left > 0 {
		return left
	}
	return 0
}
