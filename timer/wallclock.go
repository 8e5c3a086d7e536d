package timer

import (
	"sync"
	"time"

	"gestures.io/stime"
)

// WallClock is a reference Provider for live pipelines (cmd/gesturepipe):
// it schedules callbacks with time.AfterFunc against the process's
// monotonic clock, grounded on the single-callback timer idiom the
// teacher's windowing layer uses to schedule frame redraws.
type WallClock struct {
	epoch time.Time
}

// NewWallClock returns a Provider whose stime.Time values are seconds
// since epoch (or since the provider's creation, if epoch is the zero
// time).
func NewWallClock(epoch time.Time) *WallClock {
	if epoch.IsZero() {
		epoch = time.Now()
	}
	return &WallClock{epoch: epoch}
}

// Now returns the current time relative to the provider's epoch.
func (w *WallClock) Now() stime.Time {
	return stime.Time(time.Since(w.epoch).Seconds())
}

// Create returns a new, disarmed Timer.
func (w *WallClock) Create() Timer {
	return &wallClockTimer{clock: w}
}

type wallClockTimer struct {
	clock *WallClock
	mu    sync.Mutex
	t     *time.Timer
}

func (t *wallClockTimer) Set(delay stime.Time, cb Callback) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
	}
	if !delay.Pending() {
		t.t = nil
		return
	}
	if delay < 0 {
		delay = 0
	}
	t.t = time.AfterFunc(time.Duration(float64(delay)*float64(time.Second)), func() {
		t.fire(cb)
	})
}

func (t *wallClockTimer) fire(cb Callback) {
	next := cb(t.clock.Now())
	if next.Pending() {
		t.Set(next, cb)
	}
}

func (t *wallClockTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

func (t *wallClockTimer) Free() {
	t.Cancel()
}
