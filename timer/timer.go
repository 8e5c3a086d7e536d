// Package timer implements the deadline bookkeeping described in spec.md
// §5 and §6: the "Timer provider" surface filters use to request a future
// wakeup, and a Mux helper for filters (like filter/integral) that must
// multiplex a deadline of their own with whatever deadline the filter
// beneath them requested.
package timer

import "gestures.io/stime"

// Callback is invoked when a requested deadline elapses. It returns the
// delay until the next wakeup (a new relative delay to repeat), or
// stime.NoDeadline to stop.
type Callback func(now stime.Time) stime.Time

// Timer is a single outstanding deadline.
type Timer interface {
	// Set arms the timer to fire after delay, invoking cb when it does.
	// Set replaces any previously armed deadline.
	Set(delay stime.Time, cb Callback)
	// Cancel disarms the timer. It is a no-op if nothing is armed.
	Cancel()
	// Free releases the timer. It must not be used afterward.
	Free()
}

// Provider creates Timers. The host supplies one implementation (for
// example WallClock for a live pipeline, or a deterministic fake for
// tests that drives HandleTimer by hand).
type Provider interface {
	Create() Timer
}

// Mux multiplexes a filter's own absolute deadline with the relative
// timeout most recently reported by the filter beneath it, per spec.md
// §4.2.3 and §5: "the next timer it requests is
// min(remainder_reset_deadline, downstream_deadline) − now."
type Mux struct {
	// Downstream is the downstream filter's next deadline, as an
	// absolute time, or stime.NoDeadline.
	Downstream stime.Time
}

// Update records the downstream filter's most recently reported relative
// timeout (as returned from its PushFrame or HandleTimer), converting it
// to an absolute deadline relative to now.
func (m *Mux) Update(now, downstreamRelative stime.Time) {
	if downstreamRelative.Pending() {
		m.Downstream = now + downstreamRelative
	} else {
		m.Downstream = stime.NoDeadline
	}
}

// Combined returns the relative timeout to report upward: the earlier of
// own (an absolute deadline) and m.Downstream, expressed as a delay from
// now. It returns stime.NoDeadline if neither is pending.
func (m *Mux) Combined(now, own stime.Time) stime.Time {
	min := stime.Min(own, m.Downstream)
	if !min.Pending() {
		return stime.NoDeadline
	}
	if d := min - now; d > 0 {
		return d
	}
	return 0
}

// DownstreamDue reports whether the downstream deadline has elapsed as of
// now.
func (m *Mux) DownstreamDue(now stime.Time) bool {
	return m.Downstream.Pending() && m.Downstream <= now
}
