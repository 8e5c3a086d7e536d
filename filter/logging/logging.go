// Package logging implements the observability tee of SPEC_FULL.md §4.4:
// the top-most stage in the pipeline, sitting between the client and
// Integral. It never changes gesture content.
package logging

import (
	"log"

	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/stime"
)

// Filter forwards every frame, gesture, and timer call unchanged, logging
// one diagnostic line per produced gesture.
type Filter struct {
	interp.Base

	verbose bool
}

// New constructs a logging filter that owns next. Setting verbose logs
// every produced gesture; otherwise only Diag-level lines are emitted.
func New(next interp.Interpreter, verbose bool) *Filter {
	f := &Filter{verbose: verbose}
	f.Wire(next, f.ConsumeGesture)
	return f
}

func (f *Filter) ConsumeGesture(g gs.Gesture) {
	if f.verbose {
		log.Printf("gesture: type=%d start=%v end=%v", g.Type, g.StartTime, g.EndTime)
	}
	f.Produce(g)
}

func (f *Filter) PushFrame(hwstate *gs.HardwareState) stime.Time {
	return f.Next.PushFrame(hwstate)
}

func (f *Filter) HandleTimer(now stime.Time) stime.Time {
	return f.Next.HandleTimer(now)
}

// Diag logs a recoverable condition from spec.md §7: malformed
// configuration, a timestamp anomaly, a spurious timer, or a missing
// tracking id. It never panics.
func Diag(format string, args ...any) {
	log.Printf("[diag] "+format, args...)
}
