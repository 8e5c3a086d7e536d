// Package recognizer is a minimal stand-in for the upstream "immediate"
// gesture recognizer that spec.md §1 deliberately places out of scope. It
// exists only so cmd/gesturepipe has something to sit beneath
// filter/wiggle, filter/accel, and filter/integral: it implements none of
// libgestures' actual recognition heuristics (palm rejection, tap
// detection, multi-finger classification, pinch, swipe).
package recognizer

import (
	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/stime"
)

// Filter turns the simplest possible finger motion into Move or Scroll
// gestures: one tracked finger produces Move, two produce Scroll of their
// average delta. Any other finger count produces nothing.
type Filter struct {
	interp.Base

	hwprops gs.HardwareProperties
	prev    *gs.HardwareState
}

// New returns a recognizer stub. It has no downstream filter: it is meant
// to sit at the bottom of the chain.
func New() *Filter {
	return &Filter{}
}

func (f *Filter) SetHardwareProperties(hwprops gs.HardwareProperties) {
	f.hwprops = hwprops
}

// ConsumeGesture is never called: nothing sits beneath this filter.
func (f *Filter) ConsumeGesture(gs.Gesture) {}

func (f *Filter) PushFrame(hwstate *gs.HardwareState) stime.Time {
	defer func() {
		cp := *hwstate
		cp.Fingers = append([]gs.FingerState(nil), hwstate.Fingers...)
		f.prev = &cp
	}()

	if f.prev == nil || len(hwstate.Fingers) == 0 || len(f.prev.Fingers) != len(hwstate.Fingers) {
		return stime.NoDeadline
	}

	var dxs, dys []float64
	for i := range hwstate.Fingers {
		cur := hwstate.Fingers[i]
		prev := f.prev.FingerByTrackingID(cur.TrackingID)
		if prev == nil {
			return stime.NoDeadline
		}
		dxs = append(dxs, cur.PositionX-prev.PositionX)
		dys = append(dys, cur.PositionY-prev.PositionY)
	}

	var dx, dy float64
	for i := range dxs {
		dx += dxs[i]
		dy += dys[i]
	}
	dx /= float64(len(dxs))
	dy /= float64(len(dys))

	switch len(hwstate.Fingers) {
	case 1:
		f.Produce(gs.NewMove(f.prev.Timestamp, hwstate.Timestamp, dx, dy))
	case 2:
		f.Produce(gs.NewScroll(f.prev.Timestamp, hwstate.Timestamp, dx, dy))
	}
	return stime.NoDeadline
}

func (f *Filter) HandleTimer(now stime.Time) stime.Time {
	return stime.NoDeadline
}
