// Package wiggle implements the click-wiggle suppressor of spec.md §4.3:
// on a clickable-surface touchpad, pressing the physical button often
// nudges the contact by a millimetre or two. This filter marks that motion
// with warp flags so stages above it know to ignore it.
package wiggle

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gestures.io/filter/logging"
	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/prop"
	"gestures.io/stime"
)

// record is the per-contact suppression state of spec.md §4.3.1.
type record struct {
	x, y                   float64 // anchor: position at which suppression began
	beganPressSuppression  stime.Time
	suppressing            bool
	// oneFingerClick is latched when this contact entered suppression via
	// a rising edge with exactly one finger on the pad, which earns the
	// longest exit timeout.
	oneFingerClick bool
}

// Filter is the click-wiggle suppressor.
type Filter struct {
	interp.Base

	records map[gs.TrackingID]*record

	buttonEdgeOccurred       stime.Time
	buttonEdgeWithOneFinger  bool
	prevButtons              gs.Buttons
	prevPressure             map[gs.TrackingID]float64

	maxDist             *prop.Float
	suppressTimeout     *prop.Float
	buttonDownTimeout   *prop.Float
	oneFingerTimeout    *prop.Float
}

// New constructs a click-wiggle suppressor that owns next.
func New(reg *prop.Registry, next interp.Interpreter) *Filter {
	f := &Filter{
		records:      make(map[gs.TrackingID]*record),
		prevPressure: make(map[gs.TrackingID]float64),

		maxDist:           prop.CreateFloat(reg, "Wiggle Max Distance", 5.0),
		suppressTimeout:   prop.CreateFloat(reg, "Wiggle Suppress Timeout", 0.5),
		buttonDownTimeout: prop.CreateFloat(reg, "Wiggle Button Down Timeout", 0.4),
		oneFingerTimeout:  prop.CreateFloat(reg, "One Finger Click Wiggle Timeout", 0.8),
	}
	f.Wire(next, f.ConsumeGesture)
	return f
}

func (f *Filter) ConsumeGesture(g gs.Gesture) {
	f.Produce(g)
}

func (f *Filter) PushFrame(hwstate *gs.HardwareState) stime.Time {
	edge := gs.Changed(f.prevButtons, hwstate.ButtonsDown)
	rising := gs.Pressed(f.prevButtons, hwstate.ButtonsDown) != 0
	oneFingerEdge := edge && len(hwstate.Fingers) == 1
	if edge {
		f.buttonEdgeOccurred = hwstate.Timestamp
		f.buttonEdgeWithOneFinger = oneFingerEdge
	}

	present := make(map[gs.TrackingID]bool, len(hwstate.Fingers))
	for i := range hwstate.Fingers {
		fs := &hwstate.Fingers[i]
		present[fs.TrackingID] = true

		rec, ok := f.records[fs.TrackingID]
		if !ok {
			rec = &record{x: fs.PositionX, y: fs.PositionY}
			f.records[fs.TrackingID] = rec
		}

		wasSuppressing := rec.suppressing

		dist := math.Hypot(fs.PositionX-rec.x, fs.PositionY-rec.y)
		if edge && (dist <= f.maxDist.Get() || oneFingerEdge) {
			wasAlreadySuppressing := rec.suppressing
			rec.suppressing = true
			rec.beganPressSuppression = hwstate.Timestamp
			// Latch, never clear: a release edge re-triggering entry must
			// not erase the longer timeout a prior one-finger press edge
			// already earned within this same suppression episode.
			if !wasAlreadySuppressing {
				rec.oneFingerClick = false
				rec.x, rec.y = fs.PositionX, fs.PositionY
			}
			rec.oneFingerClick = rec.oneFingerClick || (rising && oneFingerEdge)
		}

		if rec.suppressing {
			elapsed := float64(hwstate.Timestamp - rec.beganPressSuppression)
			timeout := f.suppressTimeout.Get()
			switch {
			case rec.oneFingerClick:
				timeout = f.oneFingerTimeout.Get()
			case hwstate.ButtonsDown != 0:
				timeout = f.buttonDownTimeout.Get()
			}
			if elapsed >= timeout {
				rec.suppressing = false
			}
		}

		if rec.suppressing {
			fs.Flags |= gs.WarpX | gs.WarpY
		} else {
			// Anchor tracks the last known non-suppressed position so
			// that, should suppression begin on a later frame, dist is
			// measured from where the contact rested before the click.
			rec.x, rec.y = fs.PositionX, fs.PositionY
			if wasSuppressing {
				delete(f.records, fs.TrackingID)
			}
		}

		f.prevPressure[fs.TrackingID] = fs.Pressure
	}

	// Iterate stale ids in a deterministic order (rather than Go's
	// randomized map order) so the diagnostic below reads consistently
	// across runs, matching the widget icon cache's use of the same
	// x/exp helpers for stable ordering over map data.
	stale := maps.Keys(f.records)
	slices.Sort(stale)
	for _, id := range stale {
		if present[id] {
			continue
		}
		if f.records[id].suppressing {
			logging.Diag("wiggle: tracking id %d vanished mid-suppression", id)
		}
		delete(f.records, id)
	}
	for id := range f.prevPressure {
		if !present[id] {
			delete(f.prevPressure, id)
		}
	}

	f.prevButtons = hwstate.ButtonsDown

	return f.Next.PushFrame(hwstate)
}

func (f *Filter) HandleTimer(now stime.Time) stime.Time {
	return f.Next.HandleTimer(now)
}
