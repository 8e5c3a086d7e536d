package wiggle

import (
	"testing"

	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/prop"
	"gestures.io/stime"
)

type sink struct {
	interp.Base
}

func (s *sink) ConsumeGesture(gs.Gesture) {}
func (s *sink) PushFrame(*gs.HardwareState) stime.Time { return stime.NoDeadline }
func (s *sink) HandleTimer(stime.Time) stime.Time      { return stime.NoDeadline }

func frame(ts stime.Time, buttons gs.Buttons, fingers ...gs.FingerState) *gs.HardwareState {
	return &gs.HardwareState{
		Timestamp:   ts,
		ButtonsDown: buttons,
		FingerCount: len(fingers),
		TouchCount:  len(fingers),
		Fingers:     fingers,
	}
}

func TestWiggleSuppressOnButtonDownNearAnchor(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, &sink{})

	// Two fingers rest, then the button is pressed with only a tiny
	// (sub-threshold) shift: both contacts should be suppressed.
	f.PushFrame(frame(0, 0,
		gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10},
		gs.FingerState{TrackingID: 2, PositionX: 20, PositionY: 10},
	))

	h := frame(0.01, gs.ButtonLeft,
		gs.FingerState{TrackingID: 1, PositionX: 10.5, PositionY: 10},
		gs.FingerState{TrackingID: 2, PositionX: 20.5, PositionY: 10},
	)
	f.PushFrame(h)

	for i := range h.Fingers {
		if h.Fingers[i].Flags&gs.WarpX == 0 {
			t.Errorf("finger %d not suppressed after a sub-threshold click nudge", h.Fingers[i].TrackingID)
		}
	}
}

func TestWiggleExitsAfterButtonDownTimeout(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, &sink{})
	f.buttonDownTimeout.Set(0.4)

	f.PushFrame(frame(0, 0,
		gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10},
		gs.FingerState{TrackingID: 2, PositionX: 20, PositionY: 10},
	))
	f.PushFrame(frame(0.01, gs.ButtonLeft,
		gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10},
		gs.FingerState{TrackingID: 2, PositionX: 20, PositionY: 10},
	))

	// Still within the button-down timeout: stays suppressed.
	h1 := frame(0.2, gs.ButtonLeft,
		gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10},
		gs.FingerState{TrackingID: 2, PositionX: 20, PositionY: 10},
	)
	f.PushFrame(h1)
	if h1.Fingers[0].Flags&gs.WarpX == 0 {
		t.Fatal("finger unsuppressed before the button-down timeout elapsed")
	}

	// Past the timeout, buttons still down: exits suppression.
	h2 := frame(0.5, gs.ButtonLeft,
		gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10},
		gs.FingerState{TrackingID: 2, PositionX: 20, PositionY: 10},
	)
	f.PushFrame(h2)
	if h2.Fingers[0].Flags&gs.WarpX != 0 {
		t.Error("finger still suppressed after the button-down timeout elapsed")
	}
}

func TestOneFingerClickGetsLongestTimeout(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, &sink{})
	f.suppressTimeout.Set(0.1)
	f.oneFingerTimeout.Set(0.8)

	f.PushFrame(frame(0, 0, gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10}))
	f.PushFrame(frame(0.01, gs.ButtonLeft, gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10}))
	// Release immediately.
	h := frame(0.02, 0, gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10})
	f.PushFrame(h)
	if h.Fingers[0].Flags&gs.WarpX == 0 {
		t.Fatal("one-finger click contact unsuppressed immediately on release")
	}

	// Past the ordinary (post-release) suppressTimeout but well within the
	// one-finger click's own longer timeout: still suppressed.
	h2 := frame(0.3, 0, gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10})
	f.PushFrame(h2)
	if h2.Fingers[0].Flags&gs.WarpX == 0 {
		t.Error("one-finger click exited at the ordinary suppressTimeout instead of its own longer one")
	}
}

func TestWiggleAnchorPersistsThroughSuppression(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, &sink{})
	f.maxDist.Set(1.0)

	f.PushFrame(frame(0, 0, gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10}))
	f.PushFrame(frame(0.01, gs.ButtonLeft, gs.FingerState{TrackingID: 1, PositionX: 10.2, PositionY: 10}))

	// Drift further while still suppressed: the anchor stays at the click
	// position (10.2), the contact is 0.2 from it, within maxDist, and it
	// stays suppressed for as long as the suppression window lasts.
	h := frame(0.02, gs.ButtonLeft, gs.FingerState{TrackingID: 1, PositionX: 10.4, PositionY: 10})
	f.PushFrame(h)
	if h.Fingers[0].Flags&gs.WarpX == 0 {
		t.Error("contact exited suppression due to anchor moving, which it must not while suppressed")
	}
}

func TestFreshContactDoesNotSuppressWithoutEdge(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, &sink{})

	h := frame(0, 0, gs.FingerState{TrackingID: 1, PositionX: 10, PositionY: 10})
	f.PushFrame(h)
	if h.Fingers[0].Flags&gs.WarpX != 0 {
		t.Error("a fresh contact with no button edge was marked suppressed")
	}
}
