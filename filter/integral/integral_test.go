package integral

import (
	"testing"

	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/prop"
	"gestures.io/stime"
)

type sink struct {
	interp.Base
	pushed []*gs.HardwareState
	deadline stime.Time
}

func newSink() *sink { return &sink{deadline: stime.NoDeadline} }

func (s *sink) ConsumeGesture(gs.Gesture) {}
func (s *sink) PushFrame(h *gs.HardwareState) stime.Time {
	s.pushed = append(s.pushed, h)
	return s.deadline
}
func (s *sink) HandleTimer(stime.Time) stime.Time { return stime.NoDeadline }

func TestScrollAccumulatesFractionalRemainder(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, newSink())
	var produced []gs.Gesture
	f.SetConsumer(func(g gs.Gesture) { produced = append(produced, g) })

	for _, d := range []float64{-20.9, 0.8, -0.8, -0.2} {
		f.ConsumeGesture(gs.NewScroll(0, 0, d, 0))
	}

	var gotDX []float64
	for _, g := range produced {
		if g.Type == gs.TypeScroll {
			gotDX = append(gotDX, g.Scroll.DX)
		}
	}
	if len(gotDX) != 2 {
		t.Fatalf("produced %d nonzero scrolls, want 2 (dx=-20 and dx=-1)", len(gotDX))
	}
	if gotDX[0] != -20 || gotDX[1] != -1 {
		t.Errorf("emitted dx = %v, want [-20 -1]", gotDX)
	}
}

func TestStopFlingSynthesizesTapDownOnZeroDelta(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, newSink())
	var produced []gs.Gesture
	f.SetConsumer(func(g gs.Gesture) { produced = append(produced, g) })

	// Accumulate to a known remainder, then send a scroll whose truncated
	// delta is zero with stop_fling set.
	f.ConsumeGesture(gs.NewScroll(0, 0, 0.8, 0))  // emits 0, remainder 0.8
	g := gs.NewScroll(0, 0, -0.8, 0)               // remainder -> 0.0, emits 0
	g.Scroll.StopFling = true
	f.ConsumeGesture(g)

	if len(produced) != 1 {
		t.Fatalf("produced %d gestures, want 1 (synthesized Fling)", len(produced))
	}
	if produced[0].Type != gs.TypeFling || produced[0].Fling.State != gs.FlingTapDown {
		t.Errorf("produced %+v, want a TAP_DOWN Fling", produced[0])
	}
}

func TestResetOnlyFiresWhenContactEnded(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, newSink())
	var produced []gs.Gesture
	f.SetConsumer(func(g gs.Gesture) { produced = append(produced, g) })

	f.ConsumeGesture(gs.NewScroll(0, 0, 3.9, 0)) // emits 3, remainder 0.9, reset deadline = 1.0
	gotBefore := produced[len(produced)-1].Scroll.DX
	if gotBefore != 3 {
		t.Fatalf("first scroll emitted dx=%v, want 3", gotBefore)
	}

	// A frame with fingers present should not allow the reset to clear.
	f.PushFrame(&gs.HardwareState{Timestamp: 0.5, FingerCount: 1, TouchCount: 1})
	f.HandleTimer(1.0)
	if f.hScroll == 0 {
		t.Error("reset cleared the accumulator despite a finger present at the last frame")
	}

	// A subsequent zero-finger frame does allow it to clear once the
	// deadline fires again.
	f.armResetDeadline(1.0)
	f.PushFrame(&gs.HardwareState{Timestamp: 1.5, FingerCount: 0, TouchCount: 0})
	f.HandleTimer(2.5)
	if f.hScroll != 0 {
		t.Errorf("hScroll = %v after a real end-of-drag reset, want 0", f.hScroll)
	}

	f.ConsumeGesture(gs.NewScroll(2.6, 2.6, 0.2, 0))
	if len(produced) != 1 {
		t.Fatalf("produced %d gestures after reset, want 1 total (the post-reset scroll emits nothing)", len(produced))
	}
}

func TestHandleTimerPreservesPendingDownstreamDeadline(t *testing.T) {
	reg := prop.NewRegistry()
	s := newSink()
	s.deadline = 20
	f := New(reg, s)

	f.PushFrame(&gs.HardwareState{Timestamp: 0, FingerCount: 0, TouchCount: 0})
	f.ConsumeGesture(gs.NewScroll(0, 0, 3.9, 0)) // reset deadline = 1.0

	got := f.HandleTimer(5)
	if got != 15 {
		t.Fatalf("HandleTimer(5) = %v, want 15 (downstream due at t=20, 15 away)", got)
	}
}

func TestMoveForwardedOnlyWhenNonzero(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, newSink())
	var produced []gs.Gesture
	f.SetConsumer(func(g gs.Gesture) { produced = append(produced, g) })

	f.ConsumeGesture(gs.NewMove(0, 0.01, 0, 0))
	if len(produced) != 0 {
		t.Errorf("produced %d for an all-zero Move, want 0", len(produced))
	}
	f.ConsumeGesture(gs.NewMove(0, 0.01, 0.4, 0))
	if len(produced) != 1 {
		t.Errorf("produced %d for a nonzero Move, want 1 (moves are not truncated)", len(produced))
	}
	if produced[0].Move.DX != 0.4 {
		t.Errorf("Move.DX = %v, want 0.4 unchanged", produced[0].Move.DX)
	}
}

func TestWheelForwardsOnNonzeroTick(t *testing.T) {
	reg := prop.NewRegistry()
	f := New(reg, newSink())
	var produced []gs.Gesture
	f.SetConsumer(func(g gs.Gesture) { produced = append(produced, g) })

	g := gs.Gesture{Type: gs.TypeMouseWheel, Wheel: gs.MouseWheelDetails{DX: 0.1, Tick120thsDX: 120}}
	f.ConsumeGesture(g)
	if len(produced) != 1 {
		t.Fatalf("produced %d, want 1 (nonzero tick forwards even with a truncated-to-zero delta)", len(produced))
	}
	if produced[0].Wheel.DX != 0 {
		t.Errorf("Wheel.DX = %v, want 0 (0.1 truncates to 0)", produced[0].Wheel.DX)
	}
}
