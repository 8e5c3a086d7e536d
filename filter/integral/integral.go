// Package integral implements the integral filter of spec.md §4.2: clients
// expect integer pixel quantities on scroll and wheel events, but
// fractional deltas must accumulate so slow motion still progresses.
package integral

import (
	"gestures.io/filter/logging"
	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/prop"
	"gestures.io/stime"
	"gestures.io/timer"
)

const resetDelay stime.Time = 1.0

// Filter is the integral filter.
type Filter struct {
	interp.Base

	hScroll, vScroll               float64
	hScrollOrdinal, vScrollOrdinal float64

	canClearRemainders bool
	resetDeadline       stime.Time // absolute; stime.NoDeadline if none pending

	mux timer.Mux

	enabled *prop.Bool
}

// New constructs an integral filter that owns next.
func New(reg *prop.Registry, next interp.Interpreter) *Filter {
	f := &Filter{
		resetDeadline: stime.NoDeadline,
		enabled:       prop.CreateBool(reg, "Integral Filter Enable", true),
	}
	f.Wire(next, f.ConsumeGesture)
	return f
}

func (f *Filter) ConsumeGesture(g gs.Gesture) {
	if !f.enabled.Get() {
		f.Produce(g)
		return
	}

	switch g.Type {
	case gs.TypeMove:
		m := g.Move
		if m.DX != 0 || m.DY != 0 || m.OrdinalDX != 0 || m.OrdinalDY != 0 {
			f.Produce(g)
		}

	case gs.TypeScroll:
		s := g.Scroll
		dx := truncate(&f.hScroll, s.DX)
		dy := truncate(&f.vScroll, s.DY)
		odx := truncate(&f.hScrollOrdinal, s.OrdinalDX)
		ody := truncate(&f.vScrollOrdinal, s.OrdinalDY)

		out := g
		out.Scroll.DX, out.Scroll.DY = dx, dy
		out.Scroll.OrdinalDX, out.Scroll.OrdinalDY = odx, ody

		if dx != 0 || dy != 0 || odx != 0 || ody != 0 {
			f.Produce(out)
		} else if s.StopFling {
			f.Produce(gs.NewFling(g.StartTime, g.EndTime, 0, 0, gs.FlingTapDown))
		}
		f.armResetDeadline(g.EndTime)

	case gs.TypeMouseWheel:
		w := g.Wheel
		dx := truncate(&f.hScroll, w.DX)
		dy := truncate(&f.vScroll, w.DY)

		out := g
		out.Wheel.DX, out.Wheel.DY = dx, dy
		if dx != 0 || dy != 0 || w.Tick120thsDX != 0 || w.Tick120thsDY != 0 {
			f.Produce(out)
		}
		f.armResetDeadline(g.EndTime)

	default:
		f.Produce(g)
	}
}

// truncate adds delta into *accumulator, emits the integer part
// (sign-preserving, toward zero), and keeps the fractional remainder.
func truncate(accumulator *float64, delta float64) float64 {
	*accumulator += delta
	whole := float64(int64(*accumulator))
	*accumulator -= whole
	return whole
}

func (f *Filter) armResetDeadline(end stime.Time) {
	f.resetDeadline = end + resetDelay
}

func (f *Filter) PushFrame(hwstate *gs.HardwareState) stime.Time {
	f.canClearRemainders = hwstate.FingerCount == 0 && hwstate.TouchCount == 0

	downstream := f.Next.PushFrame(hwstate)
	f.mux.Update(hwstate.Timestamp, downstream)

	return f.mux.Combined(hwstate.Timestamp, f.resetDeadline)
}

func (f *Filter) HandleTimer(now stime.Time) stime.Time {
	if !(f.resetDeadline.Pending() && f.resetDeadline <= now) && !f.mux.DownstreamDue(now) {
		logging.Diag("integral: spurious timer callback at %v", now)
		return f.mux.Combined(now, f.resetDeadline)
	}
	if f.resetDeadline.Pending() && f.resetDeadline <= now {
		if f.canClearRemainders {
			f.hScroll, f.vScroll = 0, 0
			f.hScrollOrdinal, f.vScrollOrdinal = 0, 0
		}
		f.resetDeadline = stime.NoDeadline
	}

	if f.mux.DownstreamDue(now) {
		f.mux.Update(now, f.Next.HandleTimer(now))
	}

	return f.mux.Combined(now, f.resetDeadline)
}
