// Package accel implements the acceleration filter of spec.md §4.1: it
// maps a gesture's raw speed to an output magnitude along a user-selected
// sensitivity curve, with temporal smoothing and robustness against
// jittery timestamps.
package accel

import (
	"math"

	"gestures.io/curve"
	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/prop"
	"gestures.io/stime"
)

var inf = math.Inf(1)

const tinySpeed = 0.00001

// Filter is the acceleration filter.
type Filter struct {
	interp.Base

	pointCurves      [numSensitivities]curve.Curve
	oldMousePointCurves [numSensitivities]curve.Curve
	mousePointCurves [numSensitivities]curve.Curve
	scrollCurves     [numSensitivities]curve.Curve
	unaccelPointCurves [numSensitivities]curve.Curve
	unaccelMouseCurves [numSensitivities]curve.Curve

	tpCustomPoint    curve.Curve
	tpCustomScroll   curve.Curve
	mouseCustomPoint curve.Curve

	useCustomTPPoint    *prop.Bool
	useCustomTPScroll   *prop.Bool
	useCustomMouse      *prop.Bool

	pointerSensitivity *prop.Int
	scrollSensitivity  *prop.Int

	pointXOutScale  *prop.Float
	pointYOutScale  *prop.Float
	scrollXOutScale *prop.Float
	scrollYOutScale *prop.Float

	useMousePointCurves    *prop.Bool
	useMouseScrollCurves   *prop.Bool
	useOldMousePointCurves *prop.Bool
	pointerAcceleration    *prop.Bool

	minReasonableDt *prop.Float
	maxReasonableDt *prop.Float
	smoothAccel     *prop.Bool

	lastReasonableDt stime.Time

	smooth smoother
}

// New constructs an acceleration filter that owns next.
func New(reg *prop.Registry, next interp.Interpreter) *Filter {
	f := &Filter{
		pointCurves:         touchpadPointerCurves(),
		oldMousePointCurves: legacyMousePointerCurves(),
		mousePointCurves:    mousePointerCurves(),
		scrollCurves:        touchpadScrollCurves(),
		unaccelPointCurves:  unaccelTouchpadCurves(),
		unaccelMouseCurves:  unaccelMouseCurves(),

		useCustomTPPoint:  prop.CreateBool(reg, "Use Custom Touchpad Pointer Accel Curve", false),
		useCustomTPScroll: prop.CreateBool(reg, "Use Custom Touchpad Scroll Accel Curve", false),
		useCustomMouse:    prop.CreateBool(reg, "Use Custom Mouse Pointer Accel Curve", false),

		pointerSensitivity: prop.CreateInt(reg, "Pointer Sensitivity", 3, 1, 5),
		scrollSensitivity:  prop.CreateInt(reg, "Scroll Sensitivity", 3, 1, 5),

		pointXOutScale:  prop.CreateFloat(reg, "Point X Out Scale", 1.0),
		pointYOutScale:  prop.CreateFloat(reg, "Point Y Out Scale", 1.0),
		scrollXOutScale: prop.CreateFloat(reg, "Scroll X Out Scale", 2.5),
		scrollYOutScale: prop.CreateFloat(reg, "Scroll Y Out Scale", 2.5),

		useMousePointCurves:    prop.CreateBool(reg, "Mouse Accel Curves", false),
		useMouseScrollCurves:   prop.CreateBool(reg, "Mouse Scroll Curves", false),
		useOldMousePointCurves: prop.CreateBool(reg, "Old Mouse Accel Curves", false),
		pointerAcceleration:    prop.CreateBool(reg, "Pointer Acceleration", true),

		minReasonableDt: prop.CreateFloat(reg, "Accel Min dt", 0.003),
		maxReasonableDt: prop.CreateFloat(reg, "Accel Max dt", 0.050),
		smoothAccel:     prop.CreateBool(reg, "Smooth Accel", false),

		lastReasonableDt: 0.05,
	}
	f.Wire(next, f.ConsumeGesture)
	return f
}

// SetCustomCurves installs user-supplied curves, overriding the built-ins
// when the corresponding use_custom_* property is set.
func (f *Filter) SetCustomCurves(tpPoint, tpScroll, mousePoint curve.Curve) {
	f.tpCustomPoint = tpPoint
	f.tpCustomScroll = tpScroll
	f.mouseCustomPoint = mousePoint
}

func (f *Filter) ConsumeGesture(g gs.Gesture) {
	params, ok := f.accelParameters(&g)
	if !ok {
		f.Produce(g)
		return
	}

	dt := f.adjustedDt(g)
	speed, ok := actualSpeed(params, g, dt)
	if !ok {
		f.Produce(g)
		return
	}
	f.smooth.enabled = f.smoothAccel.Get()
	speed = f.smooth.sample(g.StartTime, g.EndTime, speed)

	if speed < tinySpeed {
		if g.Type == gs.TypeFling {
			f.Produce(g)
		}
		return
	}

	ratio := params.curve.Ratio(speed)
	if ratio <= 0 {
		return
	}

	params.scaleX(&g, ratio*params.xScale)
	params.scaleY(&g, ratio*params.yScale)
	if g.Type == gs.TypeFling || g.Type == gs.TypeScroll {
		params.scaleOrdinalX(&g, params.xScale)
		params.scaleOrdinalY(&g, params.yScale)
	}
	f.Produce(g)
}

func (f *Filter) PushFrame(hwstate *gs.HardwareState) stime.Time {
	return f.Next.PushFrame(hwstate)
}

func (f *Filter) HandleTimer(now stime.Time) stime.Time {
	return f.Next.HandleTimer(now)
}

func (f *Filter) adjustedDt(g gs.Gesture) stime.Time {
	dt := g.EndTime - g.StartTime
	min, max := stime.Time(f.minReasonableDt.Get()), stime.Time(f.maxReasonableDt.Get())
	if dt < min || dt > max {
		return f.lastReasonableDt
	}
	f.lastReasonableDt = dt
	return dt
}

// accelParameters selects, for gestures that should be accelerated, which
// fields to scale and which curve to use. It returns ok=false for
// gestures this filter leaves untouched.
type accelParams struct {
	curve  curve.Curve
	xScale, yScale float64

	scaleX, scaleY               func(*gs.Gesture, float64)
	scaleOrdinalX, scaleOrdinalY func(*gs.Gesture, float64)

	dx, dy       float64
	hasDelta     bool
	vx, vy       float64
}

func (f *Filter) accelParameters(g *gs.Gesture) (accelParams, bool) {
	switch g.Type {
	case gs.TypeMove, gs.TypeSwipe, gs.TypeFourFingerSwipe:
		var p accelParams
		switch g.Type {
		case gs.TypeMove:
			p.dx, p.dy, p.hasDelta = g.Move.DX, g.Move.DY, true
			p.scaleX = func(g *gs.Gesture, m float64) { g.Move.DX *= m }
			p.scaleY = func(g *gs.Gesture, m float64) { g.Move.DY *= m }
		case gs.TypeSwipe:
			p.dx, p.dy, p.hasDelta = g.Swipe.DX, g.Swipe.DY, true
			p.scaleX = func(g *gs.Gesture, m float64) { g.Swipe.DX *= m }
			p.scaleY = func(g *gs.Gesture, m float64) { g.Swipe.DY *= m }
		case gs.TypeFourFingerSwipe:
			p.dx, p.dy, p.hasDelta = g.FourFingerSwipe.DX, g.FourFingerSwipe.DY, true
			p.scaleX = func(g *gs.Gesture, m float64) { g.FourFingerSwipe.DX *= m }
			p.scaleY = func(g *gs.Gesture, m float64) { g.FourFingerSwipe.DY *= m }
		}
		p.scaleOrdinalX = func(*gs.Gesture, float64) {}
		p.scaleOrdinalY = func(*gs.Gesture, float64) {}

		sensitivity := f.pointerSensitivity.Get()
		switch {
		case f.useMousePointCurves.Get() && f.useCustomMouse.Get():
			p.curve = f.mouseCustomPoint
		case !f.useMousePointCurves.Get() && f.useCustomTPPoint.Get():
			p.curve = f.tpCustomPoint
		case f.useMousePointCurves.Get():
			switch {
			case !f.pointerAcceleration.Get():
				p.curve = f.unaccelMouseCurves[sensitivity-1]
			case f.useOldMousePointCurves.Get():
				p.curve = f.oldMousePointCurves[sensitivity-1]
			default:
				p.curve = f.mousePointCurves[sensitivity-1]
			}
		default:
			if !f.pointerAcceleration.Get() {
				p.curve = f.unaccelPointCurves[sensitivity-1]
			} else {
				p.curve = f.pointCurves[sensitivity-1]
			}
		}
		p.xScale, p.yScale = f.pointXOutScale.Get(), f.pointYOutScale.Get()
		return p, true

	case gs.TypeFling, gs.TypeScroll:
		if f.useMouseScrollCurves.Get() {
			return accelParams{}, false
		}
		var p accelParams
		if g.Type == gs.TypeFling {
			p.vx, p.vy = g.Fling.VX, g.Fling.VY
			p.scaleX = func(g *gs.Gesture, m float64) { g.Fling.VX *= m }
			p.scaleY = func(g *gs.Gesture, m float64) { g.Fling.VY *= m }
			p.scaleOrdinalX = func(g *gs.Gesture, m float64) { g.Fling.OrdinalVX *= m }
			p.scaleOrdinalY = func(g *gs.Gesture, m float64) { g.Fling.OrdinalVY *= m }
		} else {
			p.dx, p.dy, p.hasDelta = g.Scroll.DX, g.Scroll.DY, true
			p.scaleX = func(g *gs.Gesture, m float64) { g.Scroll.DX *= m }
			p.scaleY = func(g *gs.Gesture, m float64) { g.Scroll.DY *= m }
			p.scaleOrdinalX = func(g *gs.Gesture, m float64) { g.Scroll.OrdinalDX *= m }
			p.scaleOrdinalY = func(g *gs.Gesture, m float64) { g.Scroll.OrdinalDY *= m }
		}

		if f.useCustomTPScroll.Get() {
			p.curve = f.tpCustomScroll
		} else {
			p.curve = f.scrollCurves[f.scrollSensitivity.Get()-1]
		}
		p.xScale, p.yScale = f.scrollXOutScale.Get(), f.scrollYOutScale.Get()
		return p, true

	default:
		return accelParams{}, false
	}
}

func actualSpeed(p accelParams, g gs.Gesture, dt stime.Time) (float64, bool) {
	if p.hasDelta {
		if dt < tinySpeed {
			return 0, false
		}
		return math.Hypot(p.dx, p.dy) / float64(dt), true
	}
	return math.Hypot(p.vx, p.vy), true
}

// smoother implements the running-mean smoothing of spec.md §4.1.4: a
// bounded ring of recent speeds that resets on any timestamp
// discontinuity.
type smoother struct {
	enabled     bool
	seen        bool
	lastEndTime stime.Time
	recent      []float64 // most-recent-first; trimmed to capacity 2 after use
}

const smoothCapacity = 2

func (s *smoother) sample(start, end stime.Time, speed float64) float64 {
	if !s.enabled {
		return speed
	}
	if s.seen && s.lastEndTime == start {
		s.recent = append([]float64{speed}, s.recent...)
		var sum float64
		for _, v := range s.recent {
			sum += v
		}
		speed = sum / float64(len(s.recent))
		if len(s.recent) > smoothCapacity {
			s.recent = s.recent[:len(s.recent)-1]
		}
	} else {
		s.recent = []float64{speed}
	}
	s.seen = true
	s.lastEndTime = end
	return speed
}
