package gs

import "gestures.io/stime"

// Type tags which payload of a Gesture is meaningful.
type Type uint8

const (
	// TypeNull marks "no gesture produced". It is used internally by
	// filters that decide to drop an incoming gesture; it is never
	// delivered to a Consumer.
	TypeNull Type = iota

	TypeContactInitiated
	TypeMove
	TypeScroll
	TypeButtonsChange
	TypeFling
	TypeSwipe
	TypePinch
	TypeSwipeLift
	TypeMetrics
	TypeFourFingerSwipe
	TypeFourFingerSwipeLift
	TypeMouseWheel
)

// FlingState distinguishes the beginning of momentum scrolling from its
// end.
type FlingState uint8

const (
	// FlingStart marks a scroll ending and a fling beginning.
	FlingStart FlingState = iota
	// FlingTapDown marks a finger touching down, ending a fling.
	FlingTapDown
)

// PinchState marks the phase of a multi-finger pinch gesture.
type PinchState uint8

const (
	PinchStart PinchState = iota
	PinchUpdate
	PinchEnd
)

// MetricsType distinguishes the kind of out-of-band measurement carried by
// a Metrics gesture. The filters in this module pass Metrics through
// unchanged; no metrics are produced here.
type MetricsType uint8

// MoveDetails is the payload of a TypeMove gesture.
type MoveDetails struct {
	DX, DY               float64
	OrdinalDX, OrdinalDY float64
}

// ScrollDetails is the payload of a TypeScroll gesture. Ordinal fields
// always carry the pre-acceleration magnitude; StopFling signals that a
// concurrent fling animation should stop.
type ScrollDetails struct {
	DX, DY               float64
	OrdinalDX, OrdinalDY float64
	StopFling            bool
}

// MouseWheelDetails is the payload of a TypeMouseWheel gesture.
type MouseWheelDetails struct {
	DX, DY                   float64
	Tick120thsDX, Tick120thsDY int
}

// ButtonsChangeDetails is the payload of a TypeButtonsChange gesture.
type ButtonsChangeDetails struct {
	Down, Up Buttons
	IsTap    bool
}

// FlingDetails is the payload of a TypeFling gesture. Velocities rather
// than deltas; Ordinal fields carry the pre-acceleration velocity.
type FlingDetails struct {
	VX, VY               float64
	OrdinalVX, OrdinalVY float64
	State                FlingState
}

// SwipeDetails is the payload of a TypeSwipe gesture.
type SwipeDetails struct {
	DX, DY  float64
	Ordinal float64
}

// FourFingerSwipeDetails is the payload of a TypeFourFingerSwipe gesture.
type FourFingerSwipeDetails struct {
	DX, DY  float64
	Ordinal float64
}

// PinchDetails is the payload of a TypePinch gesture.
type PinchDetails struct {
	DZ, OrdinalDZ float64
	State         PinchState
}

// MetricsDetails is the payload of a TypeMetrics gesture.
type MetricsDetails struct {
	MType MetricsType
	Data  [2]float64
}

// Gesture is a tagged variant: StartTime, EndTime, and exactly one
// meaningful Details field selected by Type. Mirroring the original
// library's tagged union, a Gesture is a small value type that filters
// copy, mutate, and forward up the chain without touching the original.
type Gesture struct {
	Type                Type
	StartTime, EndTime  stime.Time

	Move            MoveDetails
	Scroll          ScrollDetails
	Wheel           MouseWheelDetails
	ButtonsChange   ButtonsChangeDetails
	Fling           FlingDetails
	Swipe           SwipeDetails
	FourFingerSwipe FourFingerSwipeDetails
	Pinch           PinchDetails
	Metrics         MetricsDetails
}

// NewMove constructs a TypeMove gesture.
func NewMove(start, end stime.Time, dx, dy float64) Gesture {
	return Gesture{
		Type: TypeMove, StartTime: start, EndTime: end,
		Move: MoveDetails{DX: dx, DY: dy, OrdinalDX: dx, OrdinalDY: dy},
	}
}

// NewScroll constructs a TypeScroll gesture with ordinal fields equal to
// the accelerated fields, as a recognizer emitting a not-yet-accelerated
// gesture would.
func NewScroll(start, end stime.Time, dx, dy float64) Gesture {
	return Gesture{
		Type: TypeScroll, StartTime: start, EndTime: end,
		Scroll: ScrollDetails{DX: dx, DY: dy, OrdinalDX: dx, OrdinalDY: dy},
	}
}

// NewFling constructs a TypeFling gesture.
func NewFling(start, end stime.Time, vx, vy float64, state FlingState) Gesture {
	return Gesture{
		Type: TypeFling, StartTime: start, EndTime: end,
		Fling: FlingDetails{VX: vx, VY: vy, OrdinalVX: vx, OrdinalVY: vy, State: state},
	}
}
