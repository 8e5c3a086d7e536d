package gs

// FingerFlags is a bitmask of per-contact hints, matching §6's finger flag
// set. The suppressor in filter/wiggle sets WarpX and WarpY, which are
// composites of the *_MOVE and *_NON_MOVE bits — downstream consumers that
// only care "is this axis being warped" can test those composite masks
// directly.
type FingerFlags uint32

const (
	FlagWarpXNonMove FingerFlags = 1 << iota
	FlagWarpYNonMove
	FlagNoTap
	FlagPossiblePalm
	FlagPalm
	FlagWarpXMove
	FlagWarpYMove
	FlagWarpXTapMove
	FlagWarpYTapMove
	FlagMerge
	FlagTrendIncX
	FlagTrendDecX
	FlagTrendIncY
	FlagTrendDecY
	FlagTrendIncPressure
	FlagTrendDecPressure
	FlagTrendIncTouchMajor
	FlagTrendDecTouchMajor
	FlagInstantaneousMoving
	FlagWarpTeleportation
	FlagLargePalm
)

// WarpX and WarpY are the composite masks the click-wiggle suppressor sets
// on a contact it is suppressing.
const (
	WarpX = FlagWarpXNonMove | FlagWarpXMove
	WarpY = FlagWarpYNonMove | FlagWarpYMove
)

// ToolType classifies the kind of contact a FingerState represents.
type ToolType uint8

const (
	ToolFinger ToolType = iota
	ToolPalm
)

// TrackingID identifies one physical contact across frames. It is stable
// for the lifetime of that contact and is only reassigned once the contact
// breaks and a new one begins.
type TrackingID int32

// FingerState is one contact's data within a single HardwareState frame.
type FingerState struct {
	TouchMajor   float64
	TouchMinor   float64
	WidthMajor   float64
	WidthMinor   float64
	Pressure     float64
	Orientation  float64
	PositionX    float64
	PositionY    float64
	TrackingID   TrackingID
	Flags        FingerFlags
	Tool         ToolType
}
