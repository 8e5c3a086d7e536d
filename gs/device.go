package gs

// DeviceClass distinguishes the physical input device feeding the
// pipeline. Device class selects the initial filter chain composition,
// which is outside this module's scope (spec.md §1); it is carried here
// purely as a descriptive value for callers.
type DeviceClass uint8

const (
	DeviceUnknown DeviceClass = iota
	DeviceMouse
	DeviceMultitouchMouse
	DeviceTouchpad
	DeviceTouchscreen
	DevicePointingStick
)

// HardwareProperties describes the static capabilities of a device, as
// probed by the (out of scope) device layer and handed to every filter via
// SetHardwareProperties.
type HardwareProperties struct {
	Left, Top, Right, Bottom float64
	ResX, ResY               float64 // units/mm
	OrientationMinimum       float64
	OrientationMaximum       float64
	MaxFingerCount           int
	MaxTouchCount            int

	SupportsT5R2    bool
	SupportSemiMT   bool
	IsButtonPad     bool
	HasWheel        bool
	WheelIsHiRes    bool
	IsHapticPad     bool
	ReportsPressure bool
}
