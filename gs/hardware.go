package gs

import "gestures.io/stime"

// HardwareState is one hardware frame: the relative axes plus the ordered
// set of contacts present at Timestamp.
//
// A HardwareState passed to a filter's PushFrame is borrowed for the
// duration of that call: filters may mutate Fingers in place (for example
// to set warp flags) but must not retain a reference to it after the call
// returns, per spec.md §5.
type HardwareState struct {
	Timestamp stime.Time

	ButtonsDown Buttons

	// FingerCount is len(Fingers). TouchCount may exceed FingerCount on
	// semi-MT devices, which report more raw touches than they can
	// individually track.
	FingerCount int
	TouchCount  int
	Fingers     []FingerState

	RelX, RelY           float64
	RelWheel, RelHWheel  float64
	RelWheelHiRes        float64

	// MscTimestamp is the firmware timestamp, or 0 if the device doesn't
	// report one.
	MscTimestamp stime.Time
}

// FingerByTrackingID returns the contact with the given tracking id, or
// nil if no such contact is present in this frame.
func (h *HardwareState) FingerByTrackingID(id TrackingID) *FingerState {
	for i := range h.Fingers {
		if h.Fingers[i].TrackingID == id {
			return &h.Fingers[i]
		}
	}
	return nil
}
