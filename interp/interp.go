// Package interp defines the common capability set every filter in the
// motion-conditioning pipeline implements, per spec.md §2 and §5: accept a
// hardware frame and produce an optional timer deadline, accept a gesture
// from the stage below, forward zero or more gestures to the stage above,
// and handle timer callbacks.
package interp

import (
	"gestures.io/gs"
	"gestures.io/stime"
)

// Consumer receives gestures produced by the stage below it in the chain.
type Consumer func(gs.Gesture)

// Interpreter is the capability set shared by every filter and by the
// recognizer stub at the bottom of the chain. Ownership flows strictly
// downstream: whichever Interpreter owns another (by holding it as its
// "next") is responsible for calling SetConsumer on it exactly once, at
// construction time, per spec.md §5.
type Interpreter interface {
	// SetHardwareProperties informs the filter of the device's static
	// capabilities. Chain builders call this once on the top filter; it
	// flows the same direction frames do, so each filter forwards it to
	// Next.
	SetHardwareProperties(hwprops gs.HardwareProperties)

	// SetConsumer installs the callback this Interpreter invokes when it
	// produces a gesture. Called once, by the Interpreter's owner.
	SetConsumer(c Consumer)

	// ConsumeGesture is called by Next (if any) when it produces a
	// gesture. Implementations transform or drop it and forward the
	// result, if any, to their own consumer.
	ConsumeGesture(g gs.Gesture)

	// PushFrame delivers one hardware frame. It returns the next
	// deadline this Interpreter (or anything beneath it) requires, or
	// stime.NoDeadline.
	PushFrame(hwstate *gs.HardwareState) stime.Time

	// HandleTimer is called no earlier than a previously requested
	// deadline. It returns the next deadline, or stime.NoDeadline.
	HandleTimer(now stime.Time) stime.Time
}

// Base is embedded by every filter that owns exactly one downstream
// Interpreter. It wires ConsumeGesture at construction time and provides
// Produce for forwarding gestures upward.
type Base struct {
	Next     Interpreter
	consumer Consumer
}

// Wire records next as the owned downstream Interpreter and arranges for
// its gestures to arrive at consume.
func (b *Base) Wire(next Interpreter, consume Consumer) {
	b.Next = next
	next.SetConsumer(consume)
}

// SetConsumer implements Interpreter.
func (b *Base) SetConsumer(c Consumer) {
	b.consumer = c
}

// Produce forwards g to this Interpreter's own consumer, if one has been
// installed. A filter at the top of a chain with no consumer installed
// silently drops gestures, the same way an unused gesture callback would.
func (b *Base) Produce(g gs.Gesture) {
	if b.consumer != nil {
		b.consumer(g)
	}
}

// SetHardwareProperties forwards to Next. Filters that need the
// properties themselves should override this method and call
// Base.SetHardwareProperties explicitly to keep forwarding it.
func (b *Base) SetHardwareProperties(hwprops gs.HardwareProperties) {
	if b.Next != nil {
		b.Next.SetHardwareProperties(hwprops)
	}
}
