// Command gesturepipe wires the full motion-conditioning chain end to end
// and runs a small synthetic hardware recording through it, printing the
// gestures the chain produces. It exists to exercise
// filter/wiggle, filter/accel, and filter/integral against a real
// interp.Interpreter chain, per SPEC_FULL.md §1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gestures.io/config"
	"gestures.io/filter/accel"
	"gestures.io/filter/integral"
	"gestures.io/filter/logging"
	"gestures.io/filter/recognizer"
	"gestures.io/filter/wiggle"
	"gestures.io/gs"
	"gestures.io/interp"
	"gestures.io/prop"
	"gestures.io/stime"
	"gestures.io/timer"
)

func main() {
	configPath := flag.String("config", "", "optional TOML configuration file")
	verbose := flag.Bool("verbose", false, "log every produced gesture")
	flag.Parse()

	reg := prop.NewRegistry()
	rec := recognizer.New()
	wig := wiggle.New(reg, rec)
	acc := accel.New(reg, wig)
	integ := integral.New(reg, acc)
	chain := logging.New(integ, *verbose)

	vals, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("gesturepipe: %v", err)
	}
	config.Apply(reg, vals)

	chain.SetHardwareProperties(gs.HardwareProperties{
		MaxFingerCount: 5,
		MaxTouchCount:  5,
		IsButtonPad:    true,
	})

	wc := timer.NewWallClock(time.Time{})
	var pendingTimer timer.Timer

	var produced []gs.Gesture
	consume := func(g gs.Gesture) { produced = append(produced, g) }
	chain.SetConsumer(consume)

	armed := func(delay stime.Time) {
		if !delay.Pending() {
			return
		}
		if pendingTimer == nil {
			pendingTimer = wc.Create()
		}
		pendingTimer.Set(delay, func(now stime.Time) stime.Time {
			return chain.HandleTimer(now)
		})
	}

	for _, frame := range demoRecording() {
		f := frame
		delay := chain.PushFrame(&f)
		armed(delay)
	}

	for _, g := range produced {
		fmt.Fprintf(os.Stdout, "gesture type=%d start=%v end=%v\n", g.Type, g.StartTime, g.EndTime)
	}
}

// demoRecording is a small synthetic two-finger scroll followed by a
// one-finger move, just enough to exercise filter/recognizer's stub
// classification and the filters above it.
func demoRecording() []gs.HardwareState {
	return []gs.HardwareState{
		{
			Timestamp:   0.0,
			FingerCount: 2,
			TouchCount:  2,
			Fingers: []gs.FingerState{
				{TrackingID: 1, PositionX: 10, PositionY: 10},
				{TrackingID: 2, PositionX: 20, PositionY: 10},
			},
		},
		{
			Timestamp:   0.01,
			FingerCount: 2,
			TouchCount:  2,
			Fingers: []gs.FingerState{
				{TrackingID: 1, PositionX: 10, PositionY: 12},
				{TrackingID: 2, PositionX: 20, PositionY: 12},
			},
		},
		{
			Timestamp:   1.0,
			FingerCount: 1,
			TouchCount:  1,
			Fingers: []gs.FingerState{
				{TrackingID: 3, PositionX: 50, PositionY: 50},
			},
		},
		{
			Timestamp:   1.01,
			FingerCount: 1,
			TouchCount:  1,
			Fingers: []gs.FingerState{
				{TrackingID: 3, PositionX: 52, PositionY: 50},
			},
		},
	}
}

var _ interp.Interpreter = (*logging.Filter)(nil)
