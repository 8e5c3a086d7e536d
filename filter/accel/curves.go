package accel

import "gestures.io/curve"

const numSensitivities = 5

// touchpadPointerCurves builds the five touchpad pointer curves of
// spec.md §4.1.2. Sensitivity 1 is identity; sensitivities 2..5 are
// parameterised by a divisor.
func touchpadPointerCurves() [numSensitivities]curve.Curve {
	var curves [numSensitivities]curve.Curve
	curves[0] = curve.Linear(1)
	divisors := [numSensitivities]float64{0, 60, 37.5, 30, 25}
	for i := 1; i < numSensitivities; i++ {
		d := divisors[i]
		curves[i] = parabolicCurve(32, 150, d)
	}
	return curves
}

// touchpadScrollCurves builds the five touchpad scroll curves of
// spec.md §4.1.2. Above the parabolic region, the curve levels off at its
// initial slope instead of continuing to accelerate.
func touchpadScrollCurves() [numSensitivities]curve.Curve {
	var curves [numSensitivities]curve.Curve
	curves[0] = curve.Linear(1)
	divisors := [numSensitivities]float64{0, 150, 75, 70, 65}
	for i := 1; i < numSensitivities; i++ {
		d := divisors[i]
		linearUntil, border := 75.0, 600.0
		initSlope := linearUntil / d
		yAtBorder := border * border / d
		icept := yAtBorder - initSlope*border
		curves[i] = curve.Curve{
			{XMax: linearUntil, Mul: initSlope},
			{XMax: border, Sqr: 1 / d},
			{XMax: inf, Mul: initSlope, Int: icept},
		}
	}
	return curves
}

// parabolicCurve builds the common touchpad shape: linear up to
// linearUntil, parabolic up to border, then a linear continuation with
// slope and intercept chosen for continuity at border.
func parabolicCurve(linearUntil, border, divisor float64) curve.Curve {
	initSlope := linearUntil / divisor
	slope := border * 2 / divisor
	yAtBorder := border * border / divisor
	icept := yAtBorder - slope*border
	return curve.Curve{
		{XMax: linearUntil, Mul: initSlope},
		{XMax: border, Sqr: 1 / divisor},
		{XMax: inf, Mul: slope, Int: icept},
	}
}

func unaccelTouchpadCurves() [numSensitivities]curve.Curve {
	var curves [numSensitivities]curve.Curve
	slopes := [numSensitivities]float64{1, 2, 3, 4, 5}
	for i, s := range slopes {
		curves[i] = curve.Linear(s)
	}
	return curves
}

func unaccelMouseCurves() [numSensitivities]curve.Curve {
	var curves [numSensitivities]curve.Curve
	slopes := [numSensitivities]float64{2, 4, 8, 16, 24}
	for i, s := range slopes {
		curves[i] = curve.Linear(s)
	}
	return curves
}

// mousePointerCurves builds the current mouse pointer curve family of
// spec.md §4.1.2.
func mousePointerCurves() [numSensitivities]curve.Curve {
	const (
		a      = 0.0311
		b      = 3.26
		cutoff = 195.0
	)
	multipliers := [numSensitivities]float64{1.2, 1.4, 1.6, 1.8, 2.0}
	var curves [numSensitivities]curve.Curve
	for i, k := range multipliers {
		segA := a * k * k
		segB := b * k
		segCutoff := cutoff / k
		secondSlope := (2*a*cutoff + b) * k
		curves[i] = curve.Curve{
			{XMax: segCutoff, Sqr: segA, Mul: segB},
			{XMax: inf, Mul: secondSlope, Int: -1182},
		}
	}
	return curves
}

// legacyMousePointerCurves builds the old mouse pointer curve family of
// spec.md §4.1.2, selected via use_old_mouse_point_curves.
func legacyMousePointerCurves() [numSensitivities]curve.Curve {
	const (
		parabolaA = 1.3
		parabolaB = 0.2
		mmPerInch = 25.4
	)
	cutoffsInches := [numSensitivities]float64{5.0, 5.0, 5.0, 8.0, 8.0}
	gains := [numSensitivities]float64{1.0, 1.4, 1.8, 2.0, 2.2}
	var curves [numSensitivities]curve.Curve
	for i := range curves {
		cutoffX := cutoffsInches[i]
		cutoffY := parabolaA*cutoffX*cutoffX + parabolaB*cutoffX
		lineM := 2*parabolaA*cutoffX + parabolaB
		lineB := cutoffY - cutoffX*lineM
		gain := gains[i]
		curves[i] = curve.Curve{
			{XMax: cutoffX * mmPerInch, Sqr: parabolaA * gain / mmPerInch, Mul: parabolaB * gain},
			{XMax: inf, Mul: lineM * gain, Int: lineB * gain * mmPerInch},
		}
	}
	return curves
}
