// Package config loads the optional TOML configuration file described in
// SPEC_FULL.md §6 and applies it to a property registry. An out-of-range
// value is clamped by the property's own validator; config.Apply never
// rejects the load outright, matching spec.md §7's "clamp or reject the
// change; do not crash."
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"gestures.io/filter/logging"
	"gestures.io/prop"
)

// Values is the on-disk shape of a gesture configuration file.
type Values struct {
	PointerSensitivity    *int     `toml:"pointer_sensitivity"`
	ScrollSensitivity     *int     `toml:"scroll_sensitivity"`
	PointerAcceleration   *bool    `toml:"pointer_acceleration"`
	SmoothAccel           *bool    `toml:"smooth_accel"`
	UseMouseCurves        *bool    `toml:"use_mouse_curves"`
	WiggleMaxDistance     *float64 `toml:"wiggle_max_distance"`
	WiggleSuppressTimeout *float64 `toml:"wiggle_suppress_timeout"`
}

// Load parses the TOML file at path. A missing path is not an error: it
// returns a zero Values, letting every property keep its constructor
// default.
func Load(path string) (Values, error) {
	var v Values
	if path == "" {
		return v, nil
	}
	if _, err := toml.DecodeFile(path, &v); err != nil {
		return v, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return v, nil
}

// Apply pushes every present field of v into the named property in reg, if
// that property was registered by one of the filters built against reg.
// A name with no matching property, or a present field with the wrong
// property kind, is logged as a diagnostic and skipped — never a panic,
// per spec.md §7.
func Apply(reg *prop.Registry, v Values) {
	applyInt(reg, "Pointer Sensitivity", v.PointerSensitivity)
	applyInt(reg, "Scroll Sensitivity", v.ScrollSensitivity)
	applyBool(reg, "Pointer Acceleration", v.PointerAcceleration)
	applyBool(reg, "Smooth Accel", v.SmoothAccel)
	applyBool(reg, "Mouse Accel Curves", v.UseMouseCurves)
	applyFloat(reg, "Wiggle Max Distance", v.WiggleMaxDistance)
	applyFloat(reg, "Wiggle Suppress Timeout", v.WiggleSuppressTimeout)
}

func applyInt(reg *prop.Registry, name string, v *int) {
	if v == nil {
		return
	}
	p, ok := reg.Int(name)
	if !ok {
		logging.Diag("config: no int property %q", name)
		return
	}
	p.Set(*v)
}

func applyBool(reg *prop.Registry, name string, v *bool) {
	if v == nil {
		return
	}
	p, ok := reg.Bool(name)
	if !ok {
		logging.Diag("config: no bool property %q", name)
		return
	}
	p.Set(*v)
}

func applyFloat(reg *prop.Registry, name string, v *float64) {
	if v == nil {
		return
	}
	p, ok := reg.Float(name)
	if !ok {
		logging.Diag("config: no float property %q", name)
		return
	}
	p.Set(*v)
}
