// Package units holds the length and time units used inside the generator.
// Internal lengths are millimeters and times are expressed as c*t in millimeters,
// matching the event record distance convention.
package units

// Length units.
const (
	Millimeter = 1.0
	Centimeter = 10 * Millimeter
	Meter      = 1000 * Millimeter
	Micrometer = 1e-3 * Millimeter
)

// Time units.
const (
	Nanosecond = 1.0
	Second     = 1e9 * Nanosecond
)

// Radian is the angle unit.
const Radian = 1.0

// CLight is the speed of light in mm/ns.
const CLight = 299.792458 * Millimeter / Nanosecond

// Scale carries the factors that bring external values into internal units.
// Time is the factor turning an external time value into a length (c*t).
type Scale struct {
	Length float64
	Time   float64
	Angle  float64
}

// CMS reads lengths in cm, times in ns and angles in radians.
var CMS = Scale{
	Length: Centimeter,
	Time:   Nanosecond * CLight,
	Angle:  Radian,
}

// Internal leaves values untouched.
var Internal = Scale{Length: 1, Time: 1, Angle: 1}
