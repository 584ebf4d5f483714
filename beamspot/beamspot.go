// Package beamspot describes the luminous region of a colliding beam interaction point.
package beamspot

import (
	"github.com/hazeltet845/cmssw/units"
)

// Parameters is the beam spot geometry and optics in internal units
// (lengths in mm, time offset as c*t in mm, angles in radians).
type Parameters struct {
	// X0, Y0, Z0 reference vertex position.
	X0 float64 `json:"x0" bson:"x0"`
	Y0 float64 `json:"y0" bson:"y0"`
	Z0 float64 `json:"z0" bson:"z0"`
	// SigmaZ longitudinal gaussian width.
	SigmaZ float64 `json:"sigmaZ" bson:"sigmaZ"`
	// BetaStar optics beta function at the interaction point.
	BetaStar float64 `json:"betaStar" bson:"betaStar"`
	// Emittance geometric emittance, not the normalized one.
	Emittance float64 `json:"emittance" bson:"emittance"`
	// TimeOffset event time offset.
	TimeOffset float64 `json:"timeOffset" bson:"timeOffset"`
	// Alpha is the angle to the S axis from the X axis in the XY plane.
	Alpha float64 `json:"alpha" bson:"alpha"`
	// Phi is the half crossing angle in the plane ZS.
	Phi float64 `json:"phi" bson:"phi"`
}

// Raw holds beam spot values as they come from outside, each in its own unit.
// Scale converts them exactly once.
type Raw struct {
	X0         float64 `json:"X0" yaml:"X0" bson:"x"`
	Y0         float64 `json:"Y0" yaml:"Y0" bson:"y"`
	Z0         float64 `json:"Z0" yaml:"Z0" bson:"z"`
	SigmaZ     float64 `json:"SigmaZ" yaml:"SigmaZ" bson:"sigmaZ"`
	BetaStar   float64 `json:"BetaStar" yaml:"BetaStar" bson:"betaStar"`
	Emittance  float64 `json:"Emittance" yaml:"Emittance" bson:"emittance"`
	Alpha      float64 `json:"Alpha" yaml:"Alpha" bson:"alpha"`
	Phi        float64 `json:"Phi" yaml:"Phi" bson:"phi"`
	TimeOffset float64 `json:"TimeOffset" yaml:"TimeOffset" bson:"timeOffset"`
}

// Scale converts raw values into internal units.
func (r Raw) Scale(scale units.Scale) Parameters {
	return Parameters{
		X0:         r.X0 * scale.Length,
		Y0:         r.Y0 * scale.Length,
		Z0:         r.Z0 * scale.Length,
		SigmaZ:     r.SigmaZ * scale.Length,
		BetaStar:   r.BetaStar * scale.Length,
		Emittance:  r.Emittance * scale.Length,
		TimeOffset: r.TimeOffset * scale.Time,
		Alpha:      r.Alpha * scale.Angle,
		Phi:        r.Phi * scale.Angle,
	}
}
