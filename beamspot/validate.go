package beamspot

import (
	"fmt"

	"github.com/hazeltet845/cmssw/validate"
)

// Validate checks the invariants the vertex model relies on.
// It returns nil or an E describing every offending field.
func (p Parameters) Validate() error {
	result := E{}

	for name, value := range map[string]float64{
		"x0": p.X0, "y0": p.Y0, "z0": p.Z0,
		"timeOffset": p.TimeOffset, "alpha": p.Alpha, "phi": p.Phi,
	} {
		if !validate.Finite(value) {
			result[name] = fmt.Errorf("should be finite")
		}
	}

	if !validate.Positive(p.SigmaZ) {
		result["sigmaZ"] = fmt.Errorf("illegal resolution in Z (should be positive)")
	}
	if !validate.Positive(p.BetaStar) {
		result["betaStar"] = fmt.Errorf("should be positive value")
	}
	if !validate.NonNegative(p.Emittance) {
		result["emittance"] = fmt.Errorf("should not be negative")
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
