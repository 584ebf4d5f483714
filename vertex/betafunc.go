// Package vertex smears the primary collision vertex of simulated events
// according to the beta function on the transverse plane and a gaussian on
// the beam axis, and provides the Lorentz boost for beams crossing at an angle.
//
// A BetaFunc belongs to one event processing stream. It does no locking:
// refreshing parameters concurrently with sampling is not allowed.
package vertex

import (
	"fmt"
	"math"

	"github.com/hazeltet845/cmssw/beamspot"
	conf "github.com/hazeltet845/cmssw/config"
	"github.com/hazeltet845/cmssw/errors"
	"github.com/hazeltet845/cmssw/lorentz"
	"github.com/hazeltet845/cmssw/units"
)

var log = conf.NamedLogger("vertex")

// Gaussian is a stateful source of standard normal variates, such as *rand.Rand.
type Gaussian interface {
	NormFloat64() float64
}

// Record is a beam spot payload coming from the conditions database.
type Record interface {
	IsGaussian() bool
	Values() beamspot.Raw
}

// BetaFunc is the beta function vertex generator.
type BetaFunc struct {
	params     beamspot.Parameters
	boost      lorentz.Matrix
	readDB     bool
	configured bool
}

// NewBetaFunc creates a generator from static parameters given in scale units.
// With ReadDB set the static values are ignored and the generator stays
// unconfigured until the first Refresh.
func NewBetaFunc(params conf.GeneratorParams, scale units.Scale) (*BetaFunc, error) {
	g := &BetaFunc{readDB: params.ReadDB}
	if g.readDB {
		log.Debug("Beam spot will be read from the conditions database")
		return g, nil
	}
	if err := g.Configure(params.Raw, scale); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadDB reports whether parameters come from the conditions database.
func (g *BetaFunc) ReadDB() bool {
	return g.readDB
}

// Configured reports whether a valid parameter set has been loaded.
func (g *BetaFunc) Configured() bool {
	return g.configured
}

// Configure replaces every parameter with raw converted by scale and rebuilds the boost.
func (g *BetaFunc) Configure(raw beamspot.Raw, scale units.Scale) error {
	if err := g.replace(raw.Scale(scale)); err != nil {
		return fmt.Errorf("configure beta function generator: %w", err)
	}
	return nil
}

// Refresh replaces every parameter with the ones of rec. Records describing a
// gaussian beam profile are rejected.
func (g *BetaFunc) Refresh(rec Record, scale units.Scale) error {
	if rec.IsGaussian() {
		return fmt.Errorf(
			"%w: refresh beta function generator: the provided beam spot is gaussian, "+
				"check that the beam spot parameters are meant for a beta function distribution",
			errors.ErrConfiguration,
		)
	}
	if err := g.replace(rec.Values().Scale(scale)); err != nil {
		return fmt.Errorf("refresh beta function generator: %w", err)
	}
	return nil
}

func (g *BetaFunc) replace(params beamspot.Parameters) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrConfiguration, err)
	}
	boost, err := lorentz.BuildBoost(params.Alpha, params.Phi)
	if err != nil {
		return fmt.Errorf("%w: alpha=%v phi=%v: %w", errors.ErrConfiguration, params.Alpha, params.Phi, err)
	}

	g.params = params
	g.boost = boost
	g.configured = true
	log.Debugf("Beam spot updated %+v", params)
	return nil
}

// SetSigmaZ changes the longitudinal width only.
func (g *BetaFunc) SetSigmaZ(s float64) error {
	if s < 0 {
		return fmt.Errorf("%w: illegal resolution in Z (negative): %v", errors.ErrLogic, s)
	}
	g.params.SigmaZ = s
	return nil
}

// SigmaZ ...
func (g *BetaFunc) SigmaZ() float64 {
	return g.params.SigmaZ
}

// Parameters returns a copy of the current beam spot.
func (g *BetaFunc) Parameters() beamspot.Parameters {
	return g.params
}

// InvLorentzBoost returns a copy of the boost from the head-on frame to the lab frame.
func (g *BetaFunc) InvLorentzBoost() (lorentz.Matrix, error) {
	if !g.configured {
		return lorentz.Matrix{}, fmt.Errorf("%w: beam spot parameters not loaded", errors.ErrConfiguration)
	}
	return g.boost, nil
}

// Sample draws one vertex. It takes exactly four variates from rng:
// Z, X, Y then T.
func (g *BetaFunc) Sample(rng Gaussian) (lorentz.Vector, error) {
	if !g.configured {
		return lorentz.Vector{}, fmt.Errorf("%w: beam spot parameters not loaded", errors.ErrConfiguration)
	}
	p := g.params

	z := gauss(rng, 0, p.SigmaZ) + p.Z0

	sigX := g.betaFunction(z)
	// need sqrt(2) for beamspot width relative to single beam width
	sigX /= math.Sqrt(2)
	x := gauss(rng, 0, sigX) + p.X0

	sigY := g.betaFunction(z)
	sigY /= math.Sqrt(2)
	y := gauss(rng, 0, sigY) + p.Y0

	t := gauss(rng, 0, p.SigmaZ) + p.TimeOffset

	return lorentz.Vector{X: x, Y: y, Z: z, T: t}, nil
}

func (g *BetaFunc) betaFunction(z float64) float64 {
	return WidthAt(z, g.params.Z0, g.params.BetaStar, g.params.Emittance)
}

// WidthAt is the single beam transverse width at z for a beam focused at z0.
func WidthAt(z, z0, betaStar, emittance float64) float64 {
	return math.Sqrt(emittance * (betaStar + ((z-z0)*(z-z0))/betaStar))
}

func gauss(rng Gaussian, mean, sigma float64) float64 {
	return mean + sigma*rng.NormFloat64()
}
