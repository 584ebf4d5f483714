// Package conditions provides beam spot records keyed by validity interval and
// a watcher that reports when the interval covering the current event changes.
package conditions

import (
	"context"
	"fmt"

	"github.com/hazeltet845/cmssw/beamspot"
)

// IOV is the start of an interval of validity: a run and its first luminosity block.
// An interval extends up to the start of the next stored one.
// The same type addresses the position of an event.
type IOV struct {
	Run       uint32 `json:"run" bson:"run"`
	LumiBlock uint32 `json:"lumiBlock" bson:"lumiBlock"`
}

// Less orders intervals by run, then luminosity block.
func (i IOV) Less(o IOV) bool {
	if i.Run != o.Run {
		return i.Run < o.Run
	}
	return i.LumiBlock < o.LumiBlock
}

func (i IOV) String() string {
	return fmt.Sprintf("%d:%d", i.Run, i.LumiBlock)
}

// SimBeamSpot is the simulation beam spot payload stored in the conditions database.
// Lengths are in cm, TimeOffset in ns and angles in radians.
type SimBeamSpot struct {
	beamspot.Raw `yaml:",inline" bson:",inline"`

	// SigmaX, SigmaY only describe gaussian profiles.
	SigmaX float64 `json:"SigmaX" yaml:"SigmaX" bson:"sigmaX"`
	SigmaY float64 `json:"SigmaY" yaml:"SigmaY" bson:"sigmaY"`

	// Gaussian marks a record made for a gaussian smearing generator rather
	// than a beta function one.
	Gaussian bool `json:"Gaussian" yaml:"Gaussian" bson:"gaussian"`
}

// IsGaussian ...
func (s SimBeamSpot) IsGaussian() bool {
	return s.Gaussian
}

// Values returns the beta function beam spot values.
func (s SimBeamSpot) Values() beamspot.Raw {
	return s.Raw
}

// Source gives read access to stored beam spot records.
type Source interface {
	// Lookup returns the interval covering at.
	Lookup(ctx context.Context, at IOV) (IOV, error)
	// Get returns the record stored for exactly iov.
	Get(ctx context.Context, iov IOV) (SimBeamSpot, error)
}

// Store is a Source that can also be written.
type Store interface {
	Source
	Put(ctx context.Context, iov IOV, record SimBeamSpot) error
}
