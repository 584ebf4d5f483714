package beamspot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazeltet845/cmssw/test"
	"github.com/hazeltet845/cmssw/units"
)

var realistic = Raw{
	X0: 0.0322, Y0: 0.0, Z0: 0.05,
	SigmaZ:     5.3,
	BetaStar:   55,
	Emittance:  5.03e-8,
	Alpha:      0,
	Phi:        142.5e-6,
	TimeOffset: 1,
}

func TestRawScaleCMS(t *testing.T) {
	p := realistic.Scale(units.CMS)

	expected := Parameters{
		X0: 0.322, Y0: 0, Z0: 0.5,
		SigmaZ:     53,
		BetaStar:   550,
		Emittance:  5.03e-7,
		TimeOffset: 299.792458,
		Alpha:      0,
		Phi:        142.5e-6,
	}
	assert.InDelta(t, expected.X0, p.X0, 1e-12)
	assert.InDelta(t, expected.Z0, p.Z0, 1e-12)
	assert.InDelta(t, expected.SigmaZ, p.SigmaZ, 1e-12)
	assert.InDelta(t, expected.BetaStar, p.BetaStar, 1e-12)
	assert.InDelta(t, expected.Emittance, p.Emittance, 1e-20)
	assert.InDelta(t, expected.TimeOffset, p.TimeOffset, 1e-9)
	assert.Equal(t, expected.Phi, p.Phi)
}

func TestRawScaleInternalIsIdentity(t *testing.T) {
	p := realistic.Scale(units.Internal)
	expected := Parameters{
		X0: 0.0322, Z0: 0.05, SigmaZ: 5.3, BetaStar: 55, Emittance: 5.03e-8,
		Phi: 142.5e-6, TimeOffset: 1,
	}
	if diff := test.DiffModel(t, expected, p); diff != "" {
		t.Errorf("actual != expected\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	valid := realistic.Scale(units.CMS)
	require.NoError(t, valid.Validate())

	for _, tc := range []struct {
		name   string
		modify func(p *Parameters)
		fields []string
	}{
		{"zero sigmaZ", func(p *Parameters) { p.SigmaZ = 0 }, []string{"sigmaZ"}},
		{"negative sigmaZ", func(p *Parameters) { p.SigmaZ = -1 }, []string{"sigmaZ"}},
		{"zero betaStar", func(p *Parameters) { p.BetaStar = 0 }, []string{"betaStar"}},
		{"negative emittance", func(p *Parameters) { p.Emittance = -1e-8 }, []string{"emittance"}},
		{"nan position", func(p *Parameters) { p.X0 = math.NaN() }, []string{"x0"}},
		{"several", func(p *Parameters) {
			p.SigmaZ = 0
			p.Phi = math.Inf(1)
		}, []string{"sigmaZ", "phi"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.modify(&p)
			err := p.Validate()
			require.Error(t, err)

			var fieldErrs E
			require.ErrorAs(t, err, &fieldErrs)
			assert.Len(t, fieldErrs, len(tc.fields))
			for _, field := range tc.fields {
				assert.Contains(t, fieldErrs, field)
			}
		})
	}
}

func TestValidateAllowsZeroEmittance(t *testing.T) {
	p := realistic.Scale(units.CMS)
	p.Emittance = 0
	assert.NoError(t, p.Validate())
}

func TestSerialize(t *testing.T) {
	p := Parameters{
		X0: 0.1, Z0: -1.5,
		SigmaZ:    53,
		BetaStar:  550,
		Emittance: 5.03e-7,
		Phi:       1.425e-4,
	}
	assert.Equal(t, expectedCards, Serialize(p))
}

const expectedCards = `X0                         0.1  mm
Y0                          0.  mm
Z0                        -1.5  mm
SIGMAZ                     53.  mm
BETASTAR                  550.  mm
EMITTANCE             5.03e-07  mm
TIMEOFFSET                  0.  mm
ALPHA                       0.  rad
PHI                  0.0001425  rad
`
