package lorentz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

func TestBuildBoostNoCrossingIsIdentity(t *testing.T) {
	boost, err := BuildBoost(0, 0)
	require.NoError(t, err)
	assert.True(t, boost.Equal(Identity(), 0), "got\n%s", boost)
}

func TestBuildBoostInverseRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name       string
		alpha, phi float64
	}{
		{"lhc nominal", 0, 142.5e-6},
		{"rotated plane", 0.7, 0.3},
		{"negative phi", 1.2, -0.5},
		{"vertical plane", math.Pi / 2, 0.01},
	} {
		t.Run(tc.name, func(t *testing.T) {
			headOn := HeadOn(tc.alpha, tc.phi)
			boost, err := BuildBoost(tc.alpha, tc.phi)
			require.NoError(t, err)

			back, err := boost.Inverse()
			require.NoError(t, err)
			assert.True(t, back.Equal(headOn, tolerance), "got\n%swant\n%s", back, headOn)
			assert.True(t, headOn.Mul(boost).Equal(Identity(), tolerance))
			assert.True(t, boost.Mul(headOn).Equal(Identity(), tolerance))
		})
	}
}

func TestBuildBoostKnownValues(t *testing.T) {
	boost, err := BuildBoost(0.7, 0.3)
	require.NoError(t, err)

	assert.InDelta(t, 1.046752, boost.At(0, 0), 1e-6)
	assert.InDelta(t, 0.236593, boost.At(0, 1), 1e-6)
	assert.InDelta(t, 0.226026, boost.At(1, 0), 1e-6)
	assert.InDelta(t, -0.226026, boost.At(1, 2), 1e-6)
	assert.InDelta(t, 0.955336, boost.At(2, 2), 1e-6)
	assert.InDelta(t, -0.190379, boost.At(3, 2), 1e-6)
}

func TestInverseSingular(t *testing.T) {
	_, err := Matrix{}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)

	m := Identity()
	m[2] = m[1]
	_, err = m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)

	m = Identity()
	m[3][3] = math.NaN()
	_, err = m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestInverseNeedsPivoting(t *testing.T) {
	m := Matrix{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 4, 0},
	}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).Equal(Identity(), tolerance))
	assert.Equal(t, 0.25, inv[2][3])
	assert.Equal(t, 0.5, inv[3][2])
}

func TestApply(t *testing.T) {
	v := Vector{X: 1, Y: 2, Z: 3, T: 4}
	assert.Equal(t, v, Identity().Apply(v))

	boost, err := BuildBoost(0.7, 0.3)
	require.NoError(t, err)
	got := HeadOn(0.7, 0.3).Apply(boost.Apply(v))
	assert.InDelta(t, v.X, got.X, tolerance)
	assert.InDelta(t, v.Y, got.Y, tolerance)
	assert.InDelta(t, v.Z, got.Z, tolerance)
	assert.InDelta(t, v.T, got.T, tolerance)
}

func TestMatrixIsCopiedByValue(t *testing.T) {
	boost, err := BuildBoost(0.1, 0.2)
	require.NoError(t, err)
	cp := boost
	cp[0][0] = 42
	assert.NotEqual(t, cp[0][0], boost[0][0])
}
