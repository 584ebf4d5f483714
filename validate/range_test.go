package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinite(t *testing.T) {
	assert.True(t, Finite(-math.MaxFloat64))
	assert.False(t, Finite(math.Inf(-1)))
	assert.False(t, Finite(math.NaN()))
}

func TestPositive(t *testing.T) {
	assert.True(t, Positive(1e-9))
	assert.False(t, Positive(0))
	assert.False(t, Positive(math.Inf(1)))
	assert.False(t, Positive(math.NaN()))
	assert.True(t, NonNegative(0))
	assert.False(t, NonNegative(-1))
}
