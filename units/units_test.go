package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCMSScale(t *testing.T) {
	assert.Equal(t, 10.0, 1*CMS.Length)
	assert.InDelta(t, 299.792458, 1*CMS.Time, 1e-12)
	assert.Equal(t, 1.0, CMS.Angle)
}
