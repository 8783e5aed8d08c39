package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcannon67/robotics-d-star-lite/numeric"
)

func TestEqual_InfinitiesOfTheSameSign(t *testing.T) {
	inf := math.Inf(1)
	assert.True(t, numeric.Equal(inf, inf, numeric.Epsilon))
	assert.True(t, numeric.Equal(numeric.Inf(), numeric.Inf(), numeric.Epsilon))

	negInf := math.Inf(-1)
	assert.True(t, numeric.Equal(negInf, negInf, numeric.Epsilon))
	assert.False(t, numeric.Equal(inf, negInf, numeric.Epsilon))
}

func TestEqual_WithinAndOutsideEpsilon(t *testing.T) {
	assert.True(t, numeric.Equal(1.0, 1.0+numeric.Epsilon/2, numeric.Epsilon))
	assert.False(t, numeric.Equal(1.0, 1.5, numeric.Epsilon))
}

func TestLess_IgnoresEpsilonCloseValues(t *testing.T) {
	assert.False(t, numeric.Less(1.0, 1.0+numeric.Epsilon/2, numeric.Epsilon))
	assert.True(t, numeric.Less(1.0, 2.0, numeric.Epsilon))
	assert.False(t, numeric.Less(math.Inf(1), math.Inf(1), numeric.Epsilon))
}

func TestGreater_IgnoresEpsilonCloseValues(t *testing.T) {
	assert.False(t, numeric.Greater(1.0, 1.0+numeric.Epsilon/2, numeric.Epsilon))
	assert.True(t, numeric.Greater(2.0, 1.0, numeric.Epsilon))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1.0, numeric.Min(1.0, 2.0))
	assert.Equal(t, 1.0, numeric.Min(2.0, 1.0))
	assert.True(t, math.IsInf(numeric.Min(numeric.Inf(), numeric.Inf()), 1))
}
