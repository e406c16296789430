package bigfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrtExactPowerOfFour(t *testing.T) {
	x := NewUint64(16, 20, NEAREST)
	assert.True(t, x.Sqrt().Equal(NewUint64(4, 20, NEAREST)))
}

func TestSqrtTwoSquaredApproximatesTwo(t *testing.T) {
	two := NewUint64(2, 40, NEAREST)
	root := two.Sqrt()
	diff := root.Mul(root).Sub(two).Abs()
	bound := Parse("1e-38", 40, NEAREST)
	assert.True(t, diff.Less(bound))
}

func TestSqrtSpecials(t *testing.T) {
	assert.True(t, NaN(20, NEAREST).Sqrt().IsNaN())
	assert.True(t, NewInt64(-4, 20, NEAREST).Sqrt().IsNaN())
	assert.True(t, Zero(false, 20, NEAREST).Sqrt().IsZero())
	assert.True(t, Inf(false, 20, NEAREST).Sqrt().IsInf())
}

func TestSqrtMonotonic(t *testing.T) {
	a := NewUint64(2, 30, NEAREST)
	b := NewUint64(3, 30, NEAREST)
	assert.True(t, a.Sqrt().Less(b.Sqrt()))
}
