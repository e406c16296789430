package bigfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualSignedZero(t *testing.T) {
	assert.True(t, Zero(false, 10, NEAREST).Equal(Zero(true, 10, NEAREST)))
}

func TestEqualNaNIsAlwaysFalse(t *testing.T) {
	n := NaN(10, NEAREST)
	assert.False(t, n.Equal(n))
	assert.True(t, n.NotEqual(n))
}

func TestLessOrdering(t *testing.T) {
	assert.True(t, p(1).Less(p(2)))
	assert.False(t, p(2).Less(p(1)))
	assert.False(t, p(1).Less(p(1)))
	assert.True(t, p(-1).Less(p(1)))
}

func TestLessWithInfinities(t *testing.T) {
	posInf := Inf(false, 10, NEAREST)
	negInf := Inf(true, 10, NEAREST)
	assert.True(t, negInf.Less(p(0)))
	assert.True(t, p(0).Less(posInf))
	assert.False(t, posInf.Less(posInf))
	assert.True(t, negInf.Less(posInf))
}

func TestCmpNaNOrdersBeforeEverythingAndEqualsItself(t *testing.T) {
	n := NaN(10, NEAREST)
	assert.NotPanics(t, func() { p(1).Cmp(n) })
	assert.Equal(t, -1, n.Cmp(p(1)))
	assert.Equal(t, 1, p(1).Cmp(n))
	assert.Equal(t, 0, n.Cmp(n))
}

func TestCmpOrdering(t *testing.T) {
	assert.Equal(t, -1, p(1).Cmp(p(2)))
	assert.Equal(t, 0, p(1).Cmp(p(1)))
	assert.Equal(t, 1, p(2).Cmp(p(1)))
}

func TestCmpAbs(t *testing.T) {
	assert.Equal(t, 0, p(-5).CmpAbs(p(5)))
	assert.Equal(t, -1, p(-1).CmpAbs(p(5)))
}

func TestGreaterEqualLessEqual(t *testing.T) {
	assert.True(t, p(2).GreaterEqual(p(2)))
	assert.True(t, p(2).GreaterEqual(p(1)))
	assert.True(t, p(1).LessEqual(p(1)))
	assert.False(t, p(1).Greater(p(1)))
}
