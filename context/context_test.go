package context

import (
	"math/big"
	"testing"

	"github.com/aurelian-io/bigfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccessors(t *testing.T) {
	c := New(20, bigfloat.NEAREST)
	assert.EqualValues(t, 20, c.Precision())
	assert.Equal(t, bigfloat.NEAREST, c.Rounding())
}

func TestSetPrecisionAndRoundingChain(t *testing.T) {
	c := New(10, bigfloat.NEAREST).SetPrecision(30).SetRounding(bigfloat.ZERO)
	assert.EqualValues(t, 30, c.Precision())
	assert.Equal(t, bigfloat.ZERO, c.Rounding())
}

func TestContextArithmeticUsesConfiguredPrecision(t *testing.T) {
	c := New(25, bigfloat.NEAREST)
	x := c.NewInt64(3)
	y := c.NewInt64(4)
	sum := c.Add(x, y)
	require.True(t, sum.IsNormal())
	assert.EqualValues(t, 25, sum.Precision())
	assert.True(t, sum.Equal(c.NewInt64(7)))
}

func TestContextDoesNotMutateOperands(t *testing.T) {
	c := New(20, bigfloat.NEAREST)
	x := c.NewInt64(5)
	before := x.Clone()
	_ = c.Add(x, c.NewInt64(1))
	assert.True(t, x.Equal(before))
}

func TestContextConstructors(t *testing.T) {
	c := New(15, bigfloat.NEAREST)
	assert.True(t, c.NewUint64(9).Equal(c.NewInt64(9)))
	assert.True(t, c.NewBigInt(big.NewInt(-3)).Signbit())
	assert.True(t, c.NewFloat64(2.5).Equal(c.Parse("2.5")))
	assert.True(t, c.Zero(false).IsZero())
	assert.True(t, c.Inf(true).IsInf())
	assert.True(t, c.NaN().IsNaN())
}

func TestContextParseMalformedIsNaN(t *testing.T) {
	c := New(10, bigfloat.NEAREST)
	assert.True(t, c.Parse("not-a-number").IsNaN())
}

func TestContextFMA(t *testing.T) {
	c := New(20, bigfloat.NEAREST)
	r := c.FMA(c.NewInt64(2), c.NewInt64(3), c.NewInt64(1))
	assert.True(t, r.Equal(c.NewInt64(7)))
}

func TestContextSqrtAndCmp(t *testing.T) {
	c := New(30, bigfloat.NEAREST)
	r := c.Sqrt(c.NewUint64(4))
	assert.True(t, r.Equal(c.NewUint64(2)))
	assert.Equal(t, -1, c.Cmp(c.NewUint64(1), c.NewUint64(2)))
}

func TestContextNegAbs(t *testing.T) {
	c := New(10, bigfloat.NEAREST)
	x := c.NewInt64(-5)
	assert.False(t, c.Neg(x).Signbit())
	assert.False(t, c.Abs(x).Signbit())
}
