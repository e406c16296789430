package math

import (
	"testing"

	"github.com/aurelian-io/bigfloat"
	"github.com/stretchr/testify/assert"
)

func TestSinhCoshIdentity(t *testing.T) {
	x := f(2)
	s := Sinh(x, testPrec, bigfloat.NEAREST)
	c := Cosh(x, testPrec, bigfloat.NEAREST)
	diff := c.Mul(c).Sub(s.Mul(s))
	assert.True(t, closeEnough(t, diff, f(1), testPrec, 5))
}

func TestSinhZero(t *testing.T) {
	r := Sinh(bigfloat.Zero(false, testPrec, bigfloat.NEAREST), testPrec, bigfloat.NEAREST)
	assert.True(t, r.IsZero())
}

func TestCoshZero(t *testing.T) {
	r := Cosh(bigfloat.Zero(false, testPrec, bigfloat.NEAREST), testPrec, bigfloat.NEAREST)
	assert.True(t, r.Equal(f(1)))
}

func TestTanhBounded(t *testing.T) {
	x := f(5)
	r := Tanh(x, testPrec, bigfloat.NEAREST)
	assert.True(t, r.Less(f(1)))
	assert.True(t, r.Greater(bigfloat.Zero(false, testPrec, bigfloat.NEAREST)))
}

func TestAsinhSinhRoundTrip(t *testing.T) {
	x := f(3)
	s := Sinh(x, testPrec, bigfloat.NEAREST)
	back := Asinh(s, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, back, x, testPrec, 5))
}

func TestAcoshDomainError(t *testing.T) {
	r := Acosh(bigfloat.Parse("0.5", testPrec, bigfloat.NEAREST), testPrec, bigfloat.NEAREST)
	assert.True(t, r.IsNaN())
}

func TestAcoshCoshRoundTrip(t *testing.T) {
	x := f(2)
	c := Cosh(x, testPrec, bigfloat.NEAREST)
	back := Acosh(c, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, back, x, testPrec, 5))
}

func TestAtanhTanhRoundTrip(t *testing.T) {
	x := bigfloat.Parse("0.4", testPrec, bigfloat.NEAREST)
	th := Tanh(x, testPrec, bigfloat.NEAREST)
	back := Atanh(th, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, back, x, testPrec, 5))
}

func TestAtanhOutOfDomainIsNaN(t *testing.T) {
	r := Atanh(f(2), testPrec, bigfloat.NEAREST)
	assert.True(t, r.IsNaN())
}
