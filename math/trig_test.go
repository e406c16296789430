package math

import (
	"testing"

	"github.com/aurelian-io/bigfloat"
	"github.com/stretchr/testify/assert"
)

func TestSinOfPiSixth(t *testing.T) {
	// Concrete scenario, spec §8: sin(PI(60)/6).toFixed(50).
	const prec = 60
	pi := Pi(prec, bigfloat.NEAREST)
	six := bigfloat.NewUint64(6, prec, bigfloat.NEAREST)
	x := pi.Div(six)
	s := Sin(x, prec, bigfloat.NEAREST)
	assert.Equal(t, "0.50000000000000000000000000000000000000000000000000", s.ToFixed(50))
}

func TestSinCosPythagorean(t *testing.T) {
	x := f(1)
	s := Sin(x, testPrec, bigfloat.NEAREST)
	c := Cos(x, testPrec, bigfloat.NEAREST)
	sum := s.Mul(s).Add(c.Mul(c))
	assert.True(t, closeEnough(t, sum, f(1), testPrec, 5))
}

func TestSinOddSymmetry(t *testing.T) {
	x := f(2)
	assert.True(t, closeEnough(t, Sin(x.Neg(), testPrec, bigfloat.NEAREST), Sin(x, testPrec, bigfloat.NEAREST).Neg(), testPrec, 5))
}

func TestCosEvenSymmetry(t *testing.T) {
	x := f(2)
	assert.True(t, closeEnough(t, Cos(x.Neg(), testPrec, bigfloat.NEAREST), Cos(x, testPrec, bigfloat.NEAREST), testPrec, 5))
}

func TestTanEqualsSinOverCos(t *testing.T) {
	x := f(1)
	tan := Tan(x, testPrec, bigfloat.NEAREST)
	s := Sin(x, testPrec, bigfloat.NEAREST)
	c := Cos(x, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, tan.Mul(c), s, testPrec, 5))
}

func TestSinZero(t *testing.T) {
	r := Sin(bigfloat.Zero(false, testPrec, bigfloat.NEAREST), testPrec, bigfloat.NEAREST)
	assert.True(t, r.IsZero())
}

func TestCosZero(t *testing.T) {
	r := Cos(bigfloat.Zero(false, testPrec, bigfloat.NEAREST), testPrec, bigfloat.NEAREST)
	assert.True(t, r.Equal(f(1)))
}

func TestAsinSinRoundTrip(t *testing.T) {
	x := bigfloat.Parse("0.5", testPrec, bigfloat.NEAREST)
	s := Sin(x, testPrec, bigfloat.NEAREST)
	back := Asin(s, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, back, x, testPrec, 5))
}

func TestAcosPlusAsinIsHalfPi(t *testing.T) {
	x := bigfloat.Parse("0.3", testPrec, bigfloat.NEAREST)
	sum := Asin(x, testPrec, bigfloat.NEAREST).Add(Acos(x, testPrec, bigfloat.NEAREST))
	halfPi := Pi(testPrec, bigfloat.NEAREST).Ldexp(-1)
	assert.True(t, closeEnough(t, sum, halfPi, testPrec, 5))
}

func TestAtanTanRoundTrip(t *testing.T) {
	x := bigfloat.Parse("0.7", testPrec, bigfloat.NEAREST)
	tn := Tan(x, testPrec, bigfloat.NEAREST)
	back := Atan(tn, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, back, x, testPrec, 5))
}

func TestAtan2Symmetry(t *testing.T) {
	y := f(3)
	x := f(4)
	a := Atan2(y, x, testPrec, bigfloat.NEAREST)
	b := Atan2(y.Neg(), x, testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, a, b.Neg(), testPrec, 5))
}

func TestAtan2SignedZeroY(t *testing.T) {
	posZero := bigfloat.Zero(false, testPrec, bigfloat.NEAREST)
	negZero := bigfloat.Zero(true, testPrec, bigfloat.NEAREST)
	four := f(4)
	negFour := f(-4)

	// atan2(+-0, x>=0) == +-0
	assert.True(t, Atan2(posZero, four, testPrec, bigfloat.NEAREST).IsZero())
	assert.False(t, Atan2(posZero, four, testPrec, bigfloat.NEAREST).Signbit())
	assert.True(t, Atan2(negZero, four, testPrec, bigfloat.NEAREST).IsZero())
	assert.True(t, Atan2(negZero, four, testPrec, bigfloat.NEAREST).Signbit())

	// atan2(+-0, x<=-0) == +-pi
	pi := Pi(testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, Atan2(posZero, negFour, testPrec, bigfloat.NEAREST), pi, testPrec, 5))
	assert.True(t, closeEnough(t, Atan2(negZero, negFour, testPrec, bigfloat.NEAREST), pi.Neg(), testPrec, 5))
}

func TestAtan2SignedZeroBoth(t *testing.T) {
	posZero := bigfloat.Zero(false, testPrec, bigfloat.NEAREST)
	negZero := bigfloat.Zero(true, testPrec, bigfloat.NEAREST)
	pi := Pi(testPrec, bigfloat.NEAREST)

	// atan2(+-0, +0) == +-0
	assert.True(t, Atan2(posZero, posZero, testPrec, bigfloat.NEAREST).IsZero())
	assert.False(t, Atan2(posZero, posZero, testPrec, bigfloat.NEAREST).Signbit())
	assert.True(t, Atan2(negZero, posZero, testPrec, bigfloat.NEAREST).IsZero())
	assert.True(t, Atan2(negZero, posZero, testPrec, bigfloat.NEAREST).Signbit())

	// atan2(+-0, -0) == +-pi
	assert.True(t, closeEnough(t, Atan2(posZero, negZero, testPrec, bigfloat.NEAREST), pi, testPrec, 5))
	assert.True(t, closeEnough(t, Atan2(negZero, negZero, testPrec, bigfloat.NEAREST), pi.Neg(), testPrec, 5))
}

func TestAtan2Quadrants(t *testing.T) {
	one := f(1)
	negOne := f(-1)
	pi := Pi(testPrec, bigfloat.NEAREST)
	// atan2(1, -1) == 3*pi/4
	r := Atan2(one, negOne, testPrec, bigfloat.NEAREST)
	threeQuarterPi := pi.Mul(bigfloat.NewUint64(3, testPrec, bigfloat.NEAREST)).Div(bigfloat.NewUint64(4, testPrec, bigfloat.NEAREST))
	assert.True(t, closeEnough(t, r, threeQuarterPi, testPrec, 5))
}
