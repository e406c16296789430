package math

import (
	"testing"

	"github.com/aurelian-io/bigfloat"
	"github.com/stretchr/testify/assert"
)

func TestExpZeroIsOne(t *testing.T) {
	r := Exp(bigfloat.Zero(false, testPrec, bigfloat.NEAREST), testPrec, bigfloat.NEAREST)
	assert.True(t, r.Equal(f(1)))
}

func TestExpOfOneMatchesE(t *testing.T) {
	// Concrete scenario, spec §8: exp(1) compared to E(50).
	const prec = 50
	one := bigfloat.NewUint64(1, prec, bigfloat.NEAREST)
	got := Exp(one, prec, bigfloat.NEAREST)
	want := E(prec, bigfloat.NEAREST)
	assert.True(t, got.Equal(want), "exp(1)=%s E(50)=%s", got, want)
}

func TestExpNegativeIsReciprocal(t *testing.T) {
	x := f(3)
	pos := Exp(x, testPrec, bigfloat.NEAREST)
	neg := Exp(x.Neg(), testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, pos.Mul(neg), f(1), testPrec, 5))
}

func TestExpIntegerFastPath(t *testing.T) {
	e2 := Exp(f(2), testPrec, bigfloat.NEAREST)
	e1 := E(testPrec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, e2, e1.Mul(e1), testPrec, 5))
}

func TestExpMonotonic(t *testing.T) {
	a := Exp(f(1), testPrec, bigfloat.NEAREST)
	b := Exp(f(2), testPrec, bigfloat.NEAREST)
	assert.True(t, a.Less(b))
}

func TestExpOfInf(t *testing.T) {
	posInf := bigfloat.Inf(false, testPrec, bigfloat.NEAREST)
	negInf := bigfloat.Inf(true, testPrec, bigfloat.NEAREST)
	assert.True(t, Exp(posInf, testPrec, bigfloat.NEAREST).IsInf())
	assert.True(t, Exp(negInf, testPrec, bigfloat.NEAREST).IsZero())
}
