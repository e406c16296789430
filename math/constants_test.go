package math

import (
	"strings"
	"testing"

	"github.com/aurelian-io/bigfloat"
	"github.com/stretchr/testify/assert"
)

func TestPiKnownDigits(t *testing.T) {
	pi := Pi(testPrec, bigfloat.NEAREST)
	s := pi.String()
	assert.True(t, strings.HasPrefix(s, "3.14159265358979323846264338327950288419"), "got %s", s)
}

func TestPiCacheWidensWithoutLosingAccuracy(t *testing.T) {
	low := Pi(10, bigfloat.NEAREST)
	high := Pi(60, bigfloat.NEAREST)
	assert.True(t, strings.HasPrefix(high.String(), low.String()[:10]))
}

func TestEKnownDigits(t *testing.T) {
	e := E(testPrec, bigfloat.NEAREST)
	s := e.String()
	assert.True(t, strings.HasPrefix(s, "2.71828182845904523536028747135266249775"), "got %s", s)
}

func TestLn2Ln5SumToLn10(t *testing.T) {
	ln2 := Ln2(testPrec, bigfloat.NEAREST)
	ln5 := Ln5(testPrec, bigfloat.NEAREST)
	ln10 := Ln10(testPrec, bigfloat.NEAREST)
	sum := ln2.Add(ln5)
	assert.True(t, closeEnough(t, sum, ln10, testPrec, 5))
}

func TestSqrt2SquaredIsTwo(t *testing.T) {
	s := Sqrt2(testPrec, bigfloat.NEAREST)
	two := f(2)
	assert.True(t, closeEnough(t, s.Mul(s), two, testPrec, 5))
}

func TestEpsilonIsTenToMinusPrec(t *testing.T) {
	const prec = 10
	eps := Epsilon(prec, bigfloat.NEAREST)
	ten := bigfloat.NewUint64(10, prec, bigfloat.NEAREST)
	pow := bigfloat.NewUint64(1, prec, bigfloat.NEAREST)
	for i := 0; i < prec; i++ {
		pow = pow.Mul(ten)
	}
	product := eps.Mul(pow)
	one := bigfloat.NewUint64(1, prec, bigfloat.NEAREST)
	assert.True(t, closeEnough(t, product, one, prec, 3))
}
