package bigfloat

import (
	"math"
	"math/big"
)

// Sqrt returns the square root of x, computed with a division-free Newton
// iteration on the reciprocal square root (spec §4.6).
func (x *Float) Sqrt() *Float {
	prec := x.Precision()
	rounding := x.rounding

	if x.IsNaN() {
		return newNaN(prec, rounding)
	}
	if x.Signbit() && !x.IsZero() {
		return newNaN(prec, rounding)
	}
	if x.IsZero() {
		return newZero(false, prec, rounding)
	}
	if x.IsInf() {
		return newInf(false, prec, rounding)
	}

	// exact power of four: significand == 1 and exponent even.
	if x.significand.Cmp(one) == 0 && x.exponent%2 == 0 {
		return newNormal(false, new(big.Int).Set(one), x.exponent/2, prec, rounding)
	}

	guard := prec/2 + 20
	if guard < 20 {
		guard = 20
	}
	workPrec := prec + guard
	w := int64(WorkingWidth(workPrec))

	h, r := floorDivMod2(x.exponent)
	// y = x rescaled so that its exponent is r (0 or 1): y in [1, 4).
	y := newWorking(x.significand, r, workPrec)

	xh := toHostFloat(y)
	seed := NewFloat64(1/math.Sqrt(xh), workPrec, NEAREST)

	three := workingUint64(3, workPrec)
	oneHalf := newWorking(one, -1, workPrec) // 0.5

	xv := seed
	epsilon := newWorking(one, -w, workPrec)
	maxIters := bitLenLog2(uint(w)) + 4
	for i := 0; i < maxIters; i++ {
		x2 := xv.Mul(xv)
		inner := three.Sub(y.Mul(x2))
		next := xv.Mul(inner).Mul(oneHalf)
		delta := next.Sub(xv).Abs()
		xv = next
		if delta.LessEqual(epsilon) {
			break
		}
	}

	root := y.Mul(xv) // y * (1/sqrt(y)) = sqrt(y)
	result := newWorking(root.significand, root.exponent+h, workPrec)
	return result.WithPrecision(prec).WithRounding(rounding)
}

// floorDivMod2 splits exponent = 2*h + r with r in {0, 1} (floored
// division, so it also behaves for negative exponents, spec §4.6).
func floorDivMod2(exponent int64) (h, r int64) {
	h = exponent >> 1
	r = exponent - 2*h
	return
}
