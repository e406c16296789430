package bigfloat

import "math/big"

// newWorking builds a positive, normal Float directly from sig/exponent at
// the given working precision, bypassing the public constructors (which
// would insist on the caller's real precision). Used only for the Newton
// scratch values inside Inverse and Sqrt.
func newWorking(sig *big.Int, exponent int64, prec uint) *Float {
	return newNormal(false, new(big.Int).Set(sig), exponent, prec, NEAREST)
}

// workingUint64 builds a small positive integer constant (1, 2, 3, 4, ...)
// at the given working precision.
func workingUint64(v uint64, prec uint) *Float {
	sig := new(big.Int).SetUint64(v)
	return newWorking(sig, int64(sig.BitLen()-1), prec)
}

// toHostFloat converts a normal (non-special) Float to a best-effort
// float64, for seeding Newton iterations. Precision lost here is regained
// by the iterations that follow.
func toHostFloat(x *Float) float64 {
	f := new(big.Float).SetPrec(64).SetInt(x.significand)
	f.SetMantExp(f, int(x.exponent-int64(bitLen(x))+1))
	v, _ := f.Float64()
	if x.Signbit() {
		v = -v
	}
	return v
}

// Inverse returns 1/x, computed with Newton iteration on the reciprocal
// (spec §4.5).
func (x *Float) Inverse() *Float {
	prec := x.Precision()
	rounding := x.rounding

	if x.IsNaN() {
		return newNaN(prec, rounding)
	}
	if x.IsZero() {
		return newInf(x.Signbit(), prec, rounding)
	}
	if x.IsInf() {
		return newZero(x.Signbit(), prec, rounding)
	}

	guard := prec/2 + 20
	if guard < 20 {
		guard = 20
	}
	workPrec := prec + guard
	w := int64(WorkingWidth(workPrec))

	// v = |x| with its exponent reset to 0, so 1 <= v < 2.
	v := newWorking(x.significand, 0, workPrec)

	u := newFloat64Working(1/toHostFloat(v), workPrec)
	twoW := workingUint64(2, workPrec)
	oneW := workingUint64(1, workPrec)
	epsilon := newWorking(one, -w, workPrec)

	maxIters := bitLenLog2(uint(w)) + 4
	for i := 0; i < maxIters; i++ {
		r := twoW.Sub(v.Mul(u))
		u = u.Mul(r)
		if r.Sub(oneW).Abs().LessEqual(epsilon) {
			break
		}
	}

	result := newWorking(u.significand, u.exponent-x.exponent, workPrec)
	if x.Signbit() {
		result = result.Neg()
	}
	return result.WithPrecision(prec).WithRounding(rounding)
}

// newFloat64Working converts a host float64 into a Float at the given
// working precision through NewFloat64, always with NEAREST rounding.
func newFloat64Working(f float64, prec uint) *Float {
	return NewFloat64(f, prec, NEAREST)
}

// bitLenLog2 returns ceil(log2(n)) for n >= 2, and 1 for n <= 1.
func bitLenLog2(n uint) int {
	if n <= 1 {
		return 1
	}
	return big.NewInt(int64(n - 1)).BitLen()
}

// Div returns x/y (spec §4.5), with fast paths for exact powers of two,
// for y.significand == 1, and for x or y == 1.
func (x *Float) Div(y *Float) *Float {
	prec := maxPrec(x, y)
	rounding := x.rounding

	if x.IsNaN() || y.IsNaN() {
		return newNaN(prec, rounding)
	}
	if x.IsZero() && y.IsZero() {
		return newNaN(prec, rounding)
	}
	if x.IsInf() && y.IsInf() {
		return newNaN(prec, rounding)
	}
	sign := x.Sign()*y.Sign() < 0
	if x.IsInf() {
		return newInf(sign, prec, rounding)
	}
	if y.IsInf() {
		return newZero(sign, prec, rounding)
	}
	if y.IsZero() {
		return newInf(sign, prec, rounding)
	}
	if x.IsZero() {
		return newZero(sign, prec, rounding)
	}

	// fast path: both exact powers of two
	if x.significand.Cmp(one) == 0 && y.significand.Cmp(one) == 0 {
		return newNormal(sign, new(big.Int).Set(one), x.exponent-y.exponent, prec, rounding)
	}
	// fast path: y is an exact power of two
	if y.significand.Cmp(one) == 0 {
		return newNormal(sign, new(big.Int).Set(x.significand), x.exponent-y.exponent, prec, rounding)
	}
	// fast path: x == 1
	if x.significand.Cmp(one) == 0 && x.exponent == 0 {
		return y.Inverse().WithPrecision(prec).Abs().signAs(sign)
	}
	// fast path: y == 1 (exactly)
	if y.significand.Cmp(one) == 0 && y.exponent == 0 {
		return x.WithPrecision(prec).Abs().signAs(sign)
	}

	return x.Mul(y.Inverse()).WithPrecision(prec)
}

// signAs returns x with its sign bit forced to neg.
func (x *Float) signAs(neg bool) *Float {
	z := x.Clone()
	if neg {
		z.sign = -1
	} else {
		z.sign = 1
	}
	return z
}
