package math

import (
	"math/big"

	"github.com/aurelian-io/bigfloat"
)

// isPowerOfTwo reports whether x is normal and its significand is
// exactly 1, i.e. x is an exact (possibly negative) power of two.
func isPowerOfTwo(x *bigfloat.Float) bool {
	return x.IsNormal() && x.Significand().Cmp(big.NewInt(1)) == 0
}

// Pow returns x**y (spec §4.10). Integer exponents use one of two fast
// paths: pure exponent arithmetic when x is an exact power of two, or
// binary exponentiation by squaring otherwise. Non-integer exponents use
// exp(y*ln(x)), which requires x > 0.
func Pow(x, y *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || y.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}

	if n, ok := asInteger(y); ok {
		if v, handled := powSpecial(x, y, prec, rounding); handled {
			return v
		}
		return powInt(x, n, prec, rounding)
	}

	if v, handled := powSpecial(x, y, prec, rounding); handled {
		return v
	}

	if x.Signbit() {
		return bigfloat.NaN(prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	lnx := Ln(x, workPrec, bigfloat.NEAREST)
	return Exp(y.Mul(lnx), prec, rounding)
}

// powSpecial handles the special-case zoo of spec §4.10 that does not
// depend on binary exponentiation: 0**0, x**0, 0**y, 1**y, (+-inf)**y,
// and x**(+-inf). It reports handled=false when none apply, leaving the
// caller to take the integer or general path.
func powSpecial(x, y *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) (*bigfloat.Float, bool) {
	if x.IsZero() && y.IsZero() {
		return bigfloat.NaN(prec, rounding), true
	}
	if y.IsZero() {
		return bigfloat.NewUint64(1, prec, rounding), true
	}
	if x.IsZero() {
		if y.Signbit() {
			return bigfloat.Inf(false, prec, rounding), true
		}
		return bigfloat.Zero(false, prec, rounding), true
	}
	if isPowerOfTwo(x) && x.Exponent() == 0 && !x.Signbit() {
		return bigfloat.NewUint64(1, prec, rounding), true
	}
	if x.IsInf() {
		n, isInt := asInteger(y)
		negBase := x.Signbit()
		if y.Signbit() {
			return bigfloat.Zero(false, prec, rounding), true
		}
		if isInt && negBase && n%2 != 0 {
			return bigfloat.Inf(true, prec, rounding), true
		}
		return bigfloat.Inf(false, prec, rounding), true
	}
	if y.IsInf() {
		cmp := x.Abs().Cmp(bigfloat.NewUint64(1, x.Precision(), bigfloat.NEAREST))
		switch {
		case cmp == 0:
			return bigfloat.NewUint64(1, prec, rounding), true
		case cmp < 0:
			if y.Signbit() {
				return bigfloat.Inf(false, prec, rounding), true
			}
			return bigfloat.Zero(false, prec, rounding), true
		default:
			if y.Signbit() {
				return bigfloat.Zero(false, prec, rounding), true
			}
			return bigfloat.Inf(false, prec, rounding), true
		}
	}
	return nil, false
}

// powInt computes x**n for an integer exponent n via binary
// exponentiation by squaring, with a pure-exponent-arithmetic fast path
// when x is an exact power of two (spec §4.10).
func powInt(x *bigfloat.Float, n int64, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	if x.IsInf() || x.IsZero() {
		v, _ := powSpecial(x, bigfloat.NewInt64(n, prec, bigfloat.NEAREST), prec, rounding)
		return v
	}

	if isPowerOfTwo(x) {
		neg := x.Signbit() && n%2 != 0
		result := bigfloat.NewInt64(1, prec, rounding)
		if neg {
			result = result.Neg()
		}
		return result.Ldexp(x.Exponent() * n)
	}

	workPrec := prec + guardDigits(prec)
	neg := n < 0
	un := n
	if neg {
		un = -un
	}

	base := x.WithPrecision(workPrec)
	result := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	for un > 0 {
		if un&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		un >>= 1
	}
	if neg {
		result = result.Inverse()
	}
	return result.WithPrecision(prec).WithRounding(rounding)
}
