package bigfloat

import "math/big"

// effectiveExponent returns the exponent of x's least-significant bit:
// exponent - bitlen(significand) + 1 (spec §4.3).
func effectiveExponent(x *Float) int64 {
	return x.exponent - int64(bitLen(x)) + 1
}

// maxPrec returns the larger of two precisions (spec §4.3 "working
// precision is max(a.precision, b.precision)").
func maxPrec(a, b *Float) uint {
	if a.Precision() > b.Precision() {
		return a.Precision()
	}
	return b.Precision()
}

// Add returns x + y, rounded to max(x.Precision(), y.Precision()).
func (x *Float) Add(y *Float) *Float {
	prec := maxPrec(x, y)
	rounding := x.rounding

	// special-value table (spec §4.3)
	if x.IsNaN() || y.IsNaN() {
		return newNaN(prec, rounding)
	}
	if x.IsInf() {
		if y.IsInf() && x.Signbit() != y.Signbit() {
			return newNaN(prec, rounding)
		}
		return newInf(x.Signbit(), prec, rounding)
	}
	if y.IsInf() {
		return newInf(y.Signbit(), prec, rounding)
	}
	if x.IsZero() && y.IsZero() {
		return newZero(x.Signbit() && y.Signbit(), prec, rounding)
	}
	if x.IsZero() {
		return y.WithPrecision(prec)
	}
	if y.IsZero() {
		return x.WithPrecision(prec)
	}

	return addNormals(x, y, prec, rounding)
}

// Sub returns x - y, delegating to Add on a negated y (spec §4.3).
func (x *Float) Sub(y *Float) *Float {
	return x.Add(y.Neg())
}

// addNormals performs the sign-aware aligned addition of two finite
// nonzero operands (spec §4.3).
func addNormals(x, y *Float, prec uint, rounding RoundingMode) *Float {
	ea := effectiveExponent(x)
	eb := effectiveExponent(y)

	xs := new(big.Int).Set(x.significand)
	ys := new(big.Int).Set(y.significand)

	common := ea
	if eb < common {
		common = eb
	}
	if ea > common {
		xs.Lsh(xs, uint(ea-common))
	}
	if eb > common {
		ys.Lsh(ys, uint(eb-common))
	}

	if x.Signbit() {
		xs.Neg(xs)
	}
	if y.Signbit() {
		ys.Neg(ys)
	}

	sum := xs.Add(xs, ys)
	if sum.Sign() == 0 {
		return newZero(false, prec, rounding)
	}

	neg := sum.Sign() < 0
	mag := new(big.Int).Abs(sum)
	bl := mag.BitLen()
	return newNormal(neg, mag, common+int64(bl)-1, prec, rounding)
}
