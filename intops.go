package bigfloat

import "math/big"

// fracBits returns bitlen(significand) - 1 - exponent: the number of bits
// of x's significand that lie to the right of the binary point (spec
// §4.14). fracBits <= 0 means x is already an integer.
func fracBits(x *Float) int64 {
	return int64(bitLen(x)) - 1 - x.exponent
}

// splitIntFrac splits x (normal, nonzero) into its integer part and
// fractional part as significands at the same effective LSB exponent,
// fb = fracBits(x) > 0.
func splitIntFrac(x *Float, fb int64) (intPart, frac *big.Int) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(one, uint(fb)), one)
	frac = new(big.Int).And(x.significand, mask)
	intPart = new(big.Int).Rsh(x.significand, uint(fb))
	return
}

// truncToInteger implements the shared machinery for Floor/Ceil/Trunc/Round:
// it builds the magnitude's integer part (optionally incremented) and
// constructs a fresh, normalized Float from it, per spec §4.14 ("convert
// back through a fresh construction so normalization is clean").
func truncToInteger(x *Float, roundAwayFromZero, roundTiesUp bool) *Float {
	if !x.IsNormal() {
		return x.Clone()
	}
	fb := fracBits(x)
	if fb <= 0 {
		return x.Clone()
	}
	intPart, frac := splitIntFrac(x, fb)
	bump := false
	if roundAwayFromZero && frac.Sign() != 0 {
		bump = true
	}
	if roundTiesUp && frac.Sign() != 0 {
		half := new(big.Int).Lsh(one, uint(fb-1))
		if frac.Cmp(half) >= 0 {
			bump = true
		}
	}
	if bump {
		intPart.Add(intPart, one)
	}
	if intPart.Sign() == 0 {
		return newZero(x.Signbit(), x.Precision(), x.rounding)
	}
	return NewBigInt(intPart, x.Signbit(), x.Precision(), x.rounding)
}

// Trunc returns x with its fractional part removed (truncation toward
// zero).
func (x *Float) Trunc() *Float {
	return truncToInteger(x, false, false)
}

// Floor returns the largest integer value <= x.
func (x *Float) Floor() *Float {
	if x.IsNormal() && x.Signbit() {
		return truncToInteger(x, true, false)
	}
	return truncToInteger(x, false, false)
}

// Ceil returns the smallest integer value >= x.
func (x *Float) Ceil() *Float {
	if x.IsNormal() && !x.Signbit() {
		return truncToInteger(x, true, false)
	}
	return truncToInteger(x, false, false)
}

// Round returns x rounded to the nearest integer; ties round away from
// zero.
func (x *Float) Round() *Float {
	return truncToInteger(x, false, true)
}

// Fmod returns the remainder a - trunc(a/b)*b (the C fmod convention, not
// the IEEE remainder) (spec §4.14).
func (x *Float) Fmod(y *Float) *Float {
	if x.IsNaN() || y.IsNaN() || x.IsInf() || y.IsZero() {
		return newNaN(maxPrec(x, y), x.rounding)
	}
	if y.IsInf() {
		return x.Clone()
	}
	q := x.Div(y).Trunc()
	return x.Sub(q.Mul(y))
}

// Modf returns the integer and fractional parts of x, both carrying x's
// sign, except that the fractional part of a negative integer is +0
// (spec §4.14).
func (x *Float) Modf() (intPart, frac *Float) {
	intPart = x.Trunc()
	frac = x.Sub(intPart)
	return
}

// Frexp returns m and exp with x == m * 2**exp and 0.5 <= |m| < 1,
// matching math.Frexp's convention (spec §4.14): m is x with its exponent
// set to -1, and exp is x.Exponent()+1. A zero, infinite or NaN x is
// returned as is, with exp 0.
func (x *Float) Frexp() (m *Float, exp int64) {
	if !x.IsNormal() {
		return x.Clone(), 0
	}
	exp = x.exponent + 1
	z := x.Clone()
	z.exponent = -1
	invalidateBitLen(z)
	return z, exp
}

// Ldexp returns x * 2**n (spec §4.14: "adds n to the exponent").
func (x *Float) Ldexp(n int64) *Float {
	if !x.IsNormal() {
		return x.Clone()
	}
	z := alloc(x.Precision(), x.rounding)
	z.sign = x.sign
	z.significand = new(big.Int).Set(x.significand)
	z.exponent = x.exponent + n
	z.special = normalValue
	roundToPrecision(z)
	return z
}

// ulp returns a unit-in-the-last-place Float at x's precision (GLOSSARY
// "ULP"): significand = 1, exponent = -ceil(precision*log2(10)).
func ulp(prec uint, rounding RoundingMode) *Float {
	return newNormal(false, new(big.Int).Set(one), ulpExponent(prec), prec, rounding)
}

// Succ returns x plus one ULP at x's decimal precision (see ulp), moving
// toward +Inf. The step is a fixed absolute amount, so for an x whose last
// significand bit is worth more than it, the rounded sum can equal x.
func (x *Float) Succ() *Float {
	if x.IsNaN() || x.IsInf() && !x.Signbit() {
		return x.Clone()
	}
	if x.IsZero() {
		return ulp(x.Precision(), x.rounding)
	}
	if x.IsInf() {
		// -Inf: succ moves toward the most negative finite value, which
		// has no representable bound; by convention return -Inf itself.
		return x.Clone()
	}
	return x.Add(ulp(x.Precision(), x.rounding))
}

// Pred returns x minus one ULP at x's decimal precision (see ulp), moving
// toward -Inf. As with Succ, the rounded difference can equal x.
func (x *Float) Pred() *Float {
	if x.IsNaN() || x.IsInf() && x.Signbit() {
		return x.Clone()
	}
	if x.IsZero() {
		return ulp(x.Precision(), x.rounding).Neg()
	}
	if x.IsInf() {
		return x.Clone()
	}
	return x.Sub(ulp(x.Precision(), x.rounding))
}

// Nextafter advances x by one ULP at x's decimal precision, in the
// direction of y (spec §4.14).
func (x *Float) Nextafter(y *Float) *Float {
	if x.IsNaN() || y.IsNaN() {
		return newNaN(x.Precision(), x.rounding)
	}
	if x.Equal(y) {
		return x.Clone()
	}
	if x.Less(y) {
		return x.Succ()
	}
	return x.Pred()
}

// FMA returns x*y + u, computed with a single final rounding (spec §6).
func (x *Float) FMA(y, u *Float) *Float {
	prec := x.Precision()
	if y.Precision() > prec {
		prec = y.Precision()
	}
	if u.Precision() > prec {
		prec = u.Precision()
	}
	// At 2*prec+2 digits the working width covers bitlen(x)+bitlen(y), so
	// the product is exact and the only rounding is the final one.
	wide := 2*prec + 2
	prod := x.WithPrecision(wide).Mul(y.WithPrecision(wide))
	if prod.IsNormal() && u.IsNormal() {
		return addNormals(prod, u, prec, x.rounding)
	}
	return prod.Add(u).WithPrecision(prec).WithRounding(x.rounding)
}
