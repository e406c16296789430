package bigfloat

import "math/big"

// Mul returns x * y, rounded to max(x.Precision(), y.Precision()) (spec
// §4.4).
func (x *Float) Mul(y *Float) *Float {
	prec := maxPrec(x, y)
	rounding := x.rounding
	sign := x.Sign() * y.Sign()

	if x.IsNaN() || y.IsNaN() {
		return newNaN(prec, rounding)
	}
	if x.IsZero() && y.IsZero() {
		return newZero(sign < 0, prec, rounding)
	}
	if x.IsInf() || y.IsInf() {
		if x.IsZero() || y.IsZero() {
			return newNaN(prec, rounding)
		}
		return newInf(sign < 0, prec, rounding)
	}
	if x.IsZero() || y.IsZero() {
		return newZero(sign < 0, prec, rounding)
	}

	sig := new(big.Int).Mul(x.significand, y.significand)
	exponent := x.exponent + y.exponent
	// A product of two bitlen(a) and bitlen(b)-bit significands has either
	// bitlen(a)+bitlen(b)-1 or bitlen(a)+bitlen(b) bits; detect which and
	// correct the exponent (spec §4.4).
	expectedLen := bitLen(x) + bitLen(y) - 1
	if sig.BitLen() > expectedLen {
		exponent++
	}
	return newNormal(sign < 0, sig, exponent, prec, rounding)
}
