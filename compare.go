package bigfloat

import "math/big"

// Equal reports whether x and y represent the same value. NaN is unequal
// to everything, including itself; ±0 compare equal regardless of sign;
// same-signed infinities compare equal (spec §4.13).
func (x *Float) Equal(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	if x.IsZero() && y.IsZero() {
		return true
	}
	if x.IsInf() || y.IsInf() {
		return x.IsInf() && y.IsInf() && x.Signbit() == y.Signbit()
	}
	if x.IsZero() != y.IsZero() {
		return false
	}
	return !x.Less(y) && !y.Less(x)
}

// NotEqual is the negation of Equal: it reports true whenever either
// operand is NaN, since NaN compares unequal to everything (spec §7).
func (x *Float) NotEqual(y *Float) bool {
	return !x.Equal(y)
}

// Less reports whether x < y. Any NaN operand makes Less report false
// (spec §4.13).
func (x *Float) Less(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	if x.Sign() != y.Sign() {
		return x.Sign() < y.Sign()
	}
	neg := x.Sign() < 0
	if x.IsInf() && y.IsInf() {
		return false // same-sign infinities compare equal
	}
	if x.IsInf() {
		return neg // -Inf < anything finite; +Inf < nothing
	}
	if y.IsInf() {
		return !neg // anything finite < +Inf; nothing < -Inf
	}
	if x.IsZero() && y.IsZero() {
		return false
	}
	if x.IsZero() {
		return !neg // 0 < positive y; y is negative means 0 is not < y
	}
	if y.IsZero() {
		return neg // negative x < 0
	}

	ea := effectiveExponent(x)
	eb := effectiveExponent(y)
	common := ea
	if eb < common {
		common = eb
	}
	xs := new(big.Int).Set(x.significand)
	ys := new(big.Int).Set(y.significand)
	if ea > common {
		xs.Lsh(xs, uint(ea-common))
	}
	if eb > common {
		ys.Lsh(ys, uint(eb-common))
	}
	cmpMag := xs.Cmp(ys)
	if neg {
		return cmpMag > 0
	}
	return cmpMag < 0
}

// LessEqual reports whether x <= y.
func (x *Float) LessEqual(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.Less(y) || x.Equal(y)
}

// Greater reports whether x > y.
func (x *Float) Greater(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return y.Less(x)
}

// GreaterEqual reports whether x >= y.
func (x *Float) GreaterEqual(y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return y.Less(x) || x.Equal(y)
}

// Cmp returns -1, 0 or +1 depending on whether x < y, x == y, or x > y. Like
// every other domain-sensitive operation in this package it never panics
// (spec §7): NaN is defined to compare less than any non-NaN value, and a
// NaN compares equal to a NaN, following the same total order as Go's
// cmp.Compare for floating-point types. Callers that want NaN treated as
// incomparable instead should check IsNaN first, or use Less/Equal/Greater
// which report false for any NaN operand.
func (x *Float) Cmp(y *Float) int {
	xNaN, yNaN := x.IsNaN(), y.IsNaN()
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return -1
	case yNaN:
		return 1
	case x.Equal(y):
		return 0
	case x.Less(y):
		return -1
	default:
		return 1
	}
}

// CmpAbs compares |x| and |y| the same way Cmp compares x and y.
func (x *Float) CmpAbs(y *Float) int {
	return x.Abs().Cmp(y.Abs())
}
