package bigfloat

import (
	"math"
	"math/big"
)

// RoundingMode determines how a Float's significand is rounded down to its
// working binary width. See WorkingWidth and roundToPrecision.
type RoundingMode byte

// Supported rounding modes (spec §3, §4.1).
const (
	// NEAREST rounds to the nearest representable value; ties (the first
	// dropped bit set, and no other behavior requested) round up, i.e.
	// round-half-up on the binary significand, not round-half-to-even.
	NEAREST RoundingMode = iota
	// UP rounds the magnitude up for positive values (toward +Inf).
	UP
	// DOWN rounds the magnitude up for negative values (toward -Inf).
	DOWN
	// ZERO truncates: the magnitude is never rounded up.
	ZERO
)

func (m RoundingMode) String() string {
	switch m {
	case NEAREST:
		return "NEAREST"
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case ZERO:
		return "ZERO"
	default:
		return "RoundingMode(?)"
	}
}

// special identifies which of the four IEEE-754-style states a Float is in.
type special uint8

const (
	normalValue special = iota
	zeroValue
	infValue
	nanValue
)

// bitLenStale marks a Float's cached bit length as needing recomputation.
// Zero, infinite and NaN values keep this marker, as does the mantissa
// Frexp returns; bitLen recomputes the length on first use.
const bitLenStale = -1

// Float is an immutable arbitrary-precision binary floating-point number:
// sign * significand * 2**(exponent - bitlen(significand) + 1).
//
// The zero Float{} is not a valid value (it has no significand); always
// build Floats through a New* constructor, Parse, or another Float's
// methods.
type Float struct {
	sign        int8 // +1 or -1; meaningless precision-wise but always set
	significand *big.Int
	exponent    int64
	precision   uint32
	rounding    RoundingMode
	special     special
	bitLen      int // cached bit length of significand, or bitLenStale
}

// Sign returns -1 if x is negative (including -0 and -Inf), +1 otherwise.
// NaN always reports +1, by convention (spec §3 invariant 3).
func (x *Float) Sign() int {
	if x.sign < 0 {
		return -1
	}
	return 1
}

// Signbit reports whether x carries the negative sign, regardless of
// whether x is zero, infinite, finite, or (by convention) NaN.
func (x *Float) Signbit() bool {
	return x.sign < 0
}

// Precision returns x's working decimal precision in fraction digits.
func (x *Float) Precision() uint {
	return uint(x.precision)
}

// Rounding returns x's rounding mode.
func (x *Float) Rounding() RoundingMode {
	return x.rounding
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool { return x.special == zeroValue }

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool { return x.special == infValue }

// IsNaN reports whether x is NaN.
func (x *Float) IsNaN() bool { return x.special == nanValue }

// IsNormal reports whether x is a finite, nonzero value.
func (x *Float) IsNormal() bool { return x.special == normalValue }

// Exponent returns the binary exponent of x's leading significand bit. It
// is only meaningful when x IsNormal.
func (x *Float) Exponent() int64 { return x.exponent }

// Significand returns a copy of x's non-negative significand. It is only
// meaningful when x IsNormal.
func (x *Float) Significand() *big.Int {
	if x.significand == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x.significand)
}

// alloc returns a freshly allocated Float carrying prec/rounding, ready for
// a constructor or operation to populate. Never returned to a caller
// without first having its special/significand/exponent set.
func alloc(prec uint, rounding RoundingMode) *Float {
	return &Float{
		sign:      1,
		precision: uint32(resolvePrec(prec)),
		rounding:  resolveRounding(rounding),
		bitLen:    bitLenStale,
	}
}

// newZero returns a signed zero at the given precision/rounding.
func newZero(neg bool, prec uint, rounding RoundingMode) *Float {
	z := alloc(prec, rounding)
	z.special = zeroValue
	z.significand = new(big.Int)
	if neg {
		z.sign = -1
	}
	return z
}

// newInf returns a signed infinity at the given precision/rounding.
func newInf(neg bool, prec uint, rounding RoundingMode) *Float {
	z := alloc(prec, rounding)
	z.special = infValue
	if neg {
		z.sign = -1
	}
	return z
}

// newNaN returns a NaN carrying the precision/rounding it was asked for;
// it carries no other meaningful state (spec §3).
func newNaN(prec uint, rounding RoundingMode) *Float {
	z := alloc(prec, rounding)
	z.special = nanValue
	return z
}

// NaN returns a NaN value at the given precision and rounding mode (0 and
// the zero RoundingMode select the process defaults).
func NaN(prec uint, rounding RoundingMode) *Float {
	return newNaN(prec, rounding)
}

// Inf returns signed infinity at the given precision and rounding mode.
func Inf(neg bool, prec uint, rounding RoundingMode) *Float {
	return newInf(neg, prec, rounding)
}

// Zero returns a signed zero at the given precision and rounding mode.
func Zero(neg bool, prec uint, rounding RoundingMode) *Float {
	return newZero(neg, prec, rounding)
}

// newNormal builds a normalized, precision-rounded Float from a raw sign,
// non-negative significand and exponent (the exponent of the significand's
// leading bit). sig is taken over, not copied; callers must not reuse it.
func newNormal(neg bool, sig *big.Int, exponent int64, prec uint, rounding RoundingMode) *Float {
	z := alloc(prec, rounding)
	if neg {
		z.sign = -1
	}
	z.significand = sig
	z.exponent = exponent
	z.special = normalValue
	roundToPrecision(z)
	return z
}

// NewInt64 returns a new Float with the value of x, at the given precision
// and rounding mode (0 and the zero RoundingMode select the process
// defaults).
func NewInt64(x int64, prec uint, rounding RoundingMode) *Float {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	return NewBigInt(new(big.Int).SetUint64(u), neg, prec, rounding)
}

// NewUint64 returns a new Float with the value of x.
func NewUint64(x uint64, prec uint, rounding RoundingMode) *Float {
	return NewBigInt(new(big.Int).SetUint64(x), false, prec, rounding)
}

// NewBigInt returns a new Float with the value of x (negated if neg is
// true and x does not already encode its own sign via big.Int.Sign).
func NewBigInt(x *big.Int, neg bool, prec uint, rounding RoundingMode) *Float {
	if x.Sign() < 0 {
		neg = !neg
	}
	mag := new(big.Int).Abs(x)
	if mag.Sign() == 0 {
		return newZero(neg, prec, rounding)
	}
	bl := mag.BitLen()
	return newNormal(neg, mag, int64(bl-1), prec, rounding)
}

// NewFloat64 returns a new Float with the value of x. NaN and Inf convert
// to the corresponding Float special values.
func NewFloat64(x float64, prec uint, rounding RoundingMode) *Float {
	switch {
	case math.IsNaN(x):
		return newNaN(prec, rounding)
	case math.IsInf(x, 0):
		return newInf(x < 0, prec, rounding)
	case x == 0:
		return newZero(math.Signbit(x), prec, rounding)
	}
	neg := x < 0
	if neg {
		x = -x
	}
	// x = frac * 2**exp, with 0.5 <= frac < 1; frac*2**53 is a 53-bit integer.
	frac, exp := math.Frexp(x)
	mant := uint64(frac * (1 << 53))
	sig := new(big.Int).SetUint64(mant)
	return newNormal(neg, sig, int64(exp)-1, prec, rounding)
}

// Clone returns a copy of x with x's own precision and rounding mode. Since
// Float is immutable, Clone is rarely needed, but it gives callers an
// explicit way to detach from any aliasing concerns when interfacing with
// code that is not aware Floats never mutate.
func (x *Float) Clone() *Float {
	z := alloc(x.Precision(), x.rounding)
	z.sign = x.sign
	z.special = x.special
	z.exponent = x.exponent
	z.bitLen = x.bitLen
	if x.significand != nil {
		z.significand = new(big.Int).Set(x.significand)
	} else {
		z.significand = new(big.Int)
	}
	return z
}

// WithPrecision returns x rounded to the given precision (0 keeps x's
// current precision), with x's rounding mode.
func (x *Float) WithPrecision(prec uint) *Float {
	if prec == 0 {
		prec = x.Precision()
	}
	if x.special != normalValue {
		z := x.Clone()
		z.precision = uint32(resolvePrec(prec))
		return z
	}
	z := alloc(prec, x.rounding)
	z.sign = x.sign
	z.special = normalValue
	z.significand = new(big.Int).Set(x.significand)
	z.exponent = x.exponent
	roundToPrecision(z)
	return z
}

// WithRounding returns x with a different rounding mode. It does not
// re-round x's existing significand; the new mode applies to subsequent
// operations.
func (x *Float) WithRounding(rounding RoundingMode) *Float {
	z := x.Clone()
	z.rounding = resolveRounding(rounding)
	return z
}
