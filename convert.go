package bigfloat

import (
	"math"
	"math/big"
)

// ToFloat64 converts x to the nearest host double, clamping to ±Inf or ±0
// at the edges rather than failing (spec §7: "toNumber clamps... at the
// edges").
func (x *Float) ToFloat64() float64 {
	switch x.special {
	case nanValue:
		return math.NaN()
	case infValue:
		if x.Signbit() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case zeroValue:
		if x.Signbit() {
			return math.Copysign(0, -1)
		}
		return 0
	}
	f := toHostFloat(x)
	if math.IsInf(f, 0) {
		return f
	}
	if f == 0 && x.significand.Sign() != 0 {
		// underflowed to zero: preserve sign
		if x.Signbit() {
			return math.Copysign(0, -1)
		}
		return 0
	}
	return f
}

// ToBigInt returns the truncated (toward zero) integer value of x as a
// math/big.Int. It is the one conversion the spec does not allow to
// degrade gracefully: NaN and Inf return ErrNotFinite (spec §7).
func (x *Float) ToBigInt() (*big.Int, error) {
	if x.IsNaN() {
		return nil, errConversion("ToBigInt", x)
	}
	if x.IsInf() {
		return nil, errConversion("ToBigInt", x)
	}
	if x.IsZero() {
		return new(big.Int), nil
	}
	t := x.Trunc()
	fb := fracBits(t)
	var mag *big.Int
	if fb <= 0 {
		mag = new(big.Int).Lsh(t.significand, uint(-fb))
	} else {
		mag = new(big.Int).Rsh(t.significand, uint(fb))
	}
	if t.Signbit() {
		mag.Neg(mag)
	}
	return mag, nil
}

// ToBigRat returns x as an exact math/big.Rat. NaN and Inf report
// ErrNotFinite, like ToBigInt.
func (x *Float) ToBigRat() (*big.Rat, error) {
	if !x.IsNormal() {
		if x.IsZero() {
			return new(big.Rat), nil
		}
		return nil, errConversion("ToBigRat", x)
	}
	num := new(big.Int).Set(x.significand)
	e := x.exponent - int64(bitLen(x)) + 1
	r := new(big.Rat).SetInt(num)
	if e >= 0 {
		r.Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(one, uint(e))))
	} else {
		r.Quo(r, new(big.Rat).SetInt(new(big.Int).Lsh(one, uint(-e))))
	}
	if x.Signbit() {
		r.Neg(r)
	}
	return r, nil
}
