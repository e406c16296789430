package bigfloat

import (
	"math"
	"math/big"
)

// log2Of10 is log2(10), used to convert a decimal precision into the
// working binary width (spec §3, GLOSSARY "Working precision").
const log2Of10 = 3.321928094887362347870319429489390175864831393024580612054

// WorkingWidth returns the binary working width W = ceil((prec+1) * log2(10))
// for a decimal precision of prec fraction digits (spec §3, §4.1).
func WorkingWidth(prec uint) uint {
	if prec == 0 {
		prec = GetDefaultPrecision()
	}
	return uint(math.Ceil(float64(prec+1) * log2Of10))
}

// ulpExponent returns the exponent of a unit-in-last-place Float at the
// given decimal precision: significand = 1, exponent = -ceil(prec*log2(10))
// (GLOSSARY "ULP").
func ulpExponent(prec uint) int64 {
	return -int64(math.Ceil(float64(prec) * log2Of10))
}

// bitLen returns the cached bit length of z.significand, recomputing and
// refreshing the cache if it is stale.
func bitLen(z *Float) int {
	if z.bitLen == bitLenStale || z.bitLen < 0 {
		z.bitLen = z.significand.BitLen()
	}
	return z.bitLen
}

// invalidateBitLen marks z's bit length cache as needing recomputation.
// Only ever called on a Float under construction, before it is returned
// to a caller (spec §3 "Numbers are never mutated across a public
// boundary; internal helpers may mutate freshly constructed numbers").
func invalidateBitLen(z *Float) {
	z.bitLen = bitLenStale
}

// roundToPrecision is the central routine of spec §4.1: it rounds z's
// significand down to z's working binary width in place, where "in place"
// means on a Float that has not yet escaped its constructor. z.significand,
// z.exponent and z.sign must already be set; z.special is set to zeroValue
// or normalValue on return.
func roundToPrecision(z *Float) {
	if z.significand.Sign() == 0 {
		z.special = zeroValue
		z.bitLen = 0
		return
	}

	w := WorkingWidth(z.Precision())
	b := uint(bitLen(z))
	if b <= w {
		z.special = normalValue
		return
	}

	d := b - w
	mask := new(big.Int).Sub(new(big.Int).Lsh(one, d), one)
	dropped := new(big.Int).And(z.significand, mask)
	z.significand.Rsh(z.significand, d)

	if roundUp(z.rounding, z.sign < 0, dropped, d) {
		z.significand.Add(z.significand, one)
		if z.significand.BitLen() == int(w)+1 {
			z.significand.Rsh(z.significand, 1)
			z.exponent++
		}
	}
	invalidateBitLen(z)
	z.bitLen = z.significand.BitLen()

	if z.significand.Sign() == 0 {
		z.special = zeroValue
	} else {
		z.special = normalValue
	}
}

// roundUp implements the table in spec §4.1: whether to round the dropped
// magnitude up, given the mode, the operand's sign, the dropped low bits
// and the number of bits dropped (d).
func roundUp(mode RoundingMode, neg bool, dropped *big.Int, d uint) bool {
	if dropped.Sign() == 0 {
		return false
	}
	switch mode {
	case NEAREST:
		// bit (d-1) of the original significand is the top dropped bit.
		return dropped.Bit(int(d)-1) == 1
	case UP:
		return !neg
	case DOWN:
		return neg
	case ZERO:
		return false
	default:
		return false
	}
}

var one = big.NewInt(1)
