package bigfloat

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// String returns x's canonical scientific representation: "[-]d.ddd...e±EE",
// "nan", "inf"/"-inf", or "0"/"-0" (spec §6). It uses precision+1
// significant digits, matching the round-trip property of spec §8.1.
func (x *Float) String() string {
	switch x.special {
	case nanValue:
		return "nan"
	case infValue:
		if x.Signbit() {
			return "-inf"
		}
		return "inf"
	case zeroValue:
		if x.Signbit() {
			return "-0"
		}
		return "0"
	}
	digits, exp10 := x.decimalSignificantDigits(x.Precision() + 1)
	return sciString(x.Signbit(), digits, exp10)
}

// sciString assembles "[-]d.ddde±EE" from a significant-digit string and
// its decimal exponent (exp10: the place value of digits[0]).
func sciString(neg bool, digits string, exp10 int64) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if exp10 >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatInt(exp10, 10))
	return b.String()
}

// ToExponential renders x in scientific notation with exactly n digits
// after the decimal point (n+1 significant digits), mirroring the
// conventions of mainstream languages' Number.prototype.toExponential
// (spec §4.12, §6).
func (x *Float) ToExponential(n uint) string {
	switch x.special {
	case nanValue:
		return "nan"
	case infValue:
		if x.Signbit() {
			return "-inf"
		}
		return "inf"
	case zeroValue:
		digits := "0" + strings.Repeat("0", int(n))
		return sciString(x.Signbit(), digits, 0)
	}
	digits, exp10 := x.decimalSignificantDigits(n + 1)
	return sciString(x.Signbit(), digits, exp10)
}

// ToFixed renders x as a fixed-point decimal string with exactly n digits
// after the decimal point, rounding and propagating carry into the
// integer part as needed (spec §4.12, §6).
func (x *Float) ToFixed(n uint) string {
	switch x.special {
	case nanValue:
		return "nan"
	case infValue:
		if x.Signbit() {
			return "-inf"
		}
		return "inf"
	case zeroValue:
		if n == 0 {
			if x.Signbit() {
				return "-0"
			}
			return "0"
		}
		s := "0." + strings.Repeat("0", int(n))
		if x.Signbit() {
			return "-" + s
		}
		return s
	}

	// Learn x's decimal exponent first from a single significant digit,
	// then re-derive exactly enough digits to cover every place down to
	// 10**-n. When the one-digit rounding carried into a new leading place
	// (9.6 -> 1e+1) and the wider rounding did not, the count was one too
	// many and is redone from the exponent the wider rounding reports.
	_, exp10 := x.decimalSignificantDigits(1)
	count := exp10 + 1 + int64(n)
	if count < 1 {
		count = 1
	}
	digits, got := x.decimalSignificantDigits(uint(count))
	if got < exp10 {
		digits, got = x.decimalSignificantDigits(uint(got + 1 + int64(n)))
	}
	exp10 = got

	highPlace := exp10
	if highPlace < 0 {
		highPlace = 0
	}
	intDigits := placesOf(digits, exp10, highPlace, 0)
	var b strings.Builder
	if x.Signbit() {
		b.WriteByte('-')
	}
	b.WriteString(intDigits)
	if n > 0 {
		b.WriteByte('.')
		b.WriteString(placesOf(digits, exp10, -1, -int64(n)))
	}
	return b.String()
}

// ToPrecision renders x with n significant digits, choosing scientific or
// fixed form the way mainstream languages' toPrecision does: scientific
// when the decimal exponent is < -6 or >= n, else fixed with
// n-(exp10+1) fraction digits (spec §4.12).
func (x *Float) ToPrecision(n uint) string {
	if n == 0 {
		n = 1
	}
	switch x.special {
	case nanValue:
		return "nan"
	case infValue:
		if x.Signbit() {
			return "-inf"
		}
		return "inf"
	case zeroValue:
		return x.ToFixed(n - 1)
	}
	digits, exp10 := x.decimalSignificantDigits(n)
	if exp10 < -6 || exp10 >= int64(n) {
		return sciString(x.Signbit(), digits, exp10)
	}
	fracDigits := int64(n) - (exp10 + 1)
	if fracDigits < 0 {
		fracDigits = 0
	}
	return x.ToFixed(uint(fracDigits))
}

// ToStringBase renders x's significand and exponent directly in base 2 or
// base 16, as "[-]significand·2^exponent" (spec §4.12: "a straightforward
// stringification of the significand with `· 2^exponent` suffix").
func (x *Float) ToStringBase(base int) string {
	switch x.special {
	case nanValue:
		return "nan"
	case infValue:
		if x.Signbit() {
			return "-inf"
		}
		return "inf"
	case zeroValue:
		if x.Signbit() {
			return "-0"
		}
		return "0"
	}
	var b strings.Builder
	if x.Signbit() {
		b.WriteByte('-')
	}
	b.WriteString(x.significand.Text(base))
	b.WriteString("·2^")
	b.WriteString(strconv.FormatInt(x.exponent, 10))
	return b.String()
}

// placesOf returns the decimal digits of sig (sig[i] has place value
// exp10-i) for place values from highPlace down to lowPlace, inclusive,
// zero-filling any place not covered by sig.
func placesOf(sig string, exp10, highPlace, lowPlace int64) string {
	var b strings.Builder
	for place := highPlace; place >= lowPlace; place-- {
		idx := exp10 - place
		if idx < 0 || idx >= int64(len(sig)) {
			b.WriteByte('0')
		} else {
			b.WriteByte(sig[idx])
		}
	}
	return b.String()
}

// decimalSignificantDigits returns x's value rounded to n significant
// decimal digits (round-half-away-from-zero, independent of x's own
// rounding mode — spec §1, §4.12), as a digit string of length n together
// with the decimal exponent (place value) of its first digit. x must be
// IsNormal.
func (x *Float) decimalSignificantDigits(n uint) (digits string, exp10 int64) {
	if n == 0 {
		n = 1
	}
	sig := x.significand
	bl := int64(bitLen(x))
	denomShift := bl - 1 - x.exponent // fracBits

	var intPart, fracNumerator *big.Int
	var fracBitsPos uint
	if denomShift <= 0 {
		intPart = new(big.Int).Lsh(sig, uint(-denomShift))
		fracNumerator = new(big.Int)
	} else {
		fracBitsPos = uint(denomShift)
		mask := new(big.Int).Sub(new(big.Int).Lsh(one, fracBitsPos), one)
		fracNumerator = new(big.Int).And(sig, mask)
		intPart = new(big.Int).Rsh(sig, fracBitsPos)
	}

	intStr := intPart.String()
	var fracStr string
	if fracBitsPos > 0 {
		fracDigitsNeeded := uint(math.Ceil(float64(fracBitsPos)*log10Of2)) + n + 5
		denom := new(big.Int).Lsh(one, fracBitsPos)
		scaled := new(big.Int).Mul(fracNumerator, pow10(fracDigitsNeeded))
		q, r := new(big.Int).QuoRem(scaled, denom, new(big.Int))
		if twice := new(big.Int).Lsh(r, 1); twice.Cmp(denom) >= 0 {
			q.Add(q, one)
		}
		fracStr = q.String()
		if uint(len(fracStr)) < fracDigitsNeeded {
			fracStr = strings.Repeat("0", int(fracDigitsNeeded)-len(fracStr)) + fracStr
		}
	}

	pointPos := int64(len(intStr))
	full := intStr + fracStr
	firstSig := 0
	for firstSig < len(full) && full[firstSig] == '0' {
		firstSig++
	}
	if firstSig == len(full) {
		return strings.Repeat("0", int(n)), 0
	}
	exp10 = pointPos - 1 - int64(firstSig)
	rounded, shift := roundSigDigits(full[firstSig:], int(n))
	return rounded, exp10 + int64(shift)
}

// log10Of2 is log10(2), used to size the fractional-digit scratch buffer.
const log10Of2 = 0.30102999566398119521373889472449302676818988146210854131

// roundSigDigits rounds a (non-empty, leading-zero-free) decimal digit
// string to exactly n significant digits using round-half-up, reporting
// +1 in expShift if rounding carried out to a new leading digit (e.g.
// "999" -> "1000", kept as "1" followed by zeros).
func roundSigDigits(digits string, n int) (result string, expShift int) {
	if len(digits) < n {
		return digits + strings.Repeat("0", n-len(digits)), 0
	}
	if len(digits) == n {
		return digits, 0
	}
	keep := digits[:n]
	if digits[n] < '5' {
		return keep, 0
	}
	bi := new(big.Int)
	bi.SetString(keep, 10)
	bi.Add(bi, one)
	s := bi.String()
	if len(s) > n {
		return s[:n], 1
	}
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s, 0
}
