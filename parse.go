package bigfloat

import (
	"math/big"
	"strconv"
)

// Parse converts a decimal literal to a Float at the given precision and
// rounding mode (0 and the zero RoundingMode select the process
// defaults). Malformed input yields NaN rather than an error (spec §4.12,
// §6, §7): "[+-]? digits (. digits)? ([eE] [+-]? digits)?".
func Parse(s string, prec uint, rounding RoundingMode) *Float {
	neg, digits, decExp, ok := scanDecimalLiteral(s)
	if !ok {
		return newNaN(prec, rounding)
	}
	prec = resolvePrec(prec)

	sig := new(big.Int)
	sig.SetString(digits, 10)
	if sig.Sign() == 0 {
		return newZero(neg, prec, rounding)
	}

	if decExp >= 0 {
		if decExp > 0 {
			sig.Mul(sig, pow10(uint(decExp)))
		}
		return NewBigInt(sig, neg, prec, rounding)
	}

	// decExp < 0: form sig << bitLimit and divide by 10**(-decExp),
	// keeping the remainder to decide the final rounding bump (spec
	// §4.12).
	denom := pow10(uint(-decExp))
	precBits := WorkingWidth(prec)
	guard := precBits / 2
	if guard < 20 {
		guard = 20
	}
	denomBits := uint(denom.BitLen())
	bitLimit := precBits + guard
	if alt := denomBits + precBits + guard; alt > bitLimit {
		bitLimit = alt
	}

	scaled := new(big.Int).Lsh(sig, bitLimit)
	q, r := new(big.Int).QuoRem(scaled, denom, new(big.Int))
	if bumpQuotient(rounding, neg, r, denom) {
		q.Add(q, one)
	}
	if q.Sign() == 0 {
		return newZero(neg, prec, rounding)
	}

	exponent := int64(q.BitLen()-1) - int64(bitLimit)
	return newNormal(neg, q, exponent, prec, rounding)
}

// bumpQuotient decides whether to round the parser's truncated quotient up
// by one, given the remainder of the division by denom and the target
// rounding mode (spec §4.12, using the same per-mode rule as §4.1).
func bumpQuotient(mode RoundingMode, neg bool, r, denom *big.Int) bool {
	if r.Sign() == 0 {
		return false
	}
	switch mode {
	case NEAREST:
		twice := new(big.Int).Lsh(r, 1)
		return twice.Cmp(denom) >= 0
	case UP:
		return !neg
	case DOWN:
		return neg
	default: // ZERO
		return false
	}
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanDecimalLiteral hand-scans spec §6's grammar:
// [+-]? digits (. digits)? ([eE] [+-]? digits)?
// returning the sign, the concatenated integer+fraction digit string, and
// the effective base-10 exponent (given exponent - fraction digit count).
func scanDecimalLiteral(s string) (neg bool, digits string, decExp int, ok bool) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	intStart := i
	for i < n && isASCIIDigit(s[i]) {
		i++
	}
	intDigits := s[intStart:i]

	var fracDigits string
	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && isASCIIDigit(s[i]) {
			i++
		}
		fracDigits = s[fracStart:i]
	}

	if len(intDigits) == 0 && len(fracDigits) == 0 {
		return false, "", 0, false
	}

	givenExp := 0
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		expSign := 1
		if i < n && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				expSign = -1
			}
			i++
		}
		expStart := i
		for i < n && isASCIIDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false, "", 0, false
		}
		v, err := strconv.Atoi(s[expStart:i])
		if err != nil {
			return false, "", 0, false
		}
		givenExp = expSign * v
	}

	if i != n {
		return false, "", 0, false
	}

	digits = intDigits + fracDigits
	if digits == "" {
		digits = "0"
	}
	decExp = givenExp - len(fracDigits)
	return neg, digits, decExp, true
}
