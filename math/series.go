package math

import (
	stdmath "math"
	"math/big"

	"github.com/aurelian-io/bigfloat"
)

// log2Of10 is log2(10), used the same way the root package uses it to turn
// a decimal precision into a binary bit budget for convergence checks.
const log2Of10 = 3.321928094887362347870319429489390175864831393024580612054

// guardDigits returns the number of extra decimal digits of working
// precision a series routine should carry above its target, covering
// accumulated rounding error in argument reduction and summation.
func guardDigits(prec uint) uint {
	g := prec/4 + 10
	return g
}

// converged reports whether term is small enough, relative to a series
// running at workPrec digits of working precision, that adding further
// terms would not move the accumulator: term is zero, or its binary
// exponent has fallen below -3.32*workPrec (spec §4.8, §4.11, applied
// uniformly to every Taylor-style loop in this package).
func converged(term *bigfloat.Float, workPrec uint) bool {
	if term.IsZero() {
		return true
	}
	threshold := -int64(stdmath.Ceil(float64(workPrec) * log2Of10))
	return term.Exponent() < threshold
}

// splitTerm is the atomic contribution of one index to a binary-split
// series (spec §4.7): P is the running weighted numerator of the partial
// sum, Q the running denominator, and R a running product of per-term
// numerator factors, carried forward so the next level up can combine
// P_left*Q_right + P_right*R_left without re-deriving it.
type splitTerm struct {
	P, Q, R *big.Int
}

// binarySplit implements spec §4.7's split(a, b) recursion: atomic(i)
// supplies the base case for a single index i (where b-a==1); combination
// for a wider range follows P = P_left*Q_right + P_right*R_left,
// Q = Q_left*Q_right, R = R_left*R_right.
func binarySplit(a, b int64, atomic func(i int64) splitTerm) splitTerm {
	if b-a == 1 {
		return atomic(a)
	}
	m := a + (b-a)/2
	left := binarySplit(a, m, atomic)
	right := binarySplit(m, b, atomic)
	p := new(big.Int).Add(
		new(big.Int).Mul(left.P, right.Q),
		new(big.Int).Mul(right.P, left.R),
	)
	q := new(big.Int).Mul(left.Q, right.Q)
	r := new(big.Int).Mul(left.R, right.R)
	return splitTerm{P: p, Q: q, R: r}
}

// fromBigInt wraps a *big.Int as a positive Float at the given working
// precision, with NEAREST rounding (the working precision internal to a
// series computation always rounds to nearest; the caller's requested
// mode is applied only once, at the very end).
func fromBigInt(v *big.Int, prec uint) *bigfloat.Float {
	return bigfloat.NewBigInt(new(big.Int).Set(v), false, prec, bigfloat.NEAREST)
}
