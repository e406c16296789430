package math

import (
	stdmath "math"
	"math/big"

	"github.com/aurelian-io/bigfloat"
)

// cachedConst holds a lazily-widened constant, following the same
// unsynchronized cache-growth pattern db47h/decimal's math package uses
// for pi/log10: a package-global holds the highest-precision value
// computed so far, and is recomputed only when a caller asks for more
// digits than it currently has.
type cachedConst struct {
	v    *bigfloat.Float
	prec uint
}

// widen returns c's value at least prec digits wide, recomputing via
// compute if the cache is too narrow.
func (c *cachedConst) widen(prec uint, compute func(workPrec uint) *bigfloat.Float) *bigfloat.Float {
	if c.v == nil || c.prec < prec {
		c.v = compute(prec)
		c.prec = prec
	}
	return c.v
}

var (
	piCache    cachedConst
	eCache     cachedConst
	ln2Cache   cachedConst
	ln5Cache   cachedConst
	ln10Cache  cachedConst
	sqrt2Cache cachedConst
)

// Pi returns π at the given precision (spec §4.7), computed via binary
// splitting on the Chudnovsky series and cached at the widest precision
// requested so far.
func Pi(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	v := piCache.widen(prec, computePi)
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Chudnovsky series constants (spec §4.7).
const (
	chudA = 13591409
	chudB = 545140134
	chudC = 640320
)

// chudC3Over24 is 640320**3/24, the denominator scale factor shared by
// every term of the Chudnovsky series.
var chudC3Over24 = func() *big.Int {
	c3 := new(big.Int).Exp(big.NewInt(chudC), big.NewInt(3), nil)
	return new(big.Int).Div(c3, big.NewInt(24))
}()

// chudC3Over24Float is the base of the term-count estimate
// (spec §4.7: "k = ceil(precision*ln10/ln 151931373056000)"). It is not
// 640320**3/24 but 53360**3 = 640320**3/1728: each series term adds
// log10 of it, about 14.18, decimal digits.
const chudC3Over24Float = 151931373056000

func piAtomic(a int64) splitTerm {
	if a == 0 {
		return splitTerm{P: big.NewInt(chudA), Q: big.NewInt(1), R: big.NewInt(1)}
	}
	local := new(big.Int).Mul(big.NewInt(6*a-5), big.NewInt(2*a-1))
	local.Mul(local, big.NewInt(6*a-1))
	local.Neg(local)
	q := new(big.Int).Exp(big.NewInt(a), big.NewInt(3), nil)
	q.Mul(q, chudC3Over24)
	coeff := new(big.Int).Add(big.NewInt(chudA), new(big.Int).Mul(big.NewInt(chudB), big.NewInt(a)))
	p := new(big.Int).Mul(local, coeff)
	return splitTerm{P: p, Q: q, R: local}
}

// computePi computes π to workPrec decimal digits by evaluating the
// Chudnovsky binary-split recursion over enough terms, then forming
// pi = Q*C**1.5/(12*T), with C**1.5 = C*sqrt(C) taken from this package's
// own Sqrt (spec §4.7: "Final value is P/Q ... followed by a sqrt for π").
func computePi(workPrec uint) *bigfloat.Float {
	prec := workPrec + guardDigits(workPrec)
	ln10 := stdmath.Log(10)
	n := int64(stdmath.Ceil(float64(prec)*ln10/stdmath.Log(chudC3Over24Float))) + 2
	split := binarySplit(0, n, piAtomic)

	q := fromBigInt(split.Q, prec)
	t := fromBigInt(split.P, prec)
	c := bigfloat.NewUint64(chudC, prec, bigfloat.NEAREST)
	sqrtC := c.Sqrt()
	twelve := bigfloat.NewUint64(12, prec, bigfloat.NEAREST)

	numerator := q.Mul(c).Mul(sqrtC)
	denominator := t.Mul(twelve)
	return numerator.Div(denominator).WithPrecision(workPrec)
}

// E returns Euler's number at the given precision (spec §4.7), via
// binary splitting on the factorial series 1/k!.
func E(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	v := eCache.widen(prec, computeE)
	return v.WithPrecision(prec).WithRounding(rounding)
}

func eAtomic(a int64) splitTerm {
	if a == 0 {
		return splitTerm{P: big.NewInt(1), Q: big.NewInt(1), R: big.NewInt(1)}
	}
	return splitTerm{P: big.NewInt(1), Q: big.NewInt(a), R: big.NewInt(1)}
}

// stirlingTermCount solves k*(ln k - 1) + 0.5*ln(2*pi*k) = (prec+1)*ln10
// for k by Newton iteration (spec §4.7), returning a generous integer
// term count for the factorial series to converge to prec digits.
func stirlingTermCount(prec uint) int64 {
	target := float64(prec+1) * stdmath.Log(10)
	k := target / stdmath.Log(target+2) // initial guess
	if k < 2 {
		k = 2
	}
	for i := 0; i < 60; i++ {
		f := k*(stdmath.Log(k)-1) + 0.5*stdmath.Log(2*stdmath.Pi*k) - target
		fp := stdmath.Log(k) + 0.5/k
		if fp == 0 {
			break
		}
		next := k - f/fp
		if next < 1 {
			next = 1
		}
		if stdmath.Abs(next-k) < 0.5 {
			k = next
			break
		}
		k = next
	}
	return int64(stdmath.Ceil(k)) + 10
}

func computeE(workPrec uint) *bigfloat.Float {
	prec := workPrec + guardDigits(workPrec)
	n := stirlingTermCount(prec)
	split := binarySplit(0, n, eAtomic)
	q := fromBigInt(split.Q, prec)
	t := fromBigInt(split.P, prec)
	return t.Div(q).WithPrecision(workPrec)
}

// Ln2 returns ln(2) at the given precision, summed directly as
// 2*(z + z**3/3 + z**5/5 + ...) with z = 1/3. It does not go through Ln,
// because Ln itself uses ln(2) to reassemble its result.
func Ln2(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	v := ln2Cache.widen(prec, func(p uint) *bigfloat.Float {
		wp := p + guardDigits(p)
		z := bigfloat.NewUint64(3, wp, bigfloat.NEAREST).Inverse()
		z2 := z.Mul(z)
		sum, term := z, z
		for denom := uint64(3); ; denom += 2 {
			term = term.Mul(z2)
			contribution := term.Div(bigfloat.NewUint64(denom, wp, bigfloat.NEAREST))
			sum = sum.Add(contribution)
			if converged(contribution, wp) {
				break
			}
		}
		return sum.Ldexp(1).WithPrecision(p)
	})
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Ln5 returns ln(5) at the given precision, as Ln applied to 5.
func Ln5(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	v := ln5Cache.widen(prec, func(p uint) *bigfloat.Float {
		x := bigfloat.NewUint64(5, p+guardDigits(p), bigfloat.NEAREST)
		return Ln(x, p, bigfloat.NEAREST)
	})
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Ln10 returns ln(10), synthesized as ln(2)+ln(5) (spec §4.7).
func Ln10(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	v := ln10Cache.widen(prec, func(p uint) *bigfloat.Float {
		wp := p + guardDigits(p)
		return Ln2(wp, bigfloat.NEAREST).Add(Ln5(wp, bigfloat.NEAREST))
	})
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Sqrt2 returns sqrt(2) at the given precision (spec §4.7): "sqrt(2) at
// the requested precision", i.e. a direct call into the root package's
// own Sqrt.
func Sqrt2(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	v := sqrt2Cache.widen(prec, func(p uint) *bigfloat.Float {
		return bigfloat.NewUint64(2, p, bigfloat.NEAREST).Sqrt()
	})
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Epsilon returns 10**-prec at the given precision, implemented as
// 1/10**prec (spec §4.7).
func Epsilon(prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	p := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(prec)), nil)
	ten := bigfloat.NewBigInt(p, false, prec, bigfloat.NEAREST)
	return ten.Inverse().WithPrecision(prec).WithRounding(rounding)
}

// resolvePrec substitutes the process default when prec is 0, mirroring
// the root package's own resolvePrec (unexported there).
func resolvePrec(prec uint) uint {
	if prec == 0 {
		return bigfloat.GetDefaultPrecision()
	}
	return prec
}
