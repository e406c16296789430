package math

import (
	stdmath "math"

	"github.com/aurelian-io/bigfloat"
)

// Ln returns the natural logarithm of x (spec §4.8): x is split into
// m*2**e with m in [1, 2), reduced toward 1 by repeated square-rooting,
// expanded via the odd-power series 2*(z + z**3/3 + z**5/5 + ...) with
// z = (m-1)/(m+1), then reassembled with e*ln(2).
func Ln(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || x.Signbit() && !x.IsZero() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Inf(true, prec, rounding)
	}
	if x.IsInf() {
		return bigfloat.Inf(false, prec, rounding)
	}

	e := x.Exponent()
	m := rebase(x)

	mf := m.ToFloat64()
	var k int
	if mf > 1 {
		lm := stdmath.Log(mf)
		if lm > 0 {
			k = int(stdmath.Ceil(stdmath.Log2(lm / stdmath.Log(1.001))))
		}
	}
	if k < 0 {
		k = 0
	}

	workPrec := prec + uint(k) + guardDigits(prec)
	mw := m.WithPrecision(workPrec)
	for i := 0; i < k; i++ {
		mw = mw.Sqrt()
	}

	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	z := mw.Sub(one).Div(mw.Add(one))
	z2 := z.Mul(z)

	sum := z
	term := z
	denom := uint64(1)
	for {
		term = term.Mul(z2)
		denom += 2
		contribution := term.Div(bigfloat.NewUint64(denom, workPrec, bigfloat.NEAREST))
		sum = sum.Add(contribution)
		if converged(contribution, workPrec) {
			break
		}
	}

	lnm := sum.Ldexp(int64(k + 1))
	total := lnm.Add(Ln2(workPrec, bigfloat.NEAREST).Mul(bigfloat.NewInt64(e, workPrec, bigfloat.NEAREST)))
	return total.WithPrecision(prec).WithRounding(rounding)
}

// rebase returns x with its exponent reset to 0, so its value sits in
// [1, 2): the same "strip the binary exponent" trick Inverse and Sqrt use
// on their operands (spec §4.5, §4.6, §4.8).
func rebase(x *bigfloat.Float) *bigfloat.Float {
	// Frexp yields 0.5 <= m < 1 (math.Frexp convention); double it once to
	// land in [1, 2).
	m, _ := x.Frexp()
	return m.Ldexp(1)
}

// Log10 returns log base 10 of x, computed as Ln(x)/Ln(10).
func Log10(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || x.Signbit() && !x.IsZero() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Inf(true, prec, rounding)
	}
	if x.IsInf() {
		return bigfloat.Inf(false, prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	lnx := Ln(x, workPrec, bigfloat.NEAREST)
	return lnx.Div(Ln10(workPrec, bigfloat.NEAREST)).WithPrecision(prec).WithRounding(rounding)
}
