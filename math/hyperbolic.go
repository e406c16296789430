package math

import (
	stdmath "math"

	"github.com/aurelian-io/bigfloat"
)

// trisectionCount picks k = ceil(5 * ceil(ln2 * ln(precision))) reduction
// steps, offset for the argument's own binary magnitude, so that x/3**k
// is small enough for the Taylor series to converge in a handful of terms
// (spec §4.11).
func trisectionCount(x *bigfloat.Float, prec uint) int {
	lp := stdmath.Log(float64(prec))
	if lp < 1 {
		lp = 1
	}
	k := 5 * int(stdmath.Ceil(stdmath.Log(2)*lp))
	if x.IsNormal() {
		e := x.Exponent()
		if e > 0 {
			k += int(e)
		}
	}
	if k < 1 {
		k = 1
	}
	return k
}

// pow3 returns 3**k as a Float at the given precision.
func pow3(k int, prec uint) *bigfloat.Float {
	three := bigfloat.NewUint64(3, prec, bigfloat.NEAREST)
	result := bigfloat.NewUint64(1, prec, bigfloat.NEAREST)
	for i := 0; i < k; i++ {
		result = result.Mul(three)
	}
	return result
}

// sinhSeries accumulates sinh(u) = u + u**3/3! + u**5/5! + ... for a
// small u (post-trisection-reduction), stopping per the shared
// convergence rule (spec §4.11).
func sinhSeries(u *bigfloat.Float, workPrec uint) *bigfloat.Float {
	return oddFactorialSeries(u, u.Mul(u), workPrec)
}

// coshSeries accumulates cosh(u) = 1 + u**2/2! + u**4/4! + ... .
func coshSeries(u *bigfloat.Float, workPrec uint) *bigfloat.Float {
	return evenFactorialSeries(u.Mul(u), workPrec)
}

// oddFactorialSeries accumulates u + u**3/3! + u**5/5! + ..., where u2 is
// either u*u (for sinh) or -(u*u) (for sin, producing the alternating
// series u - u**3/3! + u**5/5! - ... from the same loop shape).
func oddFactorialSeries(u, u2 *bigfloat.Float, workPrec uint) *bigfloat.Float {
	sum := u
	term := u
	fact := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	n := uint64(1)
	for {
		term = term.Mul(u2)
		n++
		fact = fact.Mul(bigfloat.NewUint64(n, workPrec, bigfloat.NEAREST))
		n++
		fact = fact.Mul(bigfloat.NewUint64(n, workPrec, bigfloat.NEAREST))
		contribution := term.Div(fact)
		sum = sum.Add(contribution)
		if converged(contribution, workPrec) {
			return sum
		}
	}
}

// evenFactorialSeries accumulates 1 + u2/2! + u2**2/4! + ..., where u2 is
// u*u; only cosh uses it (cos goes through trisectSinCore instead).
func evenFactorialSeries(u2 *bigfloat.Float, workPrec uint) *bigfloat.Float {
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	sum := one
	term := one
	fact := one
	n := uint64(0)
	for {
		term = term.Mul(u2)
		n++
		fact = fact.Mul(bigfloat.NewUint64(n, workPrec, bigfloat.NEAREST))
		n++
		fact = fact.Mul(bigfloat.NewUint64(n, workPrec, bigfloat.NEAREST))
		contribution := term.Div(fact)
		sum = sum.Add(contribution)
		if converged(contribution, workPrec) {
			return sum
		}
	}
}

// Sinh returns the hyperbolic sine of x (spec §4.11): Taylor series after
// trisection reduction, reversed via sinh(3u) = sinh(u)*(3+4*sinh(u)**2).
func Sinh(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}
	if x.IsInf() {
		return bigfloat.Inf(x.Signbit(), prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	k := trisectionCount(x, workPrec)
	xw := x.WithPrecision(workPrec)
	u := xw.Div(pow3(k, workPrec))

	v := sinhSeries(u, workPrec)
	three := bigfloat.NewUint64(3, workPrec, bigfloat.NEAREST)
	four := bigfloat.NewUint64(4, workPrec, bigfloat.NEAREST)
	for i := 0; i < k; i++ {
		v = v.Mul(three.Add(four.Mul(v).Mul(v)))
	}
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Cosh returns the hyperbolic cosine of x (spec §4.11), reversed via
// cosh(3u) = cosh(u)*(4*cosh(u)**2-3).
func Cosh(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsInf() {
		return bigfloat.Inf(false, prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.NewUint64(1, prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	k := trisectionCount(x, workPrec)
	xw := x.WithPrecision(workPrec)
	u := xw.Div(pow3(k, workPrec))

	v := coshSeries(u, workPrec)
	three := bigfloat.NewUint64(3, workPrec, bigfloat.NEAREST)
	four := bigfloat.NewUint64(4, workPrec, bigfloat.NEAREST)
	for i := 0; i < k; i++ {
		v = v.Mul(four.Mul(v).Mul(v).Sub(three))
	}
	return v.WithPrecision(prec).WithRounding(rounding)
}

// Tanh returns the hyperbolic tangent of x, via
// tanh(x) = (e**2x - 1)/(e**2x + 1) (spec §4.11).
func Tanh(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}
	if x.IsInf() {
		return bigfloat.NewInt64(int64(x.Sign()), prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	two := bigfloat.NewUint64(2, workPrec, bigfloat.NEAREST)
	e2x := Exp(x.WithPrecision(workPrec).Mul(two), workPrec, bigfloat.NEAREST)
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	return e2x.Sub(one).Div(e2x.Add(one)).WithPrecision(prec).WithRounding(rounding)
}

// Asinh returns the inverse hyperbolic sine of x, via
// ln(x + sqrt(x**2 + 1)) (spec §4.11).
func Asinh(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}
	if x.IsInf() {
		return x.Clone().WithPrecision(prec).WithRounding(rounding)
	}
	workPrec := prec + guardDigits(prec)
	xw := x.WithPrecision(workPrec)
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	inner := xw.Mul(xw).Add(one).Sqrt()
	return Ln(xw.Add(inner), prec, rounding)
}

// Acosh returns the inverse hyperbolic cosine of x (domain x >= 1), via
// ln(x + sqrt(x**2 - 1)) (spec §4.11).
func Acosh(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	one0 := bigfloat.NewUint64(1, x.Precision(), bigfloat.NEAREST)
	if x.Less(one0) {
		return bigfloat.NaN(prec, rounding)
	}
	if x.Equal(one0) {
		return bigfloat.Zero(false, prec, rounding)
	}
	if x.IsInf() {
		return bigfloat.Inf(false, prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	xw := x.WithPrecision(workPrec)
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	inner := xw.Mul(xw).Sub(one).Sqrt()
	return Ln(xw.Add(inner), prec, rounding)
}

// Atanh returns the inverse hyperbolic tangent of x (domain |x| < 1), via
// 0.5*ln((1+x)/(1-x)) (spec §4.11).
func Atanh(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}
	one0 := bigfloat.NewUint64(1, x.Precision(), bigfloat.NEAREST)
	if x.Abs().GreaterEqual(one0) {
		return bigfloat.NaN(prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	xw := x.WithPrecision(workPrec)
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	ratio := one.Add(xw).Div(one.Sub(xw))
	ln := Ln(ratio, workPrec, bigfloat.NEAREST)
	return ln.Ldexp(-1).WithPrecision(prec).WithRounding(rounding)
}
