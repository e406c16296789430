package math

import "github.com/aurelian-io/bigfloat"

// reduceMod2Pi reduces a non-negative absX modulo 2*pi into [0, 2*pi),
// computing 2*pi at the caller's working precision (spec §4.11).
func reduceMod2Pi(absX *bigfloat.Float, workPrec uint) (r, twoPi *bigfloat.Float) {
	twoPi = Pi(workPrec, bigfloat.NEAREST).Ldexp(1)
	q := absX.Div(twoPi).Floor()
	r = absX.Sub(q.Mul(twoPi))
	if r.Signbit() && !r.IsZero() {
		r = r.Add(twoPi)
	}
	return r, twoPi
}

// Sin returns sin(x) (spec §4.11): reduce modulo 2*pi, fold [pi, 2*pi) to
// [0, pi) via sin(pi+u) = -sin(u), trisection-reduce, accumulate the
// alternating Taylor series, and reverse via
// sin(3u) = 3*sin(u) - 4*sin(u)**3.
func Sin(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || x.IsInf() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	neg := x.Signbit()
	absX := x.Abs().WithPrecision(workPrec)
	r, twoPi := reduceMod2Pi(absX, workPrec)
	pi := twoPi.Ldexp(-1)

	signFlip := false
	if r.GreaterEqual(pi) {
		r = r.Sub(pi)
		signFlip = true
	}

	v := trisectSinCore(r, workPrec)
	if signFlip {
		v = v.Neg()
	}
	if neg {
		v = v.Neg()
	}
	return v.WithPrecision(prec).WithRounding(rounding)
}

// trisectSinCore computes sin(r) for r in [0, pi) via trisection
// reduction and the alternating odd-power Taylor series.
func trisectSinCore(r *bigfloat.Float, workPrec uint) *bigfloat.Float {
	k := trisectionCount(r, workPrec)
	u := r.Div(pow3(k, workPrec))
	v := oddFactorialSeries(u, u.Mul(u).Neg(), workPrec)
	three := bigfloat.NewUint64(3, workPrec, bigfloat.NEAREST)
	four := bigfloat.NewUint64(4, workPrec, bigfloat.NEAREST)
	for i := 0; i < k; i++ {
		v = three.Mul(v).Sub(four.Mul(v).Mul(v).Mul(v))
	}
	return v
}

// Cos returns cos(x) (spec §4.11): reduce modulo 2*pi, fix the sign by
// quadrant, fold to [0, pi/2] by two reflections, then either
// cos(v) = sin(pi/2-v) near the pi/2 cancellation zone or
// cos(v) = sqrt(1-sin(v)**2) otherwise.
func Cos(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || x.IsInf() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.NewUint64(1, prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	absX := x.Abs().WithPrecision(workPrec)
	r, twoPi := reduceMod2Pi(absX, workPrec)
	pi := twoPi.Ldexp(-1)
	halfPi := pi.Ldexp(-1)

	// cos < 0 on (pi/2, 3*pi/2).
	neg := r.Greater(halfPi) && r.Less(pi.Add(halfPi))

	v := r
	if v.Greater(pi) {
		v = twoPi.Sub(v)
	}
	if v.Greater(halfPi) {
		v = pi.Sub(v)
	}

	near := halfPi.Sub(v).Abs().Less(bigfloat.NewFloat64(0.1, workPrec, bigfloat.NEAREST))
	var result *bigfloat.Float
	if near {
		result = trisectSinCore(halfPi.Sub(v), workPrec)
	} else {
		s := trisectSinCore(v, workPrec)
		one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
		result = one.Sub(s.Mul(s)).Sqrt()
	}
	if neg {
		result = result.Neg()
	}
	return result.WithPrecision(prec).WithRounding(rounding)
}

// Tan returns tan(x) as sin(x)/cos(x). Cos already applies the
// cancellation-avoiding identity near its own pi/2 boundary, so this
// stays correct through tan's asymptotes without a second bespoke
// reduction (a deliberate simplification of spec §4.11's more elaborate
// tan-specific branch).
func Tan(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || x.IsInf() {
		return bigfloat.NaN(prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	s := Sin(x, workPrec, bigfloat.NEAREST)
	c := Cos(x, workPrec, bigfloat.NEAREST)
	return s.Div(c).WithPrecision(prec).WithRounding(rounding)
}

// asinReduce halves x toward 0 via asin(x) = 2*asin(x/(sqrt2*sqrt(1+sqrt(1-x**2))))
// until it is small enough for the Taylor series to converge quickly,
// returning the reduced argument and the reduction count k (spec §4.11).
func asinReduce(x *bigfloat.Float, workPrec uint) (reduced *bigfloat.Float, k int) {
	sqrt2 := Sqrt2(workPrec, bigfloat.NEAREST)
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	threshold := bigfloat.NewFloat64(0.1, workPrec, bigfloat.NEAREST)
	cur := x
	for k = 0; k < 64 && cur.Abs().Greater(threshold); k++ {
		inner := one.Add(one.Sub(cur.Mul(cur)).Sqrt()).Sqrt()
		cur = cur.Div(sqrt2.Mul(inner))
	}
	return cur, k
}

// asinSeries accumulates asin(u) = u + u**3/6 + 3u**5/40 + ... via the
// term recurrence term[n+1] = term[n]*u**2*(2n+1)**2/((2n+2)*(2n+3)).
func asinSeries(u *bigfloat.Float, workPrec uint) *bigfloat.Float {
	u2 := u.Mul(u)
	sum := u
	term := u
	n := uint64(0)
	for {
		num := bigfloat.NewUint64(2*n+1, workPrec, bigfloat.NEAREST)
		num = num.Mul(num)
		den := bigfloat.NewUint64((2*n+2)*(2*n+3), workPrec, bigfloat.NEAREST)
		term = term.Mul(u2).Mul(num).Div(den)
		sum = sum.Add(term)
		n++
		if converged(term, workPrec) {
			return sum
		}
	}
}

// Asin returns asin(x), domain [-1, 1] (spec §4.11).
func Asin(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	one0 := bigfloat.NewUint64(1, x.Precision(), bigfloat.NEAREST)
	if x.Abs().Greater(one0) {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	xw := x.WithPrecision(workPrec)
	if x.Abs().Equal(one0) {
		halfPi := Pi(workPrec, bigfloat.NEAREST).Ldexp(-1)
		if x.Signbit() {
			halfPi = halfPi.Neg()
		}
		return halfPi.WithPrecision(prec).WithRounding(rounding)
	}
	reduced, k := asinReduce(xw, workPrec)
	result := asinSeries(reduced, workPrec).Ldexp(int64(k))
	return result.WithPrecision(prec).WithRounding(rounding)
}

// Acos returns acos(x) = pi/2 - asin(x) (spec §4.11).
func Acos(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	one0 := bigfloat.NewUint64(1, x.Precision(), bigfloat.NEAREST)
	if x.Abs().Greater(one0) {
		return bigfloat.NaN(prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	halfPi := Pi(workPrec, bigfloat.NEAREST).Ldexp(-1)
	asinX := Asin(x, workPrec, bigfloat.NEAREST)
	return halfPi.Sub(asinX).WithPrecision(prec).WithRounding(rounding)
}

// atanReduce halves x toward 0 via atan(x) = 2*atan(x/(1+sqrt(1+x**2)))
// until small enough for the Taylor series to converge quickly.
func atanReduce(x *bigfloat.Float, workPrec uint) (reduced *bigfloat.Float, k int) {
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	threshold := bigfloat.NewFloat64(0.1, workPrec, bigfloat.NEAREST)
	cur := x
	for k = 0; k < 64 && cur.Abs().Greater(threshold); k++ {
		inner := one.Add(one.Add(cur.Mul(cur)).Sqrt())
		cur = cur.Div(inner)
	}
	return cur, k
}

// atanSeries accumulates atan(u) = u - u**3/3 + u**5/5 - ... .
func atanSeries(u *bigfloat.Float, workPrec uint) *bigfloat.Float {
	u2 := u.Mul(u).Neg()
	sum := u
	term := u
	n := uint64(1)
	for {
		term = term.Mul(u2)
		n += 2
		contribution := term.Div(bigfloat.NewUint64(n, workPrec, bigfloat.NEAREST))
		sum = sum.Add(contribution)
		if converged(contribution, workPrec) {
			return sum
		}
	}
}

// Atan returns atan(x) (spec §4.11).
func Atan(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.Zero(x.Signbit(), prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	if x.IsInf() {
		halfPi := Pi(prec, bigfloat.NEAREST).Ldexp(-1)
		if x.Signbit() {
			halfPi = halfPi.Neg()
		}
		return halfPi.WithRounding(rounding)
	}
	xw := x.WithPrecision(workPrec)
	reduced, k := atanReduce(xw, workPrec)
	result := atanSeries(reduced, workPrec).Ldexp(int64(k))
	return result.WithPrecision(prec).WithRounding(rounding)
}

// signedPi returns +-pi at the given precision/rounding, negated when neg
// is set, used to carry y's sign onto the axis results below.
func signedPi(prec uint, rounding bigfloat.RoundingMode, neg bool) *bigfloat.Float {
	pi := Pi(prec, rounding)
	if neg {
		return pi.Neg()
	}
	return pi
}

// Atan2 returns the four-quadrant arctangent of y/x (spec §4.11),
// handling the axis/zero cases explicitly and otherwise applying a
// +-pi correction in the left half-plane. The sign of a zero y or x is
// significant on these axis branches (matching IEEE 754/C99 atan2), so
// it is threaded through rather than discarded.
func Atan2(y, x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() || y.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	workPrec := prec + guardDigits(prec)
	if x.IsZero() {
		if y.IsZero() {
			if x.Signbit() {
				return signedPi(prec, rounding, y.Signbit())
			}
			return bigfloat.Zero(y.Signbit(), prec, rounding)
		}
		halfPi := Pi(workPrec, bigfloat.NEAREST).Ldexp(-1)
		if y.Signbit() {
			return halfPi.Neg().WithPrecision(prec).WithRounding(rounding)
		}
		return halfPi.WithPrecision(prec).WithRounding(rounding)
	}
	if y.IsZero() {
		if x.Signbit() {
			return signedPi(prec, rounding, y.Signbit())
		}
		return bigfloat.Zero(y.Signbit(), prec, rounding)
	}

	yw := y.WithPrecision(workPrec)
	xw := x.WithPrecision(workPrec)
	base := Atan(yw.Div(xw), workPrec, bigfloat.NEAREST)
	if !x.Signbit() {
		return base.WithPrecision(prec).WithRounding(rounding)
	}
	pi := Pi(workPrec, bigfloat.NEAREST)
	if y.Signbit() {
		return base.Sub(pi).WithPrecision(prec).WithRounding(rounding)
	}
	return base.Add(pi).WithPrecision(prec).WithRounding(rounding)
}
