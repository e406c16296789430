package math

import "github.com/aurelian-io/bigfloat"

// Exp returns e**x (spec §4.9), via the identity
// exp(x) = sinh(x) + sqrt(1 + sinh(x)**2), reusing the already-reduced
// sinh series instead of a separate exponential-specific reduction.
// Integer arguments short-circuit to Pow(e, n); negative arguments use
// exp(-x) = 1/exp(x).
func Exp(x *bigfloat.Float, prec uint, rounding bigfloat.RoundingMode) *bigfloat.Float {
	prec = resolvePrec(prec)
	if x.IsNaN() {
		return bigfloat.NaN(prec, rounding)
	}
	if x.IsZero() {
		return bigfloat.NewUint64(1, prec, rounding)
	}
	if x.IsInf() {
		if x.Signbit() {
			return bigfloat.Zero(false, prec, rounding)
		}
		return bigfloat.Inf(false, prec, rounding)
	}
	if x.Signbit() {
		return Exp(x.Neg(), prec, bigfloat.NEAREST).Inverse().WithPrecision(prec).WithRounding(rounding)
	}
	if n, ok := asInteger(x); ok {
		base := E(prec+guardDigits(prec), bigfloat.NEAREST)
		return Pow(base, bigfloat.NewInt64(n, prec, bigfloat.NEAREST), prec, rounding)
	}

	workPrec := prec + guardDigits(prec)
	xw := x.WithPrecision(workPrec)
	sh := Sinh(xw, workPrec, bigfloat.NEAREST)
	one := bigfloat.NewUint64(1, workPrec, bigfloat.NEAREST)
	inner := one.Add(sh.Mul(sh)).Sqrt()
	result := sh.Add(inner)
	return result.WithPrecision(prec).WithRounding(rounding)
}

// asInteger reports whether x is an exact integer small enough to fit in
// an int64, returning its value.
func asInteger(x *bigfloat.Float) (int64, bool) {
	if !x.IsNormal() {
		return 0, false
	}
	if !x.Equal(x.Trunc()) {
		return 0, false
	}
	bi, err := x.ToBigInt()
	if err != nil || !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}
