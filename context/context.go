// Package context provides a convenience wrapper around bigfloat.Float
// that fixes a precision and rounding mode once and reuses it across a
// sequence of operations, rather than threading the pair through every
// call.
//
// Unlike a decimal.Context built around a mutable receiver, every method
// here returns a freshly built *bigfloat.Float: bigfloat.Float is
// immutable, so there is no receiver to mutate in place and no pending
// NaN-catching state to manage between calls. Domain errors are already
// reported in-band as NaN by the underlying package (there is no
// equivalent of decimal.Decimal's panic/recover ErrNaN convention to
// emulate here).
package context

import (
	"math/big"

	"github.com/aurelian-io/bigfloat"
)

// A Context pairs a decimal precision with a rounding mode and applies
// both consistently across a group of constructors and operations.
type Context struct {
	prec uint
	mode bigfloat.RoundingMode
}

// New creates a new context with the given precision and rounding mode.
// A precision of 0 selects the process default (spec §5).
func New(prec uint, mode bigfloat.RoundingMode) *Context {
	return &Context{prec: prec, mode: mode}
}

// Precision returns c's decimal precision.
func (c *Context) Precision() uint { return c.prec }

// Rounding returns c's rounding mode.
func (c *Context) Rounding() bigfloat.RoundingMode { return c.mode }

// SetPrecision changes c's precision and returns c.
func (c *Context) SetPrecision(prec uint) *Context {
	c.prec = prec
	return c
}

// SetRounding changes c's rounding mode and returns c.
func (c *Context) SetRounding(mode bigfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// apply rounds x to c's precision and rounding mode.
func (c *Context) apply(x *bigfloat.Float) *bigfloat.Float {
	return x.WithRounding(c.mode).WithPrecision(c.prec)
}

// NewInt64 returns a new Float with the value of x, at c's precision and
// rounding mode.
func (c *Context) NewInt64(x int64) *bigfloat.Float {
	return bigfloat.NewInt64(x, c.prec, c.mode)
}

// NewUint64 returns a new Float with the value of x.
func (c *Context) NewUint64(x uint64) *bigfloat.Float {
	return bigfloat.NewUint64(x, c.prec, c.mode)
}

// NewBigInt returns a new Float with the value of x.
func (c *Context) NewBigInt(x *big.Int) *bigfloat.Float {
	return bigfloat.NewBigInt(x, false, c.prec, c.mode)
}

// NewFloat64 returns a new Float with the value of x.
func (c *Context) NewFloat64(x float64) *bigfloat.Float {
	return bigfloat.NewFloat64(x, c.prec, c.mode)
}

// Parse parses s as a decimal literal at c's precision and rounding
// mode. Malformed input yields NaN (spec §4.12, §6).
func (c *Context) Parse(s string) *bigfloat.Float {
	return bigfloat.Parse(s, c.prec, c.mode)
}

// Zero returns a signed zero at c's precision and rounding mode.
func (c *Context) Zero(neg bool) *bigfloat.Float {
	return bigfloat.Zero(neg, c.prec, c.mode)
}

// Inf returns signed infinity at c's precision and rounding mode.
func (c *Context) Inf(neg bool) *bigfloat.Float {
	return bigfloat.Inf(neg, c.prec, c.mode)
}

// NaN returns NaN at c's precision and rounding mode.
func (c *Context) NaN() *bigfloat.Float {
	return bigfloat.NaN(c.prec, c.mode)
}

// Add returns x+y rounded to c's precision and mode.
func (c *Context) Add(x, y *bigfloat.Float) *bigfloat.Float { return c.apply(x.Add(y)) }

// Sub returns x-y rounded to c's precision and mode.
func (c *Context) Sub(x, y *bigfloat.Float) *bigfloat.Float { return c.apply(x.Sub(y)) }

// Mul returns x*y rounded to c's precision and mode.
func (c *Context) Mul(x, y *bigfloat.Float) *bigfloat.Float { return c.apply(x.Mul(y)) }

// Div returns x/y rounded to c's precision and mode.
func (c *Context) Div(x, y *bigfloat.Float) *bigfloat.Float { return c.apply(x.Div(y)) }

// Neg returns -x at c's precision and mode.
func (c *Context) Neg(x *bigfloat.Float) *bigfloat.Float { return c.apply(x.Neg()) }

// Abs returns |x| at c's precision and mode.
func (c *Context) Abs(x *bigfloat.Float) *bigfloat.Float { return c.apply(x.Abs()) }

// Sqrt returns the rounded square root of x.
func (c *Context) Sqrt(x *bigfloat.Float) *bigfloat.Float { return c.apply(x.Sqrt()) }

// FMA returns x*y+u, computed with only one final rounding.
func (c *Context) FMA(x, y, u *bigfloat.Float) *bigfloat.Float { return c.apply(x.FMA(y, u)) }

// Cmp compares x and y the way bigfloat.Float.Cmp does: NaN orders before
// every non-NaN value and compares equal to itself, never panicking.
func (c *Context) Cmp(x, y *bigfloat.Float) int { return x.Cmp(y) }
