// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfloat implements arbitrary-precision binary floating-point
arithmetic.

A Float represents a real number as

	sign * significand * 2**exponent

with significand a non-negative math/big.Int whose top bit is the units digit
of a binary fraction 1.xxxx..., exponent the binary exponent of that leading
bit, and precision the caller's requested number of decimal fraction digits
(the binary working width is derived from it, see WorkingWidth). Rounding
follows one of four modes: NEAREST, UP, DOWN, ZERO (RoundingMode).

Unlike math/big.Float, a Float is an immutable value: every exported
operation takes its operands by value (as *Float, which is never mutated
through an exported method) and returns a freshly constructed *Float. There
is no result-aliasing convention to remember; ordinary Go assignment and
function composition do the right thing:

	sum := a.Add(b)
	sum = sum.Add(c)

Zero, infinite and not-a-number values are represented as explicit states
(an unexported state field) rather than sentinel bit patterns, so they never need tag bits
stolen from the significand.

Four special values exist: +0/-0, +Inf/-Inf, NaN, and normal (finite
nonzero) numbers. NaN is contagious: any operation that touches a NaN
operand returns NaN, and NaN compares unequal to everything, including
itself. Domain errors (sqrt of a negative number, log of zero, 0**0, ...)
are surfaced as NaN results, never as panics or errors — the exceptions
are ToBigInt and ToBigRat, which cannot represent NaN or Inf and report
failure through Go's normal error return.

The zero value of Float is not a valid number; use New* constructors or
Parse.
*/
package bigfloat
