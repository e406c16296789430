// Package math provides the transcendental functions built on top of
// bigfloat.Float: constants, logarithm, exponential, power, and the
// trigonometric/hyperbolic families (spec §4.7-4.11 in the parent
// package's terms).
//
// Every function here takes a precision/rounding pair the same way the
// root package's constructors do (spec §5): a precision of 0 or a zero
// RoundingMode selects the process default. Each function internally
// works at a boosted "guard" precision and rounds down to the caller's
// target only at the very end, so intermediate cancellation in
// argument-reduction steps does not erode the final result.
//
// Constants (Pi, E, Ln2, Ln5, Ln10, Sqrt2) are cached package-globally at
// the highest precision computed so far, the same way as the cached
// default knobs in the parent package: no mutex guards the cache, so
// calling these functions concurrently from multiple goroutines without
// external synchronization is the caller's responsibility.
package math
