package bigfloat

import "github.com/pkg/errors"

// ErrNotFinite is the error returned by ToBigInt and ToBigRat when x is
// NaN or infinite: the only conversion failures in the spec's error model
// (§7) that are not absorbed in-band.
var ErrNotFinite = errors.New("bigfloat: value is not finite")

// errConversion wraps ErrNotFinite with the name of the failing
// conversion, following the teacher pack's (cockroachdb/apd) use of
// github.com/pkg/errors to annotate a sentinel with call-site context.
func errConversion(op string, x *Float) error {
	return errors.Wrapf(ErrNotFinite, "%s: %s", op, x.kindString())
}

// kindString names x's special state for error messages.
func (x *Float) kindString() string {
	switch x.special {
	case nanValue:
		return "NaN"
	case infValue:
		if x.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	default:
		return "finite"
	}
}
