package bigfloat

// DefaultPrecision is the initial value of the process-wide default decimal
// precision consulted by constructors when the caller omits a precision.
const DefaultPrecision = 34

// DefaultRounding is the initial value of the process-wide default rounding
// mode consulted by constructors when the caller omits one.
const DefaultRounding = NEAREST

// defaultPrecision and defaultRounding are the two process-wide knobs
// described in spec §5. They are read by constructors at the moment of
// construction and never retroactively affect values already built.
//
// No lock protects them, by design: changing them is expected to be rare
// (typically once, at program start) and read-heavy use on the hot path
// must stay cheap. Callers that mutate them from more than one goroutine
// are responsible for serializing those writes themselves.
var (
	defaultPrecision uint = DefaultPrecision
	defaultRounding       = RoundingMode(DefaultRounding)
)

// SetDefaultPrecision changes the process-wide default precision used by
// constructors that are not given an explicit precision. It takes effect
// for subsequent construction only.
func SetDefaultPrecision(prec uint) {
	if prec == 0 {
		prec = DefaultPrecision
	}
	defaultPrecision = prec
}

// SetDefaultRounding changes the process-wide default rounding mode used by
// constructors that are not given an explicit rounding mode. It takes
// effect for subsequent construction only.
func SetDefaultRounding(mode RoundingMode) {
	defaultRounding = mode
}

// GetDefaultPrecision returns the current process-wide default precision.
func GetDefaultPrecision() uint {
	return defaultPrecision
}

// GetDefaultRounding returns the current process-wide default rounding mode.
func GetDefaultRounding() RoundingMode {
	return defaultRounding
}

// resolvePrec substitutes the process default when prec is 0.
func resolvePrec(prec uint) uint {
	if prec == 0 {
		return GetDefaultPrecision()
	}
	return prec
}

// resolveRounding substitutes the process default when mode is the zero
// RoundingMode. RoundingMode's zero value coincides with NEAREST, so this
// is the same "0 selects the default" convention resolvePrec applies to
// precision.
func resolveRounding(mode RoundingMode) RoundingMode {
	if mode == RoundingMode(0) {
		return GetDefaultRounding()
	}
	return mode
}
