package bigfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPrecisionRoundTrip(t *testing.T) {
	orig := GetDefaultPrecision()
	defer SetDefaultPrecision(orig)

	SetDefaultPrecision(7)
	assert.EqualValues(t, 7, GetDefaultPrecision())
	x := NewUint64(1, 0, NEAREST)
	assert.EqualValues(t, 7, x.Precision())
}

func TestDefaultPrecisionZeroResetsToConstant(t *testing.T) {
	orig := GetDefaultPrecision()
	defer SetDefaultPrecision(orig)

	SetDefaultPrecision(0)
	assert.EqualValues(t, DefaultPrecision, GetDefaultPrecision())
}

func TestDefaultRoundingRoundTrip(t *testing.T) {
	orig := GetDefaultRounding()
	defer SetDefaultRounding(orig)

	SetDefaultRounding(ZERO)
	assert.Equal(t, ZERO, GetDefaultRounding())
}

func TestDefaultRoundingIsPickedUpByConstructors(t *testing.T) {
	orig := GetDefaultRounding()
	defer SetDefaultRounding(orig)

	SetDefaultRounding(ZERO)
	x := NewUint64(1, 10, RoundingMode(0))
	assert.Equal(t, ZERO, x.rounding)
}

func TestWithRoundingZeroValuePicksUpDefault(t *testing.T) {
	orig := GetDefaultRounding()
	defer SetDefaultRounding(orig)

	x := NewUint64(1, 10, UP)
	SetDefaultRounding(DOWN)
	y := x.WithRounding(RoundingMode(0))
	assert.Equal(t, DOWN, y.rounding)
}

func TestDefaultsDoNotRetroactivelyChangeExistingValues(t *testing.T) {
	orig := GetDefaultPrecision()
	defer SetDefaultPrecision(orig)

	SetDefaultPrecision(12)
	x := NewUint64(1, 0, NEAREST)
	SetDefaultPrecision(40)
	assert.EqualValues(t, 12, x.Precision())
}
