package bigfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	x := Parse("3.25", 10, NEAREST)
	require.True(t, x.IsNormal())
	assert.Equal(t, "3.2500000000e+0", x.String())
}

func TestParseSign(t *testing.T) {
	assert.True(t, Parse("-5", 10, NEAREST).Signbit())
	assert.False(t, Parse("+5", 10, NEAREST).Signbit())
}

func TestParseExponent(t *testing.T) {
	x := Parse("1.5e3", 10, NEAREST)
	assert.True(t, x.Equal(NewUint64(1500, 10, NEAREST)))
	y := Parse("1.5E-2", 10, NEAREST)
	assert.True(t, y.Equal(Parse("0.015", 10, NEAREST)))
}

func TestParseZero(t *testing.T) {
	assert.True(t, Parse("0", 10, NEAREST).IsZero())
	assert.True(t, Parse("0.000", 10, NEAREST).IsZero())
	assert.True(t, Parse("-0", 10, NEAREST).Signbit())
}

func TestParseMalformedYieldsNaN(t *testing.T) {
	for _, s := range []string{"", "abc", "1.2.3", "1e", "--1", "1e+", "1 2"} {
		assert.True(t, Parse(s, 10, NEAREST).IsNaN(), "input %q", s)
	}
}

func TestParseRoundTripDecimal(t *testing.T) {
	// Round-trip (decimal), spec §8.1: parse(format(v)) = v when the
	// format uses at least precision+1 significant digits.
	const prec = 34
	inputs := []string{
		"3.141592653589793238462643383279502884197169399375105820974944",
		"2.718281828459045235360287471352662497757247093699959574966967",
		"0.1",
		"123456789.987654321",
		"-42.5",
	}
	for _, s := range inputs {
		v := Parse(s, prec, NEAREST)
		round := Parse(v.String(), prec, NEAREST)
		assert.True(t, v.Equal(round), "round-trip failed for %q: %s vs %s", s, v, round)
	}
}

func TestParseDeepFraction(t *testing.T) {
	x := Parse("0.1", 50, NEAREST)
	y := Parse("0.2", 50, NEAREST)
	sum := x.Add(y)
	assert.Equal(t, "0.30000000000000000000000000000000000000000000000000", sum.ToFixed(50))
}
