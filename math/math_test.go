package math

import (
	"testing"

	"github.com/aurelian-io/bigfloat"
)

const testPrec = 40

func f(x int64) *bigfloat.Float { return bigfloat.NewInt64(x, testPrec, bigfloat.NEAREST) }

// closeEnough reports whether a and b agree to within a few decimal digits
// below prec (guards against the last few guard digits of a series' own
// accumulated error without pinning an exact value we cannot compute by
// running the code).
func closeEnough(t *testing.T, a, b *bigfloat.Float, prec, slackDigits uint) bool {
	t.Helper()
	diff := a.Sub(b).Abs()
	bound := bigfloat.Parse("1e-"+itoa(prec-slackDigits), prec, bigfloat.NEAREST)
	return diff.Less(bound)
}

func itoa(n uint) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
