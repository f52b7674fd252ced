package pow

import (
	"math"

	"github.com/cwbudde/algo-pow/internal/words"
)

// exp2 returns 2^p for a product already known to be inside (-1075, 1024].
//
// p is split as n + f with n an integer and |f| <= 1/2, f is converted to a
// natural-log argument z = f·ln2, and
//
//	e^z = 1 - (r - z),  r = z·t1/(t1 - 2) - (w + z·w)
//
// with t1 = z - z²·P(z²) from a degree 5 minimax fit. n is then added to the
// binary exponent of the result.
func exp2(p product) float64 {
	pH, pL := p.head, p.tail
	j := words.High(p.sum)
	i := j & signMask
	k := i>>20 - 0x3ff
	n := int32(0)

	// Round to the nearest integer through the high word when |p| > 1/2.
	if i > halfHigh {
		n = j + minNormal>>uint(k+1)
		k = (n&signMask)>>20 - 0x3ff
		t := words.WithHigh(0, n&^(mantMask>>uint(k)))
		n = ((n & mantMask) | minNormal) >> uint(20-k)
		if j < 0 {
			n = -n
		}
		pH -= t
	}

	t := words.ClearLow(pL + pH)
	u := float64(t * lg2H)
	v := float64((pL-(t-pH))*lg2) + float64(t*lg2L)
	z := u + v
	w := v - (z - u)

	t = float64(z * z)
	t1 := z - float64(t*(p1+float64(t*(p2+float64(t*(p3+float64(t*(p4+float64(t*p5)))))))))
	r := float64(z*t1)/(t1-2) - (w + float64(z*w))
	z = 1 - (r - z)

	j = words.High(z) + n<<20
	if j>>20 <= 0 {
		// Subnormal or zero result.
		return math.Ldexp(z, int(n))
	}
	return words.WithHigh(z, j)
}
