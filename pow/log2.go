package pow

import "github.com/cwbudde/algo-pow/internal/words"

// dd is an unevaluated sum head + tail. The head has its low word cleared so
// that multiplying it by another truncated value is exact.
type dd struct {
	head, tail float64
}

// log2Near1 returns log2(ax) for ax within 2^-20 of 1, using
//
//	log(1+t) ≈ t - t²/2 + t³/3 - t⁴/4
//
// scaled by 1/ln2 in extended precision. Only reached when |y| > 2^31, where
// every other base has already saturated.
func log2Near1(ax float64) dd {
	t := ax - 1
	w := float64(t*t) * (0.5 - float64(t*(0.3333333333333333333333-float64(t*0.25))))
	u := float64(invLn2H * t)
	v := float64(t*invLn2L) - float64(w*invLn2)
	head := words.ClearLow(u + v)
	return dd{head: head, tail: v - (head - u)}
}

// log2Extended returns log2(ax) for a finite, positive ax with high word ix.
//
// ax is written as 2^n · m with m in [sqrt(3)/2, sqrt(3)), the breakpoint bp
// is 1.5 for m >= sqrt(3/2) and 1 otherwise, and
//
//	log2(m) = log2(bp) + 1/ln2 · log((1+s)/(1-s)),  s = (m - bp)/(m + bp)
//
// with the series tail beyond s³ replaced by a minimax polynomial in s².
func log2Extended(ax float64, ix int32) dd {
	n := int32(0)
	if ix < minNormal {
		ax *= two53
		n -= 53
		ix = words.High(ax)
	}
	n += ix>>20 - 0x3ff
	j := ix & mantMask
	ix = j | oneHigh

	var k int
	switch {
	case j <= sqrt3Over2:
		k = 0
	case j < sqrt3:
		k = 1
	default:
		n++
		ix -= minNormal
	}
	ax = words.WithHigh(ax, ix)

	// s = sH + sL = (ax - bp)/(ax + bp)
	u := ax - bp[k]
	v := 1 / (ax + bp[k])
	s := float64(u * v)
	sH := words.ClearLow(s)
	tH := words.WithHigh(0, ((ix>>1)|0x20000000)+0x00080000+int32(k)<<18)
	tL := ax - (tH - bp[k])
	sL := v * ((u - float64(sH*tH)) - float64(sH*tL))

	// r carries the s⁵ and higher terms of 3/2 · log((1+s)/(1-s))
	s2 := float64(s * s)
	r := float64(float64(s2*s2) * (l1 + float64(s2*(l2+float64(s2*(l3+float64(s2*(l4+float64(s2*(l5+float64(s2*l6)))))))))))
	r += float64(sL * (sH + s))
	s2 = float64(sH * sH)
	tH = words.ClearLow(3 + s2 + r)
	tL = r - ((tH - 3) - s2)

	// p = 3s + s³ + s·r
	u = float64(sH * tH)
	v = float64(sL*tH) + float64(tL*s)
	pH := words.ClearLow(u + v)
	pL := v - (pH - u)

	// log2(ax) = 2/(3 ln2) · p + log2(bp) + n
	zH := float64(cpH * pH)
	zL := float64(cpL*pH) + float64(pL*cp) + dpL[k]
	t := float64(n)
	head := words.ClearLow(((zH + zL) + dpH[k]) + t)
	return dd{head: head, tail: zL - (((head - t) - dpH[k]) - zH)}
}
