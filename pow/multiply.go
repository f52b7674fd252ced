package pow

import (
	"math"

	"github.com/cwbudde/algo-pow/internal/words"
)

// product is y · log2|x| in head/tail form together with its rounded sum,
// whose words drive the range checks and the exp2 argument reduction.
type product struct {
	dd
	sum float64
}

// multiply forms y · lg. y is split into a truncated head and an exact
// remainder so that the head product head(y) · lg.head is exact.
func multiply(y float64, lg dd) product {
	y1 := words.ClearLow(y)
	tail := float64((y-y1)*lg.head) + float64(y*lg.tail)
	head := float64(y1 * lg.head)
	return product{dd: dd{head: head, tail: tail}, sum: tail + head}
}

// saturate reports the signed result when 2^p is outside the binary64 range:
// ±Inf for p >= 1024 and ±0 for p <= -1075. Exactly 1024 and -1075 are
// decided by the sign of the tail.
func (p product) saturate(sign float64) (float64, bool) {
	j := words.High(p.sum)
	i := words.Low(p.sum)

	switch {
	case j >= overflowHigh:
		if j != overflowHigh || i != 0 || p.tail+ovt > p.sum-p.head {
			return sign * math.Inf(1), true
		}
	case j&signMask >= uflowHigh:
		if uint32(j) != 0x80000000|uflowHigh || i != 0 || p.tail <= p.sum-p.head {
			return math.Copysign(0, sign), true
		}
	}
	return 0, false
}
