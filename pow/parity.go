package pow

// parity classifies an exponent for the sign decision of a negative base.
type parity int

const (
	notInteger parity = iota
	oddInteger
	evenInteger
)

func (p parity) String() string {
	switch p {
	case notInteger:
		return "not-an-integer"
	case oddInteger:
		return "odd-integer"
	case evenInteger:
		return "even-integer"
	default:
		return "unknown"
	}
}

// classifyParity reports whether the finite, non-zero magnitude ay is an
// integer and, if so, whether it is odd. Every binary64 of magnitude 2^53 or
// more is an even integer.
func classifyParity(ay float64) parity {
	switch {
	case ay >= two53:
		return evenInteger
	case ay >= 1:
		k := int64(ay)
		if float64(k) != ay {
			return notInteger
		}
		if k&1 == 1 {
			return oddInteger
		}
		return evenInteger
	default:
		return notInteger
	}
}
