package pow

// Coefficients are written as hexadecimal literals so that each one is the
// exact binary64 value the error analysis was done with.
const (
	two53 = 0x1p53

	// |y| above this takes the near-one logarithm path.
	hugeExponent = 0x1.00000ffffffffp31

	// Bases outside [nearOneLow, nearOneHigh] saturate when |y| is huge.
	nearOneLow  = 0x1.fffffp-1
	nearOneHigh = 0x1.00000ffffffffp0

	// 1/ln2 and its head/tail split.
	invLn2  = 0x1.71547652b82fep0
	invLn2H = 0x1.715476p0
	invLn2L = 0x1.4ae0bf85ddf44p-26

	// 2/(3 ln2) and its head/tail split.
	cp  = 0x1.ec709dc3a03fdp-1
	cpH = 0x1.ec709ep-1
	cpL = -0x1.e2fe0145b01f5p-28

	// Minimax coefficients for log((1+s)/(1-s)) in s².
	l1 = 0x1.3333333333303p-1
	l2 = 0x1.b6db6db6fabffp-2
	l3 = 0x1.55555518f264dp-2
	l4 = 0x1.17460a91d4101p-2
	l5 = 0x1.d864a93c9db65p-3
	l6 = 0x1.a7e284a454eefp-3

	// Minimax coefficients for the exp2 remainder.
	p1 = 0x1.555555555553ep-3
	p2 = -0x1.6c16c16bebd93p-9
	p3 = 0x1.1566aaf25de2cp-14
	p4 = -0x1.bbd41c5d26bf1p-20
	p5 = 0x1.6376972bea4d0p-25

	// ln2 and its head/tail split.
	lg2  = 0x1.62e42fefa39efp-1
	lg2H = 0x1.62e43p-1
	lg2L = -0x1.05c610ca86c39p-29

	// -(1024 - log2(MaxFloat64 + ulp/2)), slack at the overflow boundary.
	ovt = 8.0085662595372944372e-17
)

// Breakpoints and log2(breakpoint) in head/tail form.
var (
	bp  = [2]float64{1.0, 1.5}
	dpH = [2]float64{0.0, 0x1.2b8034p-1}
	dpL = [2]float64{0.0, 0x1.cfdeb43cfd006p-27}
)

// High-word thresholds.
const (
	signMask     = 0x7fffffff
	mantMask     = 0x000fffff
	minNormal    = 0x00100000 // smallest normal exponent
	oneHigh      = 0x3ff00000 // 1.0
	halfHigh     = 0x3fe00000 // 0.5
	overflowHigh = 0x40900000 // 1024
	uflowHigh    = 0x4090cc00 // 1075
	sqrt3Over2   = 0x3988e    // mantissa of sqrt(3/2)
	sqrt3        = 0xbb67a    // mantissa of sqrt(3)
)
