package exactrat

import "math/big"

// Sqrt returns the square root of x. When x is a perfect rational
// square the result is exact and the second return value is true.
// Otherwise the result is the rational multiple of 10**oom nearest the
// true root under the given rounding mode, and the second return value
// is false.
//
// Sqrt panics if x is negative: the kernel's predicates only ever take
// roots of squared quantities.
func Sqrt(x ExactRat, oom int, mode RoundingMode) (ExactRat, bool) {
	sign := x.Sgn()
	if sign < 0 {
		panic("exactrat: Sqrt of negative value")
	}
	if sign == 0 {
		return ExactRat{}, true
	}

	num := x.rat().Num()
	den := x.rat().Denom()
	sn := new(big.Int).Sqrt(num)
	sd := new(big.Int).Sqrt(den)
	if isSquareRoot(sn, num) && isSquareRoot(sd, den) {
		return ExactRat{new(big.Rat).SetFrac(sn, sd)}, true
	}

	// Let t = sqrt(x) / 10**oom. Then floor(t) = isqrt(floor(x / 10**(2*oom)))
	// since floor and sqrt commute on the integer lattice. Rounding t to an
	// integer under the mode only needs exact comparisons of t**2 = y
	// against integer and half-integer bounds.
	y := x.Div(TenPow(2 * oom))
	f := new(big.Int).Quo(y.rat().Num(), y.rat().Denom())
	f.Sqrt(f)

	n := roundRootToInt(f, y, mode)
	return ExactRat{new(big.Rat).SetInt(n)}.Mul(TenPow(oom)), false
}

// roundRootToInt rounds t = sqrt(y) to an integer, given f = floor(t).
// t itself is irrational here (the exact case was handled by the
// caller), so t is strictly between f and f+1 and never exactly
// halfway unless (2f+1)**2 == 4y.
func roundRootToInt(f *big.Int, y ExactRat, mode RoundingMode) *big.Int {
	up := func() *big.Int { return new(big.Int).Add(f, big.NewInt(1)) }

	switch mode {
	case RoundTowardZero, RoundTowardNegative:
		return f
	case RoundAwayFromZero, RoundTowardPositive:
		return up()
	}

	// Half-based: compare y against (f + 1/2)**2, i.e. 4y against (2f+1)**2.
	half := new(big.Int).Lsh(f, 1)
	half.Add(half, big.NewInt(1))
	half.Mul(half, half)
	fourY := y.Mul(FromInt(4))
	switch fourY.Cmp(ExactRat{new(big.Rat).SetInt(half)}) {
	case -1:
		return f
	case 1:
		return up()
	}
	// Exactly halfway (possible when 2*sqrt(y) is an odd integer).
	if mode == RoundHalfAwayFromZero {
		return up()
	}
	if f.Bit(0) == 0 {
		return f
	}
	return up()
}

func isSquareRoot(root, v *big.Int) bool {
	sq := new(big.Int).Mul(root, root)
	return sq.Cmp(v) == 0
}
