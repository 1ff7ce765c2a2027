package exactrat

import "math/big"

// RoundingMode selects how a value is rounded when an exact result
// cannot be represented at the requested order of magnitude.
type RoundingMode int

const (
	RoundHalfEven RoundingMode = iota
	RoundHalfAwayFromZero
	RoundTowardZero
	RoundAwayFromZero
	RoundTowardPositive
	RoundTowardNegative
)

// RoundToOOM rounds x to an integer multiple of 10**oom under the given
// rounding mode. More negative oom keeps more digits.
func RoundToOOM(x ExactRat, oom int, mode RoundingMode) ExactRat {
	unit := TenPow(oom)
	q := x.Div(unit)
	n := roundToInt(q.rat(), mode)
	return ExactRat{new(big.Rat).SetInt(n)}.Mul(unit)
}

// roundToInt rounds the rational q to a *big.Int under the given mode.
func roundToInt(q *big.Rat, mode RoundingMode) *big.Int {
	num := q.Num()
	den := q.Denom() // always > 0
	quo := new(big.Int)
	rem := new(big.Int)
	quo.QuoRem(num, den, rem) // truncates toward zero; rem has num's sign
	if rem.Sign() == 0 {
		return quo
	}

	sign := 1
	if num.Sign() < 0 {
		sign = -1
	}
	away := func() *big.Int {
		return quo.Add(quo, big.NewInt(int64(sign)))
	}

	switch mode {
	case RoundTowardZero:
		return quo
	case RoundAwayFromZero:
		return away()
	case RoundTowardPositive:
		if sign > 0 {
			return away()
		}
		return quo
	case RoundTowardNegative:
		if sign < 0 {
			return away()
		}
		return quo
	}

	// Half-based modes: compare 2*|rem| against den.
	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)
	switch twice.Cmp(den) {
	case -1:
		return quo
	case 1:
		return away()
	}
	// Exactly halfway.
	if mode == RoundHalfAwayFromZero {
		return away()
	}
	if quo.Bit(0) == 0 { // RoundHalfEven: keep an even quotient
		return quo
	}
	return away()
}
