package exactrat

import "math/big"

// Taylor terms are accumulated until they drop three orders of
// magnitude below the requested precision, then the sum is rounded
// once. The guard keeps the accumulated truncation error well under
// half an ulp at oom.
const trigGuard = 3

// Sin returns sin(theta) (theta in radians) as a rational multiple of
// 10**oom under the given rounding mode.
func Sin(theta ExactRat, oom int, mode RoundingMode) ExactRat {
	// sin x = x - x^3/3! + x^5/5! - ...
	x := theta.rat()
	x2 := new(big.Rat).Mul(x, x)
	term := new(big.Rat).Set(x)
	sum := new(big.Rat).Set(x)
	eps := TenPow(oom - trigGuard).rat()
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Rat).SetInt64(2*k*(2*k+1)))
		term.Neg(term)
		sum.Add(sum, term)
		if new(big.Rat).Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return RoundToOOM(ExactRat{sum}, oom, mode)
}

// Cos returns cos(theta) (theta in radians) as a rational multiple of
// 10**oom under the given rounding mode.
func Cos(theta ExactRat, oom int, mode RoundingMode) ExactRat {
	// cos x = 1 - x^2/2! + x^4/4! - ...
	x := theta.rat()
	x2 := new(big.Rat).Mul(x, x)
	term := new(big.Rat).SetInt64(1)
	sum := new(big.Rat).SetInt64(1)
	eps := TenPow(oom - trigGuard).rat()
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Rat).SetInt64((2*k-1)*(2*k)))
		term.Neg(term)
		sum.Add(sum, term)
		if new(big.Rat).Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return RoundToOOM(ExactRat{sum}, oom, mode)
}

// Pi returns pi as a rational multiple of 10**oom, using Machin's
// formula pi = 16*atan(1/5) - 4*atan(1/239).
func Pi(oom int, mode RoundingMode) ExactRat {
	eps := TenPow(oom - trigGuard).rat()
	a := atanInv(5, eps)
	b := atanInv(239, eps)
	pi := new(big.Rat).SetInt64(16)
	pi.Mul(pi, a)
	b.Mul(b, new(big.Rat).SetInt64(4))
	pi.Sub(pi, b)
	return RoundToOOM(ExactRat{pi}, oom, mode)
}

// atanInv computes atan(1/m) by its alternating series, truncated when
// the term magnitude drops below eps.
func atanInv(m int64, eps *big.Rat) *big.Rat {
	inv := big.NewRat(1, m)
	inv2 := new(big.Rat).Mul(inv, inv)
	pow := new(big.Rat).Set(inv)
	sum := new(big.Rat).Set(inv)
	for k := int64(1); ; k++ {
		pow.Mul(pow, inv2)
		term := new(big.Rat).Quo(pow, new(big.Rat).SetInt64(2*k+1))
		if k&1 == 1 {
			term.Neg(term)
		}
		sum.Add(sum, term)
		if new(big.Rat).Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return sum
}
