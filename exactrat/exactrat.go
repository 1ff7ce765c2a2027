package exactrat

import (
	"fmt"
	"math/big"
)

// ExactRat is an immutable exact rational scalar. The zero value is 0.
//
// All arithmetic is exact: no operation loses precision. Irrational
// derived quantities (square roots, trig) are the only place a
// precision parameter enters; see Sqrt, Sin, Cos.
type ExactRat struct {
	r *big.Rat
}

func (x ExactRat) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// FromInt returns the exact rational v/1.
func FromInt(v int64) ExactRat {
	return ExactRat{new(big.Rat).SetInt64(v)}
}

// FromFrac returns the exact rational num/den. den must be nonzero.
func FromFrac(num, den int64) ExactRat {
	return ExactRat{big.NewRat(num, den)}
}

// FromFloat64 returns the exact rational value of v (every finite
// float64 is rational). It panics if v is NaN or infinite.
func FromFloat64(v float64) ExactRat {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		panic("exactrat: FromFloat64 of non-finite value")
	}
	return ExactRat{r}
}

// FromString parses a rational from a fraction ("3/4") or decimal
// ("0.75") literal.
func FromString(s string) (ExactRat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return ExactRat{}, fmt.Errorf("exactrat: cannot parse %q", s)
	}
	return ExactRat{r}, nil
}

// FromBigRat copies r into an ExactRat.
func FromBigRat(r *big.Rat) ExactRat {
	return ExactRat{new(big.Rat).Set(r)}
}

// BigRat returns a copy of x as a *big.Rat.
func (x ExactRat) BigRat() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

func (x ExactRat) Add(y ExactRat) ExactRat {
	return ExactRat{new(big.Rat).Add(x.rat(), y.rat())}
}

func (x ExactRat) Sub(y ExactRat) ExactRat {
	return ExactRat{new(big.Rat).Sub(x.rat(), y.rat())}
}

func (x ExactRat) Mul(y ExactRat) ExactRat {
	return ExactRat{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns x/y. It panics if y is zero.
func (x ExactRat) Div(y ExactRat) ExactRat {
	return ExactRat{new(big.Rat).Quo(x.rat(), y.rat())}
}

func (x ExactRat) Neg() ExactRat {
	return ExactRat{new(big.Rat).Neg(x.rat())}
}

func (x ExactRat) Abs() ExactRat {
	return ExactRat{new(big.Rat).Abs(x.rat())}
}

// PowInt returns x**n for integer n. x must be nonzero when n < 0.
func (x ExactRat) PowInt(n int) ExactRat {
	if n == 0 {
		return FromInt(1)
	}
	base := x.rat()
	inv := n < 0
	if inv {
		n = -n
		base = new(big.Rat).Inv(base)
	}
	r := new(big.Rat).SetInt64(1)
	p := new(big.Rat).Set(base)
	for n > 0 {
		if n&1 == 1 {
			r.Mul(r, p)
		}
		p.Mul(p, p)
		n >>= 1
	}
	return ExactRat{r}
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x ExactRat) Cmp(y ExactRat) int {
	return x.rat().Cmp(y.rat())
}

// Sgn returns -1, 0, or +1 according to the sign of x.
func (x ExactRat) Sgn() int {
	return x.rat().Sign()
}

func (x ExactRat) Equals(y ExactRat) bool {
	return x.Cmp(y) == 0
}

func (x ExactRat) LessThan(y ExactRat) bool {
	return x.Cmp(y) < 0
}

func (x ExactRat) IsZero() bool {
	return x.rat().Sign() == 0
}

func (x ExactRat) IsInteger() bool {
	return x.rat().IsInt()
}

func Min(x, y ExactRat) ExactRat {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

func Max(x, y ExactRat) ExactRat {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Float64 returns the nearest float64 to x.
func (x ExactRat) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// String formats x as a fraction when it is not an integer.
func (x ExactRat) String() string {
	return x.rat().RatString()
}

// TenPow returns 10**oom as an exact rational; oom may be negative.
func TenPow(oom int) ExactRat {
	ten := big.NewInt(10)
	neg := oom < 0
	if neg {
		oom = -oom
	}
	p := new(big.Int).Exp(ten, big.NewInt(int64(oom)), nil)
	r := new(big.Rat).SetInt(p)
	if neg {
		r.Inv(r)
	}
	return ExactRat{r}
}
