package r3

import (
	"fmt"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
)

// Vector is a 3-component vector with exact rational components.
// Vectors are immutable; every operation returns a new value.
type Vector struct {
	X, Y, Z exactrat.ExactRat
}

// VectorFromInts returns the vector (x, y, z).
func VectorFromInts(x, y, z int64) Vector {
	return Vector{exactrat.FromInt(x), exactrat.FromInt(y), exactrat.FromInt(z)}
}

func Zero() Vector {
	return Vector{}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

func (v Vector) Neg() Vector {
	return Vector{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// Mul returns the scalar multiple m*v.
func (v Vector) Mul(m exactrat.ExactRat) Vector {
	return Vector{v.X.Mul(m), v.Y.Mul(m), v.Z.Mul(m)}
}

// Div returns v scaled by 1/m. m must be nonzero.
func (v Vector) Div(m exactrat.ExactRat) Vector {
	return Vector{v.X.Div(m), v.Y.Div(m), v.Z.Div(m)}
}

func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

func (v Vector) Dot(o Vector) exactrat.ExactRat {
	x := v.X.Mul(o.X)
	y := v.Y.Mul(o.Y)
	z := v.Z.Mul(o.Z)
	return x.Add(y).Add(z)
}

// Norm2 returns the exact squared magnitude of v.
func (v Vector) Norm2() exactrat.ExactRat {
	return v.Dot(v)
}

// Norm returns the magnitude of v as a rational multiple of 10**oom
// (exact when the squared magnitude is a perfect square).
func (v Vector) Norm(oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	n, _ := exactrat.Sqrt(v.Norm2(), oom, mode)
	return n
}

// Unit returns v scaled to unit magnitude at the given precision. The
// result is exact when the magnitude is rational. An inexact magnitude
// smaller than half the 10**oom grid would render as zero, so the
// precision is refined until the rendering is nonzero. v must be
// nonzero.
func (v Vector) Unit(oom int, mode exactrat.RoundingMode) Vector {
	n2 := v.Norm2()
	n, exact := exactrat.Sqrt(n2, oom, mode)
	for !exact && n.IsZero() {
		oom--
		n, _ = exactrat.Sqrt(n2, oom, mode)
	}
	return v.Div(n)
}

func (v Vector) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

func (v Vector) Equals(o Vector) bool {
	return v.X.Equals(o.X) && v.Y.Equals(o.Y) && v.Z.Equals(o.Z)
}

// IsScalarMultiple reports whether o == m*v for some scalar m, i.e. the
// two vectors are parallel (the zero vector is a scalar multiple of
// everything).
func (v Vector) IsScalarMultiple(o Vector) bool {
	return v.Cross(o).IsZero()
}

func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
