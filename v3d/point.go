package v3d

import (
	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

// Point is an absolute position decomposed into a translation
// ("offset") plus a local vector ("rel"); the absolute coordinate is
// offset + rel. SetOffset, SetRel and Rotate are the only mutation
// surface: each recomputes the non-driving field so that the absolute
// position is preserved (SetOffset/SetRel) or moves the point along
// the requested rotation (Rotate). Everything else treats Point as an
// immutable value.
type Point struct {
	offset r3.Vector
	rel    r3.Vector
}

// NewPoint returns the point at rel with a zero offset.
func NewPoint(rel r3.Vector) Point {
	return Point{rel: rel}
}

// NewPointOffset returns the point at offset + rel.
func NewPointOffset(offset, rel r3.Vector) Point {
	return Point{offset: offset, rel: rel}
}

// PointFromInts returns the point (x, y, z) with a zero offset.
func PointFromInts(x, y, z int64) Point {
	return Point{rel: r3.VectorFromInts(x, y, z)}
}

// Pos returns the absolute coordinate offset + rel.
func (p Point) Pos() r3.Vector {
	return p.offset.Add(p.rel)
}

func (p Point) Offset() r3.Vector {
	return p.offset
}

func (p Point) Rel() r3.Vector {
	return p.rel
}

// SetOffset changes the offset, recomputing rel so that the absolute
// position is unchanged.
func (p *Point) SetOffset(offset r3.Vector) {
	p.rel = p.Pos().Sub(offset)
	p.offset = offset
}

// SetRel changes the local vector, recomputing the offset so that the
// absolute position is unchanged.
func (p *Point) SetRel(rel r3.Vector) {
	p.offset = p.Pos().Sub(rel)
	p.rel = rel
}

// Equals reports whether the two points have the same absolute
// position. The comparison is exact, so it holds (or fails) identically
// at every precision.
func (p Point) Equals(o Point) bool {
	return p.Pos().Equals(o.Pos())
}

func (p Point) IsOrigin() bool {
	return p.Pos().IsZero()
}

// Octant returns 0 for the origin, otherwise the octant code 1..8
// computed from the coordinate signs: 1 + 4*(x<0) + 2*(y<0) + (z<0).
// Zero coordinates group with the nonnegative side, so (0, 1, 2) is in
// octant 1 and (-1, 0, 0) in octant 5.
func (p Point) Octant() int {
	pos := p.Pos()
	if pos.IsZero() {
		return 0
	}
	oct := 1
	if pos.X.Sgn() < 0 {
		oct += 4
	}
	if pos.Y.Sgn() < 0 {
		oct += 2
	}
	if pos.Z.Sgn() < 0 {
		oct++
	}
	return oct
}

// DistanceSquaredToPoint returns the exact squared distance to o.
func (p Point) DistanceSquaredToPoint(o Point) exactrat.ExactRat {
	return o.Pos().Sub(p.Pos()).Norm2()
}

// DistanceToPoint returns the distance to o as a rational multiple of
// 10**oom (exact when the squared distance is a perfect square).
func (p Point) DistanceToPoint(o Point, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	d, _ := exactrat.Sqrt(p.DistanceSquaredToPoint(o), oom, mode)
	return d
}

// DistanceToLine returns the perpendicular distance from p to the
// infinite line l.
func (p Point) DistanceToLine(l Line, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	return l.DistanceToPoint(p, oom, mode)
}

// DistanceToLineSegment returns the distance from p to the segment s.
func (p Point) DistanceToLineSegment(s *LineSegment, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	return s.DistanceToPoint(p, oom, mode)
}

// DistanceToPlane returns the distance from p to the plane pl.
func (p Point) DistanceToPlane(pl *Plane, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	return pl.DistanceToPoint(p, oom, mode)
}

// Rotate moves the point about the axis line by theta radians
// (right-handed about the axis direction). The rotated position is
// found by translating so the axis passes through the origin, rotating
// the translated vector, and translating back. The rotation operates
// on the translated vector itself, so its magnitude never needs a
// root; sine, cosine, and the axis magnitude are rendered at oom,
// everything else is exact. The offset is preserved; rel absorbs the
// movement.
func (p *Point) Rotate(axis Line, theta exactrat.ExactRat, oom int, mode exactrat.RoundingMode) {
	a := axis.P().Pos()
	u := p.Pos().Sub(a)
	if u.IsZero() {
		return
	}
	k := axis.V().Unit(oom, mode)

	// Rodrigues: u' = u cos + (k x u) sin + k (k . u)(1 - cos)
	cos := exactrat.Cos(theta, oom, mode)
	sin := exactrat.Sin(theta, oom, mode)
	one := exactrat.FromInt(1)
	rot := u.Mul(cos).
		Add(k.Cross(u).Mul(sin)).
		Add(k.Mul(k.Dot(u).Mul(one.Sub(cos))))

	p.rel = a.Add(rot).Sub(p.offset)
}

func (p Point) String() string {
	return p.Pos().String()
}
