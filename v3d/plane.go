package v3d

import (
	"errors"
	"fmt"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

// ErrDegeneratePlane is returned by NewPlaneChecked when the three
// defining points are collinear (or coincident) and so span no plane.
var ErrDegeneratePlane = errors.New("v3d: plane points are collinear")

// Plane is defined by three non-collinear points p, q, r, with derived
// edge vectors pq, qr, rp and normal n. Two planes are equal when
// their defining point triples are coplanar, independent of the normal
// sign or of which points were chosen.
type Plane struct {
	p, q, r    Point
	pq, qr, rp r3.Vector
	n          r3.Vector
}

// NewPlane returns the plane through the three points. Degeneracy is
// not validated; use NewPlaneChecked to opt in.
func NewPlane(p, q, r Point) *Plane {
	pl := &Plane{
		p:  p,
		q:  q,
		r:  r,
		pq: q.Pos().Sub(p.Pos()),
		qr: r.Pos().Sub(q.Pos()),
		rp: p.Pos().Sub(r.Pos()),
	}
	// For a triangle pq x qr == qr x rp, so both branches derive the
	// same normal.
	if q.IsOrigin() {
		pl.n = pl.qr.Cross(pl.rp)
	} else {
		pl.n = pl.pq.Cross(pl.qr)
	}
	return pl
}

// NewPlaneChecked is NewPlane with opt-in validation: it returns
// ErrDegeneratePlane when the points do not span a plane.
func NewPlaneChecked(p, q, r Point) (*Plane, error) {
	pl := NewPlane(p, q, r)
	if pl.n.IsZero() {
		return nil, ErrDegeneratePlane
	}
	return pl, nil
}

// NewPlaneFromNormal returns the plane through p with normal n. Two
// further in-plane points are synthesized: the first along whichever
// of the three canonical perpendicular candidates to n has the largest
// squared magnitude (an axis-aligned n zeroes one candidate), the
// second along the cross product of n with it. n must be nonzero.
func NewPlaneFromNormal(p Point, n r3.Vector) *Plane {
	if n.IsZero() {
		panic("v3d: NewPlaneFromNormal with zero normal")
	}
	candidates := []r3.Vector{
		n.Cross(r3.VectorFromInts(1, 0, 0)),
		n.Cross(r3.VectorFromInts(0, 1, 0)),
		n.Cross(r3.VectorFromInts(0, 0, 1)),
	}
	v1 := candidates[0]
	best := v1.Norm2()
	for _, c := range candidates[1:] {
		if c2 := c.Norm2(); c2.Cmp(best) > 0 {
			v1, best = c, c2
		}
	}
	v2 := n.Cross(v1)
	q := NewPointOffset(p.Offset(), p.Rel().Add(v1))
	r := NewPointOffset(p.Offset(), p.Rel().Add(v2))
	return NewPlane(p, q, r)
}

func (pl *Plane) P() Point { return pl.p }
func (pl *Plane) Q() Point { return pl.q }
func (pl *Plane) R() Point { return pl.r }

// Normal returns the derived (unnormalized) normal vector.
func (pl *Plane) Normal() r3.Vector { return pl.n }

// IntersectsPoint reports whether pt is coplanar with the defining
// points: the 4x4 homogeneous-coordinate determinant vanishes.
func (pl *Plane) IntersectsPoint(pt Point) bool {
	one := exactrat.FromInt(1)
	a := pl.p.Pos()
	b := pl.q.Pos()
	c := pl.r.Pos()
	x := pt.Pos()
	m := r3.Matrix4{
		{a.X, a.Y, a.Z, one},
		{b.X, b.Y, b.Z, one},
		{c.X, c.Y, c.Z, one},
		{x.X, x.Y, x.Z, one},
	}
	return m.Det().IsZero()
}

// IntersectsLine reports whether the line meets the plane: always,
// unless the line is parallel to the plane and not lying in it.
func (pl *Plane) IntersectsLine(l Line) bool {
	if !l.IsParallelToPlane(pl) {
		return true
	}
	return l.IsOnPlane(pl)
}

// IntersectLine intersects a line with the plane: the line itself when
// it lies in the plane, nil when parallel and off the plane, otherwise
// the single crossing point. A defining point of the line already on
// the plane is returned directly; otherwise the line parameter is
// solved as a ratio of two 3x3 determinants (Cramer's rule) and
// substituted.
func (pl *Plane) IntersectLine(l Line) Geometry {
	if l.IsParallelToPlane(pl) {
		if l.IsOnPlane(pl) {
			return l
		}
		return nil
	}
	if pl.IntersectsPoint(l.P()) {
		return l.P()
	}
	if pl.IntersectsPoint(l.Q()) {
		return l.Q()
	}
	a := l.P().Pos()
	num := r3.Matrix3FromRows(pl.pq, pl.qr, pl.p.Pos().Sub(a)).Det()
	den := r3.Matrix3FromRows(pl.pq, pl.qr, l.V()).Det()
	t := num.Div(den)
	return NewPoint(a.Add(l.V().Mul(t)))
}

// IntersectLineSegment intersects a segment with the plane: nil, the
// crossing Point when it falls inside the segment, or the segment
// itself when it lies in the plane.
func (pl *Plane) IntersectLineSegment(s *LineSegment) Geometry {
	if s.Length2().IsZero() {
		if pl.IntersectsPoint(s.P()) {
			return s.P()
		}
		return nil
	}
	switch g := pl.IntersectLine(s.Line()).(type) {
	case nil:
		return nil
	case Point:
		if s.IntersectsPoint(g) {
			return g
		}
		return nil
	default: // the whole line lies in the plane
		return s
	}
}

// IntersectsLineSegment reports whether the segment meets the plane.
func (pl *Plane) IntersectsLineSegment(s *LineSegment) bool {
	return pl.IntersectLineSegment(s) != nil
}

// IsParallelToPlane reports whether the two normals are scalar
// multiples. Equal planes are parallel.
func (pl *Plane) IsParallelToPlane(o *Plane) bool {
	return pl.n.IsScalarMultiple(o.n)
}

// IntersectPlane intersects two planes: the receiver when they are
// equal, nil when parallel and distinct, otherwise their common line.
// The line's direction is the cross product of the normals; its anchor
// comes from intersecting whichever of this plane's edges is not
// parallel to that direction (as an infinite line) with the other
// plane.
func (pl *Plane) IntersectPlane(o *Plane) Geometry {
	dir := pl.n.Cross(o.n)
	if dir.IsZero() {
		if pl.Equals(o) {
			return pl
		}
		return nil
	}
	var edge Line
	if !pl.pq.IsScalarMultiple(dir) {
		edge = NewLineFromVector(pl.p, pl.pq)
	} else {
		edge = NewLineFromVector(pl.q, pl.qr)
	}
	anchor := o.IntersectLine(edge).(Point)
	return NewLineFromVector(anchor, dir)
}

// Equals reports whether o describes the same plane: all of o's
// defining points satisfy this plane's equation. Normal signs and the
// particular choice of defining points do not matter.
func (pl *Plane) Equals(o *Plane) bool {
	return pl.IntersectsPoint(o.p) && pl.IntersectsPoint(o.q) && pl.IntersectsPoint(o.r)
}

// DistanceToPoint returns the distance from pt to the plane at oom: 0
// when pt is on the plane, otherwise |n . (x - p)| / |n| computed on
// exact squared quantities with one root at the end.
func (pl *Plane) DistanceToPoint(pt Point, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	if pl.IntersectsPoint(pt) {
		return exactrat.ExactRat{}
	}
	w := pt.Pos().Sub(pl.p.Pos())
	dot := pl.n.Dot(w)
	d2 := dot.Mul(dot).Div(pl.n.Norm2())
	d, _ := exactrat.Sqrt(d2, oom, mode)
	return d
}

// DistanceToLine returns 0 when the line meets the plane, otherwise
// (the line being parallel and off the plane) the distance from its
// reference point.
func (pl *Plane) DistanceToLine(l Line, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	if pl.IntersectsLine(l) {
		return exactrat.ExactRat{}
	}
	return pl.DistanceToPoint(l.P(), oom, mode)
}

// DistanceToLineSegment returns 0 when the segment meets the plane,
// otherwise the minimum of the endpoint distances.
func (pl *Plane) DistanceToLineSegment(s *LineSegment, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	if pl.IntersectLineSegment(s) != nil {
		return exactrat.ExactRat{}
	}
	return exactrat.Min(
		pl.DistanceToPoint(s.P(), oom, mode),
		pl.DistanceToPoint(s.Q(), oom, mode),
	)
}

// DistanceToPlane returns 0 unless the planes are parallel and
// distinct, in which case it is the distance from this plane's
// reference point to its projection on the other plane, found by
// intersecting the reference-point normal line with the other plane.
func (pl *Plane) DistanceToPlane(o *Plane, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	if !pl.IsParallelToPlane(o) || pl.Equals(o) {
		return exactrat.ExactRat{}
	}
	normalLine := NewLineFromVector(pl.p, pl.n)
	proj := o.IntersectLine(normalLine).(Point)
	return pl.p.DistanceToPoint(proj, oom, mode)
}

func (pl *Plane) String() string {
	return fmt.Sprintf("plane(%v, %v, %v)", pl.p, pl.q, pl.r)
}
