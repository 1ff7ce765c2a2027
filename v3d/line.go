package v3d

import (
	"fmt"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

// Line is an infinite line through p with nonzero direction v (q is a
// second point on the line, q = p + v). Lines are immutable values.
type Line struct {
	p, q Point
	v    r3.Vector
}

// NewLine returns the line through the two points. It panics if the
// points coincide: a valid line never has a zero direction.
func NewLine(p, q Point) Line {
	v := q.Pos().Sub(p.Pos())
	if v.IsZero() {
		panic(fmt.Sprintf("v3d: NewLine through coincident points %v", p))
	}
	return Line{p: p, q: q, v: v}
}

// NewLineFromVector returns the line through p with direction v. It
// panics if v is zero.
func NewLineFromVector(p Point, v r3.Vector) Line {
	if v.IsZero() {
		panic("v3d: NewLineFromVector with zero direction")
	}
	return Line{p: p, q: NewPointOffset(p.Offset(), p.Rel().Add(v)), v: v}
}

// P returns the line's first defining point.
func (l Line) P() Point { return l.p }

// Q returns the line's second defining point.
func (l Line) Q() Point { return l.q }

// V returns the line's direction.
func (l Line) V() r3.Vector { return l.v }

// IsParallelToLine reports whether the two directions are scalar
// multiples (zero cross product). Coincident lines are parallel.
func (l Line) IsParallelToLine(o Line) bool {
	return l.v.IsScalarMultiple(o.v)
}

// IsParallelToPlane reports whether the line's direction lies in the
// plane's direction space (zero dot with the plane normal). A line in
// the plane is parallel to it.
func (l Line) IsParallelToPlane(pl *Plane) bool {
	return l.v.Dot(pl.Normal()).IsZero()
}

// IsOnPlane reports whether the whole line lies in the plane (both
// defining points on it).
func (l Line) IsOnPlane(pl *Plane) bool {
	return pl.IntersectsPoint(l.p) && pl.IntersectsPoint(l.q)
}

// IntersectsPoint reports whether pt lies on the line.
func (l Line) IntersectsPoint(pt Point) bool {
	return l.v.IsScalarMultiple(pt.Pos().Sub(l.p.Pos()))
}

// Equals reports whether the two lines are coincident (parallel and
// sharing a point).
func (l Line) Equals(o Line) bool {
	return l.IsParallelToLine(o) && l.IntersectsPoint(o.p)
}

// IntersectLine intersects the two infinite lines. The result is nil
// when they are skew or parallel-and-distinct, a Point when they
// cross, or the receiver Line when they are coincident.
func (l Line) IntersectLine(o Line) Geometry {
	if l.IsParallelToLine(o) {
		if l.IntersectsPoint(o.p) {
			return l
		}
		return nil
	}
	w := o.p.Pos().Sub(l.p.Pos())
	vxov := l.v.Cross(o.v)
	// The lines meet only if p, o.p, v, o.v are coplanar: the triple
	// product of w with the two directions must vanish.
	if !w.Dot(vxov).IsZero() {
		return nil
	}
	t := w.Cross(o.v).Dot(vxov).Div(vxov.Norm2())
	return NewPoint(l.p.Pos().Add(l.v.Mul(t)))
}

// DistanceToPoint returns the perpendicular distance from pt to the
// line, rendered at oom.
func (l Line) DistanceToPoint(pt Point, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	d, _ := exactrat.Sqrt(l.distanceSquaredToPoint(pt), oom, mode)
	return d
}

// distanceSquaredToPoint is the exact squared perpendicular distance
// |v x (x - p)|^2 / |v|^2.
func (l Line) distanceSquaredToPoint(pt Point) exactrat.ExactRat {
	w := pt.Pos().Sub(l.p.Pos())
	return l.v.Cross(w).Norm2().Div(l.v.Norm2())
}

func (l Line) String() string {
	return fmt.Sprintf("line(%v + t*%v)", l.p, l.v)
}
