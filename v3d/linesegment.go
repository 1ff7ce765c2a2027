package v3d

import (
	"fmt"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

// LineSegment is the finite extent of a line between two endpoints.
// (p, q) and (q, p) denote the same segment. Zero-length segments
// (p == q) are permitted; queries treat them as points.
//
// The squared length and the envelope are cached lazily. Racing fills
// recompute the same value, so no synchronization is used; the fields
// are written once with the final result.
type LineSegment struct {
	p, q Point
	len2 *exactrat.ExactRat
	env  *Envelope
}

// NewLineSegment returns the segment between the two endpoints.
func NewLineSegment(p, q Point) *LineSegment {
	return &LineSegment{p: p, q: q}
}

func (s *LineSegment) P() Point { return s.p }

func (s *LineSegment) Q() Point { return s.q }

// V returns the vector from p to q.
func (s *LineSegment) V() r3.Vector {
	return s.q.Pos().Sub(s.p.Pos())
}

// Line returns the infinite line through the segment. It panics for a
// zero-length segment, which spans no line.
func (s *LineSegment) Line() Line {
	return NewLine(s.p, s.q)
}

// Length2 returns the exact squared length.
func (s *LineSegment) Length2() exactrat.ExactRat {
	if s.len2 == nil {
		l2 := s.V().Norm2()
		s.len2 = &l2
	}
	return *s.len2
}

// Length returns the length rendered at oom.
func (s *LineSegment) Length(oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	l, _ := exactrat.Sqrt(s.Length2(), oom, mode)
	return l
}

// Envelope returns the segment's axis-aligned bounding box.
func (s *LineSegment) Envelope() Envelope {
	if s.env == nil {
		e := EnvelopeFromPoints(s.p, s.q)
		s.env = &e
	}
	return *s.env
}

// Equals reports whether the two segments cover the same extent,
// regardless of endpoint order.
func (s *LineSegment) Equals(o *LineSegment) bool {
	if s.p.Equals(o.p) {
		return s.q.Equals(o.q)
	}
	return s.p.Equals(o.q) && s.q.Equals(o.p)
}

// IntersectsPoint reports whether pt lies on the segment: an envelope
// gate, then exact collinearity with the segment's line, then the
// betweenness test (the sum of the distances from pt to the endpoints
// equals the segment length exactly when the vectors to the endpoints
// point in opposite directions, which is the sign test used here).
func (s *LineSegment) IntersectsPoint(pt Point) bool {
	if !s.Envelope().ContainsPoint(pt) {
		return false
	}
	if s.Length2().IsZero() {
		return pt.Equals(s.p)
	}
	if !s.Line().IntersectsPoint(pt) {
		return false
	}
	a := pt.Pos().Sub(s.p.Pos())
	b := pt.Pos().Sub(s.q.Pos())
	return a.Dot(b).Sgn() <= 0
}

// IntersectsLine reports whether the infinite line l meets the segment.
func (s *LineSegment) IntersectsLine(l Line) bool {
	return s.IntersectLine(l) != nil
}

// IntersectLine intersects the segment with an infinite line: nil when
// they miss, the crossing Point when the underlying lines cross inside
// the segment, or the segment itself when l is coincident with it.
func (s *LineSegment) IntersectLine(l Line) Geometry {
	if s.Length2().IsZero() {
		if l.IntersectsPoint(s.p) {
			return s.p
		}
		return nil
	}
	switch g := s.Line().IntersectLine(l).(type) {
	case nil:
		return nil
	case Point:
		if s.IntersectsPoint(g) {
			return g
		}
		return nil
	default: // coincident lines
		return s
	}
}

// IntersectSegment intersects two segments. The result is nil, a
// Point (a crossing, or collinear segments touching at an endpoint),
// or a segment: o when o lies inside s (including identity), s when s
// lies inside o, or a new segment spanning the shared extent of a
// partial collinear overlap.
func (s *LineSegment) IntersectSegment(o *LineSegment) Geometry {
	if !s.Envelope().IntersectsEnvelope(o.Envelope()) {
		return nil
	}
	if s.Length2().IsZero() {
		if o.IntersectsPoint(s.p) {
			return s.p
		}
		return nil
	}
	if o.Length2().IsZero() {
		if s.IntersectsPoint(o.p) {
			return o.p
		}
		return nil
	}
	switch g := s.Line().IntersectLine(o.Line()).(type) {
	case nil:
		return nil
	case Point:
		if s.IntersectsPoint(g) && o.IntersectsPoint(g) {
			return g
		}
		return nil
	}

	// Collinear segments. Resolve by endpoint containment, checking
	// o.p against s first.
	if s.IntersectsPoint(o.p) {
		if s.IntersectsPoint(o.q) {
			return o
		}
		// o.p is inside s, o.q is not: the overlap runs from o.p to
		// whichever endpoint of s lies inside o.
		if o.IntersectsPoint(s.p) {
			return spanOrPoint(o.p, s.p)
		}
		return spanOrPoint(o.p, s.q)
	}
	if s.IntersectsPoint(o.q) {
		// Symmetric: overlap runs from o.q to the s endpoint inside o.
		if o.IntersectsPoint(s.p) {
			return spanOrPoint(o.q, s.p)
		}
		return spanOrPoint(o.q, s.q)
	}
	// Neither endpoint of o is inside s: either s lies wholly inside o
	// or the envelope gate let a disjoint collinear pair through.
	if o.IntersectsPoint(s.p) && o.IntersectsPoint(s.q) {
		return s
	}
	return nil
}

// spanOrPoint returns the segment between a and b, degrading to the
// single Point when they coincide (collinear segments touching at one
// endpoint).
func spanOrPoint(a, b Point) Geometry {
	if a.Equals(b) {
		return a
	}
	return NewLineSegment(a, b)
}

// DistanceToPoint returns the distance from pt to the segment at oom.
// When the perpendicular foot on the underlying line falls outside the
// segment the closest approach is an endpoint; the branch is decided
// on exact squared quantities and the root is taken once.
func (s *LineSegment) DistanceToPoint(pt Point, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	if s.Length2().IsZero() {
		return pt.DistanceToPoint(s.p, oom, mode)
	}
	a2 := pt.DistanceSquaredToPoint(s.p)
	b2 := pt.DistanceSquaredToPoint(s.q)
	d2 := s.Line().distanceSquaredToPoint(pt)
	len2 := s.Length2()
	res2 := d2
	if d2.Cmp(a2) < 0 && d2.Cmp(b2) < 0 && a2.Cmp(len2) > 0 && b2.Cmp(len2) > 0 {
		res2 = exactrat.Min(a2, b2)
	}
	d, _ := exactrat.Sqrt(res2, oom, mode)
	return d
}

// DistanceToSegment returns the closest distance between two segments
// at oom, via the clamped parametric closest-point computation over
// exact rationals. Skew, crossing, parallel, and zero-length cases all
// reduce to exact comparisons; the root is taken once at the end.
func (s *LineSegment) DistanceToSegment(o *LineSegment, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	d1 := s.V()
	d2 := o.V()
	r := s.p.Pos().Sub(o.p.Pos())
	a := d1.Norm2()
	e := d2.Norm2()

	if a.IsZero() && e.IsZero() {
		return s.p.DistanceToPoint(o.p, oom, mode)
	}
	if a.IsZero() {
		return o.DistanceToPoint(s.p, oom, mode)
	}
	if e.IsZero() {
		return s.DistanceToPoint(o.p, oom, mode)
	}

	f := d2.Dot(r)
	c := d1.Dot(r)
	b := d1.Dot(d2)
	denom := a.Mul(e).Sub(b.Mul(b))

	// sp parameterizes s, tp parameterizes o, both clamped to [0, 1].
	sp := exactrat.ExactRat{}
	if !denom.IsZero() {
		sp = clamp01(b.Mul(f).Sub(c.Mul(e)).Div(denom))
	}
	tp := b.Mul(sp).Add(f).Div(e)
	if tp.Sgn() < 0 {
		tp = exactrat.ExactRat{}
		sp = clamp01(c.Neg().Div(a))
	} else if tp.Cmp(exactrat.FromInt(1)) > 0 {
		tp = exactrat.FromInt(1)
		sp = clamp01(b.Sub(c).Div(a))
	}

	c1 := s.p.Pos().Add(d1.Mul(sp))
	c2 := o.p.Pos().Add(d2.Mul(tp))
	d, _ := exactrat.Sqrt(c1.Sub(c2).Norm2(), oom, mode)
	return d
}

func clamp01(x exactrat.ExactRat) exactrat.ExactRat {
	if x.Sgn() < 0 {
		return exactrat.ExactRat{}
	}
	if x.Cmp(exactrat.FromInt(1)) > 0 {
		return exactrat.FromInt(1)
	}
	return x
}

func (s *LineSegment) String() string {
	return fmt.Sprintf("segment(%v, %v)", s.p, s.q)
}
