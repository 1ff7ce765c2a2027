package v3d

import (
	"fmt"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
)

// LineSegmentsCollinear is a non-empty set of segments that all lie on
// one infinite line. Order is irrelevant: two sets are equal when each
// member of one is covered by a member of the other and vice versa.
// The union envelope is cached lazily (idempotent racing fills, no
// locking, as for LineSegment).
type LineSegmentsCollinear struct {
	segments []*LineSegment
	env      *Envelope
}

// NewLineSegmentsCollinear returns the set of the given segments. It
// panics on an empty list. Collinearity of the members is the caller's
// responsibility; it is not validated.
func NewLineSegmentsCollinear(segments ...*LineSegment) *LineSegmentsCollinear {
	if len(segments) == 0 {
		panic("v3d: NewLineSegmentsCollinear of no segments")
	}
	return &LineSegmentsCollinear{segments: append([]*LineSegment(nil), segments...)}
}

// Segments returns the member segments. The slice is shared; callers
// must not modify it.
func (c *LineSegmentsCollinear) Segments() []*LineSegment {
	return c.segments
}

// Envelope returns the union of the member envelopes.
func (c *LineSegmentsCollinear) Envelope() Envelope {
	if c.env == nil {
		e := c.segments[0].Envelope()
		for _, s := range c.segments[1:] {
			e = e.Union(s.Envelope())
		}
		c.env = &e
	}
	return *c.env
}

// Equals reports set equality: every member of one set equals a member
// of the other, in either direction, regardless of order.
func (c *LineSegmentsCollinear) Equals(o *LineSegmentsCollinear) bool {
	return containsAll(c.segments, o.segments) && containsAll(o.segments, c.segments)
}

func containsAll(have, want []*LineSegment) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h.Equals(w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IntersectsPoint reports whether any member covers pt.
func (c *LineSegmentsCollinear) IntersectsPoint(pt Point) bool {
	if !c.Envelope().ContainsPoint(pt) {
		return false
	}
	for _, s := range c.segments {
		if s.IntersectsPoint(pt) {
			return true
		}
	}
	return false
}

// DistanceToPoint returns 0 when a member covers pt, otherwise the
// minimum of the member distances at oom.
func (c *LineSegmentsCollinear) DistanceToPoint(pt Point, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	if c.IntersectsPoint(pt) {
		return exactrat.ExactRat{}
	}
	return c.minOverSegments(func(s *LineSegment) exactrat.ExactRat {
		return s.DistanceToPoint(pt, oom, mode)
	})
}

// DistanceToLine returns 0 when the line meets a member, otherwise the
// minimum of the member distances at oom.
func (c *LineSegmentsCollinear) DistanceToLine(l Line, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	for _, s := range c.segments {
		if s.IntersectsLine(l) {
			return exactrat.ExactRat{}
		}
	}
	return c.minOverSegments(func(s *LineSegment) exactrat.ExactRat {
		return distanceSegmentToLine(s, l, oom, mode)
	})
}

// DistanceToSegment returns 0 when the segment meets a member,
// otherwise the minimum of the member distances at oom.
func (c *LineSegmentsCollinear) DistanceToSegment(o *LineSegment, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	for _, s := range c.segments {
		if s.IntersectSegment(o) != nil {
			return exactrat.ExactRat{}
		}
	}
	return c.minOverSegments(func(s *LineSegment) exactrat.ExactRat {
		return s.DistanceToSegment(o, oom, mode)
	})
}

func (c *LineSegmentsCollinear) minOverSegments(f func(*LineSegment) exactrat.ExactRat) exactrat.ExactRat {
	min := f(c.segments[0])
	for _, s := range c.segments[1:] {
		min = exactrat.Min(min, f(s))
	}
	return min
}

// distanceSegmentToLine is the closest distance between a finite
// segment and an infinite line: the receiver-side parameter is clamped
// to the segment, the line side is unbounded.
func distanceSegmentToLine(s *LineSegment, l Line, oom int, mode exactrat.RoundingMode) exactrat.ExactRat {
	d1 := s.V()
	d2 := l.V()
	if d1.IsZero() {
		return l.DistanceToPoint(s.P(), oom, mode)
	}
	if d1.IsScalarMultiple(d2) {
		// Parallel: every point of the segment is equidistant.
		return l.DistanceToPoint(s.P(), oom, mode)
	}
	r := s.P().Pos().Sub(l.P().Pos())
	a := d1.Norm2()
	e := d2.Norm2()
	b := d1.Dot(d2)
	c := d1.Dot(r)
	f := d2.Dot(r)
	denom := a.Mul(e).Sub(b.Mul(b)) // nonzero: not parallel
	sp := clamp01(b.Mul(f).Sub(c.Mul(e)).Div(denom))
	tp := b.Mul(sp).Add(f).Div(e)
	c1 := s.P().Pos().Add(d1.Mul(sp))
	c2 := l.P().Pos().Add(d2.Mul(tp))
	d, _ := exactrat.Sqrt(c1.Sub(c2).Norm2(), oom, mode)
	return d
}

// Simplify reduces the set to a minimal covering of the same point
// set: a single *LineSegment when everything merges into one span,
// otherwise a *LineSegmentsCollinear with no two members overlapping.
// The merge loop is iterative over an explicit work list; each merge
// strictly reduces the member count, so it terminates.
func (c *LineSegmentsCollinear) Simplify() Geometry {
	segs := append([]*LineSegment(nil), c.segments...)
	for i := 0; i < len(segs)-1; {
		merged := false
		for j := i + 1; j < len(segs); j++ {
			m, ok := mergeCollinear(segs[i], segs[j])
			if !ok {
				continue
			}
			segs[i] = m
			segs = append(segs[:j], segs[j+1:]...)
			merged = true
			j--
		}
		if !merged {
			i++
		}
		// Otherwise rescan the same index: the grown segment may now
		// overlap members it previously missed.
	}
	if len(segs) == 1 {
		return segs[0]
	}
	return NewLineSegmentsCollinear(segs...)
}

// mergeCollinear merges two collinear segments that intersect (overlap
// or touch) into the single segment spanning their extreme endpoints.
// The second result is false when they do not intersect.
func mergeCollinear(a, b *LineSegment) (*LineSegment, bool) {
	if a.IntersectSegment(b) == nil {
		return nil, false
	}
	lo, hi := a.P(), a.Q()
	d2 := lo.DistanceSquaredToPoint(hi)
	for _, cand := range [][2]Point{
		{a.P(), b.P()}, {a.P(), b.Q()},
		{a.Q(), b.P()}, {a.Q(), b.Q()},
		{b.P(), b.Q()},
	} {
		if c2 := cand[0].DistanceSquaredToPoint(cand[1]); c2.Cmp(d2) > 0 {
			lo, hi, d2 = cand[0], cand[1], c2
		}
	}
	return NewLineSegment(lo, hi), true
}

func (c *LineSegmentsCollinear) String() string {
	return fmt.Sprintf("collinear%v", c.segments)
}
