package v3d

import (
	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

// Envelope is an axis-aligned bounding box with exact rational bounds.
// It is the cheap broad-phase filter applied before any exact
// algebraic test: a query that fails the envelope test cannot
// intersect, and the (more expensive) exact computation is skipped.
type Envelope struct {
	XMin, XMax exactrat.ExactRat
	YMin, YMax exactrat.ExactRat
	ZMin, ZMax exactrat.ExactRat
}

// EnvelopeFromPoints returns the smallest envelope containing all
// given points. It panics on an empty argument list.
func EnvelopeFromPoints(pts ...Point) Envelope {
	if len(pts) == 0 {
		panic("v3d: EnvelopeFromPoints of no points")
	}
	pos := pts[0].Pos()
	e := Envelope{pos.X, pos.X, pos.Y, pos.Y, pos.Z, pos.Z}
	for _, p := range pts[1:] {
		pos = p.Pos()
		e.XMin = exactrat.Min(e.XMin, pos.X)
		e.XMax = exactrat.Max(e.XMax, pos.X)
		e.YMin = exactrat.Min(e.YMin, pos.Y)
		e.YMax = exactrat.Max(e.YMax, pos.Y)
		e.ZMin = exactrat.Min(e.ZMin, pos.Z)
		e.ZMax = exactrat.Max(e.ZMax, pos.Z)
	}
	return e
}

// Union returns the smallest envelope containing both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	return Envelope{
		exactrat.Min(e.XMin, o.XMin), exactrat.Max(e.XMax, o.XMax),
		exactrat.Min(e.YMin, o.YMin), exactrat.Max(e.YMax, o.YMax),
		exactrat.Min(e.ZMin, o.ZMin), exactrat.Max(e.ZMax, o.ZMax),
	}
}

// IntersectsEnvelope reports whether the two closed boxes share at
// least one point (touching faces count).
func (e Envelope) IntersectsEnvelope(o Envelope) bool {
	return e.XMin.Cmp(o.XMax) <= 0 && o.XMin.Cmp(e.XMax) <= 0 &&
		e.YMin.Cmp(o.YMax) <= 0 && o.YMin.Cmp(e.YMax) <= 0 &&
		e.ZMin.Cmp(o.ZMax) <= 0 && o.ZMin.Cmp(e.ZMax) <= 0
}

// ContainsPoint reports whether p lies in the closed box.
func (e Envelope) ContainsPoint(p Point) bool {
	pos := p.Pos()
	return e.XMin.Cmp(pos.X) <= 0 && pos.X.Cmp(e.XMax) <= 0 &&
		e.YMin.Cmp(pos.Y) <= 0 && pos.Y.Cmp(e.YMax) <= 0 &&
		e.ZMin.Cmp(pos.Z) <= 0 && pos.Z.Cmp(e.ZMax) <= 0
}

// IntersectsLine reports whether the infinite line l passes through
// the closed box.
func (e Envelope) IntersectsLine(l Line) bool {
	return e.intersectsParametric(l.P().Pos(), l.V(), false, exactrat.ExactRat{}, exactrat.ExactRat{})
}

// IntersectsLineSegment reports whether the segment passes through the
// closed box.
func (e Envelope) IntersectsLineSegment(s *LineSegment) bool {
	return e.intersectsParametric(s.P().Pos(), s.V(), true,
		exactrat.FromInt(0), exactrat.FromInt(1))
}

// intersectsParametric runs the exact slab test for the parametric
// line o + t*v, with t restricted to [t0, t1] when bounded. A zero
// direction component turns that axis into a pure containment check.
func (e Envelope) intersectsParametric(o, v r3.Vector, bounded bool, t0, t1 exactrat.ExactRat) bool {
	type axis struct {
		o, v, lo, hi exactrat.ExactRat
	}
	axes := []axis{
		{o.X, v.X, e.XMin, e.XMax},
		{o.Y, v.Y, e.YMin, e.YMax},
		{o.Z, v.Z, e.ZMin, e.ZMax},
	}
	haveLo, haveHi := bounded, bounded
	lo, hi := t0, t1
	for _, a := range axes {
		if a.v.IsZero() {
			if a.o.Cmp(a.lo) < 0 || a.o.Cmp(a.hi) > 0 {
				return false
			}
			continue
		}
		u := a.lo.Sub(a.o).Div(a.v)
		w := a.hi.Sub(a.o).Div(a.v)
		if u.Cmp(w) > 0 {
			u, w = w, u
		}
		if !haveLo || u.Cmp(lo) > 0 {
			lo, haveLo = u, true
		}
		if !haveHi || w.Cmp(hi) < 0 {
			hi, haveHi = w, true
		}
		if haveLo && haveHi && lo.Cmp(hi) > 0 {
			return false
		}
	}
	return true
}
