package v3d

import (
	"testing"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

func seg(x1, y1, z1, x2, y2, z2 int64) *LineSegment {
	return NewLineSegment(PointFromInts(x1, y1, z1), PointFromInts(x2, y2, z2))
}

func TestSegmentEquals(t *testing.T) {
	a := seg(0, 0, 0, 10, 0, 0)
	b := seg(10, 0, 0, 0, 0, 0)
	if !a.Equals(b) {
		t.Errorf("%v.Equals(reversed) = false, want true", a)
	}
	c := seg(0, 0, 0, 9, 0, 0)
	if a.Equals(c) {
		t.Errorf("%v.Equals(%v) = true, want false", a, c)
	}
}

func TestSegmentSelfIntersection(t *testing.T) {
	segs := []*LineSegment{
		seg(0, 0, 0, 10, 0, 0),
		seg(-1, -2, -3, 4, 5, 6),
	}
	for _, s := range segs {
		g := s.IntersectSegment(s)
		got, ok := g.(*LineSegment)
		if !ok {
			t.Fatalf("IntersectSegment(self) = %v, want a segment", g)
		}
		if !got.Equals(s) {
			t.Errorf("IntersectSegment(self) = %v, want %v", got, s)
		}
	}
}

func TestSegmentIntersectsPoint(t *testing.T) {
	s := seg(0, 0, 0, 10, 0, 0)
	tests := []struct {
		p    Point
		want bool
	}{
		{PointFromInts(5, 0, 0), true},
		{PointFromInts(0, 0, 0), true},  // endpoint
		{PointFromInts(10, 0, 0), true}, // endpoint
		{PointFromInts(11, 0, 0), false},
		{PointFromInts(-1, 0, 0), false},
		{PointFromInts(5, 1, 0), false}, // off the line but inside the envelope span
	}
	for _, test := range tests {
		if got := s.IntersectsPoint(test.p); got != test.want {
			t.Errorf("IntersectsPoint(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}

// Collinear overlapping segments share the segment (5,0,0)-(10,0,0).
func TestSegmentOverlap(t *testing.T) {
	a := seg(0, 0, 0, 10, 0, 0)
	b := seg(5, 0, 0, 15, 0, 0)
	want := seg(5, 0, 0, 10, 0, 0)
	for _, pair := range [][2]*LineSegment{{a, b}, {b, a}} {
		g := pair[0].IntersectSegment(pair[1])
		got, ok := g.(*LineSegment)
		if !ok {
			t.Fatalf("IntersectSegment(%v, %v) = %v, want a segment", pair[0], pair[1], g)
		}
		if !got.Equals(want) {
			t.Errorf("IntersectSegment(%v, %v) = %v, want %v", pair[0], pair[1], got, want)
		}
	}
}

func TestSegmentIntersectSegmentCases(t *testing.T) {
	base := seg(0, 0, 0, 10, 0, 0)

	// Full containment returns the inner segment.
	inner := seg(2, 0, 0, 8, 0, 0)
	if g := base.IntersectSegment(inner); g != inner {
		t.Errorf("IntersectSegment(containing, inner) = %v, want the inner segment", g)
	}
	if g := inner.IntersectSegment(base); g != inner {
		t.Errorf("IntersectSegment(inner, containing) = %v, want the inner segment", g)
	}

	// Crossing segments meet in a point.
	crossing := seg(5, -5, 0, 5, 5, 0)
	g := base.IntersectSegment(crossing)
	pt, ok := g.(Point)
	if !ok {
		t.Fatalf("IntersectSegment(crossing) = %v, want a Point", g)
	}
	if !pt.Equals(PointFromInts(5, 0, 0)) {
		t.Errorf("crossing point = %v, want (5, 0, 0)", pt)
	}

	// Collinear segments touching at an endpoint intersect in that point.
	touching := seg(10, 0, 0, 20, 0, 0)
	g = base.IntersectSegment(touching)
	pt, ok = g.(Point)
	if !ok {
		t.Fatalf("IntersectSegment(touching) = %v, want a Point", g)
	}
	if !pt.Equals(PointFromInts(10, 0, 0)) {
		t.Errorf("touching point = %v, want (10, 0, 0)", pt)
	}

	// Disjoint collinear, disjoint parallel, and skew segments miss.
	for _, o := range []*LineSegment{
		seg(11, 0, 0, 20, 0, 0),
		seg(0, 1, 0, 10, 1, 0),
		seg(5, -5, 1, 5, 5, 1),
	} {
		if g := base.IntersectSegment(o); g != nil {
			t.Errorf("IntersectSegment(%v, %v) = %v, want nil", base, o, g)
		}
	}
}

func TestSegmentIntersectLine(t *testing.T) {
	s := seg(0, 0, 0, 10, 0, 0)

	cross := NewLineFromVector(PointFromInts(5, -5, 0), r3.VectorFromInts(0, 1, 0))
	g := s.IntersectLine(cross)
	pt, ok := g.(Point)
	if !ok {
		t.Fatalf("IntersectLine(crossing) = %v, want a Point", g)
	}
	if !pt.Equals(PointFromInts(5, 0, 0)) {
		t.Errorf("crossing point = %v, want (5, 0, 0)", pt)
	}

	// Crossing the underlying line outside the segment misses.
	outside := NewLineFromVector(PointFromInts(15, -5, 0), r3.VectorFromInts(0, 1, 0))
	if g := s.IntersectLine(outside); g != nil {
		t.Errorf("IntersectLine(outside crossing) = %v, want nil", g)
	}

	// A coincident line yields the segment.
	coincident := NewLineFromVector(PointFromInts(-5, 0, 0), r3.VectorFromInts(1, 0, 0))
	if g := s.IntersectLine(coincident); g != Geometry(s) {
		t.Errorf("IntersectLine(coincident) = %v, want the segment", g)
	}
	if !s.IntersectsLine(coincident) {
		t.Errorf("IntersectsLine(coincident) = false, want true")
	}
}

func TestSegmentDistanceToPoint(t *testing.T) {
	s := seg(0, 0, 0, 10, 0, 0)
	tests := []struct {
		p    Point
		want exactrat.ExactRat
	}{
		{PointFromInts(5, 0, 0), ri(0)},
		{PointFromInts(5, 3, 0), ri(3)}, // perpendicular foot inside
		// Both endpoint distances exceed the length: the nearer
		// endpoint is the closest approach.
		{PointFromInts(22, 0, 9), ri(15)},
		// Only one endpoint distance exceeds the length: the contract
		// falls back to the perpendicular line distance.
		{PointFromInts(13, 4, 0), ri(4)},
		{PointFromInts(-3, 0, 4), ri(4)},
		{PointFromInts(10, 0, 0), ri(0)}, // endpoint itself
	}
	for _, test := range tests {
		if got := s.DistanceToPoint(test.p, testOOM, testMode); !got.Equals(test.want) {
			t.Errorf("DistanceToPoint(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}

func TestSegmentDistanceToSegment(t *testing.T) {
	tests := []struct {
		a, b *LineSegment
		want exactrat.ExactRat
	}{
		// Intersecting segments are at distance zero.
		{seg(0, 0, 0, 10, 0, 0), seg(5, -5, 0, 5, 5, 0), ri(0)},
		// Parallel segments with full lateral overlap.
		{seg(0, 0, 0, 10, 0, 0), seg(0, 3, 0, 10, 3, 0), ri(3)},
		// Collinear, end to end with a gap.
		{seg(0, 0, 0, 10, 0, 0), seg(13, 0, 4, 20, 0, 4), ri(5)},
		// Skew: closest approach between interiors.
		{seg(-5, 0, 0, 5, 0, 0), seg(0, -5, 7, 0, 5, 7), ri(7)},
		// Endpoint to endpoint.
		{seg(0, 0, 0, 10, 0, 0), seg(13, 4, 0, 20, 4, 0), ri(5)},
	}
	for _, test := range tests {
		for _, pair := range [][2]*LineSegment{{test.a, test.b}, {test.b, test.a}} {
			got := pair[0].DistanceToSegment(pair[1], testOOM, testMode)
			if !got.Equals(test.want) {
				t.Errorf("DistanceToSegment(%v, %v) = %v, want %v",
					pair[0], pair[1], got, test.want)
			}
		}
	}
}

func TestSegmentDistanceToSegmentDegenerate(t *testing.T) {
	pointSeg := NewLineSegment(PointFromInts(0, 3, 4), PointFromInts(0, 3, 4))
	s := seg(0, 0, 0, 10, 0, 0)
	if got := s.DistanceToSegment(pointSeg, testOOM, testMode); !got.Equals(ri(5)) {
		t.Errorf("distance to zero-length segment = %v, want 5", got)
	}
	other := NewLineSegment(PointFromInts(3, 7, 4), PointFromInts(3, 7, 4))
	if got := pointSeg.DistanceToSegment(other, testOOM, testMode); !got.Equals(ri(5)) {
		t.Errorf("distance between zero-length segments = %v, want 5", got)
	}
}

func TestSegmentLengthAndEnvelope(t *testing.T) {
	s := seg(1, 2, 3, 4, 6, 3)
	if got := s.Length2(); !got.Equals(ri(25)) {
		t.Errorf("Length2 = %v, want 25", got)
	}
	if got := s.Length(testOOM, testMode); !got.Equals(ri(5)) {
		t.Errorf("Length = %v, want 5", got)
	}
	e := s.Envelope()
	if !e.XMin.Equals(ri(1)) || !e.XMax.Equals(ri(4)) ||
		!e.YMin.Equals(ri(2)) || !e.YMax.Equals(ri(6)) ||
		!e.ZMin.Equals(ri(3)) || !e.ZMax.Equals(ri(3)) {
		t.Errorf("Envelope = %+v, want [1,4]x[2,6]x[3,3]", e)
	}
}
