package v3d

import (
	"testing"

	"github.com/agdturner/ccg-vector3D-sub001/exactrat"
	"github.com/agdturner/ccg-vector3D-sub001/r3"
)

const (
	testOOM  = -6
	testMode = exactrat.RoundHalfEven
)

func ri(v int64) exactrat.ExactRat { return exactrat.FromInt(v) }

func TestPointSelfEquality(t *testing.T) {
	pts := []Point{
		PointFromInts(0, 0, 0),
		PointFromInts(1, -2, 3),
		NewPointOffset(r3.VectorFromInts(5, 5, 5), r3.VectorFromInts(-4, -7, -2)),
	}
	for _, p := range pts {
		// Exact comparison: holds at every precision by construction.
		if !p.Equals(p) {
			t.Errorf("%v.Equals(itself) = false, want true", p)
		}
	}
}

func TestPointEqualsAcrossDecompositions(t *testing.T) {
	// Same absolute position, different offset/rel splits.
	a := PointFromInts(1, 2, 3)
	b := NewPointOffset(r3.VectorFromInts(1, 0, 0), r3.VectorFromInts(0, 2, 3))
	if !a.Equals(b) {
		t.Errorf("%v.Equals(%v) = false, want true", a, b)
	}
}

func TestSetOffsetPreservesPosition(t *testing.T) {
	p := PointFromInts(1, 2, 3)
	want := p.Pos()
	p.SetOffset(r3.VectorFromInts(10, -10, 0))
	if !p.Pos().Equals(want) {
		t.Errorf("after SetOffset, Pos() = %v, want %v", p.Pos(), want)
	}
	if !p.Offset().Equals(r3.VectorFromInts(10, -10, 0)) {
		t.Errorf("after SetOffset, Offset() = %v, want (10, -10, 0)", p.Offset())
	}
	p.SetRel(r3.VectorFromInts(0, 0, 0))
	if !p.Pos().Equals(want) {
		t.Errorf("after SetRel, Pos() = %v, want %v", p.Pos(), want)
	}
	if !p.Rel().IsZero() {
		t.Errorf("after SetRel, Rel() = %v, want zero", p.Rel())
	}
}

func TestOctant(t *testing.T) {
	tests := []struct {
		x, y, z int64
		want    int
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{1, 1, -1, 2},
		{1, -1, 1, 3},
		{1, -1, -1, 4},
		{-1, 1, 1, 5},
		{-1, 1, -1, 6},
		{-1, -1, 1, 7},
		{-1, -1, -1, 8},
		{0, 1, 2, 1}, // zero coordinates group with the positive side
		{-1, 0, 0, 5},
	}
	for _, test := range tests {
		p := PointFromInts(test.x, test.y, test.z)
		if got := p.Octant(); got != test.want {
			t.Errorf("Octant(%v) = %d, want %d", p, got, test.want)
		}
	}
}

func TestIsOrigin(t *testing.T) {
	if !PointFromInts(0, 0, 0).IsOrigin() {
		t.Errorf("IsOrigin(origin) = false, want true")
	}
	if PointFromInts(0, 0, 1).IsOrigin() {
		t.Errorf("IsOrigin((0,0,1)) = true, want false")
	}
	off := NewPointOffset(r3.VectorFromInts(1, 2, 3), r3.VectorFromInts(-1, -2, -3))
	if !off.IsOrigin() {
		t.Errorf("IsOrigin(offset-cancelled origin) = false, want true")
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		a, b  Point
		want2 int64
	}{
		{PointFromInts(0, 0, 0), PointFromInts(3, 4, 0), 25},
		{PointFromInts(1, 1, 1), PointFromInts(1, 1, 1), 0},
		{PointFromInts(-1, -2, -3), PointFromInts(1, 2, 3), 56},
	}
	for _, test := range tests {
		if got := test.a.DistanceSquaredToPoint(test.b); !got.Equals(ri(test.want2)) {
			t.Errorf("dist2(%v, %v) = %v, want %v", test.a, test.b, got, test.want2)
		}
	}
	// A perfect-square distance is exact at any precision.
	a := PointFromInts(0, 0, 0)
	b := PointFromInts(3, 4, 0)
	for _, oom := range []int{0, -3, -12} {
		if got := a.DistanceToPoint(b, oom, testMode); !got.Equals(ri(5)) {
			t.Errorf("dist(%v, %v) at oom %d = %v, want 5", a, b, oom, got)
		}
	}
}

func TestRotate(t *testing.T) {
	// Quarter turn about the z axis carries (1,0,0) to (0,1,0).
	oom := -12
	axis := NewLineFromVector(PointFromInts(0, 0, 0), r3.VectorFromInts(0, 0, 1))
	theta := exactrat.Pi(oom, testMode).Div(ri(2))
	p := PointFromInts(1, 0, 0)
	p.Rotate(axis, theta, oom, testMode)
	tol := exactrat.TenPow(-8)
	got := p.Pos()
	for i, pair := range [][2]exactrat.ExactRat{
		{got.X, ri(0)}, {got.Y, ri(1)}, {got.Z, ri(0)},
	} {
		if diff := pair[0].Sub(pair[1]).Abs(); diff.Cmp(tol) > 0 {
			t.Errorf("rotated coordinate %d = %v, want near %v (diff %v)", i, pair[0], pair[1], diff)
		}
	}
}

func TestRotateAboutOffAxisPoint(t *testing.T) {
	// Half turn about the axis through (1,0,0) along z carries the
	// origin to (2,0,0).
	oom := -12
	axis := NewLineFromVector(PointFromInts(1, 0, 0), r3.VectorFromInts(0, 0, 1))
	theta := exactrat.Pi(oom, testMode)
	p := PointFromInts(0, 0, 0)
	p.Rotate(axis, theta, oom, testMode)
	got := p.Pos()
	tol := exactrat.TenPow(-8)
	if diff := got.X.Sub(ri(2)).Abs(); diff.Cmp(tol) > 0 {
		t.Errorf("rotated X = %v, want near 2", got.X)
	}
	if diff := got.Y.Abs(); diff.Cmp(tol) > 0 {
		t.Errorf("rotated Y = %v, want near 0", got.Y)
	}
	if !got.Z.IsZero() {
		t.Errorf("rotated Z = %v, want 0", got.Z)
	}
}

func TestRotateCoarsePrecision(t *testing.T) {
	// The point's distance to the axis is sqrt(2)/3, which renders as
	// zero on the oom-0 grid; the rotation must still be well defined.
	axis := NewLineFromVector(PointFromInts(0, 0, 0), r3.VectorFromInts(0, 0, 1))
	third := exactrat.FromFrac(1, 3)
	p := NewPoint(r3.Vector{X: third, Y: third, Z: exactrat.FromInt(0)})
	theta := exactrat.Pi(-12, testMode)
	p.Rotate(axis, theta, 0, testMode)
	// At oom 0 the half turn's cosine renders as exactly -1 and its
	// sine as exactly 0, so the image is exact.
	want := r3.Vector{X: third.Neg(), Y: third.Neg(), Z: exactrat.FromInt(0)}
	if !p.Pos().Equals(want) {
		t.Errorf("rotated position = %v, want %v", p.Pos(), want)
	}
}

func TestRotateCoarseAxisMagnitude(t *testing.T) {
	// An axis direction of magnitude sqrt(2)/3 also renders as zero on
	// the oom-0 grid; normalizing it must refine rather than divide by
	// zero.
	third := exactrat.FromFrac(1, 3)
	axis := NewLineFromVector(PointFromInts(0, 0, 0),
		r3.Vector{X: third, Y: third, Z: exactrat.FromInt(0)})
	p := PointFromInts(0, 0, 1)
	p.Rotate(axis, exactrat.FromInt(1), 0, testMode)
	if p.Pos().IsZero() {
		t.Errorf("rotated position is zero, want a point near the unit sphere")
	}
}

func TestRotatePointOnAxisUnchanged(t *testing.T) {
	axis := NewLineFromVector(PointFromInts(0, 0, 0), r3.VectorFromInts(0, 0, 1))
	p := PointFromInts(0, 0, 7)
	want := p.Pos()
	p.Rotate(axis, ri(1), testOOM, testMode)
	if !p.Pos().Equals(want) {
		t.Errorf("rotating a point on the axis moved it: %v, want %v", p.Pos(), want)
	}
}
