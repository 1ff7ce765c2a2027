// Package v3d is an exact 3D geometry kernel. It represents points,
// infinite lines, finite line segments, sets of collinear segments,
// and planes, and answers intersection, containment, equality and
// distance queries using exact rational arithmetic.
//
// Predicates (equality, parallelism, containment, whether two entities
// intersect) are computed exactly and can never be wrong by rounding.
// A precision parameter enters only where an irrational quantity (a
// distance involving a square root, a rotation angle) must be rendered
// as a rational: the "oom" argument is a signed order-of-magnitude
// exponent (more negative keeps more digits), paired with an
// exactrat.RoundingMode.
package v3d

// Geometry is implemented by every value an intersection query can
// produce. A nil Geometry is the first-class "no intersection" result;
// it is not an error.
type Geometry interface {
	geometryValue()
}

func (Point) geometryValue()                  {}
func (Line) geometryValue()                   {}
func (*LineSegment) geometryValue()           {}
func (*LineSegmentsCollinear) geometryValue() {}
func (*Plane) geometryValue()                 {}
