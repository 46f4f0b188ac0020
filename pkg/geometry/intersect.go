package geometry

import "math"

// Epsilon bounds how close to an endpoint or to parallel two segments may
// be before an intersection no longer counts as a proper crossing.
const Epsilon = 1e-6

// Intersection describes a proper crossing of two segments.
// T is the parametric position of the crossing along the first segment,
// with 0 at its start and 1 at its end.
type Intersection struct {
	Point Point2
	T     float64
}

// SegmentIntersection tests whether segment p1-p2 properly crosses segment
// p3-p4. A proper crossing lies strictly inside both segments' interiors;
// touching at or near an endpoint does not count, and parallel segments
// never intersect. Only T along the first segment is reported.
func SegmentIntersection(p1, p2, p3, p4 Point2) (Intersection, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)

	denom := d1.X*d2.Z - d1.Z*d2.X
	if math.Abs(denom) < Epsilon {
		return Intersection{}, false
	}

	d3 := p3.Sub(p1)
	t := (d3.X*d2.Z - d3.Z*d2.X) / denom
	u := (d3.X*d1.Z - d3.Z*d1.X) / denom

	if t <= Epsilon || t >= 1-Epsilon || u <= Epsilon || u >= 1-Epsilon {
		return Intersection{}, false
	}

	return Intersection{
		Point: p1.Add(d1.Mul(t)),
		T:     t,
	}, true
}
