package geometry

import "math"

// MinWallAngle is the smallest angle allowed between two walls that meet
// at a shared vertex (30 degrees)
const MinWallAngle = math.Pi / 6

// AngleAtVertex returns the angle at vertex b between the rays b->a and
// b->c, in radians. Returns 0 if either ray has zero length.
func AngleAtVertex(a, b, c Point2) float64 {
	u := a.Sub(b)
	v := c.Sub(b)

	lu := u.Length()
	lv := v.Length()
	if lu == 0 || lv == 0 {
		return 0
	}

	cos := u.Dot(v) / (lu * lv)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// TooSharp reports whether an angle between adjoining walls is below the
// minimum. The comparison is strict, so a wall at exactly MinWallAngle
// is allowed.
func TooSharp(angle float64) bool {
	return angle < MinWallAngle
}
