package geometry

import "math"

// Point2 represents a point on the horizontal drawing plane.
// X and Z are the plane coordinates; the vertical axis is handled
// by the viewer, not by the sketching core.
type Point2 struct {
	X, Z float64
}

// NewPoint2 creates a new plane point
func NewPoint2(x, z float64) Point2 {
	return Point2{X: x, Z: z}
}

// Add returns the sum of two points
func (p Point2) Add(other Point2) Point2 {
	return Point2{X: p.X + other.X, Z: p.Z + other.Z}
}

// Sub returns the difference between two points
func (p Point2) Sub(other Point2) Point2 {
	return Point2{X: p.X - other.X, Z: p.Z - other.Z}
}

// Mul multiplies the point by a scalar
func (p Point2) Mul(scalar float64) Point2 {
	return Point2{X: p.X * scalar, Z: p.Z * scalar}
}

// Dot returns the dot product of two plane vectors
func (p Point2) Dot(other Point2) float64 {
	return p.X*other.X + p.Z*other.Z
}

// Length returns the magnitude of the plane vector
func (p Point2) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Z*p.Z)
}

// LengthSq returns the squared magnitude, avoiding the square root
func (p Point2) LengthSq() float64 {
	return p.X*p.X + p.Z*p.Z
}

// Distance returns the distance between two plane points
func (p Point2) Distance(other Point2) float64 {
	return p.Sub(other).Length()
}

// DistanceSq returns the squared distance between two plane points
func (p Point2) DistanceSq(other Point2) float64 {
	return p.Sub(other).LengthSq()
}

// Vector3 represents a 3D point delivered by the viewer, typically the
// result of projecting a pointer ray onto the drawing plane.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D point
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Planar drops the vertical coordinate and returns the plane point
func (v Vector3) Planar() Point2 {
	return Point2{X: v.X, Z: v.Z}
}
