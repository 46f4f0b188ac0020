package geometry

import "math"

const (
	// DefaultGridSize is the spacing of the snap grid in plane units
	DefaultGridSize = 0.25

	// DefaultSnapRadius is the distance within which an existing vertex
	// captures a new point
	DefaultSnapRadius = 0.5
)

// SnapToGrid rounds each coordinate to the nearest multiple of gridSize
func SnapToGrid(p Point2, gridSize float64) Point2 {
	return Point2{
		X: math.Round(p.X/gridSize) * gridSize,
		Z: math.Round(p.Z/gridSize) * gridSize,
	}
}

// ApplySnap resolves a raw plane point into the point the sketch should
// actually use. Grid snapping is applied first when enabled; if any
// candidate vertex lies within radius of that result, the nearest such
// vertex wins over the grid point. A nil raw point stays nil.
//
// On an exact tie in squared distance the first candidate in iteration
// order is kept, so the result is stable for a given candidate ordering.
func ApplySnap(raw *Point2, gridEnabled bool, candidates []Point2, gridSize, radius float64) *Point2 {
	if raw == nil {
		return nil
	}

	snapped := *raw
	if gridEnabled {
		snapped = SnapToGrid(snapped, gridSize)
	}
	if len(candidates) == 0 {
		return &snapped
	}

	best := candidates[0]
	bestDistSq := snapped.DistanceSq(best)
	for _, c := range candidates[1:] {
		if d := snapped.DistanceSq(c); d < bestDistSq {
			best = c
			bestDistSq = d
		}
	}

	if bestDistSq <= radius*radius {
		return &best
	}
	return &snapped
}
