package plan

import "github.com/philipparndt/goplan/pkg/geometry"

// Append returns a new wall set with one extra segment from start to end.
// No existing segment is altered.
func Append(walls WallSet, start, end geometry.Point2) WallSet {
	out := make(WallSet, len(walls), len(walls)+1)
	copy(out, walls)
	return append(out, NewSegment(start, end))
}

// SplitAndInsert replaces the segment with the given id by two segments
// meeting at the intersection point, and appends a third segment from
// newStart to that point, forming a T-junction. All three inserted
// segments get fresh ids; every other segment keeps its id. If targetID
// is not present the wall set is returned unchanged.
func SplitAndInsert(walls WallSet, targetID string, at, newStart geometry.Point2) WallSet {
	idx := walls.IndexOf(targetID)
	if idx < 0 {
		return walls
	}
	target := walls[idx]

	out := make(WallSet, 0, len(walls)+2)
	out = append(out, walls[:idx]...)
	out = append(out,
		NewSegment(target.Start, at),
		NewSegment(at, target.End),
	)
	out = append(out, walls[idx+1:]...)
	return append(out, NewSegment(newStart, at))
}
