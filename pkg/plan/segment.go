// Package plan holds the wall-plan data model: segments, wall sets, and
// the topology operations that grow or split them. All operations are
// value-producing; a WallSet is never mutated in place, which keeps
// history snapshots safe to retain.
package plan

import (
	"github.com/google/uuid"
	"github.com/philipparndt/goplan/pkg/geometry"
)

// MinSegmentLength is the shortest wall the plan accepts; anything below
// is treated as degenerate
const MinSegmentLength = 1e-6

// Segment is the centerline of a single wall
type Segment struct {
	ID    string
	Start geometry.Point2
	End   geometry.Point2
}

// NewSegment creates a segment with a fresh unique id
func NewSegment(start, end geometry.Point2) Segment {
	return Segment{ID: uuid.NewString(), Start: start, End: end}
}

// Length returns the centerline length of the wall
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// HasEndpoint reports whether p coincides exactly with either endpoint
func (s Segment) HasEndpoint(p geometry.Point2) bool {
	return s.Start == p || s.End == p
}

// OppositeEndpoint returns the endpoint other than p. If p is not an
// endpoint of the segment, Start is returned.
func (s Segment) OppositeEndpoint(p geometry.Point2) geometry.Point2 {
	if s.Start == p {
		return s.End
	}
	return s.Start
}

// WallSet is an ordered collection of wall segments. Order is insertion
// order; ids are unique within the set.
type WallSet []Segment

// Clone returns a structural copy of the wall set
func (w WallSet) Clone() WallSet {
	if w == nil {
		return nil
	}
	out := make(WallSet, len(w))
	copy(out, w)
	return out
}

// IndexOf returns the position of the segment with the given id, or -1
func (w WallSet) IndexOf(id string) int {
	for i, s := range w {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the segment with the given id
func (w WallSet) Find(id string) (Segment, bool) {
	if i := w.IndexOf(id); i >= 0 {
		return w[i], true
	}
	return Segment{}, false
}

// TotalLength returns the summed centerline length of all walls
func (w WallSet) TotalLength() float64 {
	total := 0.0
	for _, s := range w {
		total += s.Length()
	}
	return total
}
