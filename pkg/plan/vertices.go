package plan

import (
	"fmt"

	"github.com/philipparndt/goplan/pkg/geometry"
)

// Vertices returns the distinct segment endpoints in first-occurrence
// order. Deduplication is by exact coordinate value: two endpoints are
// merged only when their floats are bit-identical. Points produced by
// grid snapping always compare equal; points drawn with snapping off may
// not, and such near-duplicates are intentionally kept apart.
func (w WallSet) Vertices() []geometry.Point2 {
	seen := make(map[string]struct{}, len(w)*2)
	vertices := make([]geometry.Point2, 0, len(w)*2)

	add := func(p geometry.Point2) {
		key := fmt.Sprintf("%v_%v", p.X, p.Z)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		vertices = append(vertices, p)
	}

	for _, s := range w {
		add(s.Start)
		add(s.End)
	}
	return vertices
}
