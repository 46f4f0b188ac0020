package plan

import (
	"testing"

	"github.com/philipparndt/goplan/pkg/geometry"
)

func TestAppendAddsOneSegment(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))

	if len(walls) != 1 {
		t.Fatalf("Append failed: expected 1 segment, got %d", len(walls))
	}
	if walls[0].Start != geometry.NewPoint2(0, 0) || walls[0].End != geometry.NewPoint2(4, 0) {
		t.Errorf("Append failed: unexpected endpoints %v - %v", walls[0].Start, walls[0].End)
	}
	if walls[0].ID == "" {
		t.Error("Append failed: segment has no id")
	}
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	original := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	snapshot := original.Clone()

	_ = Append(original, geometry.NewPoint2(4, 0), geometry.NewPoint2(4, 4))

	if len(original) != len(snapshot) || original[0] != snapshot[0] {
		t.Error("Append failed: input wall set was mutated")
	}
}

func TestAppendMintsUniqueIDs(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	walls = Append(walls, geometry.NewPoint2(4, 0), geometry.NewPoint2(4, 4))

	if walls[0].ID == walls[1].ID {
		t.Error("Append failed: duplicate segment ids")
	}
}

func TestSplitAndInsert(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	target := walls[0]

	at := geometry.NewPoint2(2, 0)
	newStart := geometry.NewPoint2(2, -2)
	result := SplitAndInsert(walls, target.ID, at, newStart)

	if len(result) != 3 {
		t.Fatalf("SplitAndInsert failed: expected 3 segments, got %d", len(result))
	}

	left, right, connector := result[0], result[1], result[2]
	if left.Start != target.Start || left.End != at {
		t.Errorf("SplitAndInsert failed: left half is %v - %v", left.Start, left.End)
	}
	if right.Start != at || right.End != target.End {
		t.Errorf("SplitAndInsert failed: right half is %v - %v", right.Start, right.End)
	}
	if connector.Start != newStart || connector.End != at {
		t.Errorf("SplitAndInsert failed: connector is %v - %v", connector.Start, connector.End)
	}

	for _, s := range result {
		if s.ID == target.ID {
			t.Error("SplitAndInsert failed: replacement segment reused the target id")
		}
	}
}

func TestSplitAndInsertKeepsOtherSegments(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	walls = Append(walls, geometry.NewPoint2(10, 0), geometry.NewPoint2(10, 4))
	other := walls[1]

	result := SplitAndInsert(walls, walls[0].ID, geometry.NewPoint2(2, 0), geometry.NewPoint2(2, -2))

	if len(result) != 4 {
		t.Fatalf("SplitAndInsert failed: expected 4 segments, got %d", len(result))
	}
	if idx := result.IndexOf(other.ID); idx < 0 || result[idx] != other {
		t.Error("SplitAndInsert failed: unrelated segment changed")
	}
}

func TestSplitAndInsertUnknownTarget(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))

	result := SplitAndInsert(walls, "missing", geometry.NewPoint2(2, 0), geometry.NewPoint2(2, -2))

	if len(result) != len(walls) {
		t.Errorf("SplitAndInsert failed: expected unchanged wall set, got %d segments", len(result))
	}
}

func TestVerticesDeduplicates(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	walls = Append(walls, geometry.NewPoint2(4, 0), geometry.NewPoint2(4, 4))

	vertices := walls.Vertices()
	if len(vertices) != 3 {
		t.Fatalf("Vertices failed: expected 3 distinct vertices, got %d", len(vertices))
	}

	// First-occurrence order
	expected := []geometry.Point2{{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 4, Z: 4}}
	for i, v := range vertices {
		if v != expected[i] {
			t.Errorf("Vertices failed: position %d expected %v, got %v", i, expected[i], v)
		}
	}
}

func TestVerticesKeepsNearDuplicates(t *testing.T) {
	// Dedup is by exact value; nearly equal floats stay distinct
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	walls = Append(walls, geometry.NewPoint2(4+1e-12, 0), geometry.NewPoint2(4, 4))

	vertices := walls.Vertices()
	if len(vertices) != 4 {
		t.Errorf("Vertices failed: expected 4 vertices, got %d", len(vertices))
	}
}

func TestTotalLength(t *testing.T) {
	walls := Append(nil, geometry.NewPoint2(0, 0), geometry.NewPoint2(4, 0))
	walls = Append(walls, geometry.NewPoint2(4, 0), geometry.NewPoint2(4, 3))

	expected := 7.0
	if total := walls.TotalLength(); total != expected {
		t.Errorf("TotalLength failed: expected %v, got %v", expected, total)
	}
}
