package geometry

import (
	"math"
	"testing"
)

func TestPoint2Sub(t *testing.T) {
	p1 := NewPoint2(5, 7)
	p2 := NewPoint2(1, 2)
	result := p1.Sub(p2)

	expected := NewPoint2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPoint2Distance(t *testing.T) {
	p1 := NewPoint2(0, 0)
	p2 := NewPoint2(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPoint2DistanceSq(t *testing.T) {
	p1 := NewPoint2(0, 0)
	p2 := NewPoint2(3, 4)
	result := p1.DistanceSq(p2)

	expected := 25.0
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("DistanceSq failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Planar(t *testing.T) {
	v := NewVector3(1.5, 9, -2.5)
	result := v.Planar()

	expected := NewPoint2(1.5, -2.5)
	if result != expected {
		t.Errorf("Planar failed: expected %v, got %v", expected, result)
	}
}
