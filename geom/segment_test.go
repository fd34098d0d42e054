package geom

import (
	"math"
	"testing"
)

func TestClosestPointOnSegment(t *testing.T) {
	s := Segment{A: V3(0, 0, 0), B: V3(10, 0, 0)}
	p := ClosestPointOnSegment(V3(5, 3, 0), s)
	if p != (Vec3{5, 0, 0}) {
		t.Errorf("got %v, want {5 0 0}", p)
	}
	p = ClosestPointOnSegment(V3(-5, 3, 0), s)
	if p != (Vec3{0, 0, 0}) {
		t.Errorf("clamped endpoint got %v, want {0 0 0}", p)
	}
}

func TestClosestPointsBetweenSegmentsCrossing(t *testing.T) {
	s1 := Segment{A: V3(-1, 0, 0), B: V3(1, 0, 0)}
	s2 := Segment{A: V3(0, -1, 0), B: V3(0, 1, 0)}
	p1, p2 := ClosestPointsBetweenSegments(s1, s2)
	if math.Abs(p1.X) > 1e-9 || math.Abs(p2.Y) > 1e-9 {
		t.Errorf("expected crossing at origin, got p1=%v p2=%v", p1, p2)
	}
}

func TestClosestPointsBetweenSegmentsParallel(t *testing.T) {
	s1 := Segment{A: V3(0, 0, 0), B: V3(1, 0, 0)}
	s2 := Segment{A: V3(0, 0, 1), B: V3(1, 0, 1)}
	p1, p2 := ClosestPointsBetweenSegments(s1, s2)
	if Dist(p1, p2) < 0.999 || Dist(p1, p2) > 1.001 {
		t.Errorf("expected distance 1 between parallel offset segments, got %v", Dist(p1, p2))
	}
}

func TestPointInConvexPolygon2D(t *testing.T) {
	square := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if !PointInConvexPolygon2D([2]float64{0.5, 0.5}, square, 1e-9) {
		t.Error("center should be inside")
	}
	if PointInConvexPolygon2D([2]float64{2, 2}, square, 1e-9) {
		t.Error("far point should be outside")
	}
}
