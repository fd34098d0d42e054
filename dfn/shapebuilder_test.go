package dfn

import (
	"math"
	"testing"

	"github.com/ongchi/dfngen/geom"
)

func TestBuildShapeRectangleArea(t *testing.T) {
	p := BuildShape(ShapeRectangle, 0, 3, geom.V3(0, 0, 0), geom.V3(0, 0, 1), 0.15, 0.15)
	if math.Abs(p.Area-0.09) > 1e-9 {
		t.Errorf("area = %v, want 0.09", p.Area)
	}
	if len(p.Verts) != 4 {
		t.Fatalf("expected 4 verts, got %d", len(p.Verts))
	}
	if geom.Dist(p.Normal, geom.V3(0, 0, 1)) > 1e-9 {
		t.Errorf("normal not preserved: %v", p.Normal)
	}
}

func TestBuildShapeEllipseVertexCount(t *testing.T) {
	p := BuildShape(ShapeEllipse, 12, 1, geom.V3(1, 2, 3), geom.V3(1, 0, 0), 0.5, 0.5)
	if len(p.Verts) != 12 {
		t.Fatalf("expected 12 verts, got %d", len(p.Verts))
	}
	wantArea := math.Pi * 0.5 * 0.5
	if math.Abs(p.Area-wantArea) > 1e-9 {
		t.Errorf("area = %v, want %v", p.Area, wantArea)
	}
	for _, v := range p.Verts {
		if math.Abs(geom.Dist(v, p.Center)-0.5) > 1e-9 {
			t.Errorf("vertex %v not at radius 0.5 from center", v)
		}
	}
}

func TestBuildShapeRotationPreservesPlanarity(t *testing.T) {
	normal := geom.V3(1, 1, 1).Unit()
	p := BuildShape(ShapeRectangle, 0, 0, geom.V3(0, 0, 0), normal, 0.2, 0.1)
	for _, v := range p.Verts {
		d := geom.Dot(normal, geom.Sub(v, p.Center))
		if math.Abs(d) > 1e-9 {
			t.Errorf("vertex %v not in the polygon's plane (offset %v)", v, d)
		}
	}
}
