package dfn

import (
	"testing"

	"github.com/ongchi/dfngen/geom"
)

func TestTruncateToBoxClips(t *testing.T) {
	p := BuildShape(ShapeRectangle, 0, 0, geom.V3(0.4, 0, 0), geom.V3(0, 0, 1), 0.3, 0.3)
	domain := DomainBox(0.5, 0.5, 0.5)
	out, truncated, outside := TruncateToBox(p, domain, 1e-9)
	if outside {
		t.Fatal("expected not outside")
	}
	if !truncated {
		t.Error("expected truncated flag set")
	}
	for _, v := range out.Verts {
		if !domain.Contains(v, 1e-6) {
			t.Errorf("vertex %v lies outside domain", v)
		}
	}
}

func TestTruncateToBoxOutside(t *testing.T) {
	p := BuildShape(ShapeRectangle, 0, 0, geom.V3(10, 10, 10), geom.V3(0, 0, 1), 0.1, 0.1)
	domain := DomainBox(1, 1, 1)
	_, _, outside := TruncateToBox(p, domain, 1e-9)
	if !outside {
		t.Error("expected outside for a polygon far outside the domain")
	}
}

func TestTruncateToBoxNoOpWhenFullyInside(t *testing.T) {
	p := BuildShape(ShapeRectangle, 0, 0, geom.V3(0, 0, 0), geom.V3(0, 0, 1), 0.1, 0.1)
	domain := DomainBox(1, 1, 1)
	out, truncated, outside := TruncateToBox(p, domain, 1e-9)
	if outside || truncated {
		t.Errorf("expected no-op for a fully-interior polygon, got truncated=%v outside=%v", truncated, outside)
	}
	if len(out.Verts) != 4 {
		t.Errorf("expected 4 verts preserved, got %d", len(out.Verts))
	}
}
