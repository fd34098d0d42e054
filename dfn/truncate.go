package dfn

import (
	"github.com/ongchi/dfngen/fram"
	"github.com/ongchi/dfngen/geom"
)

// TruncateToBox clips p's vertex loop against box's six half-spaces
// (Sutherland-Hodgman via geom.ClipConvexPolygon). It reports outside=true
// if the clip leaves fewer than 3 vertices or any two adjacent vertices
// within eps of each other; in that case p is returned
// unmodified and must be rejected by the caller. truncated reports
// whether clipping actually changed the vertex set.
func TruncateToBox(p fram.Polygon, box geom.AABB, eps float64) (out fram.Polygon, truncated bool, outside bool) {
	clipped := geom.ClipConvexPolygon(p.Verts, box.Planes(), eps)
	if len(clipped) < 3 {
		return p, false, true
	}
	for i := range clipped {
		j := (i + 1) % len(clipped)
		if geom.Dist(clipped[i], clipped[j]) <= eps {
			return p, false, true
		}
	}

	truncated = len(clipped) != len(p.Verts)
	if !truncated {
		for i := range clipped {
			if geom.Dist(clipped[i], p.Verts[i]) > eps {
				truncated = true
				break
			}
		}
	}

	p.Verts = clipped
	p.BBox = geom.BoundingBox(clipped)
	p.Area = polygonArea(clipped, p.Normal, p.Center)
	p.Truncated = p.Truncated || truncated
	return p, truncated, false
}

// TruncateCandidate clips p against the domain box and, when region is
// non-nil (the family samples within a layer or sub-region rather than
// the whole domain), against that region box as well.
func TruncateCandidate(p fram.Polygon, domain geom.AABB, region *geom.AABB, eps float64) (fram.Polygon, bool, bool) {
	p, truncated, outside := TruncateToBox(p, domain, eps)
	if outside {
		return p, truncated, true
	}
	if region == nil {
		return p, truncated, false
	}
	p, truncated2, outside := TruncateToBox(p, *region, eps)
	return p, truncated || truncated2, outside
}
