package fram

import (
	"math"

	"github.com/ongchi/dfngen/geom"
)

// Tolerances bundles the two length scales every clearance predicate is
// measured against: h is the minimum acceptable feature size (shortest
// intersection, smallest gap to a node or edge); eps is the much smaller
// floating-point degeneracy tolerance used for plane/line classification.
type Tolerances struct {
	H   float64
	Eps float64
}

// distToVerts returns the minimum distance from p to any vertex of poly.
func distToVerts(p geom.Vec3, poly *Polygon) float64 {
	best := math.Inf(1)
	for _, v := range poly.Verts {
		if d := geom.Dist(p, v); d < best {
			best = d
		}
	}
	return best
}

// distToEdges returns the minimum distance from p to any edge segment of
// poly, skipping edge index exclude (the edge that legitimately produced p
// as a clip boundary, if any; pass -1 to check every edge).
func distToEdges(p geom.Vec3, poly *Polygon, exclude int) float64 {
	best := math.Inf(1)
	n := len(poly.Verts)
	for i := 0; i < n; i++ {
		if i == exclude {
			continue
		}
		edge := geom.Segment{A: poly.Verts[i], B: poly.Verts[(i+1)%n]}
		if d := geom.DistPointToSegment(p, edge); d < best {
			best = d
		}
	}
	return best
}

// segDistToEdges returns the minimum distance between segment seg and any
// edge of poly, skipping edge index exclude.
func segDistToEdges(seg geom.Segment, poly *Polygon, exclude int) float64 {
	best := math.Inf(1)
	n := len(poly.Verts)
	for i := 0; i < n; i++ {
		if i == exclude {
			continue
		}
		edge := geom.Segment{A: poly.Verts[i], B: poly.Verts[(i+1)%n]}
		p1, p2 := geom.ClosestPointsBetweenSegments(seg, edge)
		if d := geom.Dist(p1, p2); d < best {
			best = d
		}
	}
	return best
}

// segDistToVerts returns the minimum distance between segment seg and any
// vertex of poly.
func segDistToVerts(seg geom.Segment, poly *Polygon) float64 {
	best := math.Inf(1)
	for _, v := range poly.Verts {
		if d := geom.DistPointToSegment(v, seg); d < best {
			best = d
		}
	}
	return best
}

// shortenAgainst trims seg's endpoint nearer to other back along seg's own
// length until its closest approach to other reaches h, preserving the
// far endpoint. It reports ok=false if even the far endpoint doesn't
// clear h, meaning seg cannot be salvaged by shortening alone.
func shortenAgainst(seg, other geom.Segment, h float64) (trimmed geom.Segment, ok bool) {
	p1, _ := geom.ClosestPointsBetweenSegments(seg, other)

	near, far := seg.A, seg.B
	if geom.Dist(p1, seg.B) < geom.Dist(p1, seg.A) {
		near, far = seg.B, seg.A
	}

	if geom.DistPointToSegment(far, other) < h {
		return seg, false
	}

	lo, hi := 0.0, 1.0 // parametrized from near (0) to far (1)
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if geom.DistPointToSegment(geom.Lerp(near, far, mid), other) < h {
			lo = mid
		} else {
			hi = mid
		}
	}

	trimmed = geom.Segment{A: geom.Lerp(near, far, hi), B: far}
	if trimmed.Len() < h {
		return seg, false
	}
	return trimmed, true
}
