package fram

import "github.com/ongchi/dfngen/geom"

// CandidatePairs returns the indices (into polys) of every accepted
// polygon whose bounding box overlaps bbox, the cheap broadphase filter
// run before any exact plane/segment work.
//
// "Bounding volume overlap first, exact test second" is the standard
// broadphase shape; this uses an AABB overlap test (appropriate for
// static, axis-unaligned fracture polygons) rather than a bounding-sphere
// distance check (more natural for moving rigid bodies).
func CandidatePairs(bbox geom.AABB, polys []Polygon) []int {
	var hits []int
	for i := range polys {
		if bbox.Overlaps(polys[i].BBox) {
			hits = append(hits, i)
		}
	}
	return hits
}
