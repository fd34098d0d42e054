package fram

import "github.com/ongchi/dfngen/geom"

// PendingIntersection describes an intersection between the candidate
// polygon under test and an already-accepted polygon, not yet committed
// to the network (commit only happens once the candidate clears every
// pair's checks).
type PendingIntersection struct {
	Other int // Polygon.ID of the existing fracture

	Seg geom.Segment

	// Shortened is true if Seg was trimmed to keep clearance from a
	// near-parallel existing intersection rather than being rejected
	// outright; OriginalLength and DiscardedLength describe the trim.
	Shortened       bool
	OriginalLength  float64
	DiscardedLength float64

	// TripleOn holds the existing Intersection.ID values this new segment
	// crosses, and TriplePoints the corresponding crossing points
	// (parallel slices).
	TripleOn     []int
	TriplePoints []geom.Vec3
}

// Result is the outcome of checking a candidate polygon against the
// network: either Code == Accept with the full set of pending
// intersections to commit, or a reject code explaining why the candidate
// must be discarded or retranslated.
type Result struct {
	Code          RejectCode
	Intersections []PendingIntersection
}

// Check runs the full FRAM clearance-predicate bundle for candidate
// against every accepted polygon in net that its bounding box could
// plausibly touch. It never mutates net; call Commit separately once the
// caller has decided to keep the candidate.
func Check(tol Tolerances, candidate *Polygon, net *Network) Result {
	hits := CandidatePairs(candidate.BBox, net.Polys)
	var pendings []PendingIntersection
	for _, qi := range hits {
		q := &net.Polys[qi]
		pend, code := checkPair(tol, candidate, q, net)
		if code != Accept {
			return Result{Code: code}
		}
		if pend != nil {
			pendings = append(pendings, *pend)
		}
	}
	return Result{Code: Accept, Intersections: pendings}
}

// Commit records an accepted candidate and the intersections Check found
// for it, creating the Intersection and TriplePoint records in net.
// eps is the same degeneracy tolerance Check was run with, used to merge
// triple-point discoveries that land at the same physical location.
func Commit(net *Network, candidate Polygon, result Result, eps float64) *Polygon {
	p := net.AddPolygon(candidate)
	for _, pend := range result.Intersections {
		inter := net.addIntersection(p.ID, pend.Other, pend.Seg)
		inter.Shortened = pend.Shortened
		for i, existingID := range pend.TripleOn {
			net.addTriplePoint(pend.TriplePoints[i], eps, existingID, inter.ID)
		}
	}
	return p
}

// checkPair runs the predicate bundle for a single (candidate, q) pair.
// A nil *PendingIntersection with RejectCode Accept means the pair simply
// doesn't interact (no intersection, no clearance violation).
func checkPair(tol Tolerances, candidate, q *Polygon, net *Network) (*PendingIntersection, RejectCode) {
	// Vertex-close-to-edge: a corner of either polygon brushing the
	// other's boundary, independent of whether their planes even cross.
	for _, v := range candidate.Verts {
		if distToEdges(v, q, -1) < tol.H {
			return nil, RejectVertexCloseToEdge
		}
	}
	for _, v := range q.Verts {
		if distToEdges(v, candidate, -1) < tol.H {
			return nil, RejectVertexCloseToEdge
		}
	}

	point, dir, ok := geom.PlaneIntersectPlane(candidate.Plane(), q.Plane(), tol.Eps)
	if !ok {
		return nil, Accept // parallel (or coincident) planes: no intersection line to test
	}

	cOrigin := candidate.To2D(point)
	cFar := candidate.To2D(geom.Add(point, dir))
	cDir := [2]float64{cFar[0] - cOrigin[0], cFar[1] - cOrigin[1]}
	tMinC, tMaxC, edgeMinC, edgeMaxC, okC := geom.ClipLineToConvexPolygon2D(cOrigin, cDir, candidate.Verts2D())
	if !okC {
		return nil, Accept
	}

	qOrigin := q.To2D(point)
	qFar := q.To2D(geom.Add(point, dir))
	qDir := [2]float64{qFar[0] - qOrigin[0], qFar[1] - qOrigin[1]}
	tMinQ, tMaxQ, edgeMinQ, edgeMaxQ, okQ := geom.ClipLineToConvexPolygon2D(qOrigin, qDir, q.Verts2D())
	if !okQ {
		return nil, Accept
	}

	tmin, tmax := tMinC, tMaxC
	minOnQ, maxOnQ := false, false
	edgeMin, edgeMax := edgeMinC, edgeMaxC
	if tMinQ > tmin {
		tmin, edgeMin, minOnQ = tMinQ, edgeMinQ, true
	}
	if tMaxQ < tmax {
		tmax, edgeMax, maxOnQ = tMaxQ, edgeMaxQ, true
	}
	if tmax-tmin <= tol.Eps {
		return nil, Accept // lines touch at a point or miss: no usable intersection segment
	}

	a := geom.Add(point, geom.Scale(dir, tmin))
	b := geom.Add(point, geom.Scale(dir, tmax))
	seg := geom.Segment{A: a, B: b}

	if seg.Len() < tol.H {
		return nil, RejectShortIntersection
	}

	if distToVerts(a, candidate) < tol.H || distToVerts(a, q) < tol.H ||
		distToVerts(b, candidate) < tol.H || distToVerts(b, q) < tol.H {
		return nil, RejectCloseToNode
	}

	excludeCandAtMin, excludeQAtMin := -1, -1
	if minOnQ {
		excludeQAtMin = edgeMin
	} else {
		excludeCandAtMin = edgeMin
	}
	excludeCandAtMax, excludeQAtMax := -1, -1
	if maxOnQ {
		excludeQAtMax = edgeMax
	} else {
		excludeCandAtMax = edgeMax
	}
	if distToEdges(a, candidate, excludeCandAtMin) < tol.H || distToEdges(a, q, excludeQAtMin) < tol.H ||
		distToEdges(b, candidate, excludeCandAtMax) < tol.H || distToEdges(b, q, excludeQAtMax) < tol.H ||
		segDistToEdges(seg, candidate, excludeCandAtMin) < tol.H || segDistToEdges(seg, candidate, excludeCandAtMax) < tol.H ||
		segDistToEdges(seg, q, excludeQAtMin) < tol.H || segDistToEdges(seg, q, excludeQAtMax) < tol.H ||
		segDistToVerts(seg, candidate) < tol.H || segDistToVerts(seg, q) < tol.H {
		return nil, RejectCloseToEdge
	}

	originalLen := seg.Len()
	shortened := false
	var discardedLen float64
	var tripleOn []int
	var triplePoints []geom.Vec3
	for _, interID := range q.Intersections {
		inter := &net.Inters[interID]
		p1, p2 := geom.ClosestPointsBetweenSegments(seg, inter.Seg)
		d := geom.Dist(p1, p2)
		if d <= tol.Eps {
			cross := geom.Lerp(p1, p2, 0.5)
			if tooCloseToTriple(cross, seg, inter, net, tol.H) {
				return nil, RejectTriple
			}
			tripleOn = append(tripleOn, interID)
			triplePoints = append(triplePoints, cross)
		} else if d < tol.H {
			trimmed, ok := shortenAgainst(seg, inter.Seg, tol.H)
			if !ok {
				return nil, RejectIntersectionCloseToIntersection
			}
			discardedLen += seg.Len() - trimmed.Len()
			seg = trimmed
			shortened = true
		}
	}

	return &PendingIntersection{
		Other: q.ID, Seg: seg,
		Shortened: shortened, OriginalLength: originalLen, DiscardedLength: discardedLen,
		TripleOn: tripleOn, TriplePoints: triplePoints,
	}, Accept
}

// tooCloseToTriple reports whether a new triple point at cross would sit
// closer than h to either parent intersection's endpoints or to any
// triple point already recorded on the existing intersection.
func tooCloseToTriple(cross geom.Vec3, newSeg geom.Segment, existing *Intersection, net *Network, h float64) bool {
	endpoints := []geom.Vec3{newSeg.A, newSeg.B, existing.Seg.A, existing.Seg.B}
	for _, e := range endpoints {
		if geom.Dist(cross, e) < h {
			return true
		}
	}
	for _, tpID := range existing.TriplePoints {
		if geom.Dist(cross, net.Triples[tpID].Point) < h {
			return true
		}
	}
	return false
}
