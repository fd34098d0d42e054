// Package fram implements the Feature Rejection Algorithm for Meshing: the
// clearance-predicate bundle that decides whether a candidate fracture
// polygon may join an existing fracture network without producing
// degenerate geometry (slivers, near-coincident nodes, near-parallel
// edges) that would choke a downstream mesh generator.
//
// Package fram owns the network's core data model (Polygon, Intersection,
// TriplePoint) as well as the checker: the data a physics engine's
// broadphase and collision algorithms operate on lives next to that code,
// not in a separate top-level package, and the same reasoning applies
// here.
package fram

import "github.com/ongchi/dfngen/geom"

// Polygon is an accepted (or candidate, before acceptance) planar fracture.
// Verts are ordered around the polygon's boundary and all lie in the plane
// described by Normal/Center; U and V are an orthonormal in-plane basis
// used to project vertices to 2-D for point-in-polygon and clipping tests.
type Polygon struct {
	ID     int
	Family int // index into the family catalog; negative for user-defined polygons
	Group  int // union-find cluster id, assigned during cluster analysis; 0 until then

	Normal geom.Vec3
	Center geom.Vec3
	U, V   geom.Vec3

	XRadius, YRadius float64 // equivalent ellipse radii, for P32/P30 statistics
	Verts            []geom.Vec3
	BBox             geom.AABB
	Area             float64

	Truncated bool // true if the domain/layer/region clip removed any vertex

	Intersections []int // Intersection.ID values this polygon participates in
}

// Plane returns the polygon's supporting plane.
func (p *Polygon) Plane() geom.Plane {
	return geom.Plane{Normal: p.Normal, Point: p.Center}
}

// Verts2D projects the polygon's own vertex loop into its (U, V) basis.
func (p *Polygon) Verts2D() [][2]float64 {
	return geom.To2D(p.Verts, p.Center, p.U, p.V)
}

// To2D projects an arbitrary 3-D point into this polygon's (U, V) basis.
func (p *Polygon) To2D(pt geom.Vec3) [2]float64 {
	x, y := geom.Project2D(pt, p.Center, p.U, p.V)
	return [2]float64{x, y}
}

// Intersection is the line segment, trimmed to lie within both parent
// polygons, where two fractures meet.
type Intersection struct {
	ID int

	P1, P2 int // Polygon.ID values, P1 < P2

	Seg geom.Segment

	TriplePoints []int // TriplePoint.ID values lying on this intersection

	Shortened bool // true if a close-parallel intersection was trimmed rather than rejected
}

// TriplePoint is the point where three or more fracture intersections
// cross. The common case is exactly three parents (the six fracture ids
// across those three intersections collapsing to three distinct
// fractures); Parents is a slice rather than a fixed array because a
// single candidate's Check pass can independently discover a crossing
// with more than one pre-existing intersection at the same physical
// point, and those discoveries must merge into one record rather than
// produce duplicate triple points for the same location.
type TriplePoint struct {
	ID int

	Point geom.Vec3

	Parents []int // Intersection.ID values that cross here, deduplicated
}

// Network is the accepted-fracture arena: every committed Polygon,
// Intersection, and TriplePoint, addressed by integer id rather than
// pointer so polygons can reference their intersections (and vice versa)
// without reference cycles.
type Network struct {
	Polys   []Polygon
	Inters  []Intersection
	Triples []TriplePoint
}

// NewNetwork returns an empty fracture network.
func NewNetwork() *Network {
	return &Network{}
}

// AddPolygon commits a candidate polygon, assigns it an ID, and returns a
// pointer to its stored copy.
func (n *Network) AddPolygon(p Polygon) *Polygon {
	p.ID = len(n.Polys)
	n.Polys = append(n.Polys, p)
	return &n.Polys[p.ID]
}

func (n *Network) addIntersection(p1, p2 int, seg geom.Segment) *Intersection {
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	id := len(n.Inters)
	n.Inters = append(n.Inters, Intersection{ID: id, P1: p1, P2: p2, Seg: seg})
	n.Polys[p1].Intersections = append(n.Polys[p1].Intersections, id)
	n.Polys[p2].Intersections = append(n.Polys[p2].Intersections, id)
	return &n.Inters[id]
}

// addTriplePoint records a crossing at point between the given parent
// intersections, merging into an already-recorded triple point within
// eps of the same location rather than creating a duplicate (the case
// where two different pairs the candidate checks against both cross at
// the same physical junction).
func (n *Network) addTriplePoint(point geom.Vec3, eps float64, parents ...int) *TriplePoint {
	for i := range n.Triples {
		if geom.Dist(n.Triples[i].Point, point) <= eps {
			tp := &n.Triples[i]
			for _, pid := range parents {
				if !containsInt(tp.Parents, pid) {
					tp.Parents = append(tp.Parents, pid)
				}
				if !containsInt(n.Inters[pid].TriplePoints, tp.ID) {
					n.Inters[pid].TriplePoints = append(n.Inters[pid].TriplePoints, tp.ID)
				}
			}
			return tp
		}
	}

	id := len(n.Triples)
	n.Triples = append(n.Triples, TriplePoint{ID: id, Point: point, Parents: append([]int{}, parents...)})
	for _, pid := range parents {
		n.Inters[pid].TriplePoints = append(n.Inters[pid].TriplePoints, id)
	}
	return &n.Triples[id]
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// RejectCode classifies why Check refused a candidate polygon. Zero value
// Accept means the candidate may be committed.
type RejectCode int

const (
	Accept RejectCode = iota
	RejectShortIntersection
	RejectCloseToNode
	RejectCloseToEdge
	RejectVertexCloseToEdge
	RejectIntersectionCloseToIntersection
	RejectTriple
)

func (r RejectCode) String() string {
	switch r {
	case Accept:
		return "accept"
	case RejectShortIntersection:
		return "short intersection"
	case RejectCloseToNode:
		return "close to node"
	case RejectCloseToEdge:
		return "close to edge"
	case RejectVertexCloseToEdge:
		return "vertex close to edge"
	case RejectIntersectionCloseToIntersection:
		return "intersection close to intersection"
	case RejectTriple:
		return "triple intersection too close"
	default:
		return "unknown"
	}
}
