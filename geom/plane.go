package geom

import "math"

// Plane is an infinite flat area described by a unit normal and a point
// the plane passes through. Points on the side the normal points to are
// "inside" for clipping purposes.
type Plane struct {
	Normal Vec3
	Point  Vec3
}

// SignedDistance returns the signed distance from p to the plane, positive
// on the side the normal points to.
func (pl Plane) SignedDistance(p Vec3) float64 {
	return Dot(pl.Normal, Sub(p, pl.Point))
}

// Inside reports whether p lies on or in front of the plane, within tol.
func (pl Plane) Inside(p Vec3, tol float64) bool {
	return pl.SignedDistance(p) >= -tol
}

// edgePlaneIntersection returns the point where segment start->end crosses
// the plane, and true if the segment is not (near) parallel to the plane,
// via clamped linear interpolation against an explicit tolerance.
func edgePlaneIntersection(pl Plane, start, end Vec3, tol float64) (Vec3, bool) {
	ab := Sub(end, start)
	abp := Dot(pl.Normal, ab)
	if math.Abs(abp) <= tol {
		return Vec3{}, false
	}
	fac := -pl.SignedDistance(start) / abp
	fac = math.Max(0, math.Min(1, fac))
	return Lerp(start, end, fac), true
}

// ClipConvexPolygon clips a convex polygon (given as an ordered vertex
// loop) against every plane in clips, in order, using Sutherland-Hodgman.
// Each plane keeps only the "inside" half-space. The polygon may shrink
// to zero vertices if it lies entirely outside any one plane.
//
// Unlike a contact-manifold clipper (which sometimes needs to drop
// vertices without edge interpolation), the domain/region truncator this
// serves always wants the fully-clipped polygon, so that mode is not
// exposed here.
func ClipConvexPolygon(poly []Vec3, clips []Plane, tol float64) []Vec3 {
	input := append([]Vec3{}, poly...)
	for _, pl := range clips {
		if len(input) == 0 {
			break
		}
		output := make([]Vec3, 0, len(input)+1)
		start := input[len(input)-1]
		startIn := pl.Inside(start, tol)
		for _, end := range input {
			endIn := pl.Inside(end, tol)
			switch {
			case startIn && endIn:
				output = append(output, end)
			case startIn && !endIn:
				if x, ok := edgePlaneIntersection(pl, start, end, tol); ok {
					output = append(output, x)
				}
			case !startIn && endIn:
				if x, ok := edgePlaneIntersection(pl, start, end, tol); ok {
					output = append(output, x)
				}
				output = append(output, end)
			}
			start, startIn = end, endIn
		}
		input = output
	}
	return input
}

// PlaneIntersectPlane returns a point on, and the direction of, the line
// where two planes meet. ok is false if the planes are parallel (normals
// within tol of (anti)parallel).
func PlaneIntersectPlane(a, b Plane, tol float64) (point, dir Vec3, ok bool) {
	dir = Cross(a.Normal, b.Normal)
	if dir.LenSq() <= tol*tol {
		return Vec3{}, Vec3{}, false
	}
	dir = dir.Unit()

	// Solve for a point on both planes: intersect the line's perpendicular
	// plane basis with a and b's plane equations.
	n1, n2 := a.Normal, b.Normal
	d1 := Dot(n1, a.Point)
	d2 := Dot(n2, b.Point)
	n1n2 := Dot(n1, n2)
	det := 1 - n1n2*n1n2
	if math.Abs(det) < 1e-15 {
		return Vec3{}, Vec3{}, false
	}
	c1 := (d1 - d2*n1n2) / det
	c2 := (d2 - d1*n1n2) / det
	point = Add(Scale(n1, c1), Scale(n2, c2))
	return point, dir, true
}
