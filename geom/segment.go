package geom

import "math"

// Segment is a finite 3-D line segment.
type Segment struct {
	A, B Vec3
}

// Len returns the segment's length.
func (s Segment) Len() float64 { return Dist(s.A, s.B) }

// ClosestPointOnSegment returns the point on segment s closest to p.
func ClosestPointOnSegment(p Vec3, s Segment) Vec3 {
	ab := Sub(s.B, s.A)
	lenSq := ab.LenSq()
	if lenSq < Epsilon {
		return s.A
	}
	t := Dot(Sub(p, s.A), ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Add(s.A, Scale(ab, t))
}

// DistPointToSegment returns the shortest distance from p to segment s.
func DistPointToSegment(p Vec3, s Segment) float64 {
	return Dist(p, ClosestPointOnSegment(p, s))
}

// ClosestPointsBetweenSegments returns the closest points p1 on s1 and p2
// on s2 between two (possibly skew) 3-D segments, clamped to each
// segment's extent.
//
// A skew-line closest-point solve generalizes directly to this bounded
// form by clamping each parameter into [0,1] after solving the infinite-
// line case; the clearance predicate this serves needs the distance
// between two bounded intersection segments, not two infinite lines.
func ClosestPointsBetweenSegments(s1, s2 Segment) (p1, p2 Vec3) {
	d1 := Sub(s1.B, s1.A)
	d2 := Sub(s2.B, s2.A)
	r := Sub(s1.A, s2.A)
	a := Dot(d1, d1)
	e := Dot(d2, d2)
	f := Dot(d2, r)

	const tol = 1e-15
	var s, t float64
	if a <= tol && e <= tol {
		return s1.A, s2.A
	}
	if a <= tol {
		s = 0
		t = clamp01(f / e)
	} else {
		c := Dot(d1, r)
		if e <= tol {
			t = 0
			s = clamp01(-c / a)
		} else {
			b := Dot(d1, d2)
			denom := a*e - b*b
			if denom > tol {
				s = clamp01((b*f - c*e) / denom)
			} else {
				s = 0
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}
	p1 = Add(s1.A, Scale(d1, s))
	p2 = Add(s2.A, Scale(d2, t))
	return p1, p2
}

func clamp01(x float64) float64 { return math.Max(0, math.Min(1, x)) }

// PointInConvexPolygon2D reports whether point p (already projected into
// the polygon's own (u, v) plane basis as 2-D) lies inside the convex
// polygon poly2D (given in the same 2-D basis), within tol.
func PointInConvexPolygon2D(p [2]float64, poly2D [][2]float64, tol float64) bool {
	n := len(poly2D)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := poly2D[i]
		b := poly2D[(i+1)%n]
		edgeX, edgeY := b[0]-a[0], b[1]-a[1]
		toPX, toPY := p[0]-a[0], p[1]-a[1]
		cross := edgeX*toPY - edgeY*toPX
		if math.Abs(cross) <= tol {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// To2D projects a 3-D polygon's vertices into its own (u, v) in-plane
// basis, relative to origin.
func To2D(verts []Vec3, origin, u, v Vec3) [][2]float64 {
	out := make([][2]float64, len(verts))
	for i, p := range verts {
		x, y := Project2D(p, origin, u, v)
		out[i] = [2]float64{x, y}
	}
	return out
}
