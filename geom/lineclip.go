package geom

import "math"

// signedArea2D returns twice the signed area of a 2-D polygon (positive
// for counter-clockwise winding).
func signedArea2D(poly [][2]float64) float64 {
	var a float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += poly[i][0]*poly[j][1] - poly[j][0]*poly[i][1]
	}
	return a
}

// ClipLineToConvexPolygon2D clips the infinite line origin + t*dir against
// a convex polygon (2-D, any winding) using Cyrus-Beck parametric
// clipping. It returns the parameter range [tmin, tmax] for which the
// line lies inside the polygon, the edge indices (into poly, edge i runs
// poly[i]->poly[i+1]) that bound tmin/tmax (-1 if the bound was not set
// by any edge, i.e. the line never left the unbounded range on that side),
// and ok=false if the line misses the polygon entirely.
func ClipLineToConvexPolygon2D(origin, dir [2]float64, poly [][2]float64) (tmin, tmax float64, edgeMin, edgeMax int, ok bool) {
	orient := 1.0
	if signedArea2D(poly) < 0 {
		orient = -1.0
	}
	tmin, tmax = math.Inf(-1), math.Inf(1)
	edgeMin, edgeMax = -1, -1
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		edgeX, edgeY := b[0]-a[0], b[1]-a[1]
		nx, ny := edgeY*orient, -edgeX*orient // outward normal for CCW-oriented polygon
		wx, wy := origin[0]-a[0], origin[1]-a[1]
		numerator := -(nx*wx + ny*wy)
		denominator := nx*dir[0] + ny*dir[1]
		if math.Abs(denominator) < 1e-15 {
			if nx*wx+ny*wy > 0 {
				return 0, 0, -1, -1, false // parallel to, and outside, this edge
			}
			continue
		}
		t := numerator / denominator
		if denominator < 0 { // line entering through this edge
			if t > tmin {
				tmin = t
				edgeMin = i
			}
		} else { // line exiting through this edge
			if t < tmax {
				tmax = t
				edgeMax = i
			}
		}
	}
	if tmin > tmax {
		return 0, 0, -1, -1, false
	}
	return tmin, tmax, edgeMin, edgeMax, true
}
