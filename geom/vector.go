// Package geom provides the 3-D vector, rotation, plane, and clipping
// primitives shared by every fracture-geometry component: in-plane basis
// construction, axis-aligned bounding boxes, Sutherland-Hodgman polygon
// clipping, and segment/segment and segment/plane intersection tests.
//
// Package geom is a CPU-based, allocation-light math kernel in the style
// of a 3-D engine's vector library: value types, value receivers, and
// almost no error returns — floating point
// degeneracies are reported through boolean "ok" results instead.
package geom

import "math"

// Epsilon is the default almost-equal tolerance for geom-level comparisons
// that are not driven by the caller's own h/eps pair (see dfn.Config).
const Epsilon = 1e-9

// Vec3 is a 3-element vector, also used to represent points.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor for Vec3 literals.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns v scaled by s.
func Scale(v Vec3, s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func Neg(v Vec3) Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product a.b.
func Dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(Dot(v, v)) }

// LenSq returns the squared Euclidean length of v, avoiding a sqrt.
func (v Vec3) LenSq() float64 { return Dot(v, v) }

// Unit returns v normalized to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	return Scale(v, 1/l)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 { return Sub(a, b).Len() }

// Eq returns true if a and b are within tol of each other in every
// component's combined effect (Euclidean distance), per the caller's own
// tolerance (typically eps or h).
func Eq(a, b Vec3, tol float64) bool { return Dist(a, b) <= tol }

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b Vec3, t float64) Vec3 { return Add(a, Scale(Sub(b, a), t)) }

// Basis builds an orthonormal (u, v) in-plane basis perpendicular to the
// given unit normal n. Used to project 3-D polygon vertices into a 2-D
// frame for point-in-polygon and area computations.
func Basis(n Vec3) (u, v Vec3) {
	// Pick whichever world axis is least parallel to n to avoid a
	// degenerate cross product.
	ref := Vec3{1, 0, 0}
	if math.Abs(n.X) > 0.9 {
		ref = Vec3{0, 1, 0}
	}
	u = Cross(ref, n).Unit()
	v = Cross(n, u).Unit()
	return u, v
}

// Project2D expresses p (relative to origin) in the (u, v) in-plane basis.
func Project2D(p, origin, u, v Vec3) (x, y float64) {
	rel := Sub(p, origin)
	return Dot(rel, u), Dot(rel, v)
}
