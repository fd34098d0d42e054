package geom

import "math"

// AABB is an axis-aligned bounding box, used for the FRAM broadphase and
// for layer/region membership tests. Min/Max corner layout, with a
// half-open overlap test: boxes that only touch along a face, edge, or
// point are not considered overlapping.
type AABB struct {
	Min, Max Vec3
}

// BoundingBox computes the AABB of a vertex set. Panics on an empty slice;
// callers only ever pass already-validated polygons.
func BoundingBox(verts []Vec3) AABB {
	bb := AABB{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		bb.Min.X = math.Min(bb.Min.X, v.X)
		bb.Min.Y = math.Min(bb.Min.Y, v.Y)
		bb.Min.Z = math.Min(bb.Min.Z, v.Z)
		bb.Max.X = math.Max(bb.Max.X, v.X)
		bb.Max.Y = math.Max(bb.Max.Y, v.Y)
		bb.Max.Z = math.Max(bb.Max.Z, v.Z)
	}
	return bb
}

// Overlaps returns true if a and b intersect. Boxes that only touch along
// a face, edge, or point are not considered overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return a.Max.X > b.Min.X && a.Min.X < b.Max.X &&
		a.Max.Y > b.Min.Y && a.Min.Y < b.Max.Y &&
		a.Max.Z > b.Min.Z && a.Min.Z < b.Max.Z
}

// Contains returns true if p lies within the box, within tol.
func (a AABB) Contains(p Vec3, tol float64) bool {
	return p.X >= a.Min.X-tol && p.X <= a.Max.X+tol &&
		p.Y >= a.Min.Y-tol && p.Y <= a.Max.Y+tol &&
		p.Z >= a.Min.Z-tol && p.Z <= a.Max.Z+tol
}

// Volume returns the box's volume.
func (a AABB) Volume() float64 {
	d := Sub(a.Max, a.Min)
	return d.X * d.Y * d.Z
}

// Planes returns the six inward-facing half-space planes bounding the box,
// suitable for use with ClipConvexPolygon.
func (a AABB) Planes() []Plane {
	return []Plane{
		{Normal: V3(1, 0, 0), Point: V3(a.Min.X, 0, 0)},
		{Normal: V3(-1, 0, 0), Point: V3(a.Max.X, 0, 0)},
		{Normal: V3(0, 1, 0), Point: V3(0, a.Min.Y, 0)},
		{Normal: V3(0, -1, 0), Point: V3(0, a.Max.Y, 0)},
		{Normal: V3(0, 0, 1), Point: V3(0, 0, a.Min.Z)},
		{Normal: V3(0, 0, -1), Point: V3(0, 0, a.Max.Z)},
	}
}
