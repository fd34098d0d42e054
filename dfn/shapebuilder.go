package dfn

import (
	"math"

	"github.com/ongchi/dfngen/fram"
	"github.com/ongchi/dfngen/geom"
)

// Draw samples one stochastic candidate from family, in world space,
// centered and oriented per the family's distributions:
// radius (and, for rectangles, the aspect-ratio-derived second
// half-length), orientation, and translation, then emits the polygon via
// BuildShape.
func Draw(fam *ShapeFamily, r *RNG, cfg *Config) fram.Polygon {
	radius := fam.PopRadius(r, cfg.RadiiListIncrease)
	xRadius := radius
	yRadius := radius * fam.Spec.AspectRatio

	normal := SampleOrientation(r, fam.Spec.MeanNormal, fam.Spec.Kappa)
	center := SampleUniformBox(r, fam.Spec.Region.Box(cfg))

	return BuildShape(fam.Spec.Shape, fam.Spec.NVerts, fam.Index, center, normal, xRadius, yRadius)
}

// Retranslate redraws only the center of an already-built candidate,
// keeping its normal, radii, and shape exactly as drawn. This is the
// retry path after a rejection: resampling orientation or radius would
// waste the work FRAM already spent classifying this shape, and the
// spec's own retry policy is a fresh translation, not a fresh draw.
func Retranslate(base fram.Polygon, fam *ShapeFamily, r *RNG, cfg *Config) fram.Polygon {
	center := SampleUniformBox(r, fam.Spec.Region.Box(cfg))
	return BuildShape(fam.Spec.Shape, fam.Spec.NVerts, base.Family, center, base.Normal, base.XRadius, base.YRadius)
}

// BuildShape emits a candidate polygon in world space: a regular
// n-vertex ellipse approximation or an axis-aligned-in-plane rectangle,
// built in a local frame with the shape's own x/y half-lengths, rotated
// by the shortest-arc quaternion from +z to normal (teacher analog:
// `lin.T.SetVQ`), then translated to center.
func BuildShape(kind ShapeKind, nverts, family int, center, normal geom.Vec3, xRadius, yRadius float64) fram.Polygon {
	var local []geom.Vec3
	var area float64
	switch kind {
	case ShapeRectangle:
		local = []geom.Vec3{
			geom.V3(-xRadius, -yRadius, 0),
			geom.V3(xRadius, -yRadius, 0),
			geom.V3(xRadius, yRadius, 0),
			geom.V3(-xRadius, yRadius, 0),
		}
		area = 4 * xRadius * yRadius
	default: // ShapeEllipse
		if nverts < 3 {
			nverts = 8
		}
		local = make([]geom.Vec3, nverts)
		for i := 0; i < nverts; i++ {
			angle := 2 * math.Pi * float64(i) / float64(nverts)
			local[i] = geom.V3(xRadius*math.Cos(angle), yRadius*math.Sin(angle), 0)
		}
		area = math.Pi * xRadius * yRadius
	}

	q := geom.FromToRotation(geom.V3(0, 0, 1), normal.Unit())
	verts := make([]geom.Vec3, len(local))
	for i, lv := range local {
		verts[i] = geom.Add(center, q.Rotate(lv))
	}
	u := q.Rotate(geom.V3(1, 0, 0))
	v := q.Rotate(geom.V3(0, 1, 0))

	return fram.Polygon{
		Family:  family,
		Normal:  normal.Unit(),
		Center:  center,
		U:       u,
		V:       v,
		XRadius: xRadius,
		YRadius: yRadius,
		Verts:   verts,
		BBox:    geom.BoundingBox(verts),
		Area:    area,
	}
}

// BuildUserPolygon emits a user-defined candidate. By-coordinate polygons
// are taken verbatim (their plane fit from the first three vertices);
// parametric ones go through the same BuildShape path as stochastic
// candidates. family is -1 for user rectangles and 0 for user ellipses,
// per the radii_All.dat convention.
func BuildUserPolygon(up UserPolygon, family int) fram.Polygon {
	if up.ByCoord {
		normal := geom.Cross(geom.Sub(up.Verts[1], up.Verts[0]), geom.Sub(up.Verts[2], up.Verts[0])).Unit()
		center := centroid(up.Verts)
		u, v := geom.Basis(normal)
		return fram.Polygon{
			Family: family,
			Normal: normal,
			Center: center,
			U:      u,
			V:      v,
			Verts:  up.Verts,
			BBox:   geom.BoundingBox(up.Verts),
			Area:   polygonArea(up.Verts, normal, center),
		}
	}
	nverts := up.NVerts
	if up.Kind == ShapeRectangle {
		nverts = 4
	}
	return BuildShape(up.Kind, nverts, family, up.Center, up.Normal, up.XRadius, up.YRadius)
}

func centroid(verts []geom.Vec3) geom.Vec3 {
	sum := geom.Vec3{}
	for _, v := range verts {
		sum = geom.Add(sum, v)
	}
	return geom.Scale(sum, 1/float64(len(verts)))
}

// polygonArea computes a planar polygon's area via the shoelace formula
// projected into its own 2-D basis.
func polygonArea(verts []geom.Vec3, normal, center geom.Vec3) float64 {
	u, v := geom.Basis(normal)
	pts := geom.To2D(verts, center, u, v)
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return math.Abs(a) / 2
}
