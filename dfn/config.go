package dfn

import "github.com/ongchi/dfngen/geom"

// ShapeKind selects a family's (or user polygon's) basic shape.
type ShapeKind int

const (
	ShapeEllipse ShapeKind = iota
	ShapeRectangle
)

// RegionKind classifies the spatial region a family samples translations
// and accrues P32 within.
type RegionKind int

const (
	RegionWholeDomain RegionKind = iota
	RegionLayer
	RegionSubRegion
)

// RegionRef names a family's region: the whole domain, or one of the
// configured layers/sub-regions by index.
type RegionRef struct {
	Kind  RegionKind
	Index int
}

// Box resolves a region reference to the axis-aligned box translations
// are drawn from and P32 is measured against.
func (rr RegionRef) Box(cfg *Config) geom.AABB {
	switch rr.Kind {
	case RegionLayer:
		return cfg.Layers[rr.Index]
	case RegionSubRegion:
		return cfg.Regions[rr.Index]
	default:
		return cfg.Domain
	}
}

// FamilySpec is one shape family's immutable parameterization.
type FamilySpec struct {
	Name string // catalog name, for reporting; empty for inline families

	Shape  ShapeKind
	NVerts int // ellipse-as-n-gon vertex count; ignored for rectangles

	MeanNormal geom.Vec3
	Kappa      float64 // Fisher concentration; +Inf is deterministic

	Radius      RadiusDist
	AspectRatio float64 // y-extent / x-extent, applied after Radius.Sample

	Region    RegionRef
	P32Target float64

	Probability float64
}

// UserPolygon is an explicitly-specified fracture, inserted before any
// stochastic draws and never subject to family-quota rejection (family
// index < 0 in the emitted Polygon).
type UserPolygon struct {
	Kind ShapeKind

	// ByCoord, when true, ignores the shape fields below and uses Verts
	// directly (the "by coordinate" input variant).
	ByCoord bool
	Verts   []geom.Vec3

	Center  geom.Vec3
	Normal  geom.Vec3
	XRadius float64
	YRadius float64
	NVerts  int // ellipse approximation vertex count
}

// Config is the immutable, fully-resolved run configuration: every value
// the driver, sampler, truncator, and reporter need, built once by the
// input-file parser and passed by reference from then on. Nothing in
// this struct is ever mutated after ParseConfig returns it; the RNG and
// Stats are the only mutable collaborators the driver owns separately.
type Config struct {
	Domain geom.AABB
	Layers []geom.AABB
	Regions []geom.AABB

	H   float64
	Eps float64

	Seed uint64

	Families []FamilySpec

	NPoly         int
	StopCondition int // 0: nPoly mode, 1: P32 mode

	RejectsPerFracture int
	RadiiListIncrease  float64

	DisableFram               bool
	PrintRejectReasons        bool
	OutputAllRadii            bool
	InsertUserRectanglesFirst bool

	UserPolygons []UserPolygon

	RemoveFracturesLessThan float64
	PolygonBoundaryFlag     bool
	IgnoreBoundaryFaces     bool
	KeepOnlyLargestCluster  bool
	BoundaryFaces           [6]bool
}

// DomainBox returns the domain as a box centered at the origin with the
// given extents; domainSize is a full width along each axis, not a
// half-width.
func DomainBox(sizeX, sizeY, sizeZ float64) geom.AABB {
	return geom.AABB{
		Min: geom.V3(-sizeX/2, -sizeY/2, -sizeZ/2),
		Max: geom.V3(sizeX/2, sizeY/2, sizeZ/2),
	}
}
