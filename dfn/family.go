package dfn

import (
	"math"
	"sort"
)

// ShapeFamily is a family's mutable run-time state layered over its
// immutable FamilySpec: a pre-generated, sorted (largest first, so the
// biggest fractures get first claim on space) radii list, current P32
// accrual, and completion status.
type ShapeFamily struct {
	Spec  FamilySpec
	Index int // position in Config.Families; the emitted Polygon.Family value

	radii        []float64
	next         int
	CurrentP32   float64
	Complete     bool
	Accepted     int
	Rejected     int
	Retranslated int

	// ExpectedCount is the pre-run estimate of how many draws this family
	// would need (the radii list's initial size), reported alongside the
	// actual accepted+rejected attempt count so an operator can see how
	// far off the estimate ran. The report does not print it for
	// RadiusConstant families.
	ExpectedCount int
}

// NewShapeFamily builds run-time state for a family, pre-generating an
// initial radii list sized to roughly cover expCount draws (an estimate;
// PopRadius grows the list on demand if it runs out).
func NewShapeFamily(spec FamilySpec, index int, r *RNG, expCount int) *ShapeFamily {
	if expCount < 1 {
		expCount = 1
	}
	f := &ShapeFamily{Spec: spec, Index: index, ExpectedCount: expCount}
	f.radii = generateRadii(r, spec, expCount)
	return f
}

func generateRadii(r *RNG, spec FamilySpec, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = spec.Radius.Sample(r)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

// PopRadius returns the next radius to attempt for this family, growing
// the pre-generated list by Config.RadiiListIncrease (a fraction of the
// current list length, at least one) if it has been exhausted.
func (f *ShapeFamily) PopRadius(r *RNG, increase float64) float64 {
	if f.next >= len(f.radii) {
		extra := int(math.Ceil(float64(len(f.radii)) * increase))
		if extra < 1 {
			extra = 1
		}
		f.radii = append(f.radii, generateRadii(r, f.Spec, extra)...)
	}
	v := f.radii[f.next]
	f.next++
	return v
}

// AddP32 records an accepted polygon's contribution to this family's
// areal intensity (the factor of 2 accounts for both fracture faces)
// and marks the family complete once it reaches its P32 target.
func (f *ShapeFamily) AddP32(area, regionVolume float64) {
	if regionVolume > 0 {
		f.CurrentP32 += 2 * area / regionVolume
	}
	if f.Spec.P32Target > 0 && f.CurrentP32 >= f.Spec.P32Target {
		f.Complete = true
	}
}
