package dfn

import (
	"github.com/ongchi/dfngen/fram"
	"github.com/ongchi/dfngen/geom"
)

// Hotkey is the narrow, injectable capability the driver polls once per
// outer iteration to let an interactive run halt early: a coroutine-free
// poll behind a small interface rather than a dedicated reader goroutine.
// Implementations that cannot read a keypress (batch runs, tests) should
// always report false.
type Hotkey interface {
	PeekKey() (byte, bool)
}

type noHotkey struct{}

func (noHotkey) PeekKey() (byte, bool) { return 0, false }

// NoHotkey is a Hotkey that never reports a keypress, for batch runs and
// tests.
var NoHotkey Hotkey = noHotkey{}

// Driver owns everything mutable across a generation run: the RNG, the
// accepted-fracture network, per-family state, the family selector, and
// run statistics. Config is immutable and supplied once.
type Driver struct {
	cfg      *Config
	rng      *RNG
	net      *fram.Network
	families []*ShapeFamily
	selector *CDFSelector
	stats    *Stats
	hotkey   Hotkey

	userHalted bool
}

// NewDriver builds a driver ready to Run: one ShapeFamily per
// cfg.Families (radii lists pre-generated against an nPoly-mode estimate
// of how many draws each family needs), a fresh CDFSelector over their
// probabilities, and an empty Network.
func NewDriver(cfg *Config, hotkey Hotkey) *Driver {
	rng := NewRNG(cfg.Seed)
	families := make([]*ShapeFamily, len(cfg.Families))
	specs := make([]FamilySpec, len(cfg.Families))
	for i, spec := range cfg.Families {
		expCount := cfg.NPoly
		if expCount < 1 {
			expCount = 1
		}
		families[i] = NewShapeFamily(spec, i, rng, expCount)
		specs[i] = spec
	}
	if hotkey == nil {
		hotkey = NoHotkey
	}
	return &Driver{
		cfg:      cfg,
		rng:      rng,
		net:      fram.NewNetwork(),
		families: families,
		selector: NewCDFSelector(specs),
		stats:    NewStats(len(cfg.Families)),
		hotkey:   hotkey,
	}
}

// Network returns the accepted-fracture arena built so far.
func (d *Driver) Network() *fram.Network { return d.net }

// Stats returns the run's accumulated counters.
func (d *Driver) Stats() *Stats { return d.stats }

// Families returns the per-family runtime state, for reporting.
func (d *Driver) Families() []*ShapeFamily { return d.families }

// UserHalted reports whether the run stopped because of an operator
// hotkey interrupt rather than reaching its configured stop condition.
func (d *Driver) UserHalted() bool { return d.userHalted }

// Run drives the insert/truncate/check/accept-or-reject loop until the
// configured stop condition is reached, every family is exhausted, or
// the operator halts the run via Hotkey.
func (d *Driver) Run() {
	d.insertUserPolygons()

	for {
		if key, ok := d.hotkey.PeekKey(); ok && (key == 'q' || key == 'Q') {
			d.userHalted = true
			return
		}
		if d.stopConditionReached() {
			return
		}

		famIdx, ok := d.nextFamily()
		if !ok {
			return // every family complete (P32 mode) or none left to draw from
		}
		d.attemptFamily(famIdx)
	}
}

func (d *Driver) stopConditionReached() bool {
	if d.cfg.StopCondition == 0 { // nPoly mode
		return d.stats.AcceptedPolyCount >= d.cfg.NPoly
	}
	return d.selector.Empty() // P32 mode
}

func (d *Driver) nextFamily() (int, bool) {
	return d.selector.Select(d.rng.Float64())
}

// attemptFamily draws, truncates, and checks one candidate from family
// famIdx, retranslating on rejection up to RejectsPerFracture times
// before giving up on this draw and moving to the next outer iteration.
func (d *Driver) attemptFamily(famIdx int) {
	fam := d.families[famIdx]
	base := Draw(fam, d.rng, d.cfg)

	for attempt := 0; attempt <= d.cfg.RejectsPerFracture; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = Retranslate(base, fam, d.rng, d.cfg)
		}

		var region *geom.AABB
		if fam.Spec.Region.Kind != RegionWholeDomain {
			box := fam.Spec.Region.Box(d.cfg)
			region = &box
		}

		truncated, isTruncated, outside := TruncateCandidate(candidate, d.cfg.Domain, region, d.cfg.Eps)
		if outside {
			fam.Rejected++
			d.stats.Tally.Outside++
			if attempt > 0 {
				fam.Retranslated++
			}
			continue
		}
		if isTruncated {
			d.stats.TruncatedCount++
		}
		candidate = truncated

		if d.cfg.DisableFram {
			d.accept(fam, candidate)
			return
		}

		result := fram.Check(fram.Tolerances{H: d.cfg.H, Eps: d.cfg.Eps}, &candidate, d.net)
		if result.Code != fram.Accept {
			fam.Rejected++
			d.stats.RejectedPolyCount++
			d.stats.RejectedFromFam[famIdx]++
			d.stats.Tally.Record(result.Code)
			if attempt > 0 {
				fam.Retranslated++
				d.stats.RetranslatedPolyCount++
			}
			continue
		}

		fram.Commit(d.net, candidate, result, d.cfg.Eps)
		d.recordShortening(result)
		d.acceptStats(fam, famIdx, candidate)
		d.stats.RejectsPerAttempt = append(d.stats.RejectsPerAttempt, attempt)
		return
	}
}

func (d *Driver) accept(fam *ShapeFamily, candidate fram.Polygon) {
	d.net.AddPolygon(candidate)
	d.acceptStats(fam, fam.Index, candidate)
}

func (d *Driver) acceptStats(fam *ShapeFamily, famIdx int, candidate fram.Polygon) {
	fam.Accepted++
	d.stats.AcceptedPolyCount++
	d.stats.AcceptedFromFam[famIdx]++
	d.stats.AreaBeforeRemoval += candidate.Area

	regionVolume := fam.Spec.Region.Box(d.cfg).Volume()
	fam.AddP32(candidate.Area, regionVolume)
	if fam.Complete && d.cfg.StopCondition != 0 { // nPoly mode keeps the CDF fixed
		d.selector.Complete(famIdx)
	}
}

// recordShortening folds the per-pair shorten bookkeeping Check produced
// for a just-committed candidate into the run-level intersection-length
// totals.
func (d *Driver) recordShortening(result fram.Result) {
	for _, pend := range result.Intersections {
		if !pend.Shortened {
			continue
		}
		d.stats.IntersectionsShortened++
		d.stats.OriginalLength += pend.OriginalLength
		d.stats.DiscardedLength += pend.DiscardedLength
	}
}

// insertUserPolygons commits every configured user-defined polygon
// before any stochastic draw. When InsertUserRectanglesFirst is set,
// rectangles are committed ahead of ellipses; otherwise polygons commit
// in configuration order. User polygons bypass family-quota bookkeeping
// (family index < 0) but still go through truncation and FRAM checking.
func (d *Driver) insertUserPolygons() {
	polys := d.cfg.UserPolygons
	if d.cfg.InsertUserRectanglesFirst {
		polys = reorderRectanglesFirst(polys)
	}

	for _, up := range polys {
		family := 0
		if up.Kind == ShapeRectangle {
			family = -1
		}
		candidate := BuildUserPolygon(up, family)

		truncated, isTruncated, outside := TruncateCandidate(candidate, d.cfg.Domain, nil, d.cfg.Eps)
		if outside {
			continue
		}
		if isTruncated {
			d.stats.TruncatedCount++
		}
		candidate = truncated

		if d.cfg.DisableFram {
			d.net.AddPolygon(candidate)
			d.stats.AcceptedPolyCount++
			continue
		}

		result := fram.Check(fram.Tolerances{H: d.cfg.H, Eps: d.cfg.Eps}, &candidate, d.net)
		if result.Code != fram.Accept {
			d.stats.RejectedPolyCount++
			d.stats.Tally.Record(result.Code)
			continue
		}
		fram.Commit(d.net, candidate, result, d.cfg.Eps)
		d.recordShortening(result)
		d.stats.AcceptedPolyCount++
		d.stats.AreaBeforeRemoval += candidate.Area
	}
}

func reorderRectanglesFirst(polys []UserPolygon) []UserPolygon {
	out := make([]UserPolygon, 0, len(polys))
	for _, p := range polys {
		if p.Kind == ShapeRectangle {
			out = append(out, p)
		}
	}
	for _, p := range polys {
		if p.Kind != ShapeRectangle {
			out = append(out, p)
		}
	}
	return out
}
