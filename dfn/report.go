package dfn

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ongchi/dfngen/fram"
)

// WriteOutputReport writes the human-readable DFN_output.txt summary:
// per-family accepted/rejected/area/P32 breakdowns, intersection
// statistics, the rejection tally, the before/after isolated-fracture-
// removal P30/P32 totals, and the resolved seed, grounded on
// original_source/DFNGen/DFNmain.cpp's end-of-run report (lines ~470-945).
// final holds the Polygon.ID values that survived cluster/boundary
// filtering, as returned by SelectFinalFractures.
func WriteOutputReport(w io.Writer, cfg *Config, d *Driver, final []int) error {
	p := message.NewPrinter(language.English)
	stats := d.Stats()
	net := d.Network()

	var areaAfter float64
	areaAfterByFam := make(map[int]float64)
	for _, id := range final {
		poly := net.Polys[id]
		areaAfter += poly.Area
		areaAfterByFam[poly.Family] += poly.Area
	}
	stats.AreaAfterRemoval = areaAfter

	if _, err := p.Fprintf(w, "DFN generation report\n"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "resolved seed: %d\n\n", d.rng.Seed()); err != nil {
		return err
	}

	if _, err := p.Fprintf(w, "Fractures accepted: %d\n", stats.AcceptedPolyCount); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Fractures rejected: %d\n", stats.RejectedPolyCount); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Fractures retranslated: %d\n", stats.RetranslatedPolyCount); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Fractures truncated at a domain/region boundary: %d\n\n", stats.TruncatedCount); err != nil {
		return err
	}

	if _, err := p.Fprintf(w, "Per-family results:\n"); err != nil {
		return err
	}
	for _, fam := range d.Families() {
		name := fam.Spec.Name
		if name == "" {
			name = fmt.Sprintf("family %d", fam.Index)
		}
		if _, err := p.Fprintf(w, "  %s: accepted=%d rejected=%d retranslated=%d currentP32=%.6g areaAfterRemoval=%.6g\n",
			name, fam.Accepted, fam.Rejected, fam.Retranslated, fam.CurrentP32, areaAfterByFam[fam.Index]); err != nil {
			return err
		}
	}

	if _, err := p.Fprintf(w, "\nFracture count estimate vs actual:\n"); err != nil {
		return err
	}
	for _, fam := range d.Families() {
		name := fam.Spec.Name
		if name == "" {
			name = fmt.Sprintf("family %d", fam.Index)
		}
		if fam.Spec.Radius.Kind == RadiusConstant {
			if _, err := p.Fprintf(w, "  %s: using constant size, no estimate\n", name); err != nil {
				return err
			}
			continue
		}
		actual := fam.Accepted + fam.Rejected
		if _, err := p.Fprintf(w, "  %s: estimated=%d actual=%d\n", name, fam.ExpectedCount, actual); err != nil {
			return err
		}
	}

	if _, err := p.Fprintf(w, "\nIntersection statistics:\n"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  total intersections: %d\n", len(net.Inters)); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  triple intersection points: %d\n", len(net.Triples)); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  intersections shortened: %d\n", stats.IntersectionsShortened); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  discarded length: %.6g of %.6g original\n",
		stats.DiscardedLength, stats.OriginalLength); err != nil {
		return err
	}

	domVol := cfg.Domain.Volume()
	intersectionNodeCount := 2 * len(net.Inters)
	tripleNodeCount := len(net.Triples)
	if _, err := p.Fprintf(w, "  Lagrit should remove %d nodes\n", intersectionNodeCount/2-tripleNodeCount); err != nil {
		return err
	}

	if _, err := p.Fprintf(w, "\nIntensity (before isolated-fracture removal):\n"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  P30: %.6g\n", float64(stats.AcceptedPolyCount)/domVol); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  P32: %.6g\n", 2*stats.AreaBeforeRemoval/domVol); err != nil {
		return err
	}

	if _, err := p.Fprintf(w, "\nIntensity (after isolated-fracture removal):\n"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  P30: %.6g\n", float64(len(final))/domVol); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  P32: %.6g\n", 2*stats.AreaAfterRemoval/domVol); err != nil {
		return err
	}

	if _, err := p.Fprintf(w, "\nRejection reason tally:\n"); err != nil {
		return err
	}
	tally := stats.Tally
	if _, err := p.Fprintf(w, "  short intersection: %d\n", tally.ShortIntersection); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  close to node: %d\n", tally.CloseToNode); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  close to edge: %d\n", tally.CloseToEdge); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  vertex close to edge: %d\n", tally.ClosePointToEdge); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  outside domain/region: %d\n", tally.Outside); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  intersection too close to another intersection: %d\n", tally.InterCloseToInter); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "  triple intersection too close to existing feature: %d\n", tally.Triple); err != nil {
		return err
	}

	if d.UserHalted() {
		if _, err := p.Fprintf(w, "\nrun halted by operator before reaching its stop condition\n"); err != nil {
			return err
		}
	}

	return nil
}

// WriteRadiiReport writes radii/radii_All.dat: one "xRadius yRadius
// family#" line per accepted polygon, family# following the radii_All.dat
// convention (-1 user rectangle, 0 user ellipse, >0
// stochastic family index).
func WriteRadiiReport(w io.Writer, net *fram.Network) error {
	for _, poly := range net.Polys {
		if _, err := fmt.Fprintf(w, "%.6g %.6g %d\n", poly.XRadius, poly.YRadius, poly.Family); err != nil {
			return err
		}
	}
	return nil
}

// OutputPaths resolves the output-folder's report and radii sub-paths.
func OutputPaths(outputFolder string) (report, radii string) {
	return filepath.Join(outputFolder, "DFN_output.txt"), filepath.Join(outputFolder, "radii", "radii_All.dat")
}
