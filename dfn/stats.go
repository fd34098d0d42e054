package dfn

import "github.com/ongchi/dfngen/fram"

// RejectTally is the structured rejection reason breakdown. ClosePointToEdge
// is kept separate from CloseToEdge: the former is a polygon vertex
// brushing the other polygon's boundary (fram.RejectVertexCloseToEdge),
// the latter an intersection segment endpoint or body doing the same
// (fram.RejectCloseToEdge) — two different geometric features, reported
// on their own lines.
//
// CloseToNode and CloseToEdge are already disjoint here because
// fram.Check tests close-to-node before close-to-edge and returns on the
// first match — no end-of-run subtraction is needed.
type RejectTally struct {
	ShortIntersection int
	CloseToNode       int
	CloseToEdge       int
	ClosePointToEdge  int
	Outside           int
	Triple            int
	InterCloseToInter int
}

// Record classifies a FRAM reject code into the tally.
func (t *RejectTally) Record(code fram.RejectCode) {
	switch code {
	case fram.RejectShortIntersection:
		t.ShortIntersection++
	case fram.RejectCloseToNode:
		t.CloseToNode++
	case fram.RejectCloseToEdge:
		t.CloseToEdge++
	case fram.RejectVertexCloseToEdge:
		t.ClosePointToEdge++
	case fram.RejectIntersectionCloseToIntersection:
		t.InterCloseToInter++
	case fram.RejectTriple:
		t.Triple++
	}
}

// Stats accumulates the driver's monotonic counters and per-family
// breakdowns for the whole run.
type Stats struct {
	AcceptedPolyCount     int
	RejectedPolyCount     int
	RetranslatedPolyCount int
	TruncatedCount        int

	AcceptedFromFam []int
	RejectedFromFam []int

	// RejectsPerAttempt[i] is the number of rejected/retranslated attempts
	// that preceded the i-th accepted polygon.
	RejectsPerAttempt []int

	Tally RejectTally

	// AreaBeforeRemoval and AreaAfterRemoval are the summed areas of every
	// accepted polygon and of the surviving polygons after isolated-
	// fracture removal (cluster filtering), respectively. Both feed the
	// P32 = 2*area/domainVolume intensity totals.
	AreaBeforeRemoval float64
	AreaAfterRemoval  float64

	IntersectionsShortened int
	DiscardedLength        float64
	OriginalLength         float64
}

// NewStats allocates per-family counters sized to nFamilies.
func NewStats(nFamilies int) *Stats {
	return &Stats{
		AcceptedFromFam: make([]int, nFamilies),
		RejectedFromFam: make([]int, nFamilies),
	}
}
