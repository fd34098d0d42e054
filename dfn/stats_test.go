package dfn

import (
	"testing"

	"github.com/ongchi/dfngen/fram"
)

func TestRejectTallyRecord(t *testing.T) {
	var tally RejectTally
	tally.Record(fram.RejectShortIntersection)
	tally.Record(fram.RejectCloseToNode)
	tally.Record(fram.RejectCloseToEdge)
	tally.Record(fram.RejectVertexCloseToEdge)
	tally.Record(fram.RejectTriple)
	tally.Record(fram.RejectIntersectionCloseToIntersection)

	if tally.ShortIntersection != 1 || tally.CloseToNode != 1 || tally.CloseToEdge != 1 ||
		tally.ClosePointToEdge != 1 || tally.Triple != 1 || tally.InterCloseToInter != 1 {
		t.Errorf("unexpected tally: %+v", tally)
	}
}

func TestNewStatsSizing(t *testing.T) {
	s := NewStats(3)
	if len(s.AcceptedFromFam) != 3 || len(s.RejectedFromFam) != 3 {
		t.Errorf("expected per-family slices of length 3, got %d/%d", len(s.AcceptedFromFam), len(s.RejectedFromFam))
	}
}
