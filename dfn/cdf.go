package dfn

// CDFSelector maintains a dense cumulative distribution over the still-
// active families' probabilities and draws a family index by inverse-CDF
// on a uniform [0,1) value. nPoly mode never calls Complete,
// so the CDF stays fixed for the whole run; P32 mode calls Complete the
// instant a family reaches its target, which removes it and renormalizes
// the remaining probabilities proportionally (dividing by their reduced
// sum has exactly that effect, so no separate redistribution step is
// needed).
type CDFSelector struct {
	prob      []float64
	activeIdx []int
	cdf       []float64
}

// NewCDFSelector builds the initial CDF over every family's Probability.
func NewCDFSelector(families []FamilySpec) *CDFSelector {
	s := &CDFSelector{
		prob:      make([]float64, len(families)),
		activeIdx: make([]int, len(families)),
	}
	for i, f := range families {
		s.prob[i] = f.Probability
		s.activeIdx[i] = i
	}
	s.rebuild()
	return s
}

func (s *CDFSelector) rebuild() {
	s.cdf = make([]float64, len(s.prob))
	sum := 0.0
	for _, p := range s.prob {
		sum += p
	}
	cum := 0.0
	for i, p := range s.prob {
		if sum > 0 {
			cum += p / sum
		} else {
			cum = float64(i+1) / float64(len(s.prob))
		}
		s.cdf[i] = cum
	}
}

// Select draws a family index (into the original family slice) for
// uniform draw u in [0,1). ok is false once every family has completed.
func (s *CDFSelector) Select(u float64) (familyIndex int, ok bool) {
	if len(s.cdf) == 0 {
		return -1, false
	}
	for i, c := range s.cdf {
		if u <= c {
			return s.activeIdx[i], true
		}
	}
	return s.activeIdx[len(s.activeIdx)-1], true
}

// Complete removes familyIndex from the active set (P32 mode, once that
// family's currentP32 reaches its target) and rebuilds the CDF.
func (s *CDFSelector) Complete(familyIndex int) {
	pos := -1
	for i, idx := range s.activeIdx {
		if idx == familyIndex {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}
	s.prob = append(s.prob[:pos], s.prob[pos+1:]...)
	s.activeIdx = append(s.activeIdx[:pos], s.activeIdx[pos+1:]...)
	s.rebuild()
}

// Empty reports whether every family has completed.
func (s *CDFSelector) Empty() bool { return len(s.activeIdx) == 0 }
