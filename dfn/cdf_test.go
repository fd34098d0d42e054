package dfn

import "testing"

func TestCDFSelectorFixedMode(t *testing.T) {
	families := []FamilySpec{{Probability: 0.25}, {Probability: 0.75}}
	s := NewCDFSelector(families)
	if idx, ok := s.Select(0.1); !ok || idx != 0 {
		t.Errorf("Select(0.1) = %d,%v want 0,true", idx, ok)
	}
	if idx, ok := s.Select(0.9); !ok || idx != 1 {
		t.Errorf("Select(0.9) = %d,%v want 1,true", idx, ok)
	}
}

func TestCDFSelectorCompletionRedistributes(t *testing.T) {
	families := []FamilySpec{{Probability: 0.5}, {Probability: 0.5}}
	s := NewCDFSelector(families)
	s.Complete(0)
	if s.Empty() {
		t.Fatal("expected one family to remain active")
	}
	if idx, ok := s.Select(0.99); !ok || idx != 1 {
		t.Errorf("after completing family 0, Select should always return 1, got %d,%v", idx, ok)
	}
}

func TestCDFSelectorAllComplete(t *testing.T) {
	families := []FamilySpec{{Probability: 1}}
	s := NewCDFSelector(families)
	s.Complete(0)
	if !s.Empty() {
		t.Error("expected selector to be empty after completing the only family")
	}
	if _, ok := s.Select(0.5); ok {
		t.Error("expected Select to fail once every family is complete")
	}
}
