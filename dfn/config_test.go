package dfn

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempInput(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.dat")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp input: %v", err)
	}
	return path
}

func TestParseConfigMinimal(t *testing.T) {
	body := `
// minimal single-rectangle run
h: 0.1
domainSize: {1,1,1}
seed: 42
nPoly: 1
stopCondition: 0
nFamEll: 0
nFamRect: 1
famProb: {1.0}
rDistr: {4}
rConst: {0.3}
rAspectRatio: {1}
rNormalX: {0}
rNormalY: {0}
rNormalZ: {1}
rKappa: {-1}
rRegionType: {0}
`
	path := writeTempInput(t, body)
	cfg, err := ParseConfig(path, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.H != 0.1 {
		t.Errorf("H = %v, want 0.1", cfg.H)
	}
	if cfg.Eps != 0.1*1e-8 {
		t.Errorf("Eps = %v, want %v", cfg.Eps, 0.1*1e-8)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Seed)
	}
	if len(cfg.Families) != 1 {
		t.Fatalf("expected 1 family, got %d", len(cfg.Families))
	}
	fam := cfg.Families[0]
	if fam.Shape != ShapeRectangle {
		t.Errorf("expected rectangle family")
	}
	if fam.Radius.Kind != RadiusConstant || fam.Radius.Const != 0.3 {
		t.Errorf("unexpected radius dist: %+v", fam.Radius)
	}
	if fam.Probability != 1.0 {
		t.Errorf("Probability = %v, want 1.0", fam.Probability)
	}
}

func TestParseConfigMissingH(t *testing.T) {
	path := writeTempInput(t, "domainSize: {1,1,1}\n")
	if _, err := ParseConfig(path, nil); err == nil {
		t.Error("expected error for missing h")
	}
}
