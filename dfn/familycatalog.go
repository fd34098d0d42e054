package dfn

// familycatalog.go reads named, reusable shape-family parameter presets
// from a YAML file, referenced by name from the main input file's
// "ePreset"/"rPreset" keys (an enrichment over the flat keyword/value
// format, supplementing it rather than replacing it).
//
// Same shape as other YAML-backed loaders in this codebase: unmarshal
// into a yaml-tagged intermediate struct, then translate string enum
// fields through a lookup map into the typed domain values.

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/ongchi/dfngen/geom"
)

var radiusKinds = map[string]RadiusKind{
	"logNormal":   RadiusLogNormal,
	"powerLaw":    RadiusPowerLaw,
	"exponential": RadiusExponential,
	"constant":    RadiusConstant,
}

type familyPreset struct {
	Name        string  `yaml:"name"`
	Distr       string  `yaml:"distr"`
	LogMean     float64 `yaml:"logMean"`
	LogStd      float64 `yaml:"logStd"`
	PowerLawExp float64 `yaml:"powerLawAlpha"`
	ExpLambda   float64 `yaml:"expLambda"`
	Const       float64 `yaml:"const"`
	RMin        float64 `yaml:"radiusMin"`
	RMax        float64 `yaml:"radiusMax"`
	AspectRatio float64 `yaml:"aspectRatio"`
	NumPoints   int     `yaml:"numPoints"`
	Kappa       float64 `yaml:"kappa"` // negative means deterministic
	NormalX     float64 `yaml:"normalX"`
	NormalY     float64 `yaml:"normalY"`
	NormalZ     float64 `yaml:"normalZ"`
	P32Target   float64 `yaml:"p32Target"`
}

type familyCatalogFile struct {
	Families []familyPreset `yaml:"families"`
}

// FamilyCatalog indexes family presets by name for fast lookup from
// ParseConfig.
type FamilyCatalog struct {
	byName map[string]FamilySpec
}

// LoadFamilyCatalog parses a YAML presets file into a FamilyCatalog.
func LoadFamilyCatalog(data []byte) (*FamilyCatalog, error) {
	var file familyCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("family catalog: yaml: %w", err)
	}
	cat := &FamilyCatalog{byName: map[string]FamilySpec{}}
	for _, p := range file.Families {
		kind, ok := radiusKinds[p.Distr]
		if !ok {
			return nil, fmt.Errorf("family catalog: preset %q: unsupported distr %q", p.Name, p.Distr)
		}
		kappa := p.Kappa
		if kappa < 0 {
			kappa = math.Inf(1)
		}
		normal := geom.V3(p.NormalX, p.NormalY, p.NormalZ)
		if normal.LenSq() < geom.Epsilon {
			normal = geom.V3(0, 0, 1)
		}
		aspect := p.AspectRatio
		if aspect == 0 {
			aspect = 1
		}
		numPoints := p.NumPoints
		if numPoints == 0 {
			numPoints = 8
		}
		cat.byName[p.Name] = FamilySpec{
			Name:       p.Name,
			NVerts:     numPoints,
			MeanNormal: normal.Unit(),
			Kappa:      kappa,
			Radius: RadiusDist{
				Kind:   kind,
				Mu:     p.LogMean,
				Sigma:  p.LogStd,
				Alpha:  p.PowerLawExp,
				Lambda: p.ExpLambda,
				Const:  p.Const,
				RMin:   p.RMin,
				RMax:   p.RMax,
			},
			AspectRatio: aspect,
			P32Target:   p.P32Target,
		}
	}
	return cat, nil
}

// Lookup returns the named preset, and whether it was found.
func (c *FamilyCatalog) Lookup(name string) (FamilySpec, bool) {
	if c == nil {
		return FamilySpec{}, false
	}
	fam, ok := c.byName[name]
	return fam, ok
}
