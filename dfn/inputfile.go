package dfn

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ongchi/dfngen/geom"
)

// inputValues is the raw "keyword: value" table read from the input
// file, before any typed interpretation. Grounded on the design preference
// ("Global mutable configuration... collect these into an immutable
// configuration value constructed once from the input parser"): this
// type exists only to feed ParseConfig and is discarded afterward.
type inputValues map[string]string

// parseInputFile reads a flat `keyword: value` text file: one
// keyword per line, `//` line comments, and list values wrapped in
// braces (`{v1,v2,v3}`) or left bare for a single scalar. Blank lines and
// lines without a colon are ignored.
func parseInputFile(path string) (inputValues, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	values := inputValues{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		values[key] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return values, nil
}

func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (v inputValues) str(key, def string) string {
	if s, ok := v[key]; ok {
		return s
	}
	return def
}

func (v inputValues) float(key string, def float64) float64 {
	s, ok := v[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}

func (v inputValues) int(key string, def int) int {
	return int(v.float(key, float64(def)))
}

func (v inputValues) boolFlag(key string, def bool) bool {
	return v.int(key, boolToInt(def)) != 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (v inputValues) floats(key string) []float64 {
	s, ok := v[key]
	if !ok {
		return nil
	}
	parts := splitList(s)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (v inputValues) ints(key string) []int {
	fs := v.floats(key)
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = int(f)
	}
	return out
}

// ParseConfig reads path and resolves it (with help from catalog for
// named family presets, may be nil) into an immutable Config. Grounded on
// original_source/DFNGen/DFNmain.cpp's getInput call site for the set of
// keys consumed.
func ParseConfig(path string, catalog *FamilyCatalog) (Config, error) {
	values, err := parseInputFile(path)
	if err != nil {
		return Config{}, err
	}

	h := values.float("h", 0)
	if h <= 0 {
		return Config{}, fmt.Errorf("input: h must be > 0")
	}
	domSize := values.floats("domainSize")
	if len(domSize) != 3 {
		return Config{}, fmt.Errorf("input: domainSize must have 3 values")
	}
	domain := DomainBox(domSize[0], domSize[1], domSize[2])

	var layers []geom.AABB
	layersRaw := values.floats("layers")
	for i := 0; i+1 < len(layersRaw); i += 2 {
		layers = append(layers, geom.AABB{
			Min: geom.V3(domain.Min.X, domain.Min.Y, layersRaw[i]),
			Max: geom.V3(domain.Max.X, domain.Max.Y, layersRaw[i+1]),
		})
	}

	var regions []geom.AABB
	regionsRaw := values.floats("regions")
	for i := 0; i+5 < len(regionsRaw); i += 6 {
		regions = append(regions, geom.AABB{
			Min: geom.V3(regionsRaw[i], regionsRaw[i+2], regionsRaw[i+4]),
			Max: geom.V3(regionsRaw[i+1], regionsRaw[i+3], regionsRaw[i+5]),
		})
	}

	cfg := Config{
		Domain:                    domain,
		Layers:                    layers,
		Regions:                   regions,
		H:                         h,
		Eps:                       h * 1e-8,
		Seed:                      uint64(values.int("seed", 0)),
		NPoly:                     values.int("nPoly", 0),
		StopCondition:             values.int("stopCondition", 0),
		RejectsPerFracture:        values.int("rejectsPerFracture", 10),
		RadiiListIncrease:         values.float("radiiListIncrease", 0.1),
		DisableFram:               values.boolFlag("disableFram", false),
		PrintRejectReasons:        values.boolFlag("printRejectReasons", false),
		OutputAllRadii:            values.boolFlag("outputAllRadii", false),
		InsertUserRectanglesFirst: values.boolFlag("insertUserRectanglesFirst", false),
		RemoveFracturesLessThan:   values.float("removeFracturesLessThan", 0),
		PolygonBoundaryFlag:       values.boolFlag("polygonBoundaryFlag", false),
		IgnoreBoundaryFaces:       values.boolFlag("ignoreBoundaryFaces", false),
		KeepOnlyLargestCluster:    values.boolFlag("keepOnlyLargestCluster", false),
	}
	bf := values.ints("boundaryFaces")
	for i := 0; i < len(bf) && i < 6; i++ {
		cfg.BoundaryFaces[i] = bf[i] != 0
	}

	nFamEll := values.int("nFamEll", 0)
	nFamRect := values.int("nFamRect", 0)
	famProb := values.floats("famProb")

	ellFamilies, err := parseFamilyBlock(values, "e", nFamEll, ShapeEllipse, catalog)
	if err != nil {
		return Config{}, err
	}
	rectFamilies, err := parseFamilyBlock(values, "r", nFamRect, ShapeRectangle, catalog)
	if err != nil {
		return Config{}, err
	}
	cfg.Families = append(ellFamilies, rectFamilies...)
	for i := range cfg.Families {
		if i < len(famProb) {
			cfg.Families[i].Probability = famProb[i]
		}
	}

	cfg.UserPolygons = append(cfg.UserPolygons, parseUserPolygons(values, "userEll", ShapeEllipse)...)
	cfg.UserPolygons = append(cfg.UserPolygons, parseUserPolygons(values, "userRect", ShapeRectangle)...)
	cfg.UserPolygons = append(cfg.UserPolygons, parseUserPolygonsByCoord(values, "userEllCoords", ShapeEllipse)...)
	cfg.UserPolygons = append(cfg.UserPolygons, parseUserPolygonsByCoord(values, "userRectCoords", ShapeRectangle)...)

	return cfg, nil
}

// parseFamilyBlock reads the flat, index-parallel arrays for n families
// of the given shape with key prefix ("e" for ellipse, "r" for
// rectangle): prefix+"Distr", prefix+"LogMean"/"LogStd",
// prefix+"PowerLawAlpha", prefix+"ExpLambda", prefix+"Const",
// prefix+"RadiusMin"/"RadiusMax", prefix+"AspectRatio",
// prefix+"NumPoints" (ellipse only), prefix+"Kappa" (-1 => deterministic),
// prefix+"NormalX"/"NormalY"/"NormalZ", prefix+"RegionType"
// (0 domain/1 layer/2 region) + prefix+"RegionIndex", prefix+"P32Target",
// and optionally prefix+"Preset" naming a FamilyCatalog entry that seeds
// defaults before the per-field keys above override it.
func parseFamilyBlock(values inputValues, prefix string, n int, shape ShapeKind, catalog *FamilyCatalog) ([]FamilySpec, error) {
	if n == 0 {
		return nil, nil
	}
	distr := values.ints(prefix + "Distr")
	logMean := values.floats(prefix + "LogMean")
	logStd := values.floats(prefix + "LogStd")
	alpha := values.floats(prefix + "PowerLawAlpha")
	lambda := values.floats(prefix + "ExpLambda")
	constR := values.floats(prefix + "Const")
	rmin := values.floats(prefix + "RadiusMin")
	rmax := values.floats(prefix + "RadiusMax")
	aspect := values.floats(prefix + "AspectRatio")
	nverts := values.ints(prefix + "NumPoints")
	kappa := values.floats(prefix + "Kappa")
	nx := values.floats(prefix + "NormalX")
	ny := values.floats(prefix + "NormalY")
	nz := values.floats(prefix + "NormalZ")
	regionType := values.ints(prefix + "RegionType")
	regionIndex := values.ints(prefix + "RegionIndex")
	p32 := values.floats(prefix + "P32Target")
	presets := strings.Fields(values.str(prefix+"Preset", ""))

	out := make([]FamilySpec, n)
	for i := 0; i < n; i++ {
		fam := FamilySpec{Shape: shape, NVerts: 8, AspectRatio: 1, Kappa: math.Inf(1)}
		if catalog != nil && i < len(presets) {
			if preset, ok := catalog.Lookup(presets[i]); ok {
				fam = preset
				fam.Shape = shape
			}
		}
		if i < len(nverts) {
			fam.NVerts = nverts[i]
		}
		if i < len(aspect) {
			fam.AspectRatio = aspect[i]
		}
		if i < len(kappa) {
			if kappa[i] < 0 {
				fam.Kappa = math.Inf(1)
			} else {
				fam.Kappa = kappa[i]
			}
		}
		if i < len(nx) && i < len(ny) && i < len(nz) {
			fam.MeanNormal = geom.V3(nx[i], ny[i], nz[i]).Unit()
		} else if fam.MeanNormal == (geom.Vec3{}) {
			fam.MeanNormal = geom.V3(0, 0, 1)
		}
		if i < len(regionType) {
			fam.Region.Kind = RegionKind(regionType[i])
		}
		if i < len(regionIndex) {
			fam.Region.Index = regionIndex[i]
		}
		if i < len(p32) {
			fam.P32Target = p32[i]
		}

		rd := fam.Radius
		if i < len(distr) {
			rd.Kind = RadiusKind(distr[i] - 1)
		}
		if i < len(logMean) {
			rd.Mu = logMean[i]
		}
		if i < len(logStd) {
			rd.Sigma = logStd[i]
		}
		if i < len(alpha) {
			rd.Alpha = alpha[i]
		}
		if i < len(lambda) {
			rd.Lambda = lambda[i]
		}
		if i < len(constR) {
			rd.Const = constR[i]
		}
		if i < len(rmin) {
			rd.RMin = rmin[i]
		}
		if i < len(rmax) {
			rd.RMax = rmax[i]
		}
		fam.Radius = rd

		out[i] = fam
	}
	return out, nil
}

// parseUserPolygons reads the parametric ("center + normal + radii") user
// polygon variant: prefix+"Center", prefix+"Normal", prefix+"XRadius",
// prefix+"YRadius" (each a flat x,y,z,... or scalar list, k entries per
// polygon), plus prefix+"NumPoints" for ellipses.
func parseUserPolygons(values inputValues, prefix string, shape ShapeKind) []UserPolygon {
	center := values.floats(prefix + "Center")
	normal := values.floats(prefix + "Normal")
	xr := values.floats(prefix + "XRadius")
	yr := values.floats(prefix + "YRadius")
	nverts := values.ints(prefix + "NumPoints")

	k := len(xr)
	if other := len(yr); other < k {
		k = other
	}
	out := make([]UserPolygon, 0, k)
	for i := 0; i < k; i++ {
		up := UserPolygon{Kind: shape, XRadius: xr[i], YRadius: yr[i], NVerts: 8}
		if 3*i+2 < len(center) {
			up.Center = geom.V3(center[3*i], center[3*i+1], center[3*i+2])
		}
		if 3*i+2 < len(normal) {
			up.Normal = geom.V3(normal[3*i], normal[3*i+1], normal[3*i+2]).Unit()
		} else {
			up.Normal = geom.V3(0, 0, 1)
		}
		if i < len(nverts) {
			up.NVerts = nverts[i]
		}
		out = append(out, up)
	}
	return out
}

// parseUserPolygonsByCoord reads the "by coordinate" variant stored under
// key: a flat list of x,y,z floats per polygon, with a literal "|" token
// between polygons. Each polygon takes as many vertices as its own group
// holds; groups with fewer than 3 vertices are skipped. Every polygon read
// gets the given shape kind.
func parseUserPolygonsByCoord(values inputValues, key string, shape ShapeKind) []UserPolygon {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	groups := strings.Split(raw, "|")
	out := make([]UserPolygon, 0, len(groups))
	for _, g := range groups {
		coords := splitList("{" + g + "}")
		var verts []geom.Vec3
		for i := 0; i+2 < len(coords); i += 3 {
			x, err1 := strconv.ParseFloat(coords[i], 64)
			y, err2 := strconv.ParseFloat(coords[i+1], 64)
			z, err3 := strconv.ParseFloat(coords[i+2], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}
			verts = append(verts, geom.V3(x, y, z))
		}
		if len(verts) >= 3 {
			out = append(out, UserPolygon{Kind: shape, ByCoord: true, Verts: verts})
		}
	}
	return out
}
