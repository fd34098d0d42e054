package dfn

import (
	"math"
	"testing"

	"github.com/ongchi/dfngen/geom"
)

func TestRadiusDistBounds(t *testing.T) {
	r := NewRNG(7)
	dists := []RadiusDist{
		{Kind: RadiusLogNormal, Mu: -1, Sigma: 0.5, RMin: 0.1, RMax: 2},
		{Kind: RadiusPowerLaw, Alpha: 2.5, RMin: 0.1, RMax: 2},
		{Kind: RadiusExponential, Lambda: 1.5, RMin: 0.1, RMax: 2},
		{Kind: RadiusConstant, Const: 0.5},
	}
	for _, d := range dists {
		for i := 0; i < 500; i++ {
			v := d.Sample(r)
			if d.Kind != RadiusConstant && (v < d.RMin || v > d.RMax) {
				t.Fatalf("kind %v: sample %v out of [%v,%v]", d.Kind, v, d.RMin, d.RMax)
			}
			if d.Kind == RadiusConstant && v != d.Const {
				t.Fatalf("constant dist returned %v, want %v", v, d.Const)
			}
		}
	}
}

func TestSampleOrientationDeterministic(t *testing.T) {
	r := NewRNG(1)
	mean := geom.V3(0, 0, 1)
	for i := 0; i < 10; i++ {
		v := SampleOrientation(r, mean, math.Inf(1))
		if geom.Dist(v, mean) > 1e-9 {
			t.Fatalf("expected deterministic orientation to equal mean, got %v", v)
		}
	}
}

func TestSampleOrientationUnitLength(t *testing.T) {
	r := NewRNG(2)
	mean := geom.V3(1, 0, 0)
	for i := 0; i < 200; i++ {
		v := SampleOrientation(r, mean, 10)
		if l := v.Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("orientation %v not unit length: %v", v, l)
		}
	}
}

func TestSampleUniformBox(t *testing.T) {
	r := NewRNG(3)
	box := geom.AABB{Min: geom.V3(-1, -2, -3), Max: geom.V3(1, 2, 3)}
	for i := 0; i < 500; i++ {
		p := SampleUniformBox(r, box)
		if !box.Contains(p, 1e-12) {
			t.Fatalf("sampled point %v outside box %+v", p, box)
		}
	}
}
