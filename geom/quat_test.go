package geom

import (
	"math"
	"testing"
)

func TestFromToRotationIdentity(t *testing.T) {
	z := V3(0, 0, 1)
	q := FromToRotation(z, z)
	if q != QI {
		t.Errorf("FromToRotation(z,z) = %v, want identity", q)
	}
}

func TestFromToRotationQuarterTurn(t *testing.T) {
	z, x := V3(0, 0, 1), V3(1, 0, 0)
	q := FromToRotation(z, x)
	got := q.Rotate(z)
	if math.Abs(got.X-x.X) > 1e-9 || math.Abs(got.Y-x.Y) > 1e-9 || math.Abs(got.Z-x.Z) > 1e-9 {
		t.Errorf("rotated z = %v, want %v", got, x)
	}
}

func TestFromToRotationOpposite(t *testing.T) {
	z, nz := V3(0, 0, 1), V3(0, 0, -1)
	q := FromToRotation(z, nz)
	got := q.Rotate(z)
	if got.Len() < 0.999 || got.Len() > 1.001 {
		t.Fatalf("rotated vector not unit length: %v", got)
	}
	if math.Abs(got.X-nz.X) > 1e-9 || math.Abs(got.Y-nz.Y) > 1e-9 || math.Abs(got.Z-nz.Z) > 1e-9 {
		t.Errorf("rotated z = %v, want %v", got, nz)
	}
}
