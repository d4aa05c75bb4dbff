package vmath

import (
	"testing"

	"github.com/chewxy/math32"
)

const tol = 1e-5

func near(a, b float32) bool { return math32.Abs(a-b) <= tol }

func nearVec(a, b Vec3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestNormalizeUnitLength(t *testing.T) {
	dirs := []Vec3{
		V3(1, 0, 0),
		V3(3, 4, 0),
		V3(-2, 7, 11),
		V3(1e-3, -2e-3, 5e-4),
		V3(1000, 1000, -1000),
	}
	for _, d := range dirs {
		if l := Len(Normalize(d)); !near(l, 1) {
			t.Fatalf("len(normalize(%v)) = %v, want 1", d, l)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	got := Normalize(Vec3{})
	if got != (Vec3{}) {
		t.Fatalf("normalize(0) = %v, want zero vector", got)
	}
}

func TestVectorOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)
	if got := a.Add(b); got != V3(5, -3, 9) {
		t.Fatalf("add = %v", got)
	}
	if got := a.Sub(b); got != V3(-3, 7, -3) {
		t.Fatalf("sub = %v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Fatalf("scale = %v", got)
	}
	if got := LenSq(a); got != 14 {
		t.Fatalf("lenSq = %v", got)
	}
	if got := Len(V3(3, 4, 0)); got != 5 {
		t.Fatalf("len = %v", got)
	}
}

func TestMat3MulIdentity(t *testing.T) {
	r := RotationY(0.7)
	if got := Mat3Mul(Identity(), r); got != r {
		t.Fatalf("identity*r mismatch")
	}
	if got := Mat3Mul(r, Identity()); got != r {
		t.Fatalf("r*identity mismatch")
	}
}

func TestRotationConventions(t *testing.T) {
	half := float32(math32.Pi / 2)
	if got := RotationY(half).MulVec3(V3(0, 0, 1)); !nearVec(got, V3(1, 0, 0)) {
		t.Fatalf("yaw +90 of +Z = %v, want +X", got)
	}
	if got := RotationX(half).MulVec3(V3(0, 0, 1)); !nearVec(got, V3(0, 1, 0)) {
		t.Fatalf("pitch +90 of +Z = %v, want +Y", got)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	m := Mat3Mul(RotationY(1.3), RotationX(-0.4))
	v := V3(2, -1, 0.5)
	if got := Len(m.MulVec3(v)); !near(got, Len(v)) {
		t.Fatalf("rotated length = %v, want %v", got, Len(v))
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(3, 0, 1); got != 1 {
		t.Fatalf("clamp high = %v", got)
	}
	if got := Clamp(-3, 0, 1); got != 0 {
		t.Fatalf("clamp low = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Fatalf("clamp mid = %v", got)
	}
}
