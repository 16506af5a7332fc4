package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a.X()-b.X()) <= tol &&
		math.Abs(a.Y()-b.Y()) <= tol &&
		math.Abs(a.Z()-b.Z()) <= tol
}

func TestEulerZeroIsIdentity(t *testing.T) {
	p := mgl64.Vec3{123.4, -56.7, 8.9}
	got := Euler{}.Apply(p)
	if got != p {
		t.Fatalf("zero rotation changed point: %v -> %v", p, got)
	}
}

func TestEulerYQuarterTurn(t *testing.T) {
	// With R = Rx·Ry·Rz a quarter turn about Y sends +X to -Z.
	e := Euler{Y: math.Pi / 2}
	got := e.Apply(mgl64.Vec3{1, 0, 0})
	if !vecNear(got, mgl64.Vec3{0, 0, -1}, eps) {
		t.Fatalf("expected (0,0,-1), got %v", got)
	}
	got = e.Apply(mgl64.Vec3{0, 0, 1})
	if !vecNear(got, mgl64.Vec3{1, 0, 0}, eps) {
		t.Fatalf("expected (1,0,0), got %v", got)
	}
}

func TestEulerApplicationOrderZThenYThenX(t *testing.T) {
	// (1,0,0) sees the Z rotation first: Rz(90°) gives (0,1,0),
	// then Rx(90°) gives (0,0,1).
	e := Euler{X: math.Pi / 2, Z: math.Pi / 2}
	got := e.Apply(mgl64.Vec3{1, 0, 0})
	if !vecNear(got, mgl64.Vec3{0, 0, 1}, eps) {
		t.Fatalf("expected (0,0,1), got %v", got)
	}
}

func TestEulerInverseRoundTrip(t *testing.T) {
	e := Euler{X: 0.3, Y: -1.1, Z: 2.4}
	p := mgl64.Vec3{40, -250, 18}
	back := e.ApplyInverse(e.Apply(p))
	if !vecNear(back, p, 1e-9) {
		t.Fatalf("inverse round trip drifted: %v -> %v", p, back)
	}
}

func TestEulerPreservesLength(t *testing.T) {
	e := Euler{X: 0.7, Y: 0.2, Z: -0.9}
	p := mgl64.Vec3{3, 4, 12}
	if math.Abs(e.Apply(p).Len()-p.Len()) > eps {
		t.Fatalf("rotation changed vector length")
	}
}

func TestSafeNormalizeZeroVector(t *testing.T) {
	got := SafeNormalize(mgl64.Vec3{})
	if got != (mgl64.Vec3{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
}

func TestSafeNormalizeUnitLength(t *testing.T) {
	got := SafeNormalize(mgl64.Vec3{3, -4, 0})
	if math.Abs(got.Len()-1) > eps {
		t.Fatalf("expected unit length, got %v", got.Len())
	}
}

func TestAxisOthers(t *testing.T) {
	cases := []struct {
		axis   Axis
		o1, o2 Axis
	}{
		{AxisX, AxisY, AxisZ},
		{AxisY, AxisX, AxisZ},
		{AxisZ, AxisX, AxisY},
	}
	for _, c := range cases {
		o1, o2 := c.axis.Others()
		if o1 != c.o1 || o2 != c.o2 {
			t.Errorf("%v.Others() = %v,%v, want %v,%v", c.axis, o1, o2, c.o1, c.o2)
		}
	}
}

func TestAxisBasis(t *testing.T) {
	if AxisY.Basis() != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("unexpected Y basis: %v", AxisY.Basis())
	}
}
