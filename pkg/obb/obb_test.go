package obb

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
)

func TestFacesCountAndDistinctKeys(t *testing.T) {
	box := FromSize(mgl64.Vec3{10, 20, 30}, mgl64.Vec3{100, 50, 18}, geom.Euler{X: 0.3, Y: 1.2, Z: -0.4})
	faces := box.Faces()
	if len(faces) != 6 {
		t.Fatalf("expected 6 faces, got %d", len(faces))
	}
	seen := make(map[FaceKey]bool)
	for _, f := range faces {
		if seen[f.Key] {
			t.Errorf("duplicate face key %v", f.Key)
		}
		seen[f.Key] = true
	}
}

func TestEdgesCount(t *testing.T) {
	box := FromSize(mgl64.Vec3{}, mgl64.Vec3{100, 100, 18}, geom.Euler{Y: 0.7})
	edges := box.Edges()
	if len(edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(edges))
	}
}

func TestNormalsAndDirectionsAreUnit(t *testing.T) {
	box := FromSize(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{70, 600, 19}, geom.Euler{X: -0.9, Y: 0.25, Z: 2.1})
	for _, f := range box.Faces() {
		if d := math.Abs(f.Normal.Len() - 1); d > 1e-9 {
			t.Errorf("face %v normal length off by %g", f.Key, d)
		}
	}
	for i, e := range box.Edges() {
		if d := math.Abs(e.Direction.Len() - 1); d > 1e-9 {
			t.Errorf("edge %d direction length off by %g", i, d)
		}
	}
}

func TestAxisAlignedRoundTrip(t *testing.T) {
	pos := mgl64.Vec3{100, 200, 300}
	box := FromSize(pos, mgl64.Vec3{100, 50, 18}, geom.Euler{})

	want := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := range want {
		if box.Axes[i] != want[i] {
			t.Fatalf("axis %d = %v, want %v", i, box.Axes[i], want[i])
		}
	}

	for _, f := range box.Faces() {
		wantCenter := pos
		wantCenter[f.Key.Axis] += float64(f.Key.Sign) * box.HalfExtents[f.Key.Axis]
		if f.Center != wantCenter {
			t.Errorf("face %v center = %v, want %v", f.Key, f.Center, wantCenter)
		}
	}
}

func TestOppositeFaceDistance(t *testing.T) {
	const w, d = 100.0, 120.0
	a := FromSize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{w, 100, 18}, geom.Euler{})
	b := FromSize(mgl64.Vec3{d, 0, 0}, mgl64.Vec3{w, 100, 18}, geom.Euler{})

	plusX := a.Face(FaceKey{Axis: geom.AxisX, Sign: +1})
	minusX := b.Face(FaceKey{Axis: geom.AxisX, Sign: -1})
	if got := FaceToFaceDistance(plusX, minusX); math.Abs(got-(d-w)) > 1e-9 {
		t.Fatalf("face distance = %v, want %v", got, d-w)
	}
}

func TestQuarterTurnAboutYRemapsAxes(t *testing.T) {
	// A 90° turn about Y puts the local X faces perpendicular to world
	// Z, and the faces now perpendicular to world X carry the depth
	// half extent, not the width.
	const width, height, depth = 100.0, 50.0, 18.0
	box := FromSize(mgl64.Vec3{}, mgl64.Vec3{width, height, depth}, geom.Euler{Y: math.Pi / 2})

	for _, f := range box.Faces() {
		if math.Abs(f.Normal.X()) > 0.9 {
			if f.Key.Axis != geom.AxisZ {
				t.Errorf("world-X-facing face %v should come from local Z", f.Key)
			}
			offset := f.Center.Sub(box.Center).Len()
			if math.Abs(offset-depth/2) > 1e-9 {
				t.Errorf("world-X-facing face offset = %v, want depth/2 = %v", offset, depth/2)
			}
		}
		if f.Key.Axis == geom.AxisX && math.Abs(f.Normal.Z()) < 0.9 {
			t.Errorf("local X face %v not perpendicular to world Z: normal %v", f.Key, f.Normal)
		}
	}
}

func TestFromGroupSingleMemberShortcut(t *testing.T) {
	m := FromSize(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{10, 20, 30}, geom.Euler{Z: 0.5})
	got := FromGroup([]OBB{m}, geom.Euler{})
	if got != m {
		t.Fatalf("single member with zero group rotation should pass through")
	}
}

func TestFromGroupEmpty(t *testing.T) {
	got := FromGroup(nil, geom.Euler{})
	if got.Center != (mgl64.Vec3{}) || got.HalfExtents != (mgl64.Vec3{}) {
		t.Fatalf("empty group should be degenerate at origin, got %+v", got)
	}
}

func TestFromGroupEnclosesMembers(t *testing.T) {
	a := FromSize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{100, 100, 18}, geom.Euler{})
	b := FromSize(mgl64.Vec3{200, 0, 0}, mgl64.Vec3{100, 100, 18}, geom.Euler{})
	g := FromGroup([]OBB{a, b}, geom.Euler{})

	if math.Abs(g.Center.X()-100) > 1e-9 {
		t.Errorf("group center X = %v, want 100", g.Center.X())
	}
	if math.Abs(g.HalfExtents.X()-150) > 1e-9 {
		t.Errorf("group half extent X = %v, want 150", g.HalfExtents.X())
	}
	if math.Abs(g.HalfExtents.Y()-50) > 1e-9 {
		t.Errorf("group half extent Y = %v, want 50", g.HalfExtents.Y())
	}
}

func TestAABBShrinkOnAxisCollapsesToMidpoint(t *testing.T) {
	b := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 10, 10}}
	shrunk := b.ShrinkOnAxis(geom.AxisX, 5)
	if shrunk.Min.X() != 0.5 || shrunk.Max.X() != 0.5 {
		t.Fatalf("oversized margin should collapse to midpoint, got %+v", shrunk)
	}
}

func TestSATIntersection(t *testing.T) {
	a := FromSize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{100, 100, 100}, geom.Euler{})
	b := FromSize(mgl64.Vec3{90, 0, 0}, mgl64.Vec3{100, 100, 100}, geom.Euler{Y: math.Pi / 4})
	c := FromSize(mgl64.Vec3{250, 0, 0}, mgl64.Vec3{100, 100, 100}, geom.Euler{})

	if !a.Intersects(b) {
		t.Error("rotated overlapping boxes should intersect")
	}
	if a.Intersects(c) {
		t.Error("separated boxes should not intersect")
	}
}

func TestBoundingSpherePrune(t *testing.T) {
	a := FromSize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{100, 100, 100}, geom.Euler{})
	b := FromSize(mgl64.Vec3{400, 0, 0}, mgl64.Vec3{100, 100, 100}, geom.Euler{})

	if a.BoundingSphere().IntersectsWithin(b.BoundingSphere(), 0) {
		t.Error("spheres of far boxes should not touch")
	}
	if !a.BoundingSphere().IntersectsWithin(b.BoundingSphere(), 300) {
		t.Error("widened prune should admit the pair")
	}
}
