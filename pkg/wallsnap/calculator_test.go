package wallsnap

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) obb.AABB {
	return obb.AABB{Min: mgl64.Vec3{minX, minY, minZ}, Max: mgl64.Vec3{maxX, maxY, maxZ}}
}

func rectSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	return NewCache().Rebuild(rectRoom())
}

func TestSurfaceSnapTowardLeftWall(t *testing.T) {
	snap := rectSnapshot(t)
	// Cabinet 10 mm away from the left inner surface (x=50), well away
	// from every corner along Z.
	cabinet := box(60, 0, 1000, 660, 720, 1560)

	result := Evaluate(cabinet, snap, []geom.Axis{geom.AxisX}, Settings{})
	if !result.Snapped {
		t.Fatal("expected a surface snap on X")
	}
	got, ok := result.Axes[geom.AxisX]
	if !ok || got.Kind != KindSurface {
		t.Fatalf("expected surface snap on X, got %+v", result.Axes)
	}
	if math.Abs(got.Offset+10) > 1e-9 {
		t.Fatalf("offset = %v, want -10", got.Offset)
	}
}

func TestWallParallelToDragAxisIgnored(t *testing.T) {
	snap := rectSnapshot(t)
	// Near the bottom wall only; its normal is (0,1), irrelevant for X.
	cabinet := box(1200, 0, 60, 1800, 720, 620)

	result := Evaluate(cabinet, snap, []geom.Axis{geom.AxisX}, Settings{})
	if result.Snapped {
		t.Fatalf("bottom wall must not snap an X drag, got %+v", result.Axes)
	}
}

func TestVerticalDragNeverWallSnaps(t *testing.T) {
	snap := rectSnapshot(t)
	cabinet := box(60, 0, 60, 660, 720, 620)

	result := Evaluate(cabinet, snap, []geom.Axis{geom.AxisY}, Settings{})
	if result.Snapped {
		t.Fatal("Y drag must never snap to walls")
	}
}

func TestCornerSnapTakesPriority(t *testing.T) {
	snap := rectSnapshot(t)
	// Near the (50,50) interior corner on both plan axes.
	cabinet := box(62, 0, 58, 662, 720, 618)

	result := Evaluate(cabinet, snap, []geom.Axis{geom.AxisX, geom.AxisZ}, Settings{})
	if !result.Snapped {
		t.Fatal("expected a corner snap")
	}
	x, okX := result.Axes[geom.AxisX]
	z, okZ := result.Axes[geom.AxisZ]
	if !okX || !okZ {
		t.Fatalf("corner must constrain both plan axes, got %+v", result.Axes)
	}
	if x.Kind != KindCorner || z.Kind != KindCorner {
		t.Fatalf("expected corner kind on both axes, got %+v %+v", x, z)
	}
	if math.Abs(x.Offset+12) > 1e-9 || math.Abs(z.Offset+8) > 1e-9 {
		t.Fatalf("corner offsets = %v,%v, want -12,-8", x.Offset, z.Offset)
	}
}

func TestOutOfRangeDoesNotSnap(t *testing.T) {
	snap := rectSnapshot(t)
	cabinet := box(200, 0, 1000, 800, 720, 1560) // 150 mm from the left surface

	result := Evaluate(cabinet, snap, []geom.Axis{geom.AxisX}, Settings{})
	if result.Snapped {
		t.Fatalf("expected no snap at 150 mm, got %+v", result.Axes)
	}
}
