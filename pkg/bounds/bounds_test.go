package bounds

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/scene"
)

func rot(x, y, z float64) geom.Euler {
	return geom.Euler{X: x, Y: y, Z: z}
}

func baseCabinet() scene.Cabinet {
	return scene.Cabinet{ID: "base-600", Width: 600, Depth: 560}
}

// cabinetParts is a 600 mm base unit: two sides, a back, and an
// oversized countertop protruding past the declared footprint.
func cabinetParts() []scene.Part {
	return []scene.Part{
		{ID: "side-l", Size: mgl64.Vec3{18, 720, 560}, Position: mgl64.Vec3{-291, 360, 0}, Cabinet: "base-600"},
		{ID: "side-r", Size: mgl64.Vec3{18, 720, 560}, Position: mgl64.Vec3{291, 360, 0}, Cabinet: "base-600"},
		{ID: "back", Size: mgl64.Vec3{564, 720, 18}, Position: mgl64.Vec3{0, 360, -271}, Cabinet: "base-600"},
		{ID: "top", Size: mgl64.Vec3{700, 38, 620}, Position: mgl64.Vec3{0, 739, 10}, Cabinet: "base-600"},
	}
}

func TestCoreExtendedSplitSeparatesCountertop(t *testing.T) {
	core, ext := CoreExtendedSplit(baseCabinet(), cabinetParts())
	if len(core) != 3 {
		t.Fatalf("expected 3 core parts, got %d", len(core))
	}
	if len(ext) != 1 || ext[0].ID != "top" {
		t.Fatalf("expected only the countertop to protrude, got %v", ext)
	}
}

func TestCoreExtendedSplitWithinThresholdStaysCore(t *testing.T) {
	parts := []scene.Part{
		// 640 mm wide on a 600 mm cabinet: within the 50 mm threshold.
		{ID: "top", Size: mgl64.Vec3{640, 38, 560}, Position: mgl64.Vec3{0, 739, 0}},
	}
	core, ext := CoreExtendedSplit(baseCabinet(), parts)
	if len(core) != 1 || len(ext) != 1 {
		t.Fatalf("degenerate split must collapse both sides to the full list: core=%d ext=%d", len(core), len(ext))
	}
}

func TestCoreExtendedSplitDegenerateCollapses(t *testing.T) {
	parts := cabinetParts()[:3] // no protruding part
	core, ext := CoreExtendedSplit(baseCabinet(), parts)
	if len(core) != len(parts) || len(ext) != len(parts) {
		t.Fatalf("all-core split must return the full list on both sides")
	}
}

func TestForCabinetExtendedCoversCountertop(t *testing.T) {
	g := ForCabinet(baseCabinet(), cabinetParts())

	coreW := g.Core.HalfExtents.X() * 2
	extW := g.Extended.HalfExtents.X() * 2
	if math.Abs(coreW-600) > 1e-9 {
		t.Errorf("core width = %v, want 600", coreW)
	}
	if math.Abs(extW-700) > 1e-9 {
		t.Errorf("extended width = %v, want 700 (countertop)", extW)
	}
	if len(g.CoreFaces) != 6 || len(g.ExtendedFaces) != 6 {
		t.Errorf("expected 6 faces per box")
	}
	if len(g.PartIDs) != 4 {
		t.Errorf("expected all member ids, got %v", g.PartIDs)
	}
}

func TestForSelectionIsWorldAligned(t *testing.T) {
	parts := []scene.Part{
		{ID: "a", Size: mgl64.Vec3{100, 100, 18}, Position: mgl64.Vec3{0, 0, 0}},
		{ID: "b", Size: mgl64.Vec3{100, 100, 18}, Position: mgl64.Vec3{300, 0, 0},
			Rotation: rot(0, math.Pi/4, 0)},
	}
	g := ForSelection(parts)
	if g.Core != g.Extended {
		t.Error("selection core and extended boxes must match")
	}
	want := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if g.Core.Axes != want {
		t.Errorf("selection box must be world aligned, got axes %v", g.Core.Axes)
	}
}

func TestForPartUsesOwnRotation(t *testing.T) {
	p := scene.Part{ID: "panel", Size: mgl64.Vec3{100, 50, 18},
		Position: mgl64.Vec3{10, 20, 30}, Rotation: rot(0, math.Pi/2, 0)}
	g := ForPart(p)
	if math.Abs(g.Core.HalfExtents.X()-50) > 1e-9 {
		t.Errorf("own-rotation box must keep local extents, got %v", g.Core.HalfExtents)
	}
	if math.Abs(g.Core.Axes[0].Z()+1) > 1e-9 {
		t.Errorf("rotated local X axis should point at -Z, got %v", g.Core.Axes[0])
	}
}
