package wallsnap

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/scene"
)

// rectRoom is a 3000x2400 room with 100 mm walls, polygon wound
// counterclockwise from the origin.
func rectRoom() *scene.Room {
	w := func(sx, sy, ex, ey float64) scene.Wall {
		return scene.Wall{Start: mgl64.Vec2{sx, sy}, End: mgl64.Vec2{ex, ey}, Thickness: 100, Height: 2400}
	}
	return &scene.Room{
		Width: 3000, Depth: 2400,
		Walls: []scene.Wall{
			w(0, 0, 3000, 0),
			w(3000, 0, 3000, 2400),
			w(3000, 2400, 0, 2400),
			w(0, 2400, 0, 0),
		},
	}
}

func TestRoomCentroid(t *testing.T) {
	got := RoomCentroid(rectRoom().Walls)
	if got != (mgl64.Vec2{1500, 1200}) {
		t.Fatalf("centroid = %v, want (1500,1200)", got)
	}
}

func TestInwardNormalPointsAtCentroid(t *testing.T) {
	room := rectRoom()
	centroid := RoomCentroid(room.Walls)

	n := InwardNormal(room.Walls[0].Start, room.Walls[0].End, centroid)
	if math.Abs(n.X()) > 1e-9 || math.Abs(n.Y()-1) > 1e-9 {
		t.Errorf("bottom wall normal = %v, want (0,1)", n)
	}

	n = InwardNormal(room.Walls[1].Start, room.Walls[1].End, centroid)
	if math.Abs(n.X()+1) > 1e-9 || math.Abs(n.Y()) > 1e-9 {
		t.Errorf("right wall normal = %v, want (-1,0)", n)
	}
}

func TestInnerSurfacesOffsetByHalfThickness(t *testing.T) {
	surfaces := InnerSurfaces(rectRoom().Walls)
	if len(surfaces) != 4 {
		t.Fatalf("expected 4 surfaces, got %d", len(surfaces))
	}
	// Bottom wall centerline is y=0; inner face sits at y=50.
	if got := surfaces[0].Start.Y(); math.Abs(got-50) > 1e-9 {
		t.Errorf("bottom inner surface y = %v, want 50", got)
	}
}

func TestCornersIntersectInnerLines(t *testing.T) {
	room := rectRoom()
	surfaces := InnerSurfaces(room.Walls)
	corners := Corners(surfaces, room.Walls)
	if len(corners) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(corners))
	}

	found := false
	for _, c := range corners {
		if math.Abs(c.Point.X()-50) < 1e-6 && math.Abs(c.Point.Y()-50) < 1e-6 {
			found = true
			if math.Abs(c.Angle-math.Pi/2) > 1e-9 {
				t.Errorf("corner angle = %v, want pi/2", c.Angle)
			}
		}
	}
	if !found {
		t.Error("missing inner corner at (50,50); centerline corners must not be used")
	}
}

func TestCornersSkipParallelWalls(t *testing.T) {
	// Two collinear wall segments meeting end to start: parallel, no corner.
	walls := []scene.Wall{
		{Start: mgl64.Vec2{0, 0}, End: mgl64.Vec2{1000, 0}, Thickness: 100},
		{Start: mgl64.Vec2{1000, 0}, End: mgl64.Vec2{2000, 0}, Thickness: 100},
		{Start: mgl64.Vec2{2000, 0}, End: mgl64.Vec2{1000, 800}, Thickness: 100},
	}
	surfaces := InnerSurfaces(walls)
	for _, c := range Corners(surfaces, walls) {
		if c.WallA == 0 && c.WallB == 1 {
			t.Fatal("collinear wall pair must not produce a corner")
		}
	}
}

func TestCacheRebuildBumpsVersion(t *testing.T) {
	cache := NewCache()
	if cache.Snapshot() == nil {
		t.Fatal("new cache must expose an empty snapshot, not nil")
	}

	first := cache.Rebuild(rectRoom())
	second := cache.Rebuild(rectRoom())
	if second.Version <= first.Version {
		t.Fatalf("rebuild must increment version: %d then %d", first.Version, second.Version)
	}
	if cache.Snapshot() != second {
		t.Error("snapshot must return the latest build")
	}

	empty := cache.Rebuild(nil)
	if len(empty.Surfaces) != 0 || len(empty.Corners) != 0 {
		t.Error("nil room must publish an empty snapshot")
	}
}
