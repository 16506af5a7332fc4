// Package wallsnap precomputes the inward-facing wall surfaces and
// interior corners of a room and snaps dragged furniture to them.
// Surfaces and corners live in plan view: Vec2.X is world X and
// Vec2.Y is world Z.
package wallsnap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/scene"
)

// endpointTolerance is how close (mm) two wall endpoints must be to
// count as a shared corner.
const endpointTolerance = 1.0

// parallelEpsilon is the cross-product magnitude below which two wall
// directions are treated as parallel and produce no corner.
const parallelEpsilon = 1e-4

// Surface is one wall's inner face: the centerline offset inward by
// half the wall thickness.
type Surface struct {
	Start     mgl64.Vec2
	End       mgl64.Vec2
	Normal    mgl64.Vec2 // inward unit normal
	WallIndex int
	Height    float64
}

// Corner is an interior corner where two inner surfaces meet.
type Corner struct {
	Point   mgl64.Vec2
	NormalA mgl64.Vec2
	NormalB mgl64.Vec2
	Angle   float64 // interior angle between the wall normals, radians
	WallA   int
	WallB   int
}

// RoomCentroid returns the arithmetic mean of the wall start points.
// Walls are assumed to form a closed polygon, so the start points
// enumerate every polygon vertex exactly once.
func RoomCentroid(walls []scene.Wall) mgl64.Vec2 {
	if len(walls) == 0 {
		return mgl64.Vec2{}
	}
	var sum mgl64.Vec2
	for _, w := range walls {
		sum = sum.Add(w.Start)
	}
	return sum.Mul(1 / float64(len(walls)))
}

// InwardNormal picks, of the two unit normals perpendicular to the
// wall segment, the one pointing from the wall midpoint toward the
// centroid.
func InwardNormal(start, end, centroid mgl64.Vec2) mgl64.Vec2 {
	dir := end.Sub(start)
	length := dir.Len()
	if length == 0 {
		return mgl64.Vec2{}
	}
	n := mgl64.Vec2{-dir.Y() / length, dir.X() / length}
	mid := start.Add(end).Mul(0.5)
	if n.Dot(centroid.Sub(mid)) < 0 {
		n = n.Mul(-1)
	}
	return n
}

// InnerSurfaces offsets every wall centerline inward by half its
// thickness. Degenerate walls are skipped.
func InnerSurfaces(walls []scene.Wall) []Surface {
	centroid := RoomCentroid(walls)
	surfaces := make([]Surface, 0, len(walls))
	for i, w := range walls {
		n := InwardNormal(w.Start, w.End, centroid)
		if n == (mgl64.Vec2{}) {
			continue
		}
		offset := n.Mul(w.Thickness / 2)
		surfaces = append(surfaces, Surface{
			Start:     w.Start.Add(offset),
			End:       w.End.Add(offset),
			Normal:    n,
			WallIndex: i,
			Height:    w.Height,
		})
	}
	return surfaces
}

// Corners finds the interior corner for every pair of walls sharing an
// endpoint. The corner point is the intersection of the two
// inner-surface infinite lines, not of the original centerlines.
// Near-parallel pairs are skipped.
func Corners(surfaces []Surface, walls []scene.Wall) []Corner {
	var corners []Corner
	for i := 0; i < len(surfaces); i++ {
		for j := i + 1; j < len(surfaces); j++ {
			a, b := surfaces[i], surfaces[j]
			if !shareEndpoint(walls[a.WallIndex], walls[b.WallIndex]) {
				continue
			}
			point, ok := intersectLines(a, b)
			if !ok {
				continue
			}
			dot := geom.Clamp(a.Normal.Dot(b.Normal), -1, 1)
			corners = append(corners, Corner{
				Point:   point,
				NormalA: a.Normal,
				NormalB: b.Normal,
				Angle:   math.Acos(dot),
				WallA:   a.WallIndex,
				WallB:   b.WallIndex,
			})
		}
	}
	return corners
}

func shareEndpoint(a, b scene.Wall) bool {
	for _, pa := range [2]mgl64.Vec2{a.Start, a.End} {
		for _, pb := range [2]mgl64.Vec2{b.Start, b.End} {
			if pa.Sub(pb).Len() <= endpointTolerance {
				return true
			}
		}
	}
	return false
}

// intersectLines intersects the infinite lines through two surfaces.
func intersectLines(a, b Surface) (mgl64.Vec2, bool) {
	da := a.End.Sub(a.Start)
	db := b.End.Sub(b.Start)
	denom := cross2(da, db)
	if math.Abs(denom) < parallelEpsilon*da.Len()*db.Len() {
		return mgl64.Vec2{}, false
	}
	t := cross2(b.Start.Sub(a.Start), db) / denom
	return a.Start.Add(da.Mul(t)), true
}

func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
