package wallsnap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
)

// Settings configures the wall snap calculator. Zero values are
// replaced by the documented defaults via WithDefaults.
type Settings struct {
	// SnapDistance is the maximum offset (mm) at which a wall attracts
	// the dragged object. Default 15.
	SnapDistance float64
	// NormalThreshold is the minimum |inward normal component| along
	// the drag axis for a wall to be relevant. Walls parallel to the
	// drag axis never produce a surface snap. Default 0.5.
	NormalThreshold float64
	// CornerMultiplier widens the snap distance for corner snaps,
	// which constrain both plan axes at once and take priority over
	// single-wall snaps. Default 2.
	CornerMultiplier float64
	// EndSlack extends the projection interval past the segment ends,
	// as a fraction of wall length. Default 0.1.
	EndSlack float64
}

// WithDefaults fills unset fields with the documented defaults.
func (s Settings) WithDefaults() Settings {
	if s.SnapDistance <= 0 {
		s.SnapDistance = 15
	}
	if s.NormalThreshold <= 0 {
		s.NormalThreshold = 0.5
	}
	if s.CornerMultiplier <= 0 {
		s.CornerMultiplier = 2
	}
	if s.EndSlack <= 0 {
		s.EndSlack = 0.1
	}
	return s
}

// Kind distinguishes surface and corner wall snaps.
type Kind int

const (
	KindSurface Kind = iota
	KindCorner
)

// AxisSnap is one accepted wall snap on a single axis.
type AxisSnap struct {
	Offset    float64
	Kind      Kind
	WallIndex int
}

// Result is the combined wall snap outcome for a drag.
type Result struct {
	Snapped bool
	Axes    map[geom.Axis]AxisSnap
}

// planComponent maps a world drag axis onto the plan-view Vec2
// component. Y has no plan component.
func planComponent(axis geom.Axis) (int, bool) {
	switch axis {
	case geom.AxisX:
		return 0, true
	case geom.AxisZ:
		return 1, true
	default:
		return 0, false
	}
}

// Evaluate snaps the object's AABB against the wall snapshot on the
// requested drag axes. Vertical (Y) axes never snap to walls. Corner
// snaps within the widened distance take priority over surface snaps
// on the axes they constrain.
func Evaluate(box obb.AABB, snap *Snapshot, axes []geom.Axis, settings Settings) Result {
	settings = settings.WithDefaults()
	result := Result{Axes: make(map[geom.Axis]AxisSnap)}
	if snap == nil {
		return result
	}

	center := box.Center()
	planCenter := mgl64.Vec2{center.X(), center.Z()}

	for _, axis := range axes {
		if snapped, ok := bestSurfaceSnap(box, planCenter, snap.Surfaces, axis, settings); ok {
			result.Axes[axis] = snapped
		}
	}

	applyCornerSnaps(box, snap.Corners, axes, settings, result.Axes)

	result.Snapped = len(result.Axes) > 0
	return result
}

// bestSurfaceSnap finds the nearest relevant wall surface on one axis.
func bestSurfaceSnap(box obb.AABB, planCenter mgl64.Vec2, surfaces []Surface, axis geom.Axis, settings Settings) (AxisSnap, bool) {
	comp, ok := planComponent(axis)
	if !ok {
		return AxisSnap{}, false
	}

	best := AxisSnap{}
	bestDist := math.Inf(1)
	for _, surf := range surfaces {
		n := surf.Normal[comp]
		if math.Abs(n) < settings.NormalThreshold {
			continue
		}

		dir := surf.End.Sub(surf.Start)
		lenSq := dir.Dot(dir)
		if lenSq == 0 {
			continue
		}
		t := planCenter.Sub(surf.Start).Dot(dir) / lenSq
		if t < -settings.EndSlack || t > 1+settings.EndSlack {
			continue
		}

		plane := surf.Start.Add(dir.Mul(t))[comp]
		offset := plane - objectFace(box, axis, n)
		if d := math.Abs(offset); d <= settings.SnapDistance && d < bestDist {
			best = AxisSnap{Offset: offset, Kind: KindSurface, WallIndex: surf.WallIndex}
			bestDist = d
		}
	}
	if math.IsInf(bestDist, 1) {
		return AxisSnap{}, false
	}
	return best, true
}

// applyCornerSnaps overrides surface snaps with corner snaps. A
// corner binds both plan axes at once, so the object must be within
// the widened snap distance of the corner point on X and Z, even
// when only one of them is being dragged.
func applyCornerSnaps(box obb.AABB, corners []Corner, axes []geom.Axis, settings Settings, out map[geom.Axis]AxisSnap) {
	reach := settings.SnapDistance * settings.CornerMultiplier

	bestDist := math.Inf(1)
	var bestOffsets map[geom.Axis]AxisSnap
	for _, c := range corners {
		offsets := make(map[geom.Axis]AxisSnap)
		worst := 0.0
		for _, axis := range []geom.Axis{geom.AxisX, geom.AxisZ} {
			comp, _ := planComponent(axis)
			n, wall := dominantNormal(c, comp)
			if math.Abs(n) < settings.NormalThreshold {
				offsets = nil
				break
			}
			offset := c.Point[comp] - objectFace(box, axis, n)
			if math.Abs(offset) > reach {
				offsets = nil
				break
			}
			offsets[axis] = AxisSnap{Offset: offset, Kind: KindCorner, WallIndex: wall}
			if math.Abs(offset) > worst {
				worst = math.Abs(offset)
			}
		}
		if offsets == nil {
			continue
		}
		if worst < bestDist {
			bestDist = worst
			bestOffsets = offsets
		}
	}

	for _, axis := range axes {
		if snap, ok := bestOffsets[axis]; ok {
			out[axis] = snap
		}
	}
}

// dominantNormal picks whichever of the corner's two wall normals has
// the larger component on the plan axis.
func dominantNormal(c Corner, comp int) (float64, int) {
	if math.Abs(c.NormalA[comp]) >= math.Abs(c.NormalB[comp]) {
		return c.NormalA[comp], c.WallA
	}
	return c.NormalB[comp], c.WallB
}

// objectFace returns the AABB coordinate of the face that meets the
// wall: the low face when the inward normal points along +axis, the
// high face otherwise.
func objectFace(box obb.AABB, axis geom.Axis, normalComp float64) float64 {
	if normalComp > 0 {
		return box.Min[axis]
	}
	return box.Max[axis]
}
