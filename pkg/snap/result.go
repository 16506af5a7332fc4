package snap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/scene"
)

// Result is one frame's snap outcome. Offset is the full displacement
// to apply from the drag start position: the raw drag offset with
// every snapped axis overridden.
type Result struct {
	Snapped bool
	Offset  mgl64.Vec3
	Axes    map[geom.Axis]AxisResult
	Points  []GuidePoint
}

// Position applies the result to the drag start position.
func (r Result) Position(start mgl64.Vec3) mgl64.Vec3 {
	return start.Add(r.Offset)
}

// PreviousState builds the hysteresis tokens to thread into the next
// frame's Drag.
func (r Result) PreviousState() map[geom.Axis]PreviousSnap {
	if len(r.Axes) == 0 {
		return nil
	}
	prev := make(map[geom.Axis]PreviousSnap, len(r.Axes))
	for axis, ar := range r.Axes {
		if p := ar.Previous(); p != nil {
			prev[axis] = *p
		}
	}
	return prev
}

// GuidePoint is a UI hint for one accepted snap: which target face
// took part, where it is, and how decisively it matched.
type GuidePoint struct {
	ID       string // "<target part>:<target face>"
	Part     scene.PartID
	Axis     geom.Axis
	Kind     string // "face" for connection and alignment, "edge" for T-joints
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Strength float64
}

func (e *Engine) guidePoints(axes map[geom.Axis]AxisResult) []GuidePoint {
	if len(axes) == 0 {
		return nil
	}
	points := make([]GuidePoint, 0, len(axes))
	for axis, ar := range axes {
		kind := "face"
		if ar.Kind == KindTJoint {
			kind = "edge"
		}
		points = append(points, GuidePoint{
			ID:       fmt.Sprintf("%s:%s", ar.TargetPart, ar.TargetKey),
			Part:     ar.TargetPart,
			Axis:     axis,
			Kind:     kind,
			Position: ar.TargetFace.Center,
			Normal:   ar.TargetFace.Normal,
			Strength: geom.Clamp(1-ar.Distance/e.settings.SnapDistance, 0, 1),
		})
	}
	return points
}
