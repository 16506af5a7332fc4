package snap

import (
	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
	"github.com/ollestrom/furnish/pkg/scene"
)

// Kind classifies a face pairing. The numeric order is the selection
// priority: connection wins ties over alignment, alignment over
// T-joint.
type Kind int

const (
	KindConnection Kind = iota // opposing faces brought gap apart
	KindAlignment              // parallel faces made coplanar
	KindTJoint                 // edge against a perpendicular face
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindAlignment:
		return "alignment"
	case KindTJoint:
		return "tjoint"
	default:
		return "unknown"
	}
}

// Candidate is one geometrically valid face pairing, evaluated fresh
// each drag frame and never persisted.
type Candidate struct {
	Kind       Kind
	Moving     obb.Face
	Target     obb.Face
	Offset     float64 // displacement along the drag axis
	Distance   float64 // |Offset - current drag position on the axis|
	TargetPart scene.PartID
}

// PreviousSnap is the caller-threaded hysteresis token: the face pair
// and offset accepted on the previous frame.
type PreviousSnap struct {
	Axis       geom.Axis
	MovingKey  obb.FaceKey
	TargetKey  obb.FaceKey
	TargetPart scene.PartID
	Kind       Kind
	Offset     float64
}

// AxisResult is the outcome of evaluating one axis.
type AxisResult struct {
	Snapped    bool
	Axis       geom.Axis
	Offset     float64
	Kind       Kind
	TargetPart scene.PartID
	MovingKey  obb.FaceKey
	TargetKey  obb.FaceKey
	TargetFace obb.Face // world-space geometry of the winning target face
	Distance   float64
	CrossAxis  bool // found by cross-axis detection, not the drag axis
}

// Previous converts an accepted result into next frame's hysteresis token.
func (r AxisResult) Previous() *PreviousSnap {
	if !r.Snapped {
		return nil
	}
	return &PreviousSnap{
		Axis:       r.Axis,
		MovingKey:  r.MovingKey,
		TargetKey:  r.TargetKey,
		TargetPart: r.TargetPart,
		Kind:       r.Kind,
		Offset:     r.Offset,
	}
}

// Target pairs a snap target's box with the part it belongs to.
type Target struct {
	ID  scene.PartID
	Box obb.OBB
}
