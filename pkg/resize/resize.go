// Package resize snaps face-drag resize operations: pulling one face
// of a part along its normal while the opposite face stays put. It
// shares the face pairing rules of the move engine but only ever
// adjusts the dragged face, so candidates reduce to plane distances
// along the face normal.
package resize

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
	"github.com/ollestrom/furnish/pkg/scene"
)

const (
	connectionDot = -0.95
	alignmentDot  = 0.95
)

// Settings configures resize snapping. Zero values take the
// documented defaults via WithDefaults.
type Settings struct {
	// SnapDistance is the maximum distance (mm) between the raw and
	// the snapped face position. Default 20.
	SnapDistance float64
	// SnapGap is the separation left by a connection snap. Default 1.
	SnapGap float64
	// CollisionMargin is the allowed overlap when rejecting growth
	// into a target. Default 0.5.
	CollisionMargin float64
	// MinSize is the smallest extent a part may be shrunk to. Default 10.
	MinSize float64

	Connection bool
	Alignment  bool
}

// DefaultSettings returns the settings used by interactive resizing.
func DefaultSettings() Settings {
	return Settings{Connection: true, Alignment: true}.WithDefaults()
}

// WithDefaults fills unset numeric fields. The enable flags are left
// as given.
func (s Settings) WithDefaults() Settings {
	if s.SnapDistance <= 0 {
		s.SnapDistance = 20
	}
	if s.SnapGap <= 0 {
		s.SnapGap = 1
	}
	if s.CollisionMargin <= 0 {
		s.CollisionMargin = 0.5
	}
	if s.MinSize <= 0 {
		s.MinSize = 10
	}
	return s
}

// Kind classifies a resize snap.
type Kind int

const (
	KindConnection Kind = iota
	KindAlignment
)

// Target is one box the dragged face may snap against.
type Target struct {
	ID  scene.PartID
	Box obb.OBB
}

// Result is the outcome of one resize frame. Delta is the final face
// displacement along the dragged face's outward normal (snapped or
// raw, and clamped to the minimum size); Size and Position are the
// part's resulting dimensions and center.
type Result struct {
	Snapped    bool
	Delta      float64
	Size       mgl64.Vec3
	Position   mgl64.Vec3
	Kind       Kind
	TargetPart scene.PartID
	TargetKey  obb.FaceKey
}

// Evaluate resizes a part by dragging the face identified by key
// along its outward normal by delta (positive grows the part). The
// opposite face does not move: the center shifts by half the delta.
func Evaluate(part scene.Part, key obb.FaceKey, delta float64, targets []Target, settings Settings) Result {
	settings = settings.WithDefaults()

	box := part.OBB()
	face := box.Face(key)

	best, found := bestCandidate(part, face, delta, targets, settings)
	result := Result{Delta: delta}
	if found {
		result.Snapped = true
		result.Delta = best.delta
		result.Kind = best.kind
		result.TargetPart = best.part
		result.TargetKey = best.key
	}

	// The local extent may never shrink below the minimum.
	if part.Size[key.Axis]+result.Delta < settings.MinSize {
		result.Delta = settings.MinSize - part.Size[key.Axis]
		result.Snapped = false
	}

	result.Size = part.Size
	result.Size[key.Axis] += result.Delta
	result.Position = part.Position.Add(face.Normal.Mul(result.Delta / 2))
	return result
}

type candidate struct {
	delta    float64
	distance float64
	kind     Kind
	part     scene.PartID
	key      obb.FaceKey
}

func bestCandidate(part scene.Part, face obb.Face, delta float64, targets []Target, settings Settings) (candidate, bool) {
	var best candidate
	found := false

	for _, t := range targets {
		for _, tf := range t.Box.Faces() {
			dot := face.Normal.Dot(tf.Normal)

			var kind Kind
			var snapped float64
			switch {
			case settings.Connection && dot < connectionDot:
				snapped = obb.FaceToFaceDistance(face, tf) - settings.SnapGap
			case settings.Alignment && dot > alignmentDot:
				kind = KindAlignment
				snapped = obb.FaceToFaceDistance(face, tf)
			default:
				continue
			}

			distance := math.Abs(snapped - delta)
			if distance > settings.SnapDistance {
				continue
			}
			if collides(part, face, snapped, t.Box, settings) {
				continue
			}

			c := candidate{delta: snapped, distance: distance, kind: kind, part: t.ID, key: tf.Key}
			if !found || less(c, best) {
				best = c
				found = true
			}
		}
	}
	return best, found
}

// less orders candidates by kind priority, then proximity to the raw
// drag position.
func less(a, b candidate) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.distance < b.distance
}

// collides rejects a snapped delta that would grow the part into the
// target. The resized AABB is shrunk by the collision margin on the
// drag direction's dominant world axis before the overlap test, so
// flush contact and the snap gap both stay legal.
func collides(part scene.Part, face obb.Face, delta float64, target obb.OBB, settings Settings) bool {
	resized := part
	resized.Size[face.Key.Axis] += delta
	resized.Position = part.Position.Add(face.Normal.Mul(delta / 2))

	axis := dominantAxis(face.Normal)
	moved := resized.OBB().AABB().ShrinkOnAxis(axis, settings.CollisionMargin)
	return moved.Penetrates(target.AABB())
}

func dominantAxis(n mgl64.Vec3) geom.Axis {
	axis := geom.AxisX
	for a := geom.AxisY; a <= geom.AxisZ; a++ {
		if math.Abs(n[a]) > math.Abs(n[axis]) {
			axis = a
		}
	}
	return axis
}
