package snap

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
)

// Engine evaluates snap candidates. It holds only configuration and
// an observer; evaluation itself is pure.
type Engine struct {
	settings Settings
	observer Observer
}

// New creates an engine. Settings are normalized once here, never at
// call sites. A nil observer means no observation.
func New(settings Settings, observer Observer) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Engine{settings: settings.WithDefaults(), observer: observer}
}

// Settings returns the normalized configuration.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Drag describes one frame of a user drag. Current is the raw
// pointer-driven offset from the drag start position; Axes holds the
// axis being dragged, or two/three axes for planar drag. Previous
// carries the hysteresis tokens accepted on the prior frame.
type Drag struct {
	Axes     []geom.Axis
	Current  mgl64.Vec3
	Previous map[geom.Axis]PreviousSnap
}

// movingContext caches the moving box's derived geometry for one
// evaluation.
type movingContext struct {
	box     obb.OBB
	faces   []obb.Face
	aabb    obb.AABB
	sphere  obb.Sphere
	corners [8]mgl64.Vec3
}

func newMovingContext(box obb.OBB) movingContext {
	return movingContext{
		box:     box,
		faces:   box.Faces(),
		aabb:    box.AABB(),
		sphere:  box.BoundingSphere(),
		corners: box.Corners(),
	}
}

// extremeOnAxis returns the moving box's extremal corner coordinate
// on the axis: the leading face of travel.
func (m movingContext) extremeOnAxis(axis geom.Axis, direction int) float64 {
	best := m.corners[0][axis]
	for _, c := range m.corners[1:] {
		if direction > 0 && c[axis] > best {
			best = c[axis]
		}
		if direction < 0 && c[axis] < best {
			best = c[axis]
		}
	}
	return best
}

// Evaluate runs the full per-frame snap search: each drag axis with
// the user's movement direction, plus cross-axis detection on the
// remaining axes. Axes with no valid candidate are simply absent from
// the result; that is the expected partial outcome, not an error.
func (e *Engine) Evaluate(moving obb.OBB, targets []Target, drag Drag) Result {
	mov := newMovingContext(moving)
	targets = e.pruneTargets(mov, targets, drag.Current)

	result := Result{Axes: make(map[geom.Axis]AxisResult)}
	dragging := make(map[geom.Axis]bool, len(drag.Axes))

	for _, axis := range drag.Axes {
		if !axis.Valid() || dragging[axis] {
			continue
		}
		dragging[axis] = true

		axisResult := e.evaluateAxis(mov, targets, axis, directionsFor(drag.Current[axis], len(drag.Axes) > 1), drag)
		if axisResult.Snapped {
			result.Axes[axis] = axisResult
		}
	}

	// A rotated part's wide face can be perpendicular to an axis the
	// user is not dragging; detect those with a widened distance.
	for axis := geom.AxisX; axis <= geom.AxisZ; axis++ {
		if dragging[axis] {
			continue
		}
		if axisResult := e.evaluateCrossAxis(mov, targets, axis, drag); axisResult.Snapped {
			result.Axes[axis] = axisResult
		}
	}

	result.Snapped = len(result.Axes) > 0
	result.Offset = drag.Current
	for axis, r := range result.Axes {
		result.Offset[axis] = r.Offset
	}
	result.Points = e.guidePoints(result.Axes)
	return result
}

// pruneTargets drops targets whose bounding sphere cannot possibly be
// in snap range: a broad phase before the 6x6 face loops.
func (e *Engine) pruneTargets(mov movingContext, targets []Target, current mgl64.Vec3) []Target {
	slack := e.settings.SnapDistance*e.settings.CrossAxisMultiplier + current.Len()
	kept := make([]Target, 0, len(targets))
	for _, t := range targets {
		if mov.sphere.IntersectsWithin(t.Box.BoundingSphere(), slack) {
			kept = append(kept, t)
		}
	}
	return kept
}

// directionsFor derives the movement directions to test. A clean sign
// on the drag axis expresses user intent; a zero offset or a planar
// drag (no per-axis intent) tries both.
func directionsFor(current float64, planar bool) []int {
	if planar || current == 0 {
		return []int{+1, -1}
	}
	if current > 0 {
		return []int{+1}
	}
	return []int{-1}
}

// evaluateAxis collects candidates on one drag axis and selects the
// best, applying hysteresis against the previous frame's snap.
func (e *Engine) evaluateAxis(mov movingContext, targets []Target, axis geom.Axis, directions []int, drag Drag) AxisResult {
	var candidates []Candidate
	for _, t := range targets {
		for _, dir := range directions {
			candidates = append(candidates, e.targetCandidates(mov, t, axis, dir, drag.Current[axis], e.settings.SnapDistance)...)
		}
	}
	result := e.selectCandidate(candidates, axis, drag)
	e.observer.AxisEvaluated(axis, candidates, result)
	return result
}

// evaluateCrossAxis searches a non-drag axis. The snap distance is
// widened, both directions are tried, and a target only participates
// if its AABB already overlaps the moving box on the two axes
// perpendicular to the cross axis, the geometric proxy for "these
// faces could plausibly be the ones the user means to connect".
func (e *Engine) evaluateCrossAxis(mov movingContext, targets []Target, axis geom.Axis, drag Drag) AxisResult {
	perpA, perpB := axis.Others()

	var candidates []Candidate
	for _, t := range targets {
		tBox := t.Box.AABB()
		widened := e.settings.SnapDistance * e.settings.CrossAxisMultiplier

		// More confirmed overlap widens the search further.
		strict := 0
		if mov.aabb.OverlapsOnAxis(tBox, perpA) {
			strict++
		}
		if mov.aabb.OverlapsOnAxis(tBox, perpB) {
			strict++
		}
		if strict > 1 {
			widened *= float64(strict)
		}

		if !mov.aabb.OverlapsOnAxisWithin(tBox, perpA, widened) ||
			!mov.aabb.OverlapsOnAxisWithin(tBox, perpB, widened) {
			continue
		}

		for _, dir := range []int{+1, -1} {
			candidates = append(candidates, e.targetCandidates(mov, t, axis, dir, drag.Current[axis], widened)...)
		}
	}

	result := e.selectCandidate(candidates, axis, drag)
	result.CrossAxis = result.Snapped
	e.observer.AxisEvaluated(axis, candidates, result)
	return result
}

// targetCandidates runs the three pairing checks for every moving
// face against every face of one target.
func (e *Engine) targetCandidates(mov movingContext, t Target, axis geom.Axis, direction int, current float64, maxDist float64) []Candidate {
	tFaces := t.Box.Faces()
	tAABB := t.Box.AABB()

	var out []Candidate
	for _, mf := range mov.faces {
		for _, tf := range tFaces {
			if c, ok := e.checkPair(mov, mf, tf, tAABB, axis, direction, current, maxDist); ok {
				c.TargetPart = t.ID
				out = append(out, c)
			}
		}
	}
	return out
}

// checkPair classifies one face pairing and applies the shared
// filters: direction slack, snap distance, and collision.
func (e *Engine) checkPair(mov movingContext, mf, tf obb.Face, tAABB obb.AABB, axis geom.Axis, direction int, current, maxDist float64) (Candidate, bool) {
	dot := mf.Normal.Dot(tf.Normal)
	nAxis := mf.Normal[axis]

	var kind Kind
	var offset float64
	switch {
	case e.settings.Connection && dot < connectionDot:
		// Face to face: bring the faces SnapGap apart, not flush.
		if math.Abs(nAxis) < axisAlignmentDot || int(geom.Sign(nAxis)) != direction {
			return Candidate{}, false
		}
		kind = KindConnection
		offset = (tf.Center[axis] - mf.Center[axis]) - e.settings.SnapGap*geom.Sign(nAxis)

	case e.settings.Alignment && dot > alignmentDot:
		// Coplanar: zero gap, used for flush edges like matching tops.
		if math.Abs(nAxis) < axisAlignmentDot {
			return Candidate{}, false
		}
		kind = KindAlignment
		offset = tf.Center[axis] - mf.Center[axis]

	case e.settings.TJoint && math.Abs(dot) < tjointDot:
		// Edge to face: only the target's axis alignment matters; the
		// moving box leads with its extremal corner.
		if math.Abs(tf.Normal[axis]) < axisAlignmentDot {
			return Candidate{}, false
		}
		kind = KindTJoint
		extreme := mov.extremeOnAxis(axis, direction)
		offset = tf.Center[axis] - e.settings.SnapGap*float64(direction) - extreme

	default:
		return Candidate{}, false
	}

	// Never snap backward beyond the direction slack.
	if offset*float64(direction) < -e.settings.DirectionSlack {
		return Candidate{}, false
	}

	distance := math.Abs(offset - current)
	if distance > maxDist {
		return Candidate{}, false
	}

	// Reject offsets that would push the moving box into the target.
	moved := mov.aabb.TranslateOnAxis(axis, offset).ShrinkOnAxis(axis, e.settings.CollisionMargin)
	if moved.Penetrates(tAABB) {
		return Candidate{}, false
	}

	return Candidate{
		Kind:     kind,
		Moving:   mf,
		Target:   tf,
		Offset:   offset,
		Distance: distance,
	}, true
}

// selectCandidate picks the winner: kind priority first (connection
// beats alignment beats T-joint), then distance from the current drag
// position. If the previous frame's snap is re-found within the
// hysteresis margin, the previous offset is re-issued unchanged so
// sub-pixel pointer noise cannot make the part jitter.
func (e *Engine) selectCandidate(candidates []Candidate, axis geom.Axis, drag Drag) AxisResult {
	if len(candidates) == 0 {
		return AxisResult{Axis: axis}
	}

	if prev, ok := drag.Previous[axis]; ok {
		for _, c := range candidates {
			if c.Moving.Key == prev.MovingKey && c.Target.Key == prev.TargetKey && c.TargetPart == prev.TargetPart &&
				math.Abs(c.Offset-prev.Offset) <= e.settings.HysteresisMargin {
				return AxisResult{
					Snapped:    true,
					Axis:       axis,
					Offset:     prev.Offset,
					Kind:       c.Kind,
					TargetPart: c.TargetPart,
					MovingKey:  c.Moving.Key,
					TargetKey:  c.Target.Key,
					TargetFace: c.Target,
					Distance:   math.Abs(prev.Offset - drag.Current[axis]),
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Kind != candidates[j].Kind {
			return candidates[i].Kind < candidates[j].Kind
		}
		return candidates[i].Distance < candidates[j].Distance
	})

	best := candidates[0]
	return AxisResult{
		Snapped:    true,
		Axis:       axis,
		Offset:     best.Offset,
		Kind:       best.Kind,
		TargetPart: best.TargetPart,
		MovingKey:  best.Moving.Key,
		TargetKey:  best.Target.Key,
		TargetFace: best.Target,
		Distance:   best.Distance,
	}
}
