package snap

import (
	"github.com/ollestrom/furnish/pkg/bounds"
	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
	"github.com/ollestrom/furnish/pkg/scene"
	"github.com/ollestrom/furnish/pkg/wallsnap"
)

// Mover binds the candidate engine to a live scene: it resolves the
// moving group into one box, collects visible targets, and folds wall
// snapping into the result. Part positions in the scene are taken as
// the drag start; Drag.Current is the raw pointer offset from there.
type Mover struct {
	engine       *Engine
	walls        *wallsnap.Cache
	wallSettings wallsnap.Settings
}

// NewMover creates a mover. walls may be nil when no room is loaded.
func NewMover(engine *Engine, walls *wallsnap.Cache, wallSettings wallsnap.Settings) *Mover {
	return &Mover{
		engine:       engine,
		walls:        walls,
		wallSettings: wallSettings.WithDefaults(),
	}
}

// MoveResult extends the engine result with any wall snaps folded
// into the combined offset.
type MoveResult struct {
	Result
	Walls map[geom.Axis]wallsnap.AxisSnap
}

// Evaluate runs one drag frame for the given selection. Hidden parts
// and the selection itself are excluded from the target set. A single
// selected part moves with its own rotation; a multi-selection moves
// as one world-aligned group box.
func (m *Mover) Evaluate(s *scene.Scene, moving []scene.PartID, drag Drag) MoveResult {
	movingSet := make(map[scene.PartID]bool, len(moving))
	parts := make([]scene.Part, 0, len(moving))
	for _, id := range moving {
		movingSet[id] = true
		if p := s.Part(id); p != nil {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return MoveResult{Result: Result{Offset: drag.Current}}
	}

	box := bounds.ForSelection(parts).Extended
	if len(parts) == 1 {
		box = bounds.ForPart(parts[0]).Extended
	}

	visible := s.VisibleTargets(movingSet)
	targets := make([]Target, 0, len(visible))
	for _, p := range visible {
		targets = append(targets, Target{ID: p.ID, Box: p.OBB()})
	}

	out := MoveResult{Result: m.engine.Evaluate(box, targets, drag)}
	m.applyWallSnaps(&out, box, drag)
	return out
}

// applyWallSnaps runs the wall calculator on drag axes that found no
// part snap. Part snaps always win; walls only fill the gaps.
func (m *Mover) applyWallSnaps(out *MoveResult, box obb.OBB, drag Drag) {
	if m.walls == nil {
		return
	}

	var open []geom.Axis
	for _, axis := range drag.Axes {
		if _, taken := out.Axes[axis]; !taken {
			open = append(open, axis)
		}
	}
	if len(open) == 0 {
		return
	}

	dragged := box.AABB().Translate(drag.Current)
	wres := wallsnap.Evaluate(dragged, m.walls.Snapshot(), open, m.wallSettings)
	if !wres.Snapped {
		return
	}

	out.Walls = wres.Axes
	for axis, ws := range wres.Axes {
		// Wall offsets are relative to the dragged position.
		out.Offset[axis] = drag.Current[axis] + ws.Offset
	}
	out.Snapped = true
}
