// Package bounds aggregates parts into group bounding boxes for the
// snap engine: a whole cabinet, a multi-selection, or a single part.
// Cabinets are split into a "core" box (the main body) and an
// "extended" box that also covers protruding parts like countertops.
package bounds

import (
	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
	"github.com/ollestrom/furnish/pkg/scene"
)

// ProtrusionThreshold is how far (mm) a part's plan footprint may
// exceed the cabinet's declared width/depth before it counts as
// protruding.
const ProtrusionThreshold = 50.0

// GroupBoxes is the aggregated bounding geometry for a group of parts.
type GroupBoxes struct {
	Core          obb.OBB
	Extended      obb.OBB
	CoreFaces     []obb.Face
	ExtendedFaces []obb.Face
	PartIDs       []scene.PartID
}

// CoreExtendedSplit partitions a cabinet's parts by comparing each
// part's world-space XZ footprint against the declared width/depth
// plus the protrusion threshold. A degenerate split (all-core or
// all-extended) collapses both sides to the full part list so neither
// group box is ever built from zero parts.
func CoreExtendedSplit(cab scene.Cabinet, parts []scene.Part) (core, extended []scene.Part) {
	if cab.Width <= 0 || cab.Depth <= 0 {
		return parts, parts
	}

	for _, p := range parts {
		size := p.OBB().AABB().Size()
		if size.X() > cab.Width+ProtrusionThreshold || size.Z() > cab.Depth+ProtrusionThreshold {
			extended = append(extended, p)
		} else {
			core = append(core, p)
		}
	}

	if len(core) == 0 || len(extended) == 0 {
		return parts, parts
	}
	return core, extended
}

// ForCabinet builds the group boxes for a cabinet's parts. Cabinets
// are treated as axis-aligned in the room layout, so the group frame
// uses zero rotation.
func ForCabinet(cab scene.Cabinet, parts []scene.Part) GroupBoxes {
	core, _ := CoreExtendedSplit(cab, parts)
	// The extended box covers the whole cabinet, protrusions included.
	return build(core, parts, geom.Euler{}, parts)
}

// ForSelection builds world-aligned group boxes for a multi-selection.
// Core and extended are identical for selections.
func ForSelection(parts []scene.Part) GroupBoxes {
	return build(parts, parts, geom.Euler{}, parts)
}

// ForPart builds the group boxes for a single part using the part's
// own rotation, so the box stays tight for rotated panels.
func ForPart(p scene.Part) GroupBoxes {
	one := []scene.Part{p}
	return build(one, one, p.Rotation, one)
}

func build(core, extended []scene.Part, groupRotation geom.Euler, members []scene.Part) GroupBoxes {
	coreBox := obb.FromGroup(partBoxes(core), groupRotation)
	extBox := obb.FromGroup(partBoxes(extended), groupRotation)

	ids := make([]scene.PartID, 0, len(members))
	for _, p := range members {
		ids = append(ids, p.ID)
	}
	return GroupBoxes{
		Core:          coreBox,
		Extended:      extBox,
		CoreFaces:     coreBox.Faces(),
		ExtendedFaces: extBox.Faces(),
		PartIDs:       ids,
	}
}

func partBoxes(parts []scene.Part) []obb.OBB {
	boxes := make([]obb.OBB, 0, len(parts))
	for _, p := range parts {
		boxes = append(boxes, p.OBB())
	}
	return boxes
}
