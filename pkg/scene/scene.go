package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
	"github.com/ollestrom/furnish/pkg/obb"
)

// PartID identifies a part within a scene.
type PartID string

// CabinetID identifies a cabinet grouping.
type CabinetID string

// Part is a rigid rectangular panel. Size components are the local
// width/height/depth in mm and must be positive; Position is the
// world-space center; Rotation is the canonical Euler XYZ convention
// from pkg/geom.
type Part struct {
	ID       PartID      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Size     mgl64.Vec3  `json:"size"`
	Position mgl64.Vec3  `json:"position"`
	Rotation geom.Euler  `json:"rotation"`
	Cabinet  CabinetID   `json:"cabinet,omitempty"`
}

// OBB derives the part's oriented bounding box.
func (p Part) OBB() obb.OBB {
	return obb.FromSize(p.Position, p.Size, p.Rotation)
}

// Cabinet groups parts into one furniture unit. Width and Depth are
// the declared plan-view dimensions used by the core/extended split.
type Cabinet struct {
	ID     CabinetID `json:"id"`
	Name   string    `json:"name,omitempty"`
	Width  float64   `json:"width"`
	Depth  float64   `json:"depth"`
	Height float64   `json:"height,omitempty"`
}

// Wall is one segment of the room polygon in plan view. Start and End
// are centerline endpoints (X is world X, Y is world Z).
type Wall struct {
	Start     mgl64.Vec2 `json:"start"`
	End       mgl64.Vec2 `json:"end"`
	Thickness float64    `json:"thickness"`
	Height    float64    `json:"height"`
}

// Room holds the wall polygon and overall dimensions.
type Room struct {
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
	Walls []Wall  `json:"walls"`
}

// Scene is the per-frame snapshot of the furniture layout.
type Scene struct {
	Parts     []Part                `json:"parts"`
	Cabinets  map[CabinetID]Cabinet `json:"cabinets,omitempty"`
	Room      *Room                 `json:"room,omitempty"`
	Hidden    map[PartID]bool       `json:"hidden,omitempty"`
	Selection []PartID              `json:"selection,omitempty"`

	index map[PartID]int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		Cabinets: make(map[CabinetID]Cabinet),
		Hidden:   make(map[PartID]bool),
		index:    make(map[PartID]int),
	}
}

// AddPart appends a part. Order is preserved; the snap engine iterates
// parts in insertion order so results are deterministic.
func (s *Scene) AddPart(p Part) {
	if s.index == nil {
		s.index = make(map[PartID]int)
	}
	s.index[p.ID] = len(s.Parts)
	s.Parts = append(s.Parts, p)
}

// AddCabinet registers a cabinet.
func (s *Scene) AddCabinet(c Cabinet) {
	if s.Cabinets == nil {
		s.Cabinets = make(map[CabinetID]Cabinet)
	}
	s.Cabinets[c.ID] = c
}

// Part returns the part with the given ID, or nil.
func (s *Scene) Part(id PartID) *Part {
	if s.index != nil {
		if i, ok := s.index[id]; ok {
			return &s.Parts[i]
		}
	}
	for i := range s.Parts {
		if s.Parts[i].ID == id {
			return &s.Parts[i]
		}
	}
	return nil
}

// CabinetParts returns all parts belonging to the cabinet, in scene order.
func (s *Scene) CabinetParts(id CabinetID) []Part {
	var out []Part
	for _, p := range s.Parts {
		if p.Cabinet == id {
			out = append(out, p)
		}
	}
	return out
}

// VisibleTargets returns the parts that can act as snap targets for a
// drag of moving: everything not hidden and not in the moving set.
func (s *Scene) VisibleTargets(moving map[PartID]bool) []Part {
	var out []Part
	for _, p := range s.Parts {
		if s.Hidden[p.ID] || moving[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SetHidden marks a part as excluded from snapping.
func (s *Scene) SetHidden(id PartID, hidden bool) {
	if s.Hidden == nil {
		s.Hidden = make(map[PartID]bool)
	}
	if hidden {
		s.Hidden[id] = true
	} else {
		delete(s.Hidden, id)
	}
}
