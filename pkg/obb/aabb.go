package obb

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABB returns the world-aligned box enclosing the OBB's corners.
func (o OBB) AABB() AABB {
	corners := o.Corners()
	box := AABB{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		for a := 0; a < 3; a++ {
			if c[a] < box.Min[a] {
				box.Min[a] = c[a]
			}
			if c[a] > box.Max[a] {
				box.Max[a] = c[a]
			}
		}
	}
	return box
}

// Center returns the box midpoint.
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extents.
func (b AABB) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Overlaps reports whether the boxes overlap on all three axes.
func (b AABB) Overlaps(other AABB) bool {
	return b.OverlapsOnAxis(other, geom.AxisX) &&
		b.OverlapsOnAxis(other, geom.AxisY) &&
		b.OverlapsOnAxis(other, geom.AxisZ)
}

// Penetrates reports whether the boxes overlap with positive volume.
// Unlike Overlaps, exact boundary contact does not count: two flush
// faces are touching, not colliding.
func (b AABB) Penetrates(other AABB) bool {
	for a := geom.AxisX; a <= geom.AxisZ; a++ {
		if !(b.Max[a] > other.Min[a] && b.Min[a] < other.Max[a]) {
			return false
		}
	}
	return true
}

// OverlapsOnAxis reports whether the boxes' projections on one axis overlap.
func (b AABB) OverlapsOnAxis(other AABB, axis geom.Axis) bool {
	return b.Max[axis] >= other.Min[axis] && b.Min[axis] <= other.Max[axis]
}

// OverlapsOnAxisWithin is OverlapsOnAxis with the intervals widened by
// tolerance on both ends.
func (b AABB) OverlapsOnAxisWithin(other AABB, axis geom.Axis, tolerance float64) bool {
	return b.Max[axis]+tolerance >= other.Min[axis] && b.Min[axis]-tolerance <= other.Max[axis]
}

// Translate returns the box moved by v.
func (b AABB) Translate(v mgl64.Vec3) AABB {
	b.Min = b.Min.Add(v)
	b.Max = b.Max.Add(v)
	return b
}

// TranslateOnAxis returns the box moved by d along one axis.
func (b AABB) TranslateOnAxis(axis geom.Axis, d float64) AABB {
	b.Min[axis] += d
	b.Max[axis] += d
	return b
}

// ShrinkOnAxis returns the box contracted by margin on both ends of
// one axis. A margin larger than the half extent collapses the span
// to the midpoint rather than inverting it.
func (b AABB) ShrinkOnAxis(axis geom.Axis, margin float64) AABB {
	if b.Max[axis]-b.Min[axis] <= 2*margin {
		mid := (b.Min[axis] + b.Max[axis]) / 2
		b.Min[axis] = mid
		b.Max[axis] = mid
		return b
	}
	b.Min[axis] += margin
	b.Max[axis] -= margin
	return b
}
