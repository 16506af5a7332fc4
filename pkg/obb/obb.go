package obb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
)

// OBB is an oriented bounding box: a rotated rectangular volume in
// world space. Axes holds the three rotated local basis vectors; they
// are mutually orthogonal unit vectors as long as Rotation is a pure
// rotation. HalfExtents are non-negative.
type OBB struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
	Rotation    geom.Euler
	Axes        [3]mgl64.Vec3
}

// FromBox builds an OBB from a world-space center, half extents, and
// an Euler rotation. The axes are the world basis vectors rotated by
// the box rotation.
func FromBox(center, halfExtents mgl64.Vec3, rotation geom.Euler) OBB {
	return OBB{
		Center:      center,
		HalfExtents: halfExtents,
		Rotation:    rotation,
		Axes: [3]mgl64.Vec3{
			rotation.Apply(geom.AxisX.Basis()),
			rotation.Apply(geom.AxisY.Basis()),
			rotation.Apply(geom.AxisZ.Basis()),
		},
	}
}

// FromSize is FromBox with full dimensions instead of half extents.
func FromSize(center, size mgl64.Vec3, rotation geom.Euler) OBB {
	return FromBox(center, size.Mul(0.5), rotation)
}

// FromGroup computes the tightest box, in the group's rotated frame,
// that contains every corner of every member. Member corners are
// transformed into the group frame with the inverse group rotation,
// the per-axis min/max gives the local box, and the local center is
// rotated back to world space.
//
// A single member with zero group rotation is returned as-is, and an
// empty group yields a degenerate zero-extent box at the origin.
func FromGroup(members []OBB, groupRotation geom.Euler) OBB {
	if len(members) == 0 {
		return FromBox(mgl64.Vec3{}, mgl64.Vec3{}, geom.Euler{})
	}
	if len(members) == 1 && groupRotation.IsZero() {
		return members[0]
	}

	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, m := range members {
		for _, c := range m.Corners() {
			local := groupRotation.ApplyInverse(c)
			for a := 0; a < 3; a++ {
				if local[a] < min[a] {
					min[a] = local[a]
				}
				if local[a] > max[a] {
					max[a] = local[a]
				}
			}
		}
	}

	localCenter := min.Add(max).Mul(0.5)
	half := max.Sub(min).Mul(0.5)
	return FromBox(groupRotation.Apply(localCenter), half, groupRotation)
}

// cornerSigns enumerates the 8 sign combinations in a fixed order.
// Bit i of the index selects the positive direction along axis i.
var cornerSigns = [8][3]float64{
	{-1, -1, -1}, {+1, -1, -1}, {-1, +1, -1}, {+1, +1, -1},
	{-1, -1, +1}, {+1, -1, +1}, {-1, +1, +1}, {+1, +1, +1},
}

// Corners returns the 8 world-space corners in the fixed sign order.
func (o OBB) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i, s := range cornerSigns {
		c := o.Center
		for a := 0; a < 3; a++ {
			c = c.Add(o.Axes[a].Mul(s[a] * o.HalfExtents[a]))
		}
		out[i] = c
	}
	return out
}

// Intersects tests OBB overlap with the separating axis theorem:
// the 3+3 face normals plus the 9 edge cross products.
func (o OBB) Intersects(other OBB) bool {
	t := other.Center.Sub(o.Center)

	for i := 0; i < 3; i++ {
		if !overlapOnAxis(o, other, o.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(o, other, other.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := o.Axes[i].Cross(other.Axes[j])
			// Parallel edges produce a near-zero axis; skip it.
			if axis.Len() > 1e-4 {
				if !overlapOnAxis(o, other, axis.Normalize(), t) {
					return false
				}
			}
		}
	}
	return true
}

// overlapOnAxis projects both boxes onto axis and compares the center
// distance against the summed projected half sizes.
func overlapOnAxis(a, b OBB, axis, t mgl64.Vec3) bool {
	return math.Abs(t.Dot(axis)) <= a.projectedRadius(axis)+b.projectedRadius(axis)
}

func (o OBB) projectedRadius(axis mgl64.Vec3) float64 {
	return o.HalfExtents[0]*math.Abs(o.Axes[0].Dot(axis)) +
		o.HalfExtents[1]*math.Abs(o.Axes[1].Dot(axis)) +
		o.HalfExtents[2]*math.Abs(o.Axes[2].Dot(axis))
}
