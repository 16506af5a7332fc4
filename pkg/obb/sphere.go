package obb

import "github.com/go-gl/mathgl/mgl64"

// Sphere is a bounding sphere used as a broad-phase prune before the
// per-face candidate loops.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// BoundingSphere returns the smallest sphere centered on the box
// center that contains the whole box.
func (o OBB) BoundingSphere() Sphere {
	return Sphere{Center: o.Center, Radius: o.HalfExtents.Len()}
}

// IntersectsWithin reports whether the spheres come within slack of
// touching. A positive slack widens the test, which is how the snap
// engine accounts for its snap distance during pruning.
func (s Sphere) IntersectsWithin(other Sphere, slack float64) bool {
	reach := s.Radius + other.Radius + slack
	return s.Center.Sub(other.Center).Len() <= reach
}
