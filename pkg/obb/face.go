package obb

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ollestrom/furnish/pkg/geom"
)

// FaceKey identifies one of the six faces of a box by the local axis
// it is perpendicular to and the direction along that axis.
type FaceKey struct {
	Axis geom.Axis
	Sign int // +1 or -1
}

func (k FaceKey) String() string {
	if k.Sign >= 0 {
		return fmt.Sprintf("+%s", k.Axis)
	}
	return fmt.Sprintf("-%s", k.Axis)
}

// Face is one face of an OBB in world space.
type Face struct {
	Key      FaceKey
	Center   mgl64.Vec3
	Normal   mgl64.Vec3 // outward unit normal
	HalfSize [2]float64 // half extents along the two tangent axes
	Corners  [4]mgl64.Vec3
}

// tangentAxes fixes which two local axes span each face. The pairing
// is part of the face corner winding and must not be reordered.
func tangentAxes(axis geom.Axis) (geom.Axis, geom.Axis) {
	switch axis {
	case geom.AxisX:
		return geom.AxisY, geom.AxisZ
	case geom.AxisZ:
		return geom.AxisX, geom.AxisY
	default:
		return geom.AxisX, geom.AxisZ
	}
}

// Face returns the single face identified by key.
func (o OBB) Face(key FaceKey) Face {
	sign := float64(key.Sign)
	normal := o.Axes[key.Axis].Mul(sign)
	center := o.Center.Add(o.Axes[key.Axis].Mul(sign * o.HalfExtents[key.Axis]))

	ta, tb := tangentAxes(key.Axis)
	ha, hb := o.HalfExtents[ta], o.HalfExtents[tb]
	ua, ub := o.Axes[ta], o.Axes[tb]

	return Face{
		Key:      key,
		Center:   center,
		Normal:   normal,
		HalfSize: [2]float64{ha, hb},
		Corners: [4]mgl64.Vec3{
			center.Add(ua.Mul(ha)).Add(ub.Mul(hb)),
			center.Add(ua.Mul(ha)).Sub(ub.Mul(hb)),
			center.Sub(ua.Mul(ha)).Sub(ub.Mul(hb)),
			center.Sub(ua.Mul(ha)).Add(ub.Mul(hb)),
		},
	}
}

// Faces returns all six faces, one per (axis, sign) pair.
func (o OBB) Faces() []Face {
	faces := make([]Face, 0, 6)
	for _, axis := range []geom.Axis{geom.AxisX, geom.AxisY, geom.AxisZ} {
		for _, sign := range []int{+1, -1} {
			faces = append(faces, o.Face(FaceKey{Axis: axis, Sign: sign}))
		}
	}
	return faces
}

// FaceToFaceDistance returns the signed distance from face a to face b
// measured along a's outward normal. For two opposing faces this is
// the gap between them (negative when they interpenetrate).
func FaceToFaceDistance(a, b Face) float64 {
	return b.Center.Sub(a.Center).Dot(a.Normal)
}
