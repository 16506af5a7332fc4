package geom

import "github.com/go-gl/mathgl/mgl64"

// Euler is a rotation expressed as intrinsic XYZ Euler angles in radians.
//
// The composed matrix is R = Rx·Ry·Rz applied to column vectors, so a
// rotated point is transformed by the Z rotation first, then Y, then X.
// Face positions are sensitive to this order; every rotation in the
// module must go through Apply/ApplyInverse rather than re-deriving its
// own matrix.
type Euler struct {
	X, Y, Z float64
}

// IsZero reports whether all three angles are exactly zero.
func (e Euler) IsZero() bool {
	return e.X == 0 && e.Y == 0 && e.Z == 0
}

// Matrix returns the rotation matrix R = Rx·Ry·Rz.
func (e Euler) Matrix() mgl64.Mat3 {
	if e.IsZero() {
		return mgl64.Ident3()
	}
	return mgl64.Rotate3DX(e.X).Mul3(mgl64.Rotate3DY(e.Y)).Mul3(mgl64.Rotate3DZ(e.Z))
}

// Apply rotates the point p by the Euler rotation.
func (e Euler) Apply(p mgl64.Vec3) mgl64.Vec3 {
	if e.IsZero() {
		return p
	}
	return e.Matrix().Mul3x1(p)
}

// ApplyInverse rotates p by the inverse rotation. Rotation matrices are
// orthogonal, so the inverse is the transpose.
func (e Euler) ApplyInverse(p mgl64.Vec3) mgl64.Vec3 {
	if e.IsZero() {
		return p
	}
	return e.Matrix().Transpose().Mul3x1(p)
}

// RotateAbout rotates point p around the pivot by the Euler rotation.
func (e Euler) RotateAbout(p, pivot mgl64.Vec3) mgl64.Vec3 {
	return e.Apply(p.Sub(pivot)).Add(pivot)
}
