package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three world (or local) axes.
// The numeric values double as indices into mgl64.Vec3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the three axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Others returns the two axes other than a, in ascending order.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// Basis returns the world-space unit vector for the axis.
func (a Axis) Basis() mgl64.Vec3 {
	var v mgl64.Vec3
	v[a] = 1
	return v
}

// SafeNormalize returns the unit vector in the direction of v,
// or the zero vector when v has zero length. mgl64's Normalize
// divides unconditionally and would produce NaNs.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// Clamp limits v to the interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns +1 for non-negative values and -1 for negative values.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
