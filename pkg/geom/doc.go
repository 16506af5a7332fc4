// Package geom provides the shared vector helpers and the single
// canonical Euler rotation used by every geometric subsystem.
// All positions and extents are in millimeters, all angles in radians.
package geom
