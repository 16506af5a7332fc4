package snap

// Geometric thresholds for face pairing. Dot products of unit
// normals, so the values are cosines.
const (
	// connectionDot is the ceiling for "nearly antiparallel" normals.
	connectionDot = -0.95
	// alignmentDot is the floor for "nearly parallel" normals.
	alignmentDot = 0.95
	// tjointDot bounds |dot| for "nearly perpendicular" normals.
	tjointDot = 0.1
	// axisAlignmentDot is the minimum |normal component| along the
	// drag axis for a face to be relevant to that axis.
	axisAlignmentDot = 0.9
)

// Settings is the fully specified snap configuration. Construct with
// DefaultSettings and override fields; WithDefaults fills unset
// numeric fields so a partially filled struct still behaves.
type Settings struct {
	// SnapDistance is the maximum deviation (mm) between a candidate
	// offset and the current drag position. Default 20.
	SnapDistance float64
	// SnapGap is the desired final separation (mm) between connected
	// faces. Default 1.
	SnapGap float64
	// CollisionMargin is the overlap tolerance (mm) used when
	// rejecting candidates that would interpenetrate a target.
	// Default 0.5.
	CollisionMargin float64
	// HysteresisMargin is the frame-to-frame stability window (mm):
	// a re-found candidate within this margin of the previously
	// accepted offset re-issues the previous offset unchanged.
	// Default 2.
	HysteresisMargin float64
	// DirectionSlack is how far (mm) a candidate offset may point
	// against the drag direction before it is discarded. Historically
	// this shared the hysteresis constant; it is a separate tolerance.
	// Default 2.
	DirectionSlack float64
	// CrossAxisMultiplier widens SnapDistance on the non-drag axes.
	// Default 3.
	CrossAxisMultiplier float64

	// Per-kind enable flags.
	Connection bool
	Alignment  bool
	TJoint     bool
}

// DefaultSettings returns the documented defaults with every snap
// kind enabled.
func DefaultSettings() Settings {
	return Settings{
		SnapDistance:        20,
		SnapGap:             1,
		CollisionMargin:     0.5,
		HysteresisMargin:    2,
		DirectionSlack:      2,
		CrossAxisMultiplier: 3,
		Connection:          true,
		Alignment:           true,
		TJoint:              true,
	}
}

// WithDefaults fills unset numeric fields. Enable flags are taken
// as-is: a zero Settings snaps nothing by construction.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.SnapDistance <= 0 {
		s.SnapDistance = d.SnapDistance
	}
	if s.SnapGap <= 0 {
		s.SnapGap = d.SnapGap
	}
	if s.CollisionMargin <= 0 {
		s.CollisionMargin = d.CollisionMargin
	}
	if s.HysteresisMargin <= 0 {
		s.HysteresisMargin = d.HysteresisMargin
	}
	if s.DirectionSlack <= 0 {
		s.DirectionSlack = d.DirectionSlack
	}
	if s.CrossAxisMultiplier <= 0 {
		s.CrossAxisMultiplier = d.CrossAxisMultiplier
	}
	return s
}
