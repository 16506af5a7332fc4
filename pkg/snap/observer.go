package snap

import (
	log "github.com/sirupsen/logrus"

	"github.com/ollestrom/furnish/pkg/geom"
)

// Observer receives per-axis evaluation traces. Implementations must
// not retain the candidate slice past the call.
type Observer interface {
	AxisEvaluated(axis geom.Axis, candidates []Candidate, result AxisResult)
}

// NopObserver discards all traces.
type NopObserver struct{}

func (NopObserver) AxisEvaluated(geom.Axis, []Candidate, AxisResult) {}

// LogObserver traces evaluations through logrus at debug level.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) AxisEvaluated(axis geom.Axis, candidates []Candidate, result AxisResult) {
	logger := o.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	fields := log.Fields{
		"axis":       axis.String(),
		"candidates": len(candidates),
		"snapped":    result.Snapped,
	}
	if result.Snapped {
		fields["kind"] = result.Kind.String()
		fields["offset"] = result.Offset
		fields["target"] = result.TargetPart
		fields["cross"] = result.CrossAxis
	}
	logger.WithFields(fields).Debug("snap axis evaluated")
}
