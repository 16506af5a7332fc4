package scene

import "fmt"

// Severity distinguishes blocking errors from advisory findings.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// ValidationError is a blocking problem with the scene.
type ValidationError struct {
	PartID   PartID
	Message  string
	Severity Severity
}

// ValidationWarning is an advisory finding that does not block use.
type ValidationWarning struct {
	PartID  PartID
	Message string
}

// ValidationResult bundles errors and warnings from a full validation pass.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the scene has no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs all scene checks. Geometric checks produce errors,
// layout advisories produce warnings.
func Validate(s *Scene) ValidationResult {
	var result ValidationResult
	result.Errors = append(result.Errors, validateDimensions(s)...)
	result.Errors = append(result.Errors, validateCabinetRefs(s)...)
	result.Errors = append(result.Errors, validateWalls(s)...)
	result.Warnings = append(result.Warnings, validateCabinetSizes(s)...)
	return result
}

// validateDimensions checks that every part has positive W, H, D.
func validateDimensions(s *Scene) []ValidationError {
	var errs []ValidationError
	names := [3]string{"width", "height", "depth"}
	for _, p := range s.Parts {
		for a := 0; a < 3; a++ {
			if p.Size[a] <= 0 {
				errs = append(errs, ValidationError{
					PartID:   p.ID,
					Message:  fmt.Sprintf("part %s is %.4f, must be positive", names[a], p.Size[a]),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateCabinetRefs checks that parts only reference known cabinets.
func validateCabinetRefs(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, p := range s.Parts {
		if p.Cabinet == "" {
			continue
		}
		if _, ok := s.Cabinets[p.Cabinet]; !ok {
			errs = append(errs, ValidationError{
				PartID:   p.ID,
				Message:  fmt.Sprintf("part references unknown cabinet %q", p.Cabinet),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateWalls checks for degenerate wall segments.
func validateWalls(s *Scene) []ValidationError {
	if s.Room == nil {
		return nil
	}
	var errs []ValidationError
	for i, w := range s.Room.Walls {
		if w.Start == w.End {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("wall %d has zero length", i),
				Severity: SeverityError,
			})
		}
		if w.Thickness <= 0 {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("wall %d thickness is %.4f, must be positive", i, w.Thickness),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateCabinetSizes warns about cabinets with no declared footprint;
// the core/extended split degrades to all-core for them.
func validateCabinetSizes(s *Scene) []ValidationWarning {
	var warnings []ValidationWarning
	for _, c := range s.Cabinets {
		if c.Width <= 0 || c.Depth <= 0 {
			warnings = append(warnings, ValidationWarning{
				Message: fmt.Sprintf("cabinet %q has no declared width/depth; protrusion split is disabled", c.ID),
			})
		}
	}
	return warnings
}
