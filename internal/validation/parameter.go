package validation

import (
	"fmt"

	"soilsense/domain/soil"
)

// parameterFinding is the output of the single-parameter tier check. Either
// field may be nil; an issue at the impossible/extreme tiers always carries
// an anomaly.
type parameterFinding struct {
	issue   *soil.ValidationIssue
	anomaly *soil.SoilAnomaly
}

// validateSingleParameter classifies one measurement against the catalog
// range: impossible, out of absolute range, atypical, or normal. First match
// wins. Pure function of the value and the catalog; never errors.
func (e *Engine) validateSingleParameter(p *soil.SoilParameter, name string, opts *soil.ValidationOptions) parameterFinding {
	r := e.catalog.Ranges(name, opts)

	// Tier 1: negative readings are physically impossible for everything
	// except pH, whose scale is bounded by the absolute range check below.
	if p.Value < 0 && name != soil.ParamPH {
		causes := []string{
			"Measurement error",
			"Data entry error",
			"Equipment malfunction",
		}
		return parameterFinding{
			issue: &soil.ValidationIssue{
				Parameter:      name,
				Issue:          "Negative value detected",
				Severity:       soil.SeverityCritical,
				Suggestion:     fmt.Sprintf("Retest %s: a reading of %.2f %s is not physically possible", name, p.Value, p.Unit),
				Confidence:     0.9,
				PossibleCauses: causes,
			},
			anomaly: &soil.SoilAnomaly{
				Parameter:         name,
				Issue:             "Negative value detected",
				Severity:          soil.AnomalyHigh,
				Description:       fmt.Sprintf("%s reported as %.2f, a negative value that cannot occur in soil", name, p.Value),
				PossibleCauses:    causes,
				RecommendedAction: "Retest the sample and verify equipment calibration",
			},
		}
	}

	// Tier 2: outside the physically possible range.
	if p.Value < r.Absolute.Min || p.Value > r.Absolute.Max {
		severity := soil.SeverityError
		if opts.StrictMode {
			severity = soil.SeverityCritical
		}
		direction := "high"
		bound := r.Absolute.Max
		boundWord := "maximum"
		if p.Value < r.Absolute.Min {
			direction = "low"
			bound = r.Absolute.Min
			boundWord = "minimum"
		}
		causes := []string{
			"Laboratory analysis error",
			"Sample contamination",
			"Incorrect unit conversion",
		}
		return parameterFinding{
			issue: &soil.ValidationIssue{
				Parameter:      name,
				Issue:          fmt.Sprintf("Value outside physically possible range (too %s)", direction),
				Severity:       severity,
				Suggestion:     fmt.Sprintf("Verify the %s reading of %.2f against the lab report and retest if confirmed", name, p.Value),
				Confidence:     0.9,
				PossibleCauses: causes,
			},
			anomaly: &soil.SoilAnomaly{
				Parameter:         name,
				Issue:             fmt.Sprintf("Value outside physically possible range (too %s)", direction),
				Severity:          soil.AnomalyHigh,
				Description:       fmt.Sprintf("%s value %.2f is extremely %s (beyond the physically possible %s of %.2f)", name, p.Value, direction, boundWord, bound),
				PossibleCauses:    causes,
				RecommendedAction: "Retest the sample with verified equipment before using this report",
			},
		}
	}

	// Tier 3: possible but outside the commonly observed range.
	if p.Value < r.Typical.Min || p.Value > r.Typical.Max {
		direction := "above"
		if p.Value < r.Typical.Min {
			direction = "below"
		}
		causes := []string{
			"Unusual soil condition",
			"Recent fertilizer or amendment application",
			"Measurement drift",
		}
		return parameterFinding{
			issue: &soil.ValidationIssue{
				Parameter:      name,
				Issue:          fmt.Sprintf("Atypical value (%s typical range)", direction),
				Severity:       soil.SeverityWarning,
				Suggestion:     fmt.Sprintf("%s reading of %.2f is %s the typical range %.2f-%.2f; confirm it matches field history", name, p.Value, direction, r.Typical.Min, r.Typical.Max),
				Confidence:     0.7,
				PossibleCauses: causes,
			},
			anomaly: &soil.SoilAnomaly{
				Parameter:         name,
				Issue:             fmt.Sprintf("Atypical value (%s typical range)", direction),
				Severity:          soil.AnomalyMedium,
				Description:       fmt.Sprintf("%s value %.2f falls outside the typical range %.2f-%.2f", name, p.Value, r.Typical.Min, r.Typical.Max),
				PossibleCauses:    causes,
				RecommendedAction: "Cross-check against previous reports for this field",
			},
		}
	}

	return parameterFinding{}
}
