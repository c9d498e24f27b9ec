// Package validation implements the soil-data validation engine: range
// checks against the parameter catalog, statistical outlier detection,
// cross-parameter agronomic rules, and contextual (region/season/crop)
// adjustments, aggregated into a single verdict with a confidence score.
package validation

import (
	"context"
	"math"

	"soilsense/domain/soil"
	"soilsense/internal"
	"soilsense/internal/catalog"
	"soilsense/internal/errors"
)

// Engine runs soil-data validation. It is stateless apart from its static
// catalogs, so one Engine serves concurrent callers without locking.
type Engine struct {
	catalog *catalog.Catalog
	logger  *internal.Logger
}

// NewEngine builds an engine with the built-in range catalog.
func NewEngine() *Engine {
	return &Engine{
		catalog: catalog.New(),
		logger:  internal.NewDefaultLogger(),
	}
}

// Catalog exposes the range catalog for callers that render ranges alongside
// validation output.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ValidateSoilData validates a soil-test record. Findings are returned as
// data, never as an error; the only error case is a nil nutrients or
// micronutrients argument. The context is accepted for call-convention
// uniformity with the surrounding service layer; validation itself is pure
// computation with no suspension points.
func (e *Engine) ValidateSoilData(ctx context.Context, nutrients *soil.SoilNutrients, micronutrients *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.ValidationResult, error) {
	if nutrients == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "nutrients is required")
	}
	if micronutrients == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "micronutrients is required")
	}

	options := soil.DefaultOptions()
	if opts != nil {
		options = *opts
	}

	result := &soil.ValidationResult{
		Issues:          []soil.ValidationIssue{},
		Anomalies:       []soil.SoilAnomaly{},
		Recommendations: []string{},
	}

	// Stage 1: per-parameter range validation, always on. The stage starts
	// at full confidence and pays a fixed penalty per violated parameter.
	rangeConfidence := 1.0
	for _, np := range append(nutrients.Present(), micronutrients.Present()...) {
		finding := e.validateSingleParameter(np.Parameter, np.Name, &options)
		if finding.issue != nil {
			result.Issues = append(result.Issues, *finding.issue)
			rangeConfidence -= rangePenalty(np.Name)
		}
		if finding.anomaly != nil {
			result.Anomalies = append(result.Anomalies, *finding.anomaly)
		}
	}
	confidence := math.Max(0, rangeConfidence)

	// Stage 2: statistical analysis.
	if options.EnableStatisticalAnalysis {
		analysis, issues, anomalies := e.performStatisticalAnalysis(nutrients, micronutrients, &options)
		result.StatisticalAnalysis = analysis
		result.Issues = append(result.Issues, issues...)
		result.Anomalies = append(result.Anomalies, anomalies...)
		confidence = math.Min(confidence, analysis.ConsistencyScore)
	}

	// Stage 3: cross-parameter relationships.
	if options.EnableCrossParameterValidation {
		stage := e.validateCrossParameterRelationships(nutrients, micronutrients, &options)
		result.Issues = append(result.Issues, stage.issues...)
		result.Anomalies = append(result.Anomalies, stage.anomalies...)
		confidence = math.Min(confidence, math.Max(0, stage.confidence))
	}

	// Stage 4: contextual validation, gated on context data being present.
	if options.Location != nil || options.Season != "" {
		stage := e.validateContextualFactors(nutrients, micronutrients, &options)
		result.Issues = append(result.Issues, stage.issues...)
		result.Anomalies = append(result.Anomalies, stage.anomalies...)
		confidence = math.Min(confidence, math.Max(0, stage.confidence))
	}

	result.Confidence = confidence
	result.Recommendations = synthesizeRecommendations(result)
	result.Valid = !result.HasSeverity(soil.SeverityCritical) &&
		!result.HasSeverity(soil.SeverityError) &&
		confidence >= options.ConfidenceThreshold

	e.logger.Debug("[SoilValidation] valid=%t confidence=%.2f issues=%d anomalies=%d",
		result.Valid, result.Confidence, len(result.Issues), len(result.Anomalies))

	return result, nil
}

// rangePenalty is the fixed confidence cost of a range violation on the
// named parameter. pH carries the largest penalty because it drives the
// interpretation of everything else.
func rangePenalty(name string) float64 {
	switch name {
	case soil.ParamPH:
		return 0.2
	case soil.ParamNitrogen, soil.ParamPhosphorus, soil.ParamPotassium:
		return 0.15
	case soil.ParamOrganicCarbon, soil.ParamElectricalConductivity:
		return 0.05
	default: // micronutrients
		return 0.05
	}
}
