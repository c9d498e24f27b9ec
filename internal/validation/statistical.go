package validation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"soilsense/domain/soil"
)

// outlierThreshold is the deviation score above which a reading is flagged.
const outlierThreshold = 2.5

// correlationRule relates two parameters whose values should track each
// other. Rules are table-driven so new agronomic relationships can be added
// without touching the analyzer.
type correlationRule struct {
	name  string
	check func(n *soil.SoilNutrients, m *soil.Micronutrients) *soil.CorrelationIssue
}

// correlationRules is the seed rule set. Only the organic-carbon/nitrogen
// relationship is populated today.
var correlationRules = []correlationRule{
	{
		name: "organic-carbon/nitrogen",
		check: func(n *soil.SoilNutrients, _ *soil.Micronutrients) *soil.CorrelationIssue {
			if n == nil || n.OrganicCarbon == nil || n.Nitrogen == nil {
				return nil
			}
			// Organic carbon roughly predicts available nitrogen.
			expectedN := n.OrganicCarbon.Value * 20
			if expectedN == 0 {
				return nil
			}
			deviation := math.Abs(n.Nitrogen.Value-expectedN) / expectedN
			if deviation <= 0.5 {
				return nil
			}
			return &soil.CorrelationIssue{
				Parameters: []string{soil.ParamOrganicCarbon, soil.ParamNitrogen},
				Description: fmt.Sprintf(
					"Nitrogen %.2f deviates %.0f%% from the %.2f expected for organic carbon %.2f",
					n.Nitrogen.Value, deviation*100, expectedN, n.OrganicCarbon.Value),
				ExpectedCorrelation: "Nitrogen is typically about 20x the organic carbon percentage",
			}
		},
	},
}

// performStatisticalAnalysis flags per-parameter deviation outliers and
// violated correlation rules, then scores overall consistency. It also
// converts outliers into issues/anomalies for the aggregate result.
func (e *Engine) performStatisticalAnalysis(nutrients *soil.SoilNutrients, micronutrients *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.StatisticalAnalysis, []soil.ValidationIssue, []soil.SoilAnomaly) {
	analysis := &soil.StatisticalAnalysis{
		Outliers:          []soil.Outlier{},
		CorrelationIssues: []soil.CorrelationIssue{},
		ConsistencyScore:  1.0,
	}

	params := append(nutrients.Present(), micronutrients.Present()...)
	if len(params) == 0 {
		// Vacuous consistency: nothing measured, nothing inconsistent.
		return analysis, nil, nil
	}

	var issues []soil.ValidationIssue
	var anomalies []soil.SoilAnomaly
	normal := distuv.UnitNormal

	deviations := make([]float64, 0, len(params))
	for _, np := range params {
		r := e.catalog.Ranges(np.Name, opts)
		// Treat the typical range as spanning +/-2 standard deviations.
		mean := (r.Typical.Min + r.Typical.Max) / 2
		stdDev := (r.Typical.Max - r.Typical.Min) / 4
		if stdDev == 0 {
			continue
		}
		zScore := math.Abs(np.Parameter.Value-mean) / stdDev
		deviations = append(deviations, zScore)
		if zScore <= outlierThreshold {
			continue
		}

		analysis.Outliers = append(analysis.Outliers, soil.Outlier{
			Parameter:       np.Name,
			Value:           np.Parameter.Value,
			ExpectedRange:   r.Typical,
			Deviation:       zScore,
			TailProbability: 2 * normal.Survival(zScore),
		})

		severity := soil.SeverityInfo
		if zScore > 3 {
			severity = soil.SeverityWarning
		}
		issues = append(issues, soil.ValidationIssue{
			Parameter:  np.Name,
			Issue:      "Statistical outlier",
			Severity:   severity,
			Suggestion: fmt.Sprintf("%s value %.2f deviates %.1f standard deviations from the typical midpoint", np.Name, np.Parameter.Value, zScore),
			Confidence: math.Min(0.9, 1-(zScore-2)*0.1),
		})
		if zScore > 3 {
			anomalies = append(anomalies, soil.SoilAnomaly{
				Parameter:         np.Name,
				Issue:             "Statistical outlier",
				Severity:          soil.AnomalyMedium,
				Description:       fmt.Sprintf("%s value %.2f lies far outside the expected range %.2f-%.2f", np.Name, np.Parameter.Value, r.Typical.Min, r.Typical.Max),
				PossibleCauses:    []string{"Measurement error", "Localized soil condition"},
				RecommendedAction: "Retest this parameter to confirm the reading",
			})
		}
	}

	for _, rule := range correlationRules {
		if ci := rule.check(nutrients, micronutrients); ci != nil {
			analysis.CorrelationIssues = append(analysis.CorrelationIssues, *ci)
		}
	}

	total := float64(len(params))
	outlierDensity := float64(len(analysis.Outliers)) / total
	correlationDensity := float64(len(analysis.CorrelationIssues)) / math.Max(1, total/2)
	analysis.ConsistencyScore = math.Max(0, 1-outlierDensity*0.3-correlationDensity*0.2)

	if len(deviations) > 0 {
		analysis.MeanDeviation, _ = stats.Mean(deviations)
		analysis.MaxDeviation, _ = stats.Max(deviations)
	}

	return analysis, issues, anomalies
}
