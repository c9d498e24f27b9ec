package validation

import (
	"fmt"
	"strings"

	"soilsense/domain/soil"
)

// stageResult carries a sub-validator's findings plus its local confidence.
// Sub-validators never decide overall validity.
type stageResult struct {
	issues     []soil.ValidationIssue
	anomalies  []soil.SoilAnomaly
	confidence float64
}

// validateCrossParameterRelationships applies the agronomic rules relating
// nutrient values to each other. Confidence starts at 1.0 and is reduced by
// a fixed penalty per finding.
func (e *Engine) validateCrossParameterRelationships(nutrients *soil.SoilNutrients, micronutrients *soil.Micronutrients, opts *soil.ValidationOptions) stageResult {
	res := stageResult{confidence: 1.0}

	// N:P ratio and potassium balance both need the full macronutrient set.
	if nutrients.Nitrogen != nil && nutrients.Phosphorus != nil && nutrients.Potassium != nil {
		n := nutrients.Nitrogen.Value
		p := nutrients.Phosphorus.Value
		k := nutrients.Potassium.Value

		if p > 0 {
			ratio := n / p
			if ratio > 25 || ratio < 5 {
				res.issues = append(res.issues, soil.ValidationIssue{
					Parameter:  "N:P ratio",
					Issue:      "Imbalanced nitrogen to phosphorus ratio",
					Severity:   soil.SeverityWarning,
					Suggestion: fmt.Sprintf("N:P ratio of %.1f is outside the usual 5-25 band; review fertilizer application", ratio),
					Confidence: 0.8,
				})
				res.confidence -= 0.1

				anomalySeverity := soil.AnomalyMedium
				if ratio > 30 || ratio < 3 {
					anomalySeverity = soil.AnomalyHigh
				}
				res.anomalies = append(res.anomalies, soil.SoilAnomaly{
					Parameter:         "N:P ratio",
					Issue:             "Imbalanced nitrogen to phosphorus ratio",
					Severity:          anomalySeverity,
					Description:       fmt.Sprintf("Nitrogen %.2f against phosphorus %.2f gives a ratio of %.1f", n, p, ratio),
					PossibleCauses:    []string{"One-sided fertilizer use", "Phosphorus fixation in soil", "Measurement error"},
					RecommendedAction: "Verify both readings and review fertilizer records",
				})
			}
		}

		avgNP := (n + p) / 2
		if k < avgNP*0.5 || k > avgNP*3 {
			res.issues = append(res.issues, soil.ValidationIssue{
				Parameter:  "Potassium balance",
				Issue:      "Potassium out of balance with nitrogen and phosphorus",
				Severity:   soil.SeverityWarning,
				Suggestion: fmt.Sprintf("Potassium %.2f is disproportionate to the N/P average of %.2f", k, avgNP),
				Confidence: 0.7,
			})
			res.confidence -= 0.05
		}
	}

	// Extreme pH suppresses phosphorus availability, so a high phosphorus
	// reading alongside extreme pH is worth a note. Informational only.
	if nutrients.PH != nil && nutrients.Phosphorus != nil {
		ph := nutrients.PH.Value
		if ph < 5.5 || ph > 8.0 {
			expectedP := expectedPhosphorusForPH(ph)
			if nutrients.Phosphorus.Value > expectedP*1.5 {
				res.issues = append(res.issues, soil.ValidationIssue{
					Parameter:  "pH-phosphorus relationship",
					Issue:      "High phosphorus despite pH limiting availability",
					Severity:   soil.SeverityInfo,
					Suggestion: fmt.Sprintf("Phosphorus %.2f is unusually high for pH %.2f; availability is typically reduced at this pH", nutrients.Phosphorus.Value, ph),
					Confidence: 0.6,
				})
			}
		}
	}

	// Alkaline soils lock up micronutrients; deficiencies there are expected
	// and should be read together with the pH value.
	if nutrients.PH != nil && nutrients.PH.Value > 7.5 {
		var deficient []string
		for _, np := range micronutrients.Present() {
			if np.Parameter.Status == soil.StatusDeficient {
				deficient = append(deficient, np.Name)
			}
		}
		if len(deficient) > 0 {
			res.issues = append(res.issues, soil.ValidationIssue{
				Parameter:  "pH-micronutrient relationship",
				Issue:      fmt.Sprintf("Alkaline pH with deficient micronutrients: %s", strings.Join(deficient, ", ")),
				Severity:   soil.SeverityWarning,
				Suggestion: "High pH reduces micronutrient availability; address pH before supplementing",
				Confidence: 0.8,
			})
			res.confidence -= 0.1
		}
	}

	return res
}

// expectedPhosphorusForPH returns the phosphorus level expected once pH
// limits availability.
func expectedPhosphorusForPH(ph float64) float64 {
	if ph < 5.5 || ph > 8.0 {
		return 10
	}
	return 20
}
