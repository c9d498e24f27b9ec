package validation

import (
	"fmt"
	"math"

	"soilsense/domain/soil"
)

// contextualRule is one regional, seasonal, or crop-specific check. Each
// returns a finding (or nil) and the penalty to apply to its sub-check's
// confidence; informational findings carry a zero penalty.
type contextualRule struct {
	name  string
	check func(n *soil.SoilNutrients, m *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.ValidationIssue, float64)
}

// Seed rule sets. Single examples per category today; the tables are the
// extension point for per-state, per-season and per-crop agronomy.
var (
	regionalRules = []contextualRule{
		{
			name: "rajasthan-acidity",
			check: func(n *soil.SoilNutrients, _ *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.ValidationIssue, float64) {
				if opts.Location == nil || opts.Location.State != "Rajasthan" {
					return nil, 0
				}
				if n.PH == nil || n.PH.Value >= 6.0 {
					return nil, 0
				}
				return &soil.ValidationIssue{
					Parameter:  soil.ParamPH,
					Issue:      "Unusually acidic soil for an arid region",
					Severity:   soil.SeverityWarning,
					Suggestion: fmt.Sprintf("pH %.2f is unusually low for Rajasthan, an arid region where alkaline soils dominate; confirm the reading", n.PH.Value),
					Confidence: 0.7,
				}, 0.1
			},
		},
	}

	seasonalRules = []contextualRule{
		{
			name: "post-harvest-nitrogen",
			check: func(n *soil.SoilNutrients, _ *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.ValidationIssue, float64) {
				if opts.Season != soil.SeasonPostHarvest {
					return nil, 0
				}
				if n.Nitrogen == nil || n.Nitrogen.Value <= 300 {
					return nil, 0
				}
				return &soil.ValidationIssue{
					Parameter:  soil.ParamNitrogen,
					Issue:      "High residual nitrogen after harvest",
					Severity:   soil.SeverityInfo,
					Suggestion: fmt.Sprintf("Nitrogen %.2f is high for a post-harvest sample; recent crop uptake usually depletes it", n.Nitrogen.Value),
					Confidence: 0.6,
				}, 0 // informational, no penalty
			},
		},
	}

	cropRules = []contextualRule{
		{
			name: "rice-alkalinity",
			check: func(n *soil.SoilNutrients, _ *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.ValidationIssue, float64) {
				if opts.CropType != "rice" {
					return nil, 0
				}
				if n.PH == nil || n.PH.Value <= 8.0 {
					return nil, 0
				}
				return &soil.ValidationIssue{
					Parameter:  soil.ParamPH,
					Issue:      "Soil too alkaline for rice",
					Severity:   soil.SeverityWarning,
					Suggestion: fmt.Sprintf("pH %.2f exceeds the 8.0 ceiling rice tolerates; verify the reading or reconsider crop choice", n.PH.Value),
					Confidence: 0.8,
				}, 0.1
			},
		},
	}
)

// validateContextualFactors runs whichever of the regional, seasonal, and
// crop sub-checks have the context data to run. The stage confidence is the
// minimum across the sub-checks that ran, each starting at 1.0.
func (e *Engine) validateContextualFactors(nutrients *soil.SoilNutrients, micronutrients *soil.Micronutrients, opts *soil.ValidationOptions) stageResult {
	res := stageResult{confidence: 1.0}

	runRules := func(rules []contextualRule) float64 {
		conf := 1.0
		for _, rule := range rules {
			issue, penalty := rule.check(nutrients, micronutrients, opts)
			if issue == nil {
				continue
			}
			res.issues = append(res.issues, *issue)
			conf -= penalty
		}
		return conf
	}

	if opts.Location != nil {
		res.confidence = math.Min(res.confidence, runRules(regionalRules))
	}
	// Gated on the season value being set, not on EnableSeasonalValidation.
	if opts.Season != "" {
		res.confidence = math.Min(res.confidence, runRules(seasonalRules))
	}
	if opts.CropType != "" {
		res.confidence = math.Min(res.confidence, runRules(cropRules))
	}

	return res
}
