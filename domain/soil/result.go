package soil

// ValidationIssue is one human-facing finding. Issues are created fresh per
// validation run and never persisted by the engine.
type ValidationIssue struct {
	Parameter      string   `json:"parameter"`
	Issue          string   `json:"issue"`
	Severity       Severity `json:"severity"`
	Suggestion     string   `json:"suggestion"`
	Confidence     float64  `json:"confidence"` // 0-1
	PossibleCauses []string `json:"possibleCauses,omitempty"`
}

// SoilAnomaly is the clinical companion to an issue: it signals a likely
// data or soil-condition problem rather than just an out-of-range reading.
type SoilAnomaly struct {
	Parameter         string          `json:"parameter"`
	Issue             string          `json:"issue"`
	Severity          AnomalySeverity `json:"severity"`
	Description       string          `json:"description"`
	PossibleCauses    []string        `json:"possibleCauses,omitempty"`
	RecommendedAction string          `json:"recommendedAction"`
}

// Outlier is one parameter flagged by the statistical pass.
type Outlier struct {
	Parameter       string  `json:"parameter"`
	Value           float64 `json:"value"`
	ExpectedRange   Band    `json:"expectedRange"` // the typical range used
	Deviation       float64 `json:"deviation"`     // z-score-like deviation
	TailProbability float64 `json:"tailProbability"`
}

// CorrelationIssue describes a violated cross-parameter correlation rule.
type CorrelationIssue struct {
	Parameters          []string `json:"parameters"`
	Description         string   `json:"description"`
	ExpectedCorrelation string   `json:"expectedCorrelation"`
}

// StatisticalAnalysis aggregates the statistical pass.
type StatisticalAnalysis struct {
	Outliers          []Outlier          `json:"outliers"`
	CorrelationIssues []CorrelationIssue `json:"correlationIssues"`
	ConsistencyScore  float64            `json:"consistencyScore"` // 0-1
	MeanDeviation     float64            `json:"meanDeviation"`
	MaxDeviation      float64            `json:"maxDeviation"`
}

// ValidationResult is the engine's single output.
// INVARIANTS:
// - Confidence is monotonically non-increasing as issues accumulate
// - Issues and Anomalies preserve insertion order
type ValidationResult struct {
	Valid               bool                 `json:"valid"`
	Confidence          float64              `json:"confidence"` // 0-1
	Issues              []ValidationIssue    `json:"issues"`
	Anomalies           []SoilAnomaly        `json:"anomalies"`
	Recommendations     []string             `json:"recommendations"`
	StatisticalAnalysis *StatisticalAnalysis `json:"statisticalAnalysis,omitempty"`
}

// HasSeverity reports whether any issue carries the given severity.
func (r *ValidationResult) HasSeverity(s Severity) bool {
	for _, issue := range r.Issues {
		if issue.Severity == s {
			return true
		}
	}
	return false
}
