package validation

import (
	"soilsense/domain/soil"
)

// Recommendation strings surfaced verbatim to the advisory layer. Ordering
// of the synthesis rules is part of the contract.
const (
	recCriticalRetest    = "Critical issues detected in soil data. Retest the affected parameters before acting on this report."
	recCriticalEquipment = "Verify testing equipment and sample collection procedure before retesting."
	recErrorVerify       = "Some readings appear inaccurate. Verify the reported values against the original lab report."
	recErrorRetest       = "Consider retesting the parameters flagged with errors."
	recManyWarnings      = "Multiple readings fall outside typical ranges. Review recent soil management practices."
	recAnomalyCauses     = "Investigate possible causes of the detected anomalies before applying amendments."
	recAnomalyExpert     = "Consult a soil testing expert to interpret the anomalous readings."
	recPHCalibration     = "Verify pH meter calibration; pH affects the interpretation of most other parameters."
	recFertilizerRecords = "Review fertilizer application records; multiple macronutrient readings look inconsistent."
	recAllClear          = "Soil data appears reasonable and internally consistent."
)

// synthesizeRecommendations derives the ordered recommendation list from the
// accumulated issues and anomalies.
func synthesizeRecommendations(result *soil.ValidationResult) []string {
	recs := []string{}

	var criticalCount, errorCount, warningCount int
	var phIssue bool
	var macroIssues int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case soil.SeverityCritical:
			criticalCount++
		case soil.SeverityError:
			errorCount++
		case soil.SeverityWarning:
			warningCount++
		}
		if issue.Parameter == soil.ParamPH {
			phIssue = true
		}
		switch issue.Parameter {
		case soil.ParamNitrogen, soil.ParamPhosphorus, soil.ParamPotassium:
			macroIssues++
		}
	}

	if criticalCount > 0 {
		recs = append(recs, recCriticalRetest, recCriticalEquipment)
	}
	if errorCount > 0 {
		recs = append(recs, recErrorVerify, recErrorRetest)
	}
	if warningCount > 2 {
		recs = append(recs, recManyWarnings)
	}

	for _, anomaly := range result.Anomalies {
		if anomaly.Severity == soil.AnomalyHigh {
			recs = append(recs, recAnomalyCauses, recAnomalyExpert)
			break
		}
	}

	if phIssue {
		recs = append(recs, recPHCalibration)
	}
	if macroIssues > 1 {
		recs = append(recs, recFertilizerRecords)
	}

	if len(recs) == 0 {
		recs = append(recs, recAllClear)
	}
	return recs
}
