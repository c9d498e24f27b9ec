package validation

import (
	"strings"
	"testing"

	"soilsense/domain/soil"
)

func TestNegativeValueGuard(t *testing.T) {
	engine := NewEngine()
	opts := soil.DefaultOptions()

	names := []string{
		soil.ParamNitrogen, soil.ParamPhosphorus, soil.ParamPotassium,
		soil.ParamOrganicCarbon, soil.ParamElectricalConductivity,
		soil.ParamZinc, soil.ParamIron, soil.ParamManganese,
		soil.ParamCopper, soil.ParamBoron, soil.ParamSulfur,
	}
	for _, name := range names {
		finding := engine.validateSingleParameter(param(name, -1), name, &opts)
		if finding.issue == nil || finding.anomaly == nil {
			t.Fatalf("%s = -1 should produce both an issue and an anomaly", name)
		}
		if finding.issue.Severity != soil.SeverityCritical {
			t.Errorf("%s severity = %s, want critical", name, finding.issue.Severity)
		}
		if !strings.Contains(finding.issue.Issue, "Negative value detected") {
			t.Errorf("%s issue = %q, want a negative-value message", name, finding.issue.Issue)
		}
		if finding.anomaly.Severity != soil.AnomalyHigh {
			t.Errorf("%s anomaly severity = %s, want high", name, finding.anomaly.Severity)
		}
		if len(finding.issue.PossibleCauses) == 0 {
			t.Errorf("%s issue should list possible causes", name)
		}
	}
}

func TestPHExemptFromNegativeGuard(t *testing.T) {
	engine := NewEngine()
	opts := soil.DefaultOptions()

	// A negative pH is still outside the absolute range (3-11), so it falls
	// through to the absolute-range tier rather than the negative tier.
	finding := engine.validateSingleParameter(param(soil.ParamPH, -1), soil.ParamPH, &opts)
	if finding.issue == nil {
		t.Fatal("negative pH should still produce an issue")
	}
	if strings.Contains(finding.issue.Issue, "Negative value detected") {
		t.Error("pH must not be flagged by the negative-value tier")
	}
	if finding.issue.Severity != soil.SeverityError {
		t.Errorf("severity = %s, want error (absolute-range tier)", finding.issue.Severity)
	}
}

func TestRangeTiering(t *testing.T) {
	engine := NewEngine()

	opts := soil.DefaultOptions()
	finding := engine.validateSingleParameter(param(soil.ParamNitrogen, 1200), soil.ParamNitrogen, &opts)
	if finding.issue == nil || finding.issue.Severity != soil.SeverityError {
		t.Errorf("nitrogen 1200 without strict mode: got %+v, want error severity", finding.issue)
	}
	if finding.anomaly == nil || finding.anomaly.Severity != soil.AnomalyHigh {
		t.Errorf("nitrogen 1200 should carry a high-severity anomaly")
	}

	opts.StrictMode = true
	finding = engine.validateSingleParameter(param(soil.ParamNitrogen, 1200), soil.ParamNitrogen, &opts)
	if finding.issue == nil || finding.issue.Severity != soil.SeverityCritical {
		t.Errorf("nitrogen 1200 in strict mode: got %+v, want critical severity", finding.issue)
	}

	opts.StrictMode = false
	finding = engine.validateSingleParameter(param(soil.ParamNitrogen, 600), soil.ParamNitrogen, &opts)
	if finding.issue == nil || finding.issue.Severity != soil.SeverityWarning {
		t.Errorf("nitrogen 600: got %+v, want warning severity", finding.issue)
	}
	if finding.issue.Confidence != 0.7 {
		t.Errorf("atypical tier confidence = %v, want 0.7", finding.issue.Confidence)
	}
	if finding.anomaly == nil || finding.anomaly.Severity != soil.AnomalyMedium {
		t.Errorf("nitrogen 600 should carry a medium-severity anomaly")
	}

	finding = engine.validateSingleParameter(param(soil.ParamNitrogen, 245), soil.ParamNitrogen, &opts)
	if finding.issue != nil || finding.anomaly != nil {
		t.Errorf("nitrogen 245 should be clean, got %+v", finding)
	}
}

func TestDirectionAwareMessages(t *testing.T) {
	engine := NewEngine()
	opts := soil.DefaultOptions()

	low := engine.validateSingleParameter(param(soil.ParamPH, 2.5), soil.ParamPH, &opts)
	if low.anomaly == nil || !strings.Contains(low.anomaly.Description, "extremely low") {
		t.Errorf("pH 2.5 anomaly = %+v, want description containing 'extremely low'", low.anomaly)
	}

	high := engine.validateSingleParameter(param(soil.ParamPH, 12), soil.ParamPH, &opts)
	if high.anomaly == nil || !strings.Contains(high.anomaly.Description, "extremely high") {
		t.Errorf("pH 12 anomaly = %+v, want description containing 'extremely high'", high.anomaly)
	}
}
