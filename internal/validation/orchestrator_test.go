package validation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soilsense/domain/soil"
	"soilsense/internal/errors"
)

func TestValidateSoilData_CleanReport(t *testing.T) {
	engine := NewEngine()

	result, err := engine.ValidateSoilData(context.Background(), normalNutrients(), normalMicronutrients(), nil)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Greater(t, result.Confidence, 0.7)
	for _, issue := range result.Issues {
		assert.Equal(t, soil.SeverityInfo, issue.Severity, "clean report may only carry informational issues")
	}
}

func TestValidateSoilData_NegativeMacronutrients(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.Nitrogen = param(soil.ParamNitrogen, -50)
	nutrients.Phosphorus = param(soil.ParamPhosphorus, -10)

	result, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), nil)
	require.NoError(t, err)

	assert.False(t, result.Valid)

	criticals := map[string]bool{}
	for _, issue := range result.Issues {
		if issue.Severity == soil.SeverityCritical {
			assert.Contains(t, issue.Issue, "Negative value detected")
			criticals[issue.Parameter] = true
		}
	}
	assert.True(t, criticals[soil.ParamNitrogen])
	assert.True(t, criticals[soil.ParamPhosphorus])

	high := 0
	for _, anomaly := range result.Anomalies {
		if anomaly.Severity == soil.AnomalyHigh {
			high++
		}
	}
	assert.GreaterOrEqual(t, high, 2)
}

func TestValidateSoilData_ImpossiblePH(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.PH = param(soil.ParamPH, 2.5)

	result, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), nil)
	require.NoError(t, err)

	assert.False(t, result.Valid)

	found := false
	for _, anomaly := range result.Anomalies {
		if anomaly.Parameter == soil.ParamPH && anomaly.Severity == soil.AnomalyHigh {
			assert.Contains(t, anomaly.Description, "extremely")
			found = true
		}
	}
	assert.True(t, found, "expected a high-severity pH anomaly")
}

func TestValidateSoilData_ImbalancedNPRatio(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.Nitrogen = param(soil.ParamNitrogen, 500)
	nutrients.Phosphorus = param(soil.ParamPhosphorus, 5)

	result, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), nil)
	require.NoError(t, err)

	found := false
	for _, issue := range result.Issues {
		if issue.Parameter == "N:P ratio" {
			assert.Contains(t, issue.Issue, "Imbalanced nitrogen to phosphorus ratio")
			found = true
		}
	}
	assert.True(t, found, "expected an N:P ratio issue")
}

func TestValidateSoilData_AlkalineDeficientMicronutrients(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.PH = param(soil.ParamPH, 8.5)
	micro := normalMicronutrients()
	micro.Zinc.Status = soil.StatusDeficient
	micro.Iron.Status = soil.StatusDeficient

	result, err := engine.ValidateSoilData(context.Background(), nutrients, micro, nil)
	require.NoError(t, err)

	found := false
	for _, issue := range result.Issues {
		if issue.Parameter == "pH-micronutrient relationship" {
			assert.Contains(t, issue.Issue, soil.ParamZinc)
			assert.Contains(t, issue.Issue, soil.ParamIron)
			found = true
		}
	}
	assert.True(t, found, "expected a pH-micronutrient issue")
}

func TestValidateSoilData_AridRegionAcidity(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.PH = param(soil.ParamPH, 5.5)
	opts := soil.DefaultOptions()
	opts.Location = &soil.Location{State: "Rajasthan"}

	result, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), &opts)
	require.NoError(t, err)

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Suggestion, "arid region") {
			found = true
		}
	}
	assert.True(t, found, "expected an arid-region acidity issue")
}

func TestValidateSoilData_NilArguments(t *testing.T) {
	engine := NewEngine()

	_, err := engine.ValidateSoilData(context.Background(), nil, normalMicronutrients(), nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = engine.ValidateSoilData(context.Background(), normalNutrients(), nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestValidateSoilData_Deterministic(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.Nitrogen = param(soil.ParamNitrogen, 600)
	nutrients.PH = param(soil.ParamPH, 9.2)

	first, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), nil)
	require.NoError(t, err)
	second, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestValidateSoilData_ConfidenceMonotonicity(t *testing.T) {
	engine := NewEngine()

	clean, err := engine.ValidateSoilData(context.Background(), normalNutrients(), normalMicronutrients(), nil)
	require.NoError(t, err)

	oneBad := normalNutrients()
	oneBad.Nitrogen = param(soil.ParamNitrogen, 600)
	withOne, err := engine.ValidateSoilData(context.Background(), oneBad, normalMicronutrients(), nil)
	require.NoError(t, err)

	twoBad := normalNutrients()
	twoBad.Nitrogen = param(soil.ParamNitrogen, 600)
	twoBad.PH = param(soil.ParamPH, 9.2)
	withTwo, err := engine.ValidateSoilData(context.Background(), twoBad, normalMicronutrients(), nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, withOne.Confidence, clean.Confidence)
	assert.LessOrEqual(t, withTwo.Confidence, withOne.Confidence)
}

func TestValidateSoilData_ConfidenceThresholdGatesValidity(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.PH = param(soil.ParamPH, 9.2) // atypical warning only

	strictOpts := soil.DefaultOptions()
	strictOpts.ConfidenceThreshold = 0.95

	result, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), &strictOpts)
	require.NoError(t, err)

	assert.False(t, result.HasSeverity(soil.SeverityCritical))
	assert.False(t, result.HasSeverity(soil.SeverityError))
	assert.Less(t, result.Confidence, 0.95)
	assert.False(t, result.Valid)
}

func TestValidateSoilData_StagesCanBeDisabled(t *testing.T) {
	engine := NewEngine()
	nutrients := normalNutrients()
	nutrients.Nitrogen = param(soil.ParamNitrogen, 500)
	nutrients.Phosphorus = param(soil.ParamPhosphorus, 5)

	opts := soil.DefaultOptions()
	opts.EnableStatisticalAnalysis = false
	opts.EnableCrossParameterValidation = false

	result, err := engine.ValidateSoilData(context.Background(), nutrients, normalMicronutrients(), &opts)
	require.NoError(t, err)

	assert.Nil(t, result.StatisticalAnalysis)
	for _, issue := range result.Issues {
		assert.NotEqual(t, "N:P ratio", issue.Parameter)
	}
}
