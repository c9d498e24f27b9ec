package validation

import (
	"soilsense/domain/soil"
)

// param builds a measurement the way the report parser would.
func param(name string, value float64) *soil.SoilParameter {
	return &soil.SoilParameter{
		Name:       name,
		Value:      value,
		Confidence: 1.0,
	}
}

// normalNutrients is a clean report: every reading inside its typical range.
func normalNutrients() *soil.SoilNutrients {
	return &soil.SoilNutrients{
		PH:                     param(soil.ParamPH, 6.8),
		Nitrogen:               param(soil.ParamNitrogen, 245),
		Phosphorus:             param(soil.ParamPhosphorus, 18),
		Potassium:              param(soil.ParamPotassium, 156),
		OrganicCarbon:          param(soil.ParamOrganicCarbon, 0.65),
		ElectricalConductivity: param(soil.ParamElectricalConductivity, 0.45),
	}
}

func normalMicronutrients() *soil.Micronutrients {
	return &soil.Micronutrients{
		Zinc:      param(soil.ParamZinc, 1.5),
		Iron:      param(soil.ParamIron, 15),
		Manganese: param(soil.ParamManganese, 8),
		Copper:    param(soil.ParamCopper, 1.0),
		Boron:     param(soil.ParamBoron, 0.7),
		Sulfur:    param(soil.ParamSulfur, 12),
	}
}
