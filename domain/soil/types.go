package soil

// ============================================================================
// ENUMERATIONS (closed sets, serialized as strings)
// ============================================================================

// Severity classifies how serious a validation issue is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// AnomalySeverity classifies suspected data or soil-condition problems.
type AnomalySeverity string

const (
	AnomalyLow    AnomalySeverity = "low"
	AnomalyMedium AnomalySeverity = "medium"
	AnomalyHigh   AnomalySeverity = "high"
)

// ParameterStatus is the agronomic status assigned upstream (OCR/parsing),
// not by this engine. The engine only reads it.
type ParameterStatus string

const (
	StatusDeficient ParameterStatus = "deficient"
	StatusAdequate  ParameterStatus = "adequate"
	StatusOptimal   ParameterStatus = "optimal"
	StatusExcessive ParameterStatus = "excessive"
)

// Season is an Indian agricultural season.
type Season string

const (
	SeasonKharif Season = "kharif"
	SeasonRabi   Season = "rabi"
	SeasonZaid   Season = "zaid"

	// SeasonPostHarvest is outside the declared kharif/rabi/zaid set but the
	// seasonal nitrogen rule compares against this literal. Kept as-is
	// pending product follow-up on the season vocabulary.
	SeasonPostHarvest Season = "post-harvest"
)

// ============================================================================
// MEASUREMENTS
// ============================================================================

// Band is a closed [Min, Max] interval.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// ParameterRange holds the three nested bands for one soil parameter.
// Invariant: Absolute.Min <= Typical.Min <= Optimal.Min <= Optimal.Max <=
// Typical.Max <= Absolute.Max.
type ParameterRange struct {
	Absolute Band `json:"absolute"` // physically possible
	Typical  Band `json:"typical"`  // commonly observed
	Optimal  Band `json:"optimal"`  // agronomically ideal
}

// SoilParameter is one measured value from a soil-test report. It is owned
// by the caller and read-only inside the engine.
type SoilParameter struct {
	Name       string          `json:"name"`
	Value      float64         `json:"value"`
	Unit       string          `json:"unit"`
	Range      ParameterRange  `json:"range"`
	Status     ParameterStatus `json:"status"`
	Confidence float64         `json:"confidence"` // 0-1 measurement trust from upstream
}

// SoilNutrients groups the primary parameters of a soil test. PH, Nitrogen,
// Phosphorus and Potassium are expected on a complete report; all fields may
// be nil when a lab omits them.
type SoilNutrients struct {
	PH                     *SoilParameter `json:"ph,omitempty"`
	Nitrogen               *SoilParameter `json:"nitrogen,omitempty"`
	Phosphorus             *SoilParameter `json:"phosphorus,omitempty"`
	Potassium              *SoilParameter `json:"potassium,omitempty"`
	OrganicCarbon          *SoilParameter `json:"organicCarbon,omitempty"`
	ElectricalConductivity *SoilParameter `json:"electricalConductivity,omitempty"`
}

// Micronutrients groups the trace-element measurements. Any subset may be
// present.
type Micronutrients struct {
	Zinc      *SoilParameter `json:"zinc,omitempty"`
	Iron      *SoilParameter `json:"iron,omitempty"`
	Manganese *SoilParameter `json:"manganese,omitempty"`
	Copper    *SoilParameter `json:"copper,omitempty"`
	Boron     *SoilParameter `json:"boron,omitempty"`
	Sulfur    *SoilParameter `json:"sulfur,omitempty"`
}

// Present returns the micronutrients that were actually measured, keyed by
// display name, in a fixed order.
func (m *Micronutrients) Present() []NamedParameter {
	if m == nil {
		return nil
	}
	var out []NamedParameter
	for _, np := range []NamedParameter{
		{ParamZinc, m.Zinc},
		{ParamIron, m.Iron},
		{ParamManganese, m.Manganese},
		{ParamCopper, m.Copper},
		{ParamBoron, m.Boron},
		{ParamSulfur, m.Sulfur},
	} {
		if np.Parameter != nil {
			out = append(out, np)
		}
	}
	return out
}

// Present returns the primary parameters that were actually measured, in a
// fixed order.
func (n *SoilNutrients) Present() []NamedParameter {
	if n == nil {
		return nil
	}
	var out []NamedParameter
	for _, np := range []NamedParameter{
		{ParamPH, n.PH},
		{ParamNitrogen, n.Nitrogen},
		{ParamPhosphorus, n.Phosphorus},
		{ParamPotassium, n.Potassium},
		{ParamOrganicCarbon, n.OrganicCarbon},
		{ParamElectricalConductivity, n.ElectricalConductivity},
	} {
		if np.Parameter != nil {
			out = append(out, np)
		}
	}
	return out
}

// NamedParameter pairs a catalog display name with a measurement.
type NamedParameter struct {
	Name      string
	Parameter *SoilParameter
}

// Canonical parameter display names used for catalog lookup.
const (
	ParamPH                     = "pH"
	ParamNitrogen               = "Nitrogen"
	ParamPhosphorus             = "Phosphorus"
	ParamPotassium              = "Potassium"
	ParamOrganicCarbon          = "Organic Carbon"
	ParamElectricalConductivity = "Electrical Conductivity"
	ParamZinc                   = "Zinc"
	ParamIron                   = "Iron"
	ParamManganese              = "Manganese"
	ParamCopper                 = "Copper"
	ParamBoron                  = "Boron"
	ParamSulfur                 = "Sulfur"
)

// ============================================================================
// OPTIONS
// ============================================================================

// Location identifies where the soil sample was taken.
type Location struct {
	State    string `json:"state"`
	District string `json:"district"`
	SoilType string `json:"soilType,omitempty"`
}

// ValidationOptions tunes a single validation run.
type ValidationOptions struct {
	StrictMode                     bool    `json:"strictMode"`
	ConfidenceThreshold            float64 `json:"confidenceThreshold"`
	EnableStatisticalAnalysis      bool    `json:"enableStatisticalAnalysis"`
	EnableCrossParameterValidation bool    `json:"enableCrossParameterValidation"`
	// EnableSeasonalValidation is reserved: the seasonal branch is actually
	// gated on Season being set, not on this flag. Kept to match the calling
	// convention; see docs for the open product question.
	EnableSeasonalValidation bool      `json:"enableSeasonalValidation"`
	Location                 *Location `json:"location,omitempty"`
	CropType                 string    `json:"cropType,omitempty"`
	Season                   Season    `json:"season,omitempty"`
}

// DefaultOptions returns the options used when the caller passes nil.
func DefaultOptions() ValidationOptions {
	return ValidationOptions{
		StrictMode:                     false,
		ConfidenceThreshold:            0.7,
		EnableStatisticalAnalysis:      true,
		EnableCrossParameterValidation: true,
		EnableSeasonalValidation:       false,
	}
}
