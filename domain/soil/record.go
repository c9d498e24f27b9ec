package soil

// SoilRecord is one soil-test record ready for validation: the measurements
// plus the per-record context used by the contextual validators. Records are
// produced by ingestion (report parsing, API request decoding) and consumed
// by the engine and the batch processor.
type SoilRecord struct {
	FieldID        string             `json:"fieldId,omitempty"`
	Nutrients      *SoilNutrients     `json:"nutrients"`
	Micronutrients *Micronutrients    `json:"micronutrients"`
	Options        *ValidationOptions `json:"options,omitempty"`
}
