// Package ports holds the interfaces that decouple the engine from the
// layers consuming it.
package ports

import (
	"context"

	"soilsense/domain/soil"
)

// SoilValidator is the engine's call contract, consumed by the report
// assembler, the batch processor, and the HTTP surface.
type SoilValidator interface {
	ValidateSoilData(ctx context.Context, nutrients *soil.SoilNutrients, micronutrients *soil.Micronutrients, opts *soil.ValidationOptions) (*soil.ValidationResult, error)
}

// RecordReader ingests soil-test records from an external source such as a
// lab report sheet.
type RecordReader interface {
	ReadRecords() ([]soil.SoilRecord, error)
}
