// Package batch validates many soil records concurrently. Each validation
// is independent pure computation, so records fan out across a bounded
// worker group.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"soilsense/domain/soil"
	"soilsense/internal"
	"soilsense/ports"
)

// Item is the outcome for one record. Err is non-nil only for contract
// errors (nil nutrients/micronutrients); validation findings live in Result.
type Item struct {
	Record soil.SoilRecord        `json:"record"`
	Result *soil.ValidationResult `json:"result,omitempty"`
	Err    error                  `json:"-"`
}

// Processor runs batched validations.
type Processor struct {
	validator ports.SoilValidator
	workers   int
	logger    *internal.Logger
}

// NewProcessor creates a batch processor with the given worker limit.
func NewProcessor(validator ports.SoilValidator, workers int) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		validator: validator,
		workers:   workers,
		logger:    internal.NewDefaultLogger(),
	}
}

// ValidateAll validates every record and returns one item per record in
// input order. Per-record contract errors are captured on the item rather
// than aborting the batch.
func (p *Processor) ValidateAll(ctx context.Context, records []soil.SoilRecord) ([]Item, error) {
	items := make([]Item, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, record := range records {
		g.Go(func() error {
			result, err := p.validator.ValidateSoilData(gctx, record.Nutrients, record.Micronutrients, record.Options)
			items[i] = Item{Record: record, Result: result, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Info("[Batch] validated %d record(s)", len(records))
	return items, nil
}
