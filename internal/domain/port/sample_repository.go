package port

import (
	"context"

	"cookie-inspector/internal/domain/entity"
)

// SampleRepository stores the accumulated training samples. Samples are
// only ever appended, never removed.
type SampleRepository interface {
	// Append adds one batch of labeled samples.
	Append(ctx context.Context, samples []entity.LabeledSample) error

	// All returns every stored sample in append order.
	All(ctx context.Context) ([]entity.LabeledSample, error)

	// Len returns the number of stored samples.
	Len(ctx context.Context) (int, error)
}
