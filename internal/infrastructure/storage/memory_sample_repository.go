package storage

import (
	"context"
	"sync"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// MemorySampleRepository is an in-memory, append-only store of labeled
// training samples.
type MemorySampleRepository struct {
	mu      sync.RWMutex
	samples []entity.LabeledSample
}

// NewMemorySampleRepository creates an empty repository.
func NewMemorySampleRepository() *MemorySampleRepository {
	return &MemorySampleRepository{}
}

// Append adds one batch of samples in order.
func (r *MemorySampleRepository) Append(ctx context.Context, samples []entity.LabeledSample) error {
	r.mu.Lock()
	r.samples = append(r.samples, samples...)
	r.mu.Unlock()
	return nil
}

// All returns a copy of every stored sample in append order.
func (r *MemorySampleRepository) All(ctx context.Context) ([]entity.LabeledSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.LabeledSample, len(r.samples))
	copy(out, r.samples)
	return out, nil
}

// Len returns the number of stored samples.
func (r *MemorySampleRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.samples), nil
}

var _ port.SampleRepository = (*MemorySampleRepository)(nil)
