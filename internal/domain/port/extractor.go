package port

import (
	"context"
	"image"

	"cookie-inspector/internal/domain/entity"
)

// FeatureExtractor computes gradient-magnitude statistics for detected blobs.
type FeatureExtractor interface {
	// Extract returns exactly one feature row per blob, in input order.
	// Callers must not pass an empty blob set.
	Extract(ctx context.Context, img image.Image, blobs []entity.Blob) ([]entity.FeatureVector, error)
}
