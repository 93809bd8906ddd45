package port

import (
	"context"
	"image"

	"cookie-inspector/internal/domain/entity"
)

// BlobDetector finds cookie-sized connected regions in a snapshot.
type BlobDetector interface {
	// Detect thresholds the image, fills interior holes and returns the
	// connected components whose area falls inside the configured range.
	// Zero blobs is a valid, non-error outcome.
	Detect(ctx context.Context, img image.Image) ([]entity.Blob, error)
}
