package port

import (
	"image"

	"cookie-inspector/internal/domain/entity"
)

// Annotator renders a pass/fail overlay on top of the inspected image.
type Annotator interface {
	// Annotate draws each blob's bounding box and verdict caption and
	// returns the encoded overlay image.
	Annotate(img image.Image, verdict *entity.ImageVerdict) ([]byte, error)
}
