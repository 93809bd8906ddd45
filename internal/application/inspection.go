package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

var (
	// ErrNoBlobs is returned when an image contains no cookie-sized
	// regions. Callers log it and move on to the next image.
	ErrNoBlobs = errors.New("no blobs detected")

	// ErrNotTrained is returned when inspection runs before a
	// successful training pass.
	ErrNotTrained = errors.New("classifier is not trained")
)

// InspectionService classifies the cookies in one image and renders the
// pass/fail overlay.
type InspectionService struct {
	detector   port.BlobDetector
	extractor  port.FeatureExtractor
	classifier port.Classifier
	annotator  port.Annotator
}

// InspectionOutput holds the verdicts plus the encoded overlay image.
type InspectionOutput struct {
	Verdict *entity.ImageVerdict
	Overlay []byte
}

// NewInspectionService wires the inspection pipeline.
func NewInspectionService(detector port.BlobDetector, extractor port.FeatureExtractor, classifier port.Classifier, annotator port.Annotator) *InspectionService {
	return &InspectionService{
		detector:   detector,
		extractor:  extractor,
		classifier: classifier,
		annotator:  annotator,
	}
}

// Inspect runs detect → extract → predict → annotate for one image.
// Zero detected blobs short-circuits with ErrNoBlobs before feature
// extraction or classification are invoked.
func (s *InspectionService) Inspect(ctx context.Context, img image.Image) (*InspectionOutput, error) {
	if !s.classifier.Trained() {
		return nil, ErrNotTrained
	}

	blobs, err := s.detector.Detect(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	if len(blobs) == 0 {
		return nil, ErrNoBlobs
	}

	features, err := s.extractor.Extract(ctx, img, blobs)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	labels, err := s.classifier.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	bounds := img.Bounds()
	verdict := &entity.ImageVerdict{
		ImageWidth:  bounds.Dx(),
		ImageHeight: bounds.Dy(),
		Blobs:       make([]entity.BlobVerdict, len(blobs)),
	}
	for i, b := range blobs {
		verdict.Blobs[i] = entity.BlobVerdict{Blob: b, Label: labels[i]}
	}

	overlay, err := s.annotator.Annotate(img, verdict)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	return &InspectionOutput{Verdict: verdict, Overlay: overlay}, nil
}
