//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// ErrNoGoCV is returned by every vision call in builds without the gocv tag.
var ErrNoGoCV = errors.New("gocv build tag is not enabled")

// Options tunes the blob detector.
type Options struct {
	ThresholdLow  float64 // lower bound of the foreground intensity range
	ThresholdHigh float64 // upper bound of the foreground intensity range
	MinArea       int     // smallest accepted blob, in pixels
	MaxArea       int     // largest accepted blob, in pixels
}

// DefaultOptions matches the conveyor demo setup.
func DefaultOptions() Options {
	return Options{
		ThresholdLow:  0,
		ThresholdHigh: 200,
		MinArea:       15000,
		MaxArea:       300000,
	}
}

// Detector is the no-OpenCV stand-in for the blob detector.
type Detector struct {
	opts Options
}

// NewDetector creates a stub detector.
func NewDetector(opts Options) *Detector {
	return &Detector{opts: opts}
}

// Detect fails in builds without the gocv tag.
func (d *Detector) Detect(ctx context.Context, img image.Image) ([]entity.Blob, error) {
	_ = ctx
	_ = img
	return nil, ErrNoGoCV
}

// Extractor is the no-OpenCV stand-in for the feature extractor.
type Extractor struct {
	margin int
}

// NewExtractor creates a stub extractor.
func NewExtractor(margin int) *Extractor {
	return &Extractor{margin: margin}
}

// Extract fails in builds without the gocv tag.
func (e *Extractor) Extract(ctx context.Context, img image.Image, blobs []entity.Blob) ([]entity.FeatureVector, error) {
	_ = ctx
	_ = img
	_ = blobs
	return nil, ErrNoGoCV
}

var (
	_ port.BlobDetector     = (*Detector)(nil)
	_ port.FeatureExtractor = (*Extractor)(nil)
)
