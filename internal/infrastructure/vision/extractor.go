//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// Extractor computes per-blob gradient statistics: min, max, mean and
// standard deviation of Sobel gradient magnitude inside the blob mask
// eroded by a fixed margin.
type Extractor struct {
	margin int
}

// NewExtractor creates an extractor with the given erosion margin in pixels.
func NewExtractor(margin int) *Extractor {
	if margin < 0 {
		margin = 0
	}
	return &Extractor{margin: margin}
}

// Extract returns exactly one feature row per blob, in input order.
// Results are deterministic for identical image and blob inputs.
func (e *Extractor) Extract(ctx context.Context, img image.Image, blobs []entity.Blob) ([]entity.FeatureVector, error) {
	_ = ctx

	gray, err := grayMat(img)
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	// Gradient magnitude over the whole image, shared by all blobs.
	gx := gocv.NewMat()
	defer gx.Close()
	gy := gocv.NewMat()
	defer gy.Close()
	gocv.Sobel(gray, &gx, gocv.MatTypeCV32F, 1, 0, 3, 1, 0, gocv.BorderDefault)
	gocv.Sobel(gray, &gy, gocv.MatTypeCV32F, 0, 1, 3, 1, 0, gocv.BorderDefault)

	mag := gocv.NewMat()
	defer mag.Close()
	gocv.Magnitude(gx, gy, &mag)

	features := make([]entity.FeatureVector, len(blobs))
	for i, b := range blobs {
		row, err := e.blobFeatures(mag, b)
		if err != nil {
			return nil, fmt.Errorf("blob %d: %w", i, err)
		}
		features[i] = row
	}
	return features, nil
}

// blobFeatures erodes the blob mask and computes the four statistics over
// the surviving pixels.
func (e *Extractor) blobFeatures(mag gocv.Mat, b entity.Blob) (entity.FeatureVector, error) {
	if b.Mask == nil {
		return nil, fmt.Errorf("blob has no mask")
	}

	mask, err := gocv.ImageGrayToMatGray(b.Mask)
	if err != nil {
		return nil, fmt.Errorf("mask to mat: %w", err)
	}
	defer mask.Close()

	eroded := gocv.NewMat()
	defer eroded.Close()
	if e.margin > 0 {
		side := 2*e.margin + 1
		kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(side, side))
		defer kernel.Close()
		gocv.Erode(mask, &eroded, kernel)
	} else {
		mask.CopyTo(&eroded)
	}

	values := maskedValues(mag, eroded, b)
	if len(values) == 0 {
		// The margin swallowed the whole region; fall back to the raw
		// mask so small blobs still produce a row.
		values = maskedValues(mag, mask, b)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty mask")
	}

	mean, std := stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return entity.FeatureVector{floats.Min(values), floats.Max(values), mean, std}, nil
}

// maskedValues collects gradient magnitudes at the blob's mask pixels.
func maskedValues(mag, mask gocv.Mat, b entity.Blob) []float64 {
	var values []float64
	for yy := 0; yy < b.Height; yy++ {
		for xx := 0; xx < b.Width; xx++ {
			if mask.GetUCharAt(yy, xx) == 0 {
				continue
			}
			iy, ix := b.Y+yy, b.X+xx
			if iy < 0 || iy >= mag.Rows() || ix < 0 || ix >= mag.Cols() {
				continue
			}
			values = append(values, float64(mag.GetFloatAt(iy, ix)))
		}
	}
	return values
}

var _ port.FeatureExtractor = (*Extractor)(nil)
