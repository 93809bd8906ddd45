//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// Options tunes the blob detector.
type Options struct {
	ThresholdLow  float64 // lower bound of the foreground intensity range
	ThresholdHigh float64 // upper bound of the foreground intensity range
	MinArea       int     // smallest accepted blob, in pixels
	MaxArea       int     // largest accepted blob, in pixels
}

// DefaultOptions matches the conveyor demo setup: dark cookies on a
// bright belt, cookie-sized regions only.
func DefaultOptions() Options {
	return Options{
		ThresholdLow:  0,
		ThresholdHigh: 200,
		MinArea:       15000,
		MaxArea:       300000,
	}
}

// Detector finds cookie blobs with OpenCV: threshold at a fixed
// intensity range, fill interior holes, keep connected components whose
// area falls inside the configured range.
type Detector struct {
	opts Options
}

// NewDetector creates a detector with the given options.
func NewDetector(opts Options) *Detector {
	return &Detector{opts: opts}
}

// Detect returns zero or more blobs; zero is a valid outcome.
func (d *Detector) Detect(ctx context.Context, img image.Image) ([]entity.Blob, error) {
	_ = ctx

	gray, err := grayMat(img)
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	// Binarize at the fixed intensity range.
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.InRangeWithScalar(gray,
		gocv.NewScalar(d.opts.ThresholdLow, 0, 0, 0),
		gocv.NewScalar(d.opts.ThresholdHigh, 0, 0, 0),
		&mask)

	// Fill interior holes by repainting the external contours solid.
	filled := gocv.NewMatWithSize(mask.Rows(), mask.Cols(), gocv.MatTypeCV8U)
	defer filled.Close()
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < contours.Size(); i++ {
		gocv.DrawContours(&filled, contours, i, white, -1)
	}

	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()
	count := gocv.ConnectedComponentsWithStats(filled, &labels, &stats, &centroids)

	var blobs []entity.Blob
	for i := 1; i < count; i++ { // component 0 is the background
		area := int(stats.GetIntAt(i, int(gocv.CCStatArea)))
		if area < d.opts.MinArea || area > d.opts.MaxArea {
			continue
		}

		x := int(stats.GetIntAt(i, int(gocv.CCStatLeft)))
		y := int(stats.GetIntAt(i, int(gocv.CCStatTop)))
		w := int(stats.GetIntAt(i, int(gocv.CCStatWidth)))
		h := int(stats.GetIntAt(i, int(gocv.CCStatHeight)))

		crop := image.NewGray(image.Rect(0, 0, w, h))
		for yy := 0; yy < h; yy++ {
			for xx := 0; xx < w; xx++ {
				if int(labels.GetIntAt(y+yy, x+xx)) == i {
					crop.SetGray(xx, yy, color.Gray{Y: 255})
				}
			}
		}

		blobs = append(blobs, entity.Blob{
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
			Area:   area,
			Mask:   crop,
		})
	}

	return blobs, nil
}

// grayMat converts any image into a single-channel 8-bit Mat.
func grayMat(img image.Image) (gocv.Mat, error) {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer rgb.Close()

	if rgb.Empty() {
		return gocv.NewMat(), errors.New("empty image")
	}

	gray := gocv.NewMat()
	gocv.CvtColor(rgb, &gray, gocv.ColorRGBToGray)
	return gray, nil
}

var _ port.BlobDetector = (*Detector)(nil)
