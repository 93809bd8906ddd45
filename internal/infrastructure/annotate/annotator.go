// Package annotate renders pass/fail overlays without OpenCV, so demo
// output works in every build.
package annotate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

var (
	passColor = color.RGBA{G: 200, A: 255}
	failColor = color.RGBA{R: 220, A: 255}
)

// Annotator draws verdict boxes and captions onto a copy of the image
// and encodes the result as JPEG.
type Annotator struct {
	thickness int
}

// NewAnnotator creates an annotator with the given box line thickness.
func NewAnnotator(thickness int) *Annotator {
	if thickness < 1 {
		thickness = 3
	}
	return &Annotator{thickness: thickness}
}

// Annotate draws one box per blob: green "OK" for face-up cookies, red
// "FLIPPED" otherwise.
func (a *Annotator) Annotate(img image.Image, verdict *entity.ImageVerdict) ([]byte, error) {
	if verdict == nil {
		return nil, fmt.Errorf("nil verdict")
	}

	canvas := image.NewRGBA(img.Bounds())
	draw.Draw(canvas, canvas.Bounds(), img, img.Bounds().Min, draw.Src)

	for _, bv := range verdict.Blobs {
		col := passColor
		if bv.Label != entity.LabelNotFlipped {
			col = failColor
		}
		a.drawBox(canvas, bv.Blob.Bounds(), col)
		a.drawCaption(canvas, bv.Blob, bv.Label.String(), col)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode overlay: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBox paints a rectangle outline of the configured thickness.
func (a *Annotator) drawBox(canvas *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(canvas.Bounds())
	for t := 0; t < a.thickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			canvas.SetRGBA(x, clampY(canvas, r.Min.Y+t), col)
			canvas.SetRGBA(x, clampY(canvas, r.Max.Y-1-t), col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			canvas.SetRGBA(clampX(canvas, r.Min.X+t), y, col)
			canvas.SetRGBA(clampX(canvas, r.Max.X-1-t), y, col)
		}
	}
}

// drawCaption writes the verdict above the blob's box.
func (a *Annotator) drawCaption(canvas *image.RGBA, b entity.Blob, text string, col color.RGBA) {
	y := b.Y - 5
	if y < basicfont.Face7x13.Height {
		y = b.Y + b.Height + basicfont.Face7x13.Height
	}
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.X, y),
	}
	d.DrawString(text)
}

func clampX(canvas *image.RGBA, x int) int {
	if x < canvas.Bounds().Min.X {
		return canvas.Bounds().Min.X
	}
	if x >= canvas.Bounds().Max.X {
		return canvas.Bounds().Max.X - 1
	}
	return x
}

func clampY(canvas *image.RGBA, y int) int {
	if y < canvas.Bounds().Min.Y {
		return canvas.Bounds().Min.Y
	}
	if y >= canvas.Bounds().Max.Y {
		return canvas.Bounds().Max.Y - 1
	}
	return y
}

var _ port.Annotator = (*Annotator)(nil)
