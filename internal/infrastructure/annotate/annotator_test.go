package annotate

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/require"

	"cookie-inspector/internal/domain/entity"
)

func TestAnnotator_ProducesDecodableJPEG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 320, 240))
	verdict := &entity.ImageVerdict{
		ImageWidth:  320,
		ImageHeight: 240,
		Blobs: []entity.BlobVerdict{
			{Blob: entity.Blob{X: 20, Y: 30, Width: 100, Height: 80}, Label: entity.LabelNotFlipped},
			{Blob: entity.Blob{X: 180, Y: 60, Width: 90, Height: 90}, Label: entity.LabelFlipped},
		},
	}

	data, err := NewAnnotator(3).Annotate(img, verdict)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 320, decoded.Bounds().Dx())
	require.Equal(t, 240, decoded.Bounds().Dy())
}

func TestAnnotator_BoxAtImageEdge(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 100))
	verdict := &entity.ImageVerdict{
		Blobs: []entity.BlobVerdict{
			// Box touching the top-left corner must not panic.
			{Blob: entity.Blob{X: 0, Y: 0, Width: 50, Height: 40}, Label: entity.LabelFlipped},
		},
	}

	data, err := NewAnnotator(3).Annotate(img, verdict)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestAnnotator_NilVerdict(t *testing.T) {
	_, err := NewAnnotator(3).Annotate(image.NewGray(image.Rect(0, 0, 10, 10)), nil)
	require.Error(t, err)
}
