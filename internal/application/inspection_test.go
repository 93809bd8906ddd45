package app

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/infrastructure/ml"
)

// fakeAnnotator records the verdict it was asked to draw.
type fakeAnnotator struct {
	calls int
	last  *entity.ImageVerdict
}

func (f *fakeAnnotator) Annotate(img image.Image, verdict *entity.ImageVerdict) ([]byte, error) {
	f.calls++
	f.last = verdict
	return []byte("overlay"), nil
}

func trainedKNN(t *testing.T) *ml.KNN {
	t.Helper()
	c := ml.NewKNN(1)
	require.NoError(t, c.Train([]entity.LabeledSample{
		{Features: entity.FeatureVector{1, 11, 6, 0.5}, Label: entity.LabelNotFlipped},
		{Features: entity.FeatureVector{100, 120, 110, 5}, Label: entity.LabelFlipped},
	}))
	return c
}

func TestInspectionService_Inspect(t *testing.T) {
	detector := &fakeDetector{blobsPerImage: 2}
	extractor := &fakeExtractor{base: 1}
	annotator := &fakeAnnotator{}
	svc := NewInspectionService(detector, extractor, trainedKNN(t), annotator)

	img := image.NewGray(image.Rect(0, 0, 640, 480))
	out, err := svc.Inspect(context.Background(), img)
	require.NoError(t, err)
	require.Equal(t, []byte("overlay"), out.Overlay)
	require.Equal(t, 640, out.Verdict.ImageWidth)
	require.Equal(t, 480, out.Verdict.ImageHeight)

	// One verdict per blob, in detection order.
	require.Len(t, out.Verdict.Blobs, 2)
	require.Equal(t, 0, out.Verdict.Blobs[0].Blob.X)
	require.Equal(t, 10, out.Verdict.Blobs[1].Blob.X)
	require.Equal(t, 1, annotator.calls)

	// Features near the face-up training sample classify as OK.
	require.True(t, out.Verdict.Pass())
}

func TestInspectionService_NoBlobsShortCircuits(t *testing.T) {
	detector := &fakeDetector{blobsPerImage: 0}
	extractor := &fakeExtractor{}
	annotator := &fakeAnnotator{}
	svc := NewInspectionService(detector, extractor, trainedKNN(t), annotator)

	_, err := svc.Inspect(context.Background(), image.NewGray(image.Rect(0, 0, 64, 64)))
	require.ErrorIs(t, err, ErrNoBlobs)
	require.Equal(t, 1, detector.calls)
	require.Equal(t, 0, extractor.calls)
	require.Equal(t, 0, annotator.calls)
}

func TestInspectionService_UntrainedClassifier(t *testing.T) {
	detector := &fakeDetector{blobsPerImage: 1}
	svc := NewInspectionService(detector, &fakeExtractor{}, ml.NewKNN(1), &fakeAnnotator{})

	_, err := svc.Inspect(context.Background(), image.NewGray(image.Rect(0, 0, 64, 64)))
	require.ErrorIs(t, err, ErrNotTrained)
	require.Equal(t, 0, detector.calls)
}
