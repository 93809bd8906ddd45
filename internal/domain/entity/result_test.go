package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfusionMatrix_Accuracy(t *testing.T) {
	var m ConfusionMatrix
	m.Add(LabelNotFlipped, LabelNotFlipped)
	m.Add(LabelNotFlipped, LabelNotFlipped)
	m.Add(LabelNotFlipped, LabelFlipped)
	m.Add(LabelFlipped, LabelFlipped)

	require.Equal(t, 4, m.Total())
	require.Equal(t, 2, m.Count(LabelNotFlipped, LabelNotFlipped))
	require.Equal(t, 1, m.Count(LabelNotFlipped, LabelFlipped))
	require.Equal(t, 1, m.Count(LabelFlipped, LabelFlipped))
	require.InDelta(t, 0.75, m.Accuracy(), 1e-9)
}

func TestConfusionMatrix_Empty(t *testing.T) {
	var m ConfusionMatrix
	require.Equal(t, 0, m.Total())
	require.Equal(t, 0.0, m.Accuracy())
}

func TestImageVerdict_Pass(t *testing.T) {
	v := ImageVerdict{Blobs: []BlobVerdict{
		{Label: LabelNotFlipped},
		{Label: LabelNotFlipped},
	}}
	require.True(t, v.Pass())
	require.Equal(t, 0, v.FlippedCount())

	v.Blobs = append(v.Blobs, BlobVerdict{Label: LabelFlipped})
	require.False(t, v.Pass())
	require.Equal(t, 1, v.FlippedCount())
}

func TestBlobCenter(t *testing.T) {
	b := Blob{X: 10, Y: 20, Width: 8, Height: 6}
	x, y := b.Center()
	require.Equal(t, 14, x)
	require.Equal(t, 23, y)
}
