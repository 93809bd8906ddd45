package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainingSet_AppendAccumulates(t *testing.T) {
	ts := NewTrainingSet()
	require.Equal(t, 0, ts.Len())

	batches := [][]LabeledSample{
		{
			{Features: FeatureVector{1, 2, 3, 4}, Label: LabelNotFlipped},
			{Features: FeatureVector{5, 6, 7, 8}, Label: LabelFlipped},
		},
		{
			{Features: FeatureVector{9, 10, 11, 12}, Label: LabelNotFlipped},
		},
		{},
	}

	want := 0
	for _, batch := range batches {
		ts.Append(batch...)
		want += len(batch)
		require.Equal(t, want, ts.Len())
	}

	// Order is preserved across batches.
	samples := ts.Samples()
	require.Equal(t, FeatureVector{1, 2, 3, 4}, samples[0].Features)
	require.Equal(t, FeatureVector{9, 10, 11, 12}, samples[2].Features)
}

func TestLabel_String(t *testing.T) {
	require.Equal(t, "OK", LabelNotFlipped.String())
	require.Equal(t, "FLIPPED", LabelFlipped.String())
	require.Equal(t, "UNKNOWN", Label(99).String())
}
