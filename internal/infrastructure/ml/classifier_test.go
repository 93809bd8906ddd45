package ml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// trainingSamples is a small, cleanly separable set: face-up cookies have
// low gradient statistics, flipped ones high.
func trainingSamples() []entity.LabeledSample {
	return []entity.LabeledSample{
		{Features: entity.FeatureVector{1.0, 20.0, 8.0, 2.0}, Label: entity.LabelNotFlipped},
		{Features: entity.FeatureVector{1.5, 22.0, 9.0, 2.5}, Label: entity.LabelNotFlipped},
		{Features: entity.FeatureVector{0.5, 18.0, 7.5, 1.8}, Label: entity.LabelNotFlipped},
		{Features: entity.FeatureVector{2.0, 21.0, 8.5, 2.2}, Label: entity.LabelNotFlipped},
		{Features: entity.FeatureVector{9.0, 90.0, 40.0, 15.0}, Label: entity.LabelFlipped},
		{Features: entity.FeatureVector{8.5, 85.0, 38.0, 14.0}, Label: entity.LabelFlipped},
		{Features: entity.FeatureVector{10.0, 95.0, 42.0, 16.0}, Label: entity.LabelFlipped},
		{Features: entity.FeatureVector{9.5, 88.0, 39.0, 15.5}, Label: entity.LabelFlipped},
	}
}

func allClassifiers(t *testing.T) map[string]port.Classifier {
	t.Helper()
	return map[string]port.Classifier{
		"svm":   NewSVM(100, 0.01),
		"knn":   NewKNN(3),
		"bayes": NewBayes(1e-9),
	}
}

func TestClassifiers_SeparateTrainingData(t *testing.T) {
	samples := trainingSamples()
	for name, c := range allClassifiers(t) {
		t.Run(name, func(t *testing.T) {
			require.False(t, c.Trained())
			require.NoError(t, c.Train(samples))
			require.True(t, c.Trained())

			features := make([]entity.FeatureVector, len(samples))
			for i, s := range samples {
				features[i] = s.Features
			}
			labels, err := c.Predict(features)
			require.NoError(t, err)
			require.Len(t, labels, len(samples))
			for i, s := range samples {
				require.Equal(t, s.Label, labels[i], "sample %d", i)
			}
		})
	}
}

// A single-row predict must agree with the same row embedded in a batch.
func TestClassifiers_SingleRowMatchesBatch(t *testing.T) {
	samples := trainingSamples()
	probe := entity.FeatureVector{5.0, 55.0, 25.0, 9.0}
	batch := []entity.FeatureVector{
		samples[0].Features,
		probe,
		samples[5].Features,
	}

	for name, c := range allClassifiers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Train(samples))

			single, err := c.Predict([]entity.FeatureVector{probe})
			require.NoError(t, err)
			require.Len(t, single, 1)

			multi, err := c.Predict(batch)
			require.NoError(t, err)
			require.Len(t, multi, 3)
			require.Equal(t, single[0], multi[1])
		})
	}
}

func TestClassifiers_PredictBeforeTrain(t *testing.T) {
	for name, c := range allClassifiers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Predict([]entity.FeatureVector{{1, 2, 3, 4}})
			require.ErrorIs(t, err, ErrNotTrained)
		})
	}
}

func TestClassifiers_TrainFailures(t *testing.T) {
	singleClass := []entity.LabeledSample{
		{Features: entity.FeatureVector{1, 2, 3, 4}, Label: entity.LabelNotFlipped},
		{Features: entity.FeatureVector{2, 3, 4, 5}, Label: entity.LabelNotFlipped},
	}

	for name, c := range allClassifiers(t) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, c.Train(nil), ErrNoSamples)
			require.ErrorIs(t, c.Train(singleClass), ErrSingleClass)
			require.False(t, c.Trained())

			badWidth := []entity.LabeledSample{
				{Features: entity.FeatureVector{1, 2}, Label: entity.LabelNotFlipped},
				{Features: entity.FeatureVector{2, 3, 4, 5}, Label: entity.LabelFlipped},
			}
			require.Error(t, c.Train(badWidth))
			require.False(t, c.Trained())
		})
	}
}

func TestClassifiers_Deterministic(t *testing.T) {
	samples := trainingSamples()
	probe := []entity.FeatureVector{{4.0, 50.0, 20.0, 8.0}}

	for name := range allClassifiers(t) {
		t.Run(name, func(t *testing.T) {
			first := allClassifiers(t)[name]
			second := allClassifiers(t)[name]
			require.NoError(t, first.Train(samples))
			require.NoError(t, second.Train(samples))

			a, err := first.Predict(probe)
			require.NoError(t, err)
			b, err := second.Predict(probe)
			require.NoError(t, err)
			require.Equal(t, a, b)
		})
	}
}

func TestNew_Factory(t *testing.T) {
	opts := DefaultOptions()
	for _, kind := range []Kind{KindSVM, KindKNN, KindBayes} {
		c, err := New(kind, opts)
		require.NoError(t, err)
		require.NotNil(t, c)
	}

	_, err := New(Kind("forest"), opts)
	require.Error(t, err)
}
