package ml

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// KNN classifies by majority vote over the k nearest training samples,
// using Euclidean distance in feature space.
type KNN struct {
	k       int
	samples []entity.LabeledSample
	trained bool
}

// NewKNN creates an untrained kNN classifier. k values below 1 fall back to 3.
func NewKNN(k int) *KNN {
	if k < 1 {
		k = 3
	}
	return &KNN{k: k}
}

// Train stores a copy of the sample set.
func (c *KNN) Train(samples []entity.LabeledSample) error {
	if err := checkSamples(samples); err != nil {
		return err
	}

	c.samples = make([]entity.LabeledSample, len(samples))
	copy(c.samples, samples)
	c.trained = true
	return nil
}

// Predict returns the majority label among the k nearest neighbors of each row.
// Ties go to the lower label value so results are deterministic.
func (c *KNN) Predict(features []entity.FeatureVector) ([]entity.Label, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}
	if err := checkFeatures(features); err != nil {
		return nil, err
	}

	labels := make([]entity.Label, len(features))
	for i, f := range features {
		labels[i] = c.predictOne(f)
	}
	return labels, nil
}

// Trained reports whether Train has succeeded.
func (c *KNN) Trained() bool {
	return c.trained
}

type neighbor struct {
	dist  float64
	label entity.Label
}

func (c *KNN) predictOne(f entity.FeatureVector) entity.Label {
	neighbors := make([]neighbor, len(c.samples))
	for i, s := range c.samples {
		neighbors[i] = neighbor{
			dist:  floats.Distance(f, s.Features, 2),
			label: s.Label,
		}
	}

	// Stable sort keeps equidistant neighbors in training-set order.
	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].dist < neighbors[b].dist
	})

	k := c.k
	if k > len(neighbors) {
		k = len(neighbors)
	}

	votes := map[entity.Label]int{}
	for _, n := range neighbors[:k] {
		votes[n.label]++
	}

	if votes[entity.LabelFlipped] > votes[entity.LabelNotFlipped] {
		return entity.LabelFlipped
	}
	return entity.LabelNotFlipped
}

var _ port.Classifier = (*KNN)(nil)
