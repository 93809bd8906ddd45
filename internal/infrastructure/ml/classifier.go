// Package ml provides the trainable cookie-orientation classifiers.
// All three models share the same contract: Train fits once over the
// full sample set, Predict always returns one label per input row.
package ml

import (
	"errors"
	"fmt"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// Kind selects which classifier implementation to build.
type Kind string

const (
	KindSVM   Kind = "svm"
	KindKNN   Kind = "knn"
	KindBayes Kind = "bayes"
)

var (
	// ErrNotTrained is returned by Predict before a successful Train.
	ErrNotTrained = errors.New("classifier is not trained")

	// ErrNoSamples is returned when Train is called with an empty set.
	ErrNoSamples = errors.New("training set is empty")

	// ErrSingleClass is returned when the training set does not contain
	// both classes; a one-sided fit would classify everything the same.
	ErrSingleClass = errors.New("training set contains a single class")
)

// Options tunes the individual classifiers.
type Options struct {
	Neighbors   int     // kNN: number of neighbors, default 3
	Epochs      int     // SVM: SGD passes over the data, default 100
	Lambda      float64 // SVM: regularization strength, default 0.01
	VarianceEps float64 // Bayes: variance floor, default 1e-9
}

// DefaultOptions returns the tuning used by the demo pipeline.
func DefaultOptions() Options {
	return Options{
		Neighbors:   3,
		Epochs:      100,
		Lambda:      0.01,
		VarianceEps: 1e-9,
	}
}

// New builds a classifier of the given kind.
func New(kind Kind, opts Options) (port.Classifier, error) {
	switch kind {
	case KindSVM:
		return NewSVM(opts.Epochs, opts.Lambda), nil
	case KindKNN:
		return NewKNN(opts.Neighbors), nil
	case KindBayes:
		return NewBayes(opts.VarianceEps), nil
	default:
		return nil, fmt.Errorf("unknown classifier kind %q", kind)
	}
}

// checkSamples validates a training set: non-empty, uniform feature width,
// both classes present.
func checkSamples(samples []entity.LabeledSample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}

	var sawNotFlipped, sawFlipped bool
	for i, s := range samples {
		if len(s.Features) != entity.NumFeatures {
			return fmt.Errorf("sample %d has %d features, want %d", i, len(s.Features), entity.NumFeatures)
		}
		switch s.Label {
		case entity.LabelNotFlipped:
			sawNotFlipped = true
		case entity.LabelFlipped:
			sawFlipped = true
		default:
			return fmt.Errorf("sample %d has unknown label %d", i, s.Label)
		}
	}

	if !sawNotFlipped || !sawFlipped {
		return ErrSingleClass
	}
	return nil
}

// checkFeatures validates a prediction batch's feature widths.
func checkFeatures(features []entity.FeatureVector) error {
	for i, f := range features {
		if len(f) != entity.NumFeatures {
			return fmt.Errorf("row %d has %d features, want %d", i, len(f), entity.NumFeatures)
		}
	}
	return nil
}
