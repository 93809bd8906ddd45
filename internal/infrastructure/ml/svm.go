package ml

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// SVM is a linear support vector machine trained with hinge-loss SGD
// (Pegasos-style schedule). Features are standardized before fitting so
// the gradient-magnitude scales do not dominate each other.
type SVM struct {
	epochs  int
	lambda  float64
	weights [entity.NumFeatures]float64
	bias    float64
	mean    [entity.NumFeatures]float64
	scale   [entity.NumFeatures]float64
	trained bool
}

// NewSVM creates an untrained linear SVM.
func NewSVM(epochs int, lambda float64) *SVM {
	if epochs < 1 {
		epochs = 100
	}
	if lambda <= 0 {
		lambda = 0.01
	}
	return &SVM{epochs: epochs, lambda: lambda}
}

// Train fits the hyperplane over the full sample set. The pass order is
// fixed, so training is deterministic for identical inputs.
func (c *SVM) Train(samples []entity.LabeledSample) error {
	if err := checkSamples(samples); err != nil {
		return err
	}

	n := len(samples)
	x := mat.NewDense(n, entity.NumFeatures, nil)
	y := make([]float64, n)
	for i, s := range samples {
		x.SetRow(i, s.Features)
		if s.Label == entity.LabelFlipped {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}

	c.fitScaler(x)
	scaled := mat.NewDense(n, entity.NumFeatures, nil)
	for i := 0; i < n; i++ {
		scaled.SetRow(i, c.standardize(x.RawRowView(i)))
	}

	var w [entity.NumFeatures]float64
	var b float64
	t := 0
	for epoch := 0; epoch < c.epochs; epoch++ {
		for i := 0; i < n; i++ {
			t++
			eta := 1 / (c.lambda * float64(t))
			row := scaled.RawRowView(i)

			margin := y[i] * (floats.Dot(w[:], row) + b)
			for j := range w {
				w[j] -= eta * c.lambda * w[j]
			}
			if margin < 1 {
				for j := range w {
					w[j] += eta * y[i] * row[j]
				}
				b += eta * y[i]
			}
		}
	}

	c.weights = w
	c.bias = b
	c.trained = true
	return nil
}

// Predict returns one label per row, flipped when the decision value is positive.
func (c *SVM) Predict(features []entity.FeatureVector) ([]entity.Label, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}
	if err := checkFeatures(features); err != nil {
		return nil, err
	}

	labels := make([]entity.Label, len(features))
	for i, f := range features {
		row := c.standardize(f)
		if floats.Dot(c.weights[:], row)+c.bias > 0 {
			labels[i] = entity.LabelFlipped
		} else {
			labels[i] = entity.LabelNotFlipped
		}
	}
	return labels, nil
}

// Trained reports whether Train has succeeded.
func (c *SVM) Trained() bool {
	return c.trained
}

// fitScaler records column means and standard deviations.
func (c *SVM) fitScaler(x *mat.Dense) {
	rows, _ := x.Dims()
	col := make([]float64, rows)
	for j := 0; j < entity.NumFeatures; j++ {
		mat.Col(col, j, x)
		mean, std := stat.MeanStdDev(col, nil)
		if math.IsNaN(std) || std == 0 {
			std = 1
		}
		c.mean[j] = mean
		c.scale[j] = std
	}
}

// standardize maps one raw feature row into scaler space.
func (c *SVM) standardize(row []float64) []float64 {
	out := make([]float64, entity.NumFeatures)
	for j, v := range row {
		out[j] = (v - c.mean[j]) / c.scale[j]
	}
	return out
}

var _ port.Classifier = (*SVM)(nil)
