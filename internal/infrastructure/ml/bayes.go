package ml

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"cookie-inspector/internal/domain/entity"
	"cookie-inspector/internal/domain/port"
)

// Bayes is a Gaussian naive Bayes classifier: each feature is modeled as
// an independent normal distribution per class.
type Bayes struct {
	varianceEps float64
	classes     [2]bayesClass
	trained     bool
}

type bayesClass struct {
	label    entity.Label
	logPrior float64
	mean     [entity.NumFeatures]float64
	variance [entity.NumFeatures]float64
}

// NewBayes creates an untrained Gaussian naive Bayes classifier. The
// variance floor guards against zero-variance features.
func NewBayes(varianceEps float64) *Bayes {
	if varianceEps <= 0 {
		varianceEps = 1e-9
	}
	return &Bayes{varianceEps: varianceEps}
}

// Train estimates per-class feature means and variances.
func (c *Bayes) Train(samples []entity.LabeledSample) error {
	if err := checkSamples(samples); err != nil {
		return err
	}

	for ci, label := range []entity.Label{entity.LabelNotFlipped, entity.LabelFlipped} {
		var columns [entity.NumFeatures][]float64
		for _, s := range samples {
			if s.Label != label {
				continue
			}
			for j, v := range s.Features {
				columns[j] = append(columns[j], v)
			}
		}

		cls := bayesClass{label: label}
		cls.logPrior = math.Log(float64(len(columns[0])) / float64(len(samples)))
		for j, col := range columns {
			mean, std := stat.MeanStdDev(col, nil)
			if math.IsNaN(std) {
				std = 0
			}
			cls.mean[j] = mean
			cls.variance[j] = math.Max(std*std, c.varianceEps)
		}
		c.classes[ci] = cls
	}

	c.trained = true
	return nil
}

// Predict returns the class with the higher posterior for each row.
func (c *Bayes) Predict(features []entity.FeatureVector) ([]entity.Label, error) {
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
func (c *Bayes) Trained() bool {
	return c.trained
}

func (c *Bayes) predictOne(f entity.FeatureVector) entity.Label {
	best := c.classes[0].label
	bestScore := math.Inf(-1)
	for _, cls := range c.classes {
		score := cls.logPrior
		for j, v := range f {
			score += logNormPDF(v, cls.mean[j], cls.variance[j])
		}
		if score > bestScore {
			bestScore = score
			best = cls.label
		}
	}
	return best
}

// logNormPDF is the log density of N(mean, variance) at x.
func logNormPDF(x, mean, variance float64) float64 {
	d := x - mean
	return -0.5*math.Log(2*math.Pi*variance) - d*d/(2*variance)
}

var _ port.Classifier = (*Bayes)(nil)
