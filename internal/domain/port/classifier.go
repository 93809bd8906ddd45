package port

import "cookie-inspector/internal/domain/entity"

// Classifier is a trainable two-class model over cookie feature vectors.
type Classifier interface {
	// Train fits the model on the full sample set. A failed fit leaves the
	// classifier untrained; there is no retry.
	Train(samples []entity.LabeledSample) error

	// Predict returns one label per feature row, in input order. The result
	// is always a slice, also for a single row.
	Predict(features []entity.FeatureVector) ([]entity.Label, error)

	// Trained reports whether a successful fit has occurred.
	Trained() bool
}
