package entity

// Label is the class assigned to a cookie blob.
type Label int

const (
	LabelNotFlipped Label = 1 // cookie lies face up
	LabelFlipped    Label = 2 // cookie lies face down
)

// String returns the human-readable verdict for overlays and logs.
func (l Label) String() string {
	switch l {
	case LabelNotFlipped:
		return "OK"
	case LabelFlipped:
		return "FLIPPED"
	default:
		return "UNKNOWN"
	}
}

// FeatureVector holds the four gradient-magnitude statistics computed
// inside one eroded blob mask: min, max, mean, standard deviation.
type FeatureVector []float64

// NumFeatures is the width of every feature row.
const NumFeatures = 4

// LabeledSample pairs a feature vector with its known class.
type LabeledSample struct {
	Features FeatureVector
	Label    Label
}

// TrainingSet is an ordered, append-only collection of labeled samples.
type TrainingSet struct {
	samples []LabeledSample
}

// NewTrainingSet creates an empty training set.
func NewTrainingSet() *TrainingSet {
	return &TrainingSet{}
}

// Append adds one batch of samples, preserving order. Samples are never removed.
func (ts *TrainingSet) Append(samples ...LabeledSample) {
	ts.samples = append(ts.samples, samples...)
}

// Len returns the number of accumulated samples.
func (ts *TrainingSet) Len() int {
	return len(ts.samples)
}

// Samples returns the accumulated samples in append order.
func (ts *TrainingSet) Samples() []LabeledSample {
	return ts.samples
}
