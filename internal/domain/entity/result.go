package entity

import "fmt"

// BlobVerdict is the predicted class for one detected blob.
type BlobVerdict struct {
	Blob  Blob
	Label Label
}

// ImageVerdict holds the outcome of classifying one snapshot.
type ImageVerdict struct {
	ImageWidth  int           // width of the inspected image
	ImageHeight int           // height of the inspected image
	Blobs       []BlobVerdict // one entry per detected blob, detection order
}

// Pass reports whether every detected cookie is correctly oriented.
func (v ImageVerdict) Pass() bool {
	for _, b := range v.Blobs {
		if b.Label != LabelNotFlipped {
			return false
		}
	}
	return true
}

// FlippedCount returns the number of blobs classified as flipped.
func (v ImageVerdict) FlippedCount() int {
	n := 0
	for _, b := range v.Blobs {
		if b.Label == LabelFlipped {
			n++
		}
	}
	return n
}

// ConfusionMatrix counts predicted vs. actual labels for the two classes.
// Rows are actual, columns are predicted.
type ConfusionMatrix struct {
	counts [2][2]int
}

func labelIndex(l Label) (int, bool) {
	switch l {
	case LabelNotFlipped:
		return 0, true
	case LabelFlipped:
		return 1, true
	default:
		return 0, false
	}
}

// Add records one (actual, predicted) pair. Unknown labels are ignored.
func (m *ConfusionMatrix) Add(actual, predicted Label) {
	i, ok := labelIndex(actual)
	j, ok2 := labelIndex(predicted)
	if !ok || !ok2 {
		return
	}
	m.counts[i][j]++
}

// Count returns the number of samples with the given actual and predicted labels.
func (m *ConfusionMatrix) Count(actual, predicted Label) int {
	i, ok := labelIndex(actual)
	j, ok2 := labelIndex(predicted)
	if !ok || !ok2 {
		return 0
	}
	return m.counts[i][j]
}

// Total returns the number of recorded pairs.
func (m *ConfusionMatrix) Total() int {
	t := 0
	for i := range m.counts {
		for j := range m.counts[i] {
			t += m.counts[i][j]
		}
	}
	return t
}

// Accuracy returns the fraction of pairs on the diagonal, 0 when empty.
func (m *ConfusionMatrix) Accuracy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	return float64(m.counts[0][0]+m.counts[1][1]) / float64(total)
}

// String renders the matrix for console reporting.
func (m *ConfusionMatrix) String() string {
	return fmt.Sprintf(
		"            pred OK  pred FLIPPED\nactual OK      %5d         %5d\nactual FLIPPED %5d         %5d",
		m.counts[0][0], m.counts[0][1], m.counts[1][0], m.counts[1][1])
}

// Evaluation is the training-time quality report.
type Evaluation struct {
	SampleCount int
	Accuracy    float64
	Confusion   ConfusionMatrix
}
