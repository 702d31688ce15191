package cdata

import (
	"fmt"
	"math"
)

// LabelFunc derives a label from one sample's flattened feature values.
type LabelFunc func(sample []float64) float64

// LabeledCData is a CData with one label per sample, aligned by index.
type LabeledCData struct {
	CData
	labels []float64
}

// NewLabeled creates a LabeledCData from a flat buffer, its shape, and a
// precomputed label vector. Returns ErrLabelMismatch when the label count
// differs from the sample count.
func NewLabeled(data []float64, shape Shape, labels []float64) (*LabeledCData, error) {
	c, err := New(data, shape)
	if err != nil {
		return nil, err
	}
	if len(labels) != c.numSamples {
		return nil, fmt.Errorf("%w: %d labels for %d samples", ErrLabelMismatch, len(labels), c.numSamples)
	}
	return &LabeledCData{CData: *c, labels: labels}, nil
}

// NewLabeledFunc creates a LabeledCData by applying fn to each sample to
// derive its label.
func NewLabeledFunc(data []float64, shape Shape, fn LabelFunc) (*LabeledCData, error) {
	c, err := New(data, shape)
	if err != nil {
		return nil, err
	}
	labels := make([]float64, c.numSamples)
	for i := range labels {
		labels[i] = fn(c.Sample(i))
	}
	return &LabeledCData{CData: *c, labels: labels}, nil
}

// Labels returns the label vector, aligned with the sample axis.
func (l *LabeledCData) Labels() []float64 {
	return l.labels
}

// Label returns the label of sample i. Panics if i is out of range.
func (l *LabeledCData) Label(i int) float64 {
	if i < 0 || i >= l.numSamples {
		panic(fmt.Sprintf("sample index %d out of range [0, %d)", i, l.numSamples))
	}
	return l.labels[i]
}

// TrainTestSplit partitions the samples into a test prefix and a train
// suffix, in original order and without shuffling. fraction is the desired
// test fraction in [0, 1]; the test set holds the first
// floor(fraction * numSamples) samples and the train set the rest.
// The receiver is not mutated; both returned sets copy their data.
func (l *LabeledCData) TrainTestSplit(fraction float64) (test, train *CData) {
	k := l.testSize(fraction)
	return l.slice(0, k), l.slice(k, l.numSamples)
}

// TrainTestSplitLabeled is TrainTestSplit keeping labels aligned with each
// partition.
func (l *LabeledCData) TrainTestSplitLabeled(fraction float64) (test, train *LabeledCData) {
	k := l.testSize(fraction)
	test = &LabeledCData{CData: *l.slice(0, k), labels: copyFloats(l.labels[:k])}
	train = &LabeledCData{CData: *l.slice(k, l.numSamples), labels: copyFloats(l.labels[k:])}
	return test, train
}

func (l *LabeledCData) testSize(fraction float64) int {
	return int(math.Floor(fraction * float64(l.numSamples)))
}

// Clone returns a deep copy of the LabeledCData.
func (l *LabeledCData) Clone() *LabeledCData {
	return &LabeledCData{CData: *l.CData.Clone(), labels: copyFloats(l.labels)}
}

func copyFloats(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
