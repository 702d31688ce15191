package cdata_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumkar/nisqai-dev/cdata"
)

// TestScaleThenSplit exercises the public API end to end: build a labeled
// dataset, scale its features, and partition it.
func TestScaleThenSplit(t *testing.T) {
	rows := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
		{5, 50},
	}
	c, err := cdata.FromRows(rows)
	require.NoError(t, err)

	l, err := cdata.NewLabeledFunc(c.Data(), c.Shape(), func(sample []float64) float64 {
		if sample[0] > 3 {
			return 1
		}
		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1, 1}, l.Labels())

	require.NoError(t, l.ScaleFeatures(cdata.MinMaxNorm))
	// Column minima map to 0, maxima to 1.
	assert.InDelta(t, 0.0, l.Sample(0)[0], 1e-9)
	assert.InDelta(t, 1.0, l.Sample(4)[1], 1e-9)

	test, train := l.TrainTestSplitLabeled(0.4)
	assert.Equal(t, 2, test.NumSamples())
	assert.Equal(t, 3, train.NumSamples())
	assert.Equal(t, []float64{0, 0}, test.Labels())
}

func TestStandardizeMoments(t *testing.T) {
	c, err := cdata.FromRows([][]float64{
		{2, 7}, {4, 1}, {6, 9}, {8, 3}, {10, 5},
	})
	require.NoError(t, err)
	require.NoError(t, c.ScaleFeatures(cdata.Standardize))

	// Each column ends with mean ~0 and unit sample standard deviation.
	for j := 0; j < c.NumFeatures(); j++ {
		var sum, sumSq float64
		n := float64(c.NumSamples())
		for i := 0; i < c.NumSamples(); i++ {
			v := c.Sample(i)[j]
			sum += v
			sumSq += v * v
		}
		mean := sum / n
		std := math.Sqrt((sumSq - n*mean*mean) / (n - 1))
		assert.InDelta(t, 0.0, mean, 1e-9, "column %d mean", j)
		assert.InDelta(t, 1.0, std, 1e-9, "column %d std", j)
	}
}

func TestDegenerateColumnProducesNaN(t *testing.T) {
	c, err := cdata.FromRows([][]float64{{1, 1}, {2, 1}})
	require.NoError(t, err)
	require.NoError(t, c.ScaleFeatures(cdata.MinMaxNorm))

	// Constant column divides by zero range; NaN propagates, no error.
	assert.True(t, math.IsNaN(c.Sample(0)[1]))
	assert.False(t, math.IsNaN(c.Sample(0)[0]))
}

func TestParseScaleMethodError(t *testing.T) {
	_, err := cdata.ParseScaleMethod("quantile")
	assert.ErrorIs(t, err, cdata.ErrUnsupportedMethod)
}
