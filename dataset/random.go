// Copyright 2026 the nisqai-dev authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand"

	"github.com/dumkar/nisqai-dev/cdata"
)

// Random creates a rank-2 CData of numSamples x numFeatures values drawn
// uniformly from [0, 1).
//
// Note: uses math/rand (not crypto/rand), which is appropriate for
// statistical purposes and allows reproducibility via rand.Seed.
func Random(numSamples, numFeatures int) (*cdata.CData, error) {
	data := make([]float64, numSamples*numFeatures)
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally
	}
	return cdata.New(data, cdata.Shape{numSamples, numFeatures})
}

// RandomLabeled creates a random dataset labeled by fn.
func RandomLabeled(numSamples, numFeatures int, fn cdata.LabelFunc) (*cdata.LabeledCData, error) {
	data := make([]float64, numSamples*numFeatures)
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally
	}
	return cdata.NewLabeledFunc(data, cdata.Shape{numSamples, numFeatures}, fn)
}
