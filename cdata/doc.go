// Copyright 2026 the nisqai-dev authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cdata provides containers for classical numeric data used in
// quantum machine learning experiments.
//
// # Overview
//
// Two containers are provided:
//   - CData: an n-dimensional numeric array whose first axis holds samples,
//     with in-place feature scaling
//   - LabeledCData: a CData with one label per sample and a deterministic
//     train/test split
//
// # Basic Usage
//
//	import "github.com/dumkar/nisqai-dev/cdata"
//
//	func main() {
//	    c, err := cdata.FromRows([][]float64{
//	        {0.564, 20.661},
//	        {-18.512, 41.168},
//	        {-0.009, 20.440},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    c.ScaleFeatures(cdata.MinMaxNorm) // each column now spans [0, 1]
//	}
//
// # Feature Scaling
//
// ScaleFeatures rescales every feature column independently over the sample
// axis, in place. Five methods are supported: min-max normalization, mean
// normalization, standardization, and L1/L2 normalization. Degenerate columns
// (constant values, zero norm) produce NaN or Inf per IEEE-754 rather than
// an error.
//
// # Labels and Splitting
//
// LabeledCData attaches a label vector aligned with the sample axis. Labels
// are supplied directly (NewLabeled) or derived per sample by a labeling
// function (NewLabeledFunc). TrainTestSplit deterministically partitions
// samples into a test prefix and a train suffix, preserving order.
package cdata
