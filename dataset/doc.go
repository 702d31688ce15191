// Copyright 2026 the nisqai-dev authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset loads standard corpora and generates synthetic data as
// cdata containers.
//
// Loaders return objects exposing per-sample data and labels, ready for
// feature scaling and splitting:
//
//	iris, err := dataset.LoadIrisCSV("testdata/iris.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	iris.ScaleFeatures(cdata.Standardize)
//	test, train := iris.TrainTestSplit(0.2)
package dataset
