// Copyright 2026 the nisqai-dev authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cdata is the public API for classical data containers.
package cdata

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dumkar/nisqai-dev/internal/cdata"
)

// Type aliases for the public API

// Shape represents the dimensions of a data array.
// Axis 0 is always the sample axis.
// Example: Shape{150, 4} holds 150 samples of 4 features each.
type Shape = cdata.Shape

// CData wraps an n-dimensional numeric array with sample/feature accounting
// and in-place feature scaling.
type CData = cdata.CData

// LabeledCData is a CData with one label per sample.
type LabeledCData = cdata.LabeledCData

// LabelFunc derives a label from one sample's flattened feature values.
type LabelFunc = cdata.LabelFunc

// ScaleMethod selects a per-column feature scaling transform.
type ScaleMethod = cdata.ScaleMethod

// Supported feature scaling methods.
const (
	MinMaxNorm  ScaleMethod = cdata.MinMaxNorm
	MeanNorm    ScaleMethod = cdata.MeanNorm
	Standardize ScaleMethod = cdata.Standardize
	L2Norm      ScaleMethod = cdata.L2Norm
	L1Norm      ScaleMethod = cdata.L1Norm
)

// Errors returned by constructors and scaling.
var (
	ErrUnsupportedMethod = cdata.ErrUnsupportedMethod
	ErrLabelMismatch     = cdata.ErrLabelMismatch
)

// Creation functions

// New creates a CData from a flat row-major buffer and its shape.
//
// Example:
//
//	c, err := cdata.New([]float64{1, 0, 0, 0, 1, 0}, cdata.Shape{2, 3})
func New(data []float64, shape Shape) (*CData, error) {
	return cdata.New(data, shape)
}

// FromRows creates a rank-2 CData from per-sample feature rows.
// Every row must have the same length.
func FromRows(rows [][]float64) (*CData, error) {
	return cdata.FromRows(rows)
}

// FromMatrix creates a rank-2 CData by copying a gonum matrix.
// Rows are samples, columns are features.
func FromMatrix(m mat.Matrix) (*CData, error) {
	return cdata.FromMatrix(m)
}

// NewLabeled creates a LabeledCData from a flat buffer, its shape, and a
// precomputed label vector of matching length.
func NewLabeled(data []float64, shape Shape, labels []float64) (*LabeledCData, error) {
	return cdata.NewLabeled(data, shape, labels)
}

// NewLabeledFunc creates a LabeledCData by applying fn to each sample to
// derive its label.
func NewLabeledFunc(data []float64, shape Shape, fn LabelFunc) (*LabeledCData, error) {
	return cdata.NewLabeledFunc(data, shape, fn)
}

// ParseScaleMethod maps a method name (e.g. "min-max norm") to its
// ScaleMethod. Returns ErrUnsupportedMethod for unknown names.
func ParseScaleMethod(name string) (ScaleMethod, error) {
	return cdata.ParseScaleMethod(name)
}
