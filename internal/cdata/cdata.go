package cdata

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CData holds classical numeric data for encoding into quantum circuits.
// Samples lie along axis 0; all remaining axes are flattened into features.
// The buffer is row-major: sample i occupies data[i*numFeatures : (i+1)*numFeatures].
type CData struct {
	data  []float64
	shape Shape

	numSamples  int
	numFeatures int
}

// New creates a CData from a flat row-major buffer and its shape.
// The buffer is not copied; the CData takes ownership.
func New(data []float64, shape Shape) (*CData, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &CData{
		data:        data,
		shape:       shape.Clone(),
		numSamples:  shape.NumSamples(),
		numFeatures: shape.NumFeatures(),
	}, nil
}

// FromRows creates a rank-2 CData from per-sample feature rows.
// Every row must have the same length.
func FromRows(rows [][]float64) (*CData, error) {
	if len(rows) == 0 {
		return New(nil, Shape{0, 0})
	}
	width := len(rows[0])
	data := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("inconsistent row length at sample %d: got %d, want %d", i, len(row), width)
		}
		data = append(data, row...)
	}
	return New(data, Shape{len(rows), width})
}

// FromMatrix creates a rank-2 CData by copying a gonum matrix.
// Rows are samples, columns are features.
func FromMatrix(m mat.Matrix) (*CData, error) {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	return New(data, Shape{r, c})
}

// Shape returns the data array's shape.
func (c *CData) Shape() Shape {
	return c.shape
}

// NumSamples returns the size of the sample axis.
func (c *CData) NumSamples() int {
	return c.numSamples
}

// NumFeatures returns the flattened feature count per sample.
func (c *CData) NumFeatures() int {
	return c.numFeatures
}

// Data returns the flat row-major buffer.
// The slice directly accesses the underlying memory; modifications are visible
// to the CData.
func (c *CData) Data() []float64 {
	return c.data
}

// Sample returns the flattened feature values of sample i as a view into the
// underlying buffer. Panics if i is out of range.
func (c *CData) Sample(i int) []float64 {
	if i < 0 || i >= c.numSamples {
		panic(fmt.Sprintf("sample index %d out of range [0, %d)", i, c.numSamples))
	}
	return c.data[i*c.numFeatures : (i+1)*c.numFeatures]
}

// Matrix returns the data as a gonum dense matrix of samples x features.
// The matrix copies the buffer, so mutating it does not affect the CData.
func (c *CData) Matrix() *mat.Dense {
	buf := make([]float64, len(c.data))
	copy(buf, c.data)
	return mat.NewDense(c.numSamples, c.numFeatures, buf)
}

// Clone returns a deep copy of the CData.
func (c *CData) Clone() *CData {
	data := make([]float64, len(c.data))
	copy(data, c.data)
	return &CData{
		data:        data,
		shape:       c.shape.Clone(),
		numSamples:  c.numSamples,
		numFeatures: c.numFeatures,
	}
}

// String returns a short human-readable description.
func (c *CData) String() string {
	return fmt.Sprintf("CData%v (%d samples, %d features)", c.shape, c.numSamples, c.numFeatures)
}

// slice returns a new CData over samples [from, to), copying the buffer.
// Shape after the sample axis is preserved.
func (c *CData) slice(from, to int) *CData {
	shape := c.shape.Clone()
	shape[0] = to - from
	data := make([]float64, (to-from)*c.numFeatures)
	copy(data, c.data[from*c.numFeatures:to*c.numFeatures])
	out, _ := New(data, shape)
	return out
}
