package cdata

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ScaleMethod selects a per-column feature scaling transform.
type ScaleMethod int

// Supported feature scaling methods.
const (
	// MinMaxNorm maps each column onto [0, 1]: (v - min) / (max - min).
	MinMaxNorm ScaleMethod = iota
	// MeanNorm centers each column on its mean, divided by its range:
	// (v - mean) / (max - min).
	MeanNorm
	// Standardize centers each column to zero mean and unit sample
	// standard deviation: (v - mean) / std.
	Standardize
	// L2Norm divides each column by its Euclidean norm.
	L2Norm
	// L1Norm divides each column by the sum of its absolute values.
	L1Norm
)

// String returns the method's canonical name.
func (m ScaleMethod) String() string {
	switch m {
	case MinMaxNorm:
		return "min-max norm"
	case MeanNorm:
		return "mean norm"
	case Standardize:
		return "standardize"
	case L2Norm:
		return "L2 norm"
	case L1Norm:
		return "L1 norm"
	default:
		return fmt.Sprintf("ScaleMethod(%d)", int(m))
	}
}

// ParseScaleMethod maps a method name to its ScaleMethod.
// Returns ErrUnsupportedMethod for unknown names.
func ParseScaleMethod(name string) (ScaleMethod, error) {
	switch name {
	case "min-max norm":
		return MinMaxNorm, nil
	case "mean norm":
		return MeanNorm, nil
	case "standardize":
		return Standardize, nil
	case "L2 norm":
		return L2Norm, nil
	case "L1 norm":
		return L1Norm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
	}
}

// ScaleFeatures rescales every feature column in place over the sample axis.
// The shape never changes; only values are rewritten.
//
// Degenerate columns (max == min, zero norm, zero deviation) are not guarded:
// divisions by zero propagate as NaN or Inf per IEEE-754, matching the
// underlying floating-point semantics.
//
// Not safe for concurrent use on the same CData without external locking.
func (c *CData) ScaleFeatures(method ScaleMethod) error {
	transform, err := method.columnTransform()
	if err != nil {
		return err
	}

	col := make([]float64, c.numSamples)
	for j := 0; j < c.numFeatures; j++ {
		for i := 0; i < c.numSamples; i++ {
			col[i] = c.data[i*c.numFeatures+j]
		}
		transform(col)
		for i := 0; i < c.numSamples; i++ {
			c.data[i*c.numFeatures+j] = col[i]
		}
	}
	return nil
}

// ScaleFeaturesByName is ScaleFeatures with a method name instead of a tag.
func (c *CData) ScaleFeaturesByName(name string) error {
	method, err := ParseScaleMethod(name)
	if err != nil {
		return err
	}
	return c.ScaleFeatures(method)
}

// columnTransform returns the in-place transform for one feature column.
func (m ScaleMethod) columnTransform() (func(col []float64), error) {
	switch m {
	case MinMaxNorm:
		return func(col []float64) {
			lo, hi := floats.Min(col), floats.Max(col)
			shiftScale(col, lo, hi-lo)
		}, nil
	case MeanNorm:
		return func(col []float64) {
			lo, hi := floats.Min(col), floats.Max(col)
			shiftScale(col, stat.Mean(col, nil), hi-lo)
		}, nil
	case Standardize:
		return func(col []float64) {
			mu, sigma := stat.MeanStdDev(col, nil)
			shiftScale(col, mu, sigma)
		}, nil
	case L2Norm:
		return func(col []float64) {
			shiftScale(col, 0, floats.Norm(col, 2))
		}, nil
	case L1Norm:
		return func(col []float64) {
			shiftScale(col, 0, floats.Norm(col, 1))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, m)
	}
}

// shiftScale applies v -> (v - shift) / scale to every element of col.
func shiftScale(col []float64, shift, scale float64) {
	for i, v := range col {
		col[i] = (v - shift) / scale
	}
}
