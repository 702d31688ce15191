package cdata

import "fmt"

// Shape describes the dimensions of a data array.
// Axis 0 is always the sample axis; the remaining axes hold features.
type Shape []int

// NumElements returns the total number of scalar elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NumSamples returns the size of the sample axis (axis 0).
// A rank-0 shape has no sample axis and reports 0 samples.
func (s Shape) NumSamples() int {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// NumFeatures returns the flattened feature count: the product of all
// axis sizes after the sample axis. A rank-1 shape has 1 feature.
func (s Shape) NumFeatures() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s[1:] {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1 and no negative dimensions.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape must have rank >= 1, got rank 0")
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at axis %d: %d", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}
