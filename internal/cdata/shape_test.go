package cdata

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 1}, 1},
		{Shape{0, 4}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeSamplesAndFeatures(t *testing.T) {
	tests := []struct {
		shape    Shape
		samples  int
		features int
	}{
		{Shape{7}, 7, 1},
		{Shape{2, 3}, 2, 3},
		{Shape{3, 3, 3}, 3, 9},
		{Shape{4, 2, 5, 2}, 4, 20},
	}

	for _, tt := range tests {
		if got := tt.shape.NumSamples(); got != tt.samples {
			t.Errorf("Shape%v.NumSamples() = %d, want %d", tt.shape, got, tt.samples)
		}
		if got := tt.shape.NumFeatures(); got != tt.features {
			t.Errorf("Shape%v.NumFeatures() = %d, want %d", tt.shape, got, tt.features)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	for _, s := range []Shape{{1}, {3, 4}, {2, 3, 4}, {0}} {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	for _, s := range []Shape{{}, {-1}, {3, -4}} {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should have failed", s)
		}
	}
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3, 4}
	clone := s.Clone()
	if !s.Equal(clone) {
		t.Errorf("clone %v not equal to original %v", clone, s)
	}
	clone[0] = 9
	if s[0] != 2 {
		t.Error("mutating clone changed the original")
	}
	if s.Equal(Shape{2, 3}) || s.Equal(Shape{2, 3, 5}) {
		t.Error("Equal matched a different shape")
	}
}
