package cdata

import "errors"

// Common errors.
var (
	ErrUnsupportedMethod = errors.New("unsupported feature scaling method")
	ErrLabelMismatch     = errors.New("label count does not match sample count")
)
