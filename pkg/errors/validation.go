package errors

import "math"

// ValidateDimension checks that a shape dimension (radius, side, edge, width,
// height) is a finite, strictly positive number.
//
// name is used in the message only, e.g. "radius must be positive, got -1".
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidDimension, "%s is not a number", name)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be finite, got %g", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateCoordinate checks that a point coordinate is finite.
// Zero and negative values are valid.
func ValidateCoordinate(axis string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidCoordinate, "%s coordinate must be finite, got %g", axis, v)
	}
	return nil
}
